package framepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Blobs_Put_FullMethodName    = "/gophframe.v1.Blobs/Put"
	Blobs_Get_FullMethodName    = "/gophframe.v1.Blobs/Get"
	Blobs_Delete_FullMethodName = "/gophframe.v1.Blobs/Delete"
)

// BlobsServer stores opaque image bytes under minted ids.
type BlobsServer interface {
	Put(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// UnimplementedBlobsServer must be embedded to have forward compatible implementations.
type UnimplementedBlobsServer struct{}

func (UnimplementedBlobsServer) Put(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Put not implemented")
}
func (UnimplementedBlobsServer) Get(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedBlobsServer) Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}

func RegisterBlobsServer(s grpc.ServiceRegistrar, srv BlobsServer) {
	s.RegisterService(&Blobs_ServiceDesc, srv)
}

var Blobs_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophframe.v1.Blobs",
	HandlerType: (*BlobsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Put",
			Handler:    unaryHandler(Blobs_Put_FullMethodName, newBytes, BlobsServer.Put),
		},
		{
			MethodName: "Get",
			Handler:    unaryHandler(Blobs_Get_FullMethodName, newString, BlobsServer.Get),
		},
		{
			MethodName: "Delete",
			Handler:    unaryHandler(Blobs_Delete_FullMethodName, newString, BlobsServer.Delete),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// BlobsClient is the client API for the Blobs service.
type BlobsClient interface {
	Put(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type blobsClient struct {
	cc grpc.ClientConnInterface
}

func NewBlobsClient(cc grpc.ClientConnInterface) BlobsClient {
	return &blobsClient{cc}
}

func (c *blobsClient) Put(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return invoke(ctx, c.cc, Blobs_Put_FullMethodName, in, new(wrapperspb.StringValue), opts...)
}

func (c *blobsClient) Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	return invoke(ctx, c.cc, Blobs_Get_FullMethodName, in, new(wrapperspb.BytesValue), opts...)
}

func (c *blobsClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, Blobs_Delete_FullMethodName, in, new(emptypb.Empty), opts...)
}
