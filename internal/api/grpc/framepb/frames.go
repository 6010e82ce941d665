package framepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Frames_Render_FullMethodName = "/gophframe.v1.Frames/Render"
)

// FramesServer renders product groups into PNG frames.
type FramesServer interface {
	// Render composes the group and returns PNG bytes. The download name is
	// sent in the HeaderFilename response header.
	Render(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedFramesServer must be embedded to have forward compatible implementations.
type UnimplementedFramesServer struct{}

func (UnimplementedFramesServer) Render(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Render not implemented")
}

func RegisterFramesServer(s grpc.ServiceRegistrar, srv FramesServer) {
	s.RegisterService(&Frames_ServiceDesc, srv)
}

var Frames_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophframe.v1.Frames",
	HandlerType: (*FramesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Render",
			Handler:    unaryHandler(Frames_Render_FullMethodName, newString, FramesServer.Render),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// FramesClient is the client API for the Frames service.
type FramesClient interface {
	Render(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type framesClient struct {
	cc grpc.ClientConnInterface
}

func NewFramesClient(cc grpc.ClientConnInterface) FramesClient {
	return &framesClient{cc}
}

func (c *framesClient) Render(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	return invoke(ctx, c.cc, Frames_Render_FullMethodName, in, new(wrapperspb.BytesValue), opts...)
}

func newString() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newBytes() *wrapperspb.BytesValue   { return new(wrapperspb.BytesValue) }
