package framepb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	Themes_List_FullMethodName    = "/gophframe.v1.Themes/List"
	Themes_Resolve_FullMethodName = "/gophframe.v1.Themes/Resolve"
	Themes_Add_FullMethodName     = "/gophframe.v1.Themes/Add"
	Themes_Update_FullMethodName  = "/gophframe.v1.Themes/Update"
	Themes_Delete_FullMethodName  = "/gophframe.v1.Themes/Delete"
)

// ThemesServer exposes the theme catalog. Themes travel as JSON-shaped structs.
type ThemesServer interface {
	List(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Resolve(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Add(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Update(context.Context, *structpb.Struct) (*emptypb.Empty, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
}

// UnimplementedThemesServer must be embedded to have forward compatible implementations.
type UnimplementedThemesServer struct{}

func (UnimplementedThemesServer) List(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedThemesServer) Resolve(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Resolve not implemented")
}
func (UnimplementedThemesServer) Add(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Add not implemented")
}
func (UnimplementedThemesServer) Update(context.Context, *structpb.Struct) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Update not implemented")
}
func (UnimplementedThemesServer) Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}

func RegisterThemesServer(s grpc.ServiceRegistrar, srv ThemesServer) {
	s.RegisterService(&Themes_ServiceDesc, srv)
}

var Themes_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophframe.v1.Themes",
	HandlerType: (*ThemesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "List",
			Handler:    unaryHandler(Themes_List_FullMethodName, newEmpty, ThemesServer.List),
		},
		{
			MethodName: "Resolve",
			Handler:    unaryHandler(Themes_Resolve_FullMethodName, newString, ThemesServer.Resolve),
		},
		{
			MethodName: "Add",
			Handler:    unaryHandler(Themes_Add_FullMethodName, newStruct, ThemesServer.Add),
		},
		{
			MethodName: "Update",
			Handler:    unaryHandler(Themes_Update_FullMethodName, newStruct, ThemesServer.Update),
		},
		{
			MethodName: "Delete",
			Handler:    unaryHandler(Themes_Delete_FullMethodName, newString, ThemesServer.Delete),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// ThemesClient is the client API for the Themes service.
type ThemesClient interface {
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Add(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type themesClient struct {
	cc grpc.ClientConnInterface
}

func NewThemesClient(cc grpc.ClientConnInterface) ThemesClient {
	return &themesClient{cc}
}

func (c *themesClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, Themes_List_FullMethodName, in, new(structpb.ListValue), opts...)
}

func (c *themesClient) Resolve(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Themes_Resolve_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *themesClient) Add(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Themes_Add_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *themesClient) Update(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, Themes_Update_FullMethodName, in, new(emptypb.Empty), opts...)
}

func (c *themesClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, Themes_Delete_FullMethodName, in, new(emptypb.Empty), opts...)
}

func newEmpty() *emptypb.Empty    { return new(emptypb.Empty) }
func newStruct() *structpb.Struct { return new(structpb.Struct) }
