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
	Groups_List_FullMethodName                = "/gophframe.v1.Groups/List"
	Groups_Get_FullMethodName                 = "/gophframe.v1.Groups/Get"
	Groups_Create_FullMethodName              = "/gophframe.v1.Groups/Create"
	Groups_Delete_FullMethodName              = "/gophframe.v1.Groups/Delete"
	Groups_Rename_FullMethodName              = "/gophframe.v1.Groups/Rename"
	Groups_SetTheme_FullMethodName            = "/gophframe.v1.Groups/SetTheme"
	Groups_AddProduct_FullMethodName          = "/gophframe.v1.Groups/AddProduct"
	Groups_RenameProduct_FullMethodName       = "/gophframe.v1.Groups/RenameProduct"
	Groups_SetProductActive_FullMethodName    = "/gophframe.v1.Groups/SetProductActive"
	Groups_ReplaceProductImage_FullMethodName = "/gophframe.v1.Groups/ReplaceProductImage"
	Groups_RemoveProduct_FullMethodName       = "/gophframe.v1.Groups/RemoveProduct"
	Groups_SetBackgroundColor_FullMethodName  = "/gophframe.v1.Groups/SetBackgroundColor"
	Groups_SetBackgroundImage_FullMethodName  = "/gophframe.v1.Groups/SetBackgroundImage"
	Groups_RemoveBackground_FullMethodName    = "/gophframe.v1.Groups/RemoveBackground"
)

// GroupsServer edits product groups. Groups and edit requests travel as
// JSON-shaped structs; image fields are base64 strings.
type GroupsServer interface {
	List(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	Get(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Create(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	Rename(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetTheme(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AddProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RenameProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetProductActive(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ReplaceProductImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBackgroundColor(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetBackgroundImage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	RemoveBackground(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
}

// UnimplementedGroupsServer must be embedded to have forward compatible implementations.
type UnimplementedGroupsServer struct{}

func (UnimplementedGroupsServer) List(context.Context, *emptypb.Empty) (*structpb.ListValue, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedGroupsServer) Get(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Get not implemented")
}
func (UnimplementedGroupsServer) Create(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Create not implemented")
}
func (UnimplementedGroupsServer) Delete(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Delete not implemented")
}
func (UnimplementedGroupsServer) Rename(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Rename not implemented")
}
func (UnimplementedGroupsServer) SetTheme(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetTheme not implemented")
}
func (UnimplementedGroupsServer) AddProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddProduct not implemented")
}
func (UnimplementedGroupsServer) RenameProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RenameProduct not implemented")
}
func (UnimplementedGroupsServer) SetProductActive(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetProductActive not implemented")
}
func (UnimplementedGroupsServer) ReplaceProductImage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReplaceProductImage not implemented")
}
func (UnimplementedGroupsServer) RemoveProduct(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveProduct not implemented")
}
func (UnimplementedGroupsServer) SetBackgroundColor(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetBackgroundColor not implemented")
}
func (UnimplementedGroupsServer) SetBackgroundImage(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetBackgroundImage not implemented")
}
func (UnimplementedGroupsServer) RemoveBackground(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveBackground not implemented")
}

func RegisterGroupsServer(s grpc.ServiceRegistrar, srv GroupsServer) {
	s.RegisterService(&Groups_ServiceDesc, srv)
}

var Groups_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "gophframe.v1.Groups",
	HandlerType: (*GroupsServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "List",
			Handler:    unaryHandler(Groups_List_FullMethodName, newEmpty, GroupsServer.List),
		},
		{
			MethodName: "Get",
			Handler:    unaryHandler(Groups_Get_FullMethodName, newString, GroupsServer.Get),
		},
		{
			MethodName: "Create",
			Handler:    unaryHandler(Groups_Create_FullMethodName, newString, GroupsServer.Create),
		},
		{
			MethodName: "Delete",
			Handler:    unaryHandler(Groups_Delete_FullMethodName, newString, GroupsServer.Delete),
		},
		{
			MethodName: "Rename",
			Handler:    unaryHandler(Groups_Rename_FullMethodName, newStruct, GroupsServer.Rename),
		},
		{
			MethodName: "SetTheme",
			Handler:    unaryHandler(Groups_SetTheme_FullMethodName, newStruct, GroupsServer.SetTheme),
		},
		{
			MethodName: "AddProduct",
			Handler:    unaryHandler(Groups_AddProduct_FullMethodName, newStruct, GroupsServer.AddProduct),
		},
		{
			MethodName: "RenameProduct",
			Handler:    unaryHandler(Groups_RenameProduct_FullMethodName, newStruct, GroupsServer.RenameProduct),
		},
		{
			MethodName: "SetProductActive",
			Handler:    unaryHandler(Groups_SetProductActive_FullMethodName, newStruct, GroupsServer.SetProductActive),
		},
		{
			MethodName: "ReplaceProductImage",
			Handler:    unaryHandler(Groups_ReplaceProductImage_FullMethodName, newStruct, GroupsServer.ReplaceProductImage),
		},
		{
			MethodName: "RemoveProduct",
			Handler:    unaryHandler(Groups_RemoveProduct_FullMethodName, newStruct, GroupsServer.RemoveProduct),
		},
		{
			MethodName: "SetBackgroundColor",
			Handler:    unaryHandler(Groups_SetBackgroundColor_FullMethodName, newStruct, GroupsServer.SetBackgroundColor),
		},
		{
			MethodName: "SetBackgroundImage",
			Handler:    unaryHandler(Groups_SetBackgroundImage_FullMethodName, newStruct, GroupsServer.SetBackgroundImage),
		},
		{
			MethodName: "RemoveBackground",
			Handler:    unaryHandler(Groups_RemoveBackground_FullMethodName, newString, GroupsServer.RemoveBackground),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: protoFile,
}

// GroupsClient is the client API for the Groups service.
type GroupsClient interface {
	List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
	Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Create(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error)
	Rename(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetTheme(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RenameProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetProductActive(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ReplaceProductImage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemoveProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetBackgroundColor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	SetBackgroundImage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemoveBackground(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type groupsClient struct {
	cc grpc.ClientConnInterface
}

func NewGroupsClient(cc grpc.ClientConnInterface) GroupsClient {
	return &groupsClient{cc}
}

func (c *groupsClient) List(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke(ctx, c.cc, Groups_List_FullMethodName, in, new(structpb.ListValue), opts...)
}

func (c *groupsClient) Get(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_Get_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) Create(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_Create_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) Delete(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	return invoke(ctx, c.cc, Groups_Delete_FullMethodName, in, new(emptypb.Empty), opts...)
}

func (c *groupsClient) Rename(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_Rename_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) SetTheme(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_SetTheme_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) AddProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_AddProduct_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) RenameProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_RenameProduct_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) SetProductActive(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_SetProductActive_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) ReplaceProductImage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_ReplaceProductImage_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) RemoveProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_RemoveProduct_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) SetBackgroundColor(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_SetBackgroundColor_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) SetBackgroundImage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_SetBackgroundImage_FullMethodName, in, new(structpb.Struct), opts...)
}

func (c *groupsClient) RemoveBackground(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke(ctx, c.cc, Groups_RemoveBackground_FullMethodName, in, new(structpb.Struct), opts...)
}
