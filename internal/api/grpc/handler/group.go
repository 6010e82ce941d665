package handler

import (
	"context"

	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/gophframe/internal/api/grpc/framepb"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// GroupEditor defines business operations for product groups.
type GroupEditor interface {
	ListGroups(ctx context.Context) ([]model.Group, error)
	GetGroup(ctx context.Context, id string) (model.Group, error)
	CreateGroup(ctx context.Context, name string) (model.Group, error)
	RenameGroup(ctx context.Context, id, name string) (model.Group, error)
	SetTheme(ctx context.Context, id, themeID string) (model.Group, error)
	DeleteGroup(ctx context.Context, id string) error
	AddProduct(ctx context.Context, groupID, name string, image []byte) (model.Product, error)
	RenameProduct(ctx context.Context, groupID, productID, name string) (model.Group, error)
	SetProductActive(ctx context.Context, groupID, productID string, active bool) (model.Group, error)
	ReplaceProductImage(ctx context.Context, groupID, productID string, image []byte) (model.Group, error)
	RemoveProduct(ctx context.Context, groupID, productID string) (model.Group, error)
	SetBackgroundColor(ctx context.Context, groupID, color string) (model.Group, error)
	SetBackgroundImage(ctx context.Context, groupID string, image []byte) (model.Group, error)
	RemoveBackground(ctx context.Context, groupID string) (model.Group, error)
}

// Group handles gRPC endpoints for group editing.
type Group struct {
	framepb.UnimplementedGroupsServer
	editor GroupEditor
	logger *logger.Logger
}

// NewGroup creates a new Group handler.
func NewGroup(editor GroupEditor, logger *logger.Logger) *Group {
	return &Group{
		editor: editor,
		logger: logger,
	}
}

// List returns every group.
func (h *Group) List(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	groups, err := h.editor.ListGroups(ctx)
	if err != nil {
		h.logger.Error("Group handler: list failed", "error", err.Error())
		return nil, handleError(err)
	}
	list, err := toList(groups)
	if err != nil {
		return nil, handleError(err)
	}
	return list, nil
}

// Get returns one group.
func (h *Group) Get(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return h.group(h.editor.GetGroup(ctx, req.GetValue()))
}

// Create stores an empty group with the given name.
func (h *Group) Create(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return h.group(h.editor.CreateGroup(ctx, req.GetValue()))
}

// Delete removes a group and its images.
func (h *Group) Delete(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.editor.DeleteGroup(ctx, req.GetValue()); err != nil {
		h.logger.Error("Group handler: delete failed", "group_id", req.GetValue(), "error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// Rename expects {group_id, name}.
func (h *Group) Rename(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.RenameGroup(ctx, groupID, stringField(req, "name")))
}

// SetTheme expects {group_id, theme_id}.
func (h *Group) SetTheme(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.SetTheme(ctx, groupID, stringField(req, "theme_id")))
}

// AddProduct expects {group_id, name, image} and returns the new product.
func (h *Group) AddProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return nil, err
	}
	image, err := imageField(req, "image")
	if err != nil {
		return nil, err
	}

	product, err := h.editor.AddProduct(ctx, groupID, stringField(req, "name"), image)
	if err != nil {
		h.logger.Error("Group handler: add product failed", "group_id", groupID, "error", err.Error())
		return nil, handleError(err)
	}

	out, err := toStruct(product)
	if err != nil {
		return nil, handleError(err)
	}
	return out, nil
}

// RenameProduct expects {group_id, product_id, name}.
func (h *Group) RenameProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, productID, err := productRef(req)
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.RenameProduct(ctx, groupID, productID, stringField(req, "name")))
}

// SetProductActive expects {group_id, product_id, active}.
func (h *Group) SetProductActive(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, productID, err := productRef(req)
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.SetProductActive(ctx, groupID, productID, boolField(req, "active")))
}

// ReplaceProductImage expects {group_id, product_id, image}.
func (h *Group) ReplaceProductImage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, productID, err := productRef(req)
	if err != nil {
		return nil, err
	}
	image, err := imageField(req, "image")
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.ReplaceProductImage(ctx, groupID, productID, image))
}

// RemoveProduct expects {group_id, product_id}.
func (h *Group) RemoveProduct(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, productID, err := productRef(req)
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.RemoveProduct(ctx, groupID, productID))
}

// SetBackgroundColor expects {group_id, color}.
func (h *Group) SetBackgroundColor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.SetBackgroundColor(ctx, groupID, stringField(req, "color")))
}

// SetBackgroundImage expects {group_id, image}.
func (h *Group) SetBackgroundImage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return nil, err
	}
	image, err := imageField(req, "image")
	if err != nil {
		return nil, err
	}
	return h.group(h.editor.SetBackgroundImage(ctx, groupID, image))
}

// RemoveBackground clears the background of the group.
func (h *Group) RemoveBackground(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return h.group(h.editor.RemoveBackground(ctx, req.GetValue()))
}

func (h *Group) group(g model.Group, err error) (*structpb.Struct, error) {
	if err != nil {
		h.logger.Error("Group handler: request failed", "error", err.Error())
		return nil, handleError(err)
	}
	out, err := toStruct(g)
	if err != nil {
		return nil, handleError(err)
	}
	return out, nil
}

func productRef(req *structpb.Struct) (string, string, error) {
	groupID, err := requireString(req, "group_id")
	if err != nil {
		return "", "", err
	}
	productID, err := requireString(req, "product_id")
	if err != nil {
		return "", "", err
	}
	return groupID, productID, nil
}
