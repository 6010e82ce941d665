package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/gophframe/internal/api/grpc/framepb"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// ThemeCatalog lists, resolves and edits themes.
type ThemeCatalog interface {
	List() []model.Theme
	Resolve(id string) model.Theme
	Add(ctx context.Context, name string, styles model.ThemeStyles) (model.Theme, error)
	Update(ctx context.Context, theme model.Theme) error
	Delete(ctx context.Context, id string) error
}

// Theme handles gRPC endpoints for the theme catalog.
type Theme struct {
	framepb.UnimplementedThemesServer
	themes ThemeCatalog
	logger *logger.Logger
}

// NewTheme creates a new Theme handler.
func NewTheme(themes ThemeCatalog, logger *logger.Logger) *Theme {
	return &Theme{
		themes: themes,
		logger: logger,
	}
}

type addThemeRequest struct {
	Name   string            `json:"name"`
	Styles model.ThemeStyles `json:"styles"`
}

// List returns built-in themes followed by custom ones.
func (h *Theme) List(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	list, err := toList(h.themes.List())
	if err != nil {
		h.logger.Error("Theme handler: failed to encode themes", "error", err.Error())
		return nil, handleError(err)
	}
	return list, nil
}

// Resolve returns the theme with the id or the default theme.
func (h *Theme) Resolve(_ context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	out, err := toStruct(h.themes.Resolve(req.GetValue()))
	if err != nil {
		return nil, handleError(err)
	}
	return out, nil
}

// Add creates a custom theme.
func (h *Theme) Add(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var in addThemeRequest
	if err := fromStruct(req, &in); err != nil {
		return nil, err
	}

	t, err := h.themes.Add(ctx, in.Name, in.Styles)
	if err != nil {
		h.logger.Error("Theme handler: add failed", "name", in.Name, "error", err.Error())
		return nil, handleError(err)
	}

	out, err := toStruct(t)
	if err != nil {
		return nil, handleError(err)
	}
	return out, nil
}

// Update replaces a custom theme. Built-in and unknown ids are ignored.
func (h *Theme) Update(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error) {
	var t model.Theme
	if err := fromStruct(req, &t); err != nil {
		return nil, err
	}
	if t.ID == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	t.IsCustom = true

	if err := h.themes.Update(ctx, t); err != nil {
		h.logger.Error("Theme handler: update failed", "theme_id", t.ID, "error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

// Delete removes a custom theme.
func (h *Theme) Delete(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.themes.Delete(ctx, req.GetValue()); err != nil {
		h.logger.Error("Theme handler: delete failed", "theme_id", req.GetValue(), "error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}
