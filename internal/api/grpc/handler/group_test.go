package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/gophframe/internal/mocks"
	"github.com/dtroode/gophframe/internal/model"
	"github.com/dtroode/gophframe/internal/testutil"
)

func snacks() model.Group {
	return model.Group{
		ID:   "g-1",
		Name: "Snacks",
		Products: []model.Product{
			{ID: "p-1", Name: "Chips", ImageID: "img-1", IsActive: true},
		},
		Background: model.ColorBackground("#112233"),
	}
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func TestGroup_ListAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	editor := mocks.NewGroupEditor(t)
	editor.On("ListGroups", ctx).Return([]model.Group{snacks()}, nil)
	editor.On("GetGroup", ctx, "g-1").Return(snacks(), nil)
	editor.On("GetGroup", ctx, "nope").Return(model.Group{}, model.ErrNotFound)

	h := NewGroup(editor, testutil.MakeNoopLogger())

	list, err := h.List(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 1)

	g, err := h.Get(ctx, wrapperspb.String("g-1"))
	require.NoError(t, err)
	assert.Equal(t, "Snacks", g.GetFields()["name"].GetStringValue())
	bg := g.GetFields()["background"].GetStructValue()
	assert.Equal(t, "color", bg.GetFields()["type"].GetStringValue())
	products := g.GetFields()["products"].GetListValue().GetValues()
	require.Len(t, products, 1)
	assert.Equal(t, "img-1", products[0].GetStructValue().GetFields()["imageId"].GetStringValue())

	_, err = h.Get(ctx, wrapperspb.String("nope"))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestGroup_CreateAndDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	editor := mocks.NewGroupEditor(t)
	editor.On("CreateGroup", ctx, "Drinks").Return(model.Group{ID: "g-2", Name: "Drinks", Products: []model.Product{}}, nil)
	editor.On("CreateGroup", ctx, "").Return(model.Group{}, model.ErrInvalidArgument)
	editor.On("DeleteGroup", ctx, "g-2").Return(nil)

	h := NewGroup(editor, testutil.MakeNoopLogger())

	g, err := h.Create(ctx, wrapperspb.String("Drinks"))
	require.NoError(t, err)
	assert.Equal(t, "g-2", g.GetFields()["id"].GetStringValue())

	_, err = h.Create(ctx, wrapperspb.String(""))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.Delete(ctx, wrapperspb.String("g-2"))
	assert.NoError(t, err)
}

func TestGroup_AddProduct(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	image := []byte("png-bytes")

	t.Run("success", func(t *testing.T) {
		editor := mocks.NewGroupEditor(t)
		editor.On("AddProduct", ctx, "g-1", "Gum", image).
			Return(model.Product{ID: "p-9", Name: "Gum", ImageID: "img-9", IsActive: true}, nil)

		out, err := NewGroup(editor, testutil.MakeNoopLogger()).AddProduct(ctx, mustStruct(t, map[string]any{
			"group_id": "g-1",
			"name":     "Gum",
			"image":    base64.StdEncoding.EncodeToString(image),
		}))
		require.NoError(t, err)
		assert.Equal(t, "img-9", out.GetFields()["imageId"].GetStringValue())
		assert.True(t, out.GetFields()["isActive"].GetBoolValue())
	})

	t.Run("bad base64", func(t *testing.T) {
		_, err := NewGroup(mocks.NewGroupEditor(t), testutil.MakeNoopLogger()).AddProduct(ctx, mustStruct(t, map[string]any{
			"group_id": "g-1",
			"name":     "Gum",
			"image":    "***",
		}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("missing group id", func(t *testing.T) {
		_, err := NewGroup(mocks.NewGroupEditor(t), testutil.MakeNoopLogger()).AddProduct(ctx, mustStruct(t, map[string]any{"name": "Gum"}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("store failure", func(t *testing.T) {
		editor := mocks.NewGroupEditor(t)
		editor.On("AddProduct", ctx, "g-1", "Gum", image).
			Return(model.Product{}, &model.StoreError{Op: "put", Err: errors.New("full")})

		_, err := NewGroup(editor, testutil.MakeNoopLogger()).AddProduct(ctx, mustStruct(t, map[string]any{
			"group_id": "g-1",
			"name":     "Gum",
			"image":    base64.StdEncoding.EncodeToString(image),
		}))
		assert.Equal(t, codes.Unavailable, status.Code(err))
	})
}

func TestGroup_Edits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	image := []byte("img")
	encoded := base64.StdEncoding.EncodeToString(image)

	editor := mocks.NewGroupEditor(t)
	editor.On("RenameGroup", ctx, "g-1", "Treats").Return(snacks(), nil)
	editor.On("SetTheme", ctx, "g-1", "retro-funk").Return(snacks(), nil)
	editor.On("RenameProduct", ctx, "g-1", "p-1", "Crisps").Return(snacks(), nil)
	editor.On("SetProductActive", ctx, "g-1", "p-1", false).Return(snacks(), nil)
	editor.On("ReplaceProductImage", ctx, "g-1", "p-1", image).Return(snacks(), nil)
	editor.On("RemoveProduct", ctx, "g-1", "p-1").Return(snacks(), nil)
	editor.On("SetBackgroundColor", ctx, "g-1", "#fff").Return(snacks(), nil)
	editor.On("SetBackgroundImage", ctx, "g-1", image).Return(snacks(), nil)
	editor.On("RemoveBackground", ctx, "g-1").Return(snacks(), nil)

	h := NewGroup(editor, testutil.MakeNoopLogger())
	calls := []func() (*structpb.Struct, error){
		func() (*structpb.Struct, error) {
			return h.Rename(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "name": "Treats"}))
		},
		func() (*structpb.Struct, error) {
			return h.SetTheme(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "theme_id": "retro-funk"}))
		},
		func() (*structpb.Struct, error) {
			return h.RenameProduct(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "product_id": "p-1", "name": "Crisps"}))
		},
		func() (*structpb.Struct, error) {
			return h.SetProductActive(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "product_id": "p-1", "active": false}))
		},
		func() (*structpb.Struct, error) {
			return h.ReplaceProductImage(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "product_id": "p-1", "image": encoded}))
		},
		func() (*structpb.Struct, error) {
			return h.RemoveProduct(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "product_id": "p-1"}))
		},
		func() (*structpb.Struct, error) {
			return h.SetBackgroundColor(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "color": "#fff"}))
		},
		func() (*structpb.Struct, error) {
			return h.SetBackgroundImage(ctx, mustStruct(t, map[string]any{"group_id": "g-1", "image": encoded}))
		},
		func() (*structpb.Struct, error) {
			return h.RemoveBackground(ctx, wrapperspb.String("g-1"))
		},
	}

	for i, call := range calls {
		out, err := call()
		require.NoError(t, err, "call %d", i)
		assert.Equal(t, "g-1", out.GetFields()["id"].GetStringValue())
	}
}

func TestGroup_ProductRefRequired(t *testing.T) {
	t.Parallel()

	h := NewGroup(mocks.NewGroupEditor(t), testutil.MakeNoopLogger())
	_, err := h.RemoveProduct(context.Background(), mustStruct(t, map[string]any{"group_id": "g-1"}))
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "product_id is required", st.Message())
}
