package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// BlobStore is the opaque-id store editors write images to.
type BlobStore interface {
	BlobReader
	Put(ctx context.Context, data []byte) (model.BlobID, error)
	Get(ctx context.Context, id model.BlobID) ([]byte, error)
	Delete(ctx context.Context, id model.BlobID) error
}

// ThemeResolver resolves a theme id, falling back to the default theme.
type ThemeResolver interface {
	Resolve(id string) model.Theme
}

// Composer renders a group with a resolved theme.
type Composer interface {
	Compose(ctx context.Context, group model.Group, theme model.Theme) (Composition, error)
}

// Rendered is a composed frame ready to be offered for download.
type Rendered struct {
	Composition
	Filename string
	Theme    model.Theme
}

// Editor mutates groups and their images. Every image change follows the
// same order: store the new blob, commit the group, then delete the old blob.
// A failed put leaves the group untouched; a failed commit removes the new
// blob again; a failed delete of the old blob only leaves an orphan. Commits
// are conditional on the group version, so concurrent edits of one group
// never overwrite each other.
type Editor struct {
	groups   model.GroupStore
	blobs    BlobStore
	themes   ThemeResolver
	composer Composer
	logger   *logger.Logger
	now      func() time.Time
}

// NewEditor creates the group editor.
func NewEditor(
	groups model.GroupStore,
	blobs BlobStore,
	themes ThemeResolver,
	composer Composer,
	logger *logger.Logger,
) *Editor {
	return &Editor{
		groups:   groups,
		blobs:    blobs,
		themes:   themes,
		composer: composer,
		logger:   logger,
		now:      time.Now,
	}
}

// ListGroups returns every stored group.
func (e *Editor) ListGroups(ctx context.Context) ([]model.Group, error) {
	groups, err := e.groups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return groups, nil
}

// GetGroup returns one group.
func (e *Editor) GetGroup(ctx context.Context, id string) (model.Group, error) {
	group, err := e.groups.GetByID(ctx, id)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	return group, nil
}

// CreateGroup stores an empty group.
func (e *Editor) CreateGroup(ctx context.Context, name string) (model.Group, error) {
	name, err := requireName(name, "group")
	if err != nil {
		return model.Group{}, err
	}

	group, err := e.groups.Create(ctx, model.Group{
		ID:       uuid.NewString(),
		Name:     name,
		Products: []model.Product{},
	})
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to create group: %w", err)
	}

	e.logger.Info("group created", "group_id", group.ID)
	return group, nil
}

// RenameGroup changes the group name.
func (e *Editor) RenameGroup(ctx context.Context, id, name string) (model.Group, error) {
	name, err := requireName(name, "group")
	if err != nil {
		return model.Group{}, err
	}
	return e.mutate(ctx, id, func(g *model.Group) error {
		g.Name = name
		return nil
	})
}

// SetTheme assigns a theme id. Dangling ids are allowed and render with the
// default theme.
func (e *Editor) SetTheme(ctx context.Context, id, themeID string) (model.Group, error) {
	return e.mutate(ctx, id, func(g *model.Group) error {
		g.ThemeID = strings.TrimSpace(themeID)
		return nil
	})
}

// DeleteGroup removes the group record, then its images. Image cleanup is
// best effort.
func (e *Editor) DeleteGroup(ctx context.Context, id string) error {
	group, err := e.groups.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get group: %w", err)
	}
	if err := e.groups.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	for _, blobID := range group.ImageIDs() {
		e.dropBlob(ctx, blobID)
	}
	e.logger.Info("group deleted", "group_id", id)
	return nil
}

// AddProduct stores image and appends an active product to the group.
func (e *Editor) AddProduct(ctx context.Context, groupID, name string, image []byte) (model.Product, error) {
	name, err := requireName(name, "product")
	if err != nil {
		return model.Product{}, err
	}
	if len(image) == 0 {
		return model.Product{}, fmt.Errorf("%w: product image is required", model.ErrInvalidArgument)
	}

	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Product{}, fmt.Errorf("failed to get group: %w", err)
	}

	imageID, err := e.put(ctx, image)
	if err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		ID:       uuid.NewString(),
		Name:     name,
		ImageID:  imageID,
		IsActive: true,
	}
	_, err = e.edit(ctx, group, imageID, func(g *model.Group) ([]model.BlobID, error) {
		g.Products = append(g.Products, product)
		return nil, nil
	})
	if err != nil {
		return model.Product{}, err
	}

	e.logger.Info("product added", "group_id", groupID, "product_id", product.ID, "image_id", imageID)
	return product, nil
}

// RenameProduct changes a product name.
func (e *Editor) RenameProduct(ctx context.Context, groupID, productID, name string) (model.Group, error) {
	name, err := requireName(name, "product")
	if err != nil {
		return model.Group{}, err
	}
	return e.mutate(ctx, groupID, func(g *model.Group) error {
		i, err := productIndex(g, productID)
		if err != nil {
			return err
		}
		g.Products[i].Name = name
		return nil
	})
}

// SetProductActive includes or excludes a product from compositions.
func (e *Editor) SetProductActive(ctx context.Context, groupID, productID string, active bool) (model.Group, error) {
	return e.mutate(ctx, groupID, func(g *model.Group) error {
		i, err := productIndex(g, productID)
		if err != nil {
			return err
		}
		g.Products[i].IsActive = active
		return nil
	})
}

// ReplaceProductImage swaps the image behind a product.
func (e *Editor) ReplaceProductImage(ctx context.Context, groupID, productID string, image []byte) (model.Group, error) {
	if len(image) == 0 {
		return model.Group{}, fmt.Errorf("%w: product image is required", model.ErrInvalidArgument)
	}

	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	if _, err := productIndex(&group, productID); err != nil {
		return model.Group{}, err
	}

	newID, err := e.put(ctx, image)
	if err != nil {
		return model.Group{}, err
	}

	return e.edit(ctx, group, newID, func(g *model.Group) ([]model.BlobID, error) {
		i, err := productIndex(g, productID)
		if err != nil {
			return nil, err
		}
		oldID := g.Products[i].ImageID
		g.Products[i].ImageID = newID
		return []model.BlobID{oldID}, nil
	})
}

// RemoveProduct drops a product and then its image.
func (e *Editor) RemoveProduct(ctx context.Context, groupID, productID string) (model.Group, error) {
	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	if _, err := productIndex(&group, productID); err != nil {
		return model.Group{}, err
	}

	return e.edit(ctx, group, "", func(g *model.Group) ([]model.BlobID, error) {
		i, err := productIndex(g, productID)
		if err != nil {
			return nil, err
		}
		oldID := g.Products[i].ImageID
		g.Products = append(g.Products[:i], g.Products[i+1:]...)
		return []model.BlobID{oldID}, nil
	})
}

// SetBackgroundColor sets a flat color background.
func (e *Editor) SetBackgroundColor(ctx context.Context, groupID, color string) (model.Group, error) {
	color = strings.TrimSpace(color)
	if color == "" {
		return model.Group{}, fmt.Errorf("%w: background color is required", model.ErrInvalidArgument)
	}
	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	return e.swapBackground(ctx, group, model.ColorBackground(color), "")
}

// SetBackgroundImage stores image and sets it as the background.
func (e *Editor) SetBackgroundImage(ctx context.Context, groupID string, image []byte) (model.Group, error) {
	if len(image) == 0 {
		return model.Group{}, fmt.Errorf("%w: background image is required", model.ErrInvalidArgument)
	}
	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}

	newID, err := e.put(ctx, image)
	if err != nil {
		return model.Group{}, err
	}
	return e.swapBackground(ctx, group, model.ImageBackground(newID), newID)
}

// RemoveBackground clears the background so the theme color is used.
func (e *Editor) RemoveBackground(ctx context.Context, groupID string) (model.Group, error) {
	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	return e.swapBackground(ctx, group, nil, "")
}

// Render composes the group with its resolved theme.
func (e *Editor) Render(ctx context.Context, groupID string) (Rendered, error) {
	group, err := e.groups.GetByID(ctx, groupID)
	if err != nil {
		return Rendered{}, fmt.Errorf("failed to get group: %w", err)
	}

	theme := e.themes.Resolve(group.ThemeID)
	comp, err := e.composer.Compose(ctx, group, theme)
	if err != nil {
		return Rendered{}, fmt.Errorf("failed to compose frame: %w", err)
	}

	return Rendered{
		Composition: comp,
		Filename:    Filename(group.Name, e.now()),
		Theme:       theme,
	}, nil
}

// Filename returns the download name of a frame: "{name}-{YYYY-MM-DD}.png"
// with the date taken in UTC. Path separators and control characters in the
// group name become underscores so the result is always a single path
// element.
func Filename(groupName string, at time.Time) string {
	name := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, groupName)
	return fmt.Sprintf("%s-%s.png", name, at.UTC().Format(time.DateOnly))
}

// swapBackground commits bg and then deletes the previous background image.
// newID, when set, is removed again if the commit fails.
func (e *Editor) swapBackground(ctx context.Context, group model.Group, bg *model.Background, newID model.BlobID) (model.Group, error) {
	return e.edit(ctx, group, newID, func(g *model.Group) ([]model.BlobID, error) {
		var unreferenced []model.BlobID
		if old := g.Background; old != nil && old.Kind == model.BackgroundImage {
			unreferenced = append(unreferenced, old.ImageID)
		}
		g.Background = bg
		return unreferenced, nil
	})
}

// mutate applies fn to the group and commits it. No blobs change.
func (e *Editor) mutate(ctx context.Context, id string, fn func(*model.Group) error) (model.Group, error) {
	group, err := e.groups.GetByID(ctx, id)
	if err != nil {
		return model.Group{}, fmt.Errorf("failed to get group: %w", err)
	}
	return e.edit(ctx, group, "", func(g *model.Group) ([]model.BlobID, error) {
		return nil, fn(g)
	})
}

// maxEditAttempts bounds how often an edit is re-applied after another edit
// of the same group committed first.
const maxEditAttempts = 3

// edit is the read-modify-write behind every mutation. fn changes a copy of
// group and returns the blob ids the change no longer references. The commit
// only succeeds against the version that was read; on model.ErrConflict the
// group is read again and fn re-applied to the fresh copy. newID is the blob
// stored for this edit, deleted again when the edit does not commit.
// Unreferenced blobs are deleted only after a successful commit.
func (e *Editor) edit(ctx context.Context, group model.Group, newID model.BlobID, fn func(*model.Group) ([]model.BlobID, error)) (model.Group, error) {
	for attempt := 1; ; attempt++ {
		updated := group.Clone()
		unreferenced, err := fn(&updated)
		if err != nil {
			e.dropBlob(ctx, newID)
			return model.Group{}, err
		}

		saved, err := e.groups.Update(ctx, updated)
		if errors.Is(err, model.ErrConflict) && attempt < maxEditAttempts {
			e.logger.Debug("group changed concurrently, retrying edit", "group_id", group.ID, "attempt", attempt)
			group, err = e.groups.GetByID(ctx, group.ID)
			if err != nil {
				e.dropBlob(ctx, newID)
				return model.Group{}, fmt.Errorf("failed to get group: %w", err)
			}
			continue
		}
		if err != nil {
			e.dropBlob(ctx, newID)
			return model.Group{}, fmt.Errorf("failed to update group: %w", err)
		}

		for _, id := range unreferenced {
			if id != newID {
				e.dropBlob(ctx, id)
			}
		}
		return saved, nil
	}
}

func (e *Editor) put(ctx context.Context, image []byte) (model.BlobID, error) {
	id, err := e.blobs.Put(ctx, image)
	if err != nil {
		return "", &model.StoreError{Op: "put", Err: err}
	}
	return id, nil
}

// dropBlob deletes a blob that is no longer referenced. Failures leave an
// orphan for the auditor and are only logged.
func (e *Editor) dropBlob(ctx context.Context, id model.BlobID) {
	if id == "" {
		return
	}
	if err := e.blobs.Delete(ctx, id); err != nil {
		e.logger.Warn("failed to delete unreferenced blob", "image_id", id, "error", err)
	}
}

func productIndex(g *model.Group, productID string) (int, error) {
	i := g.ProductIndex(productID)
	if i < 0 {
		return -1, fmt.Errorf("product %s: %w", productID, model.ErrNotFound)
	}
	return i, nil
}

func requireName(name, what string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: %s name is required", model.ErrInvalidArgument, what)
	}
	return name, nil
}

// IsStoreError reports whether err came from the blob store during an edit.
func IsStoreError(err error) bool {
	var se *model.StoreError
	return errors.As(err, &se)
}
