package model

import (
	"context"
	"time"
)

// GroupStore defines persistence operations for product groups.
type GroupStore interface {
	Create(ctx context.Context, group Group) (Group, error)
	GetByID(ctx context.Context, id string) (Group, error)
	List(ctx context.Context) ([]Group, error)
	// Update stores group if its Version still matches the stored one and
	// returns ErrConflict otherwise. The saved group carries the new version.
	Update(ctx context.Context, group Group) (Group, error)
	Delete(ctx context.Context, id string) error
}

// Group is a named collection of products sharing a background and a theme.
// Products order is the canonical draw order.
type Group struct {
	ID         string      `json:"id" yaml:"id"`
	Name       string      `json:"name" yaml:"name"`
	Products   []Product   `json:"products" yaml:"products"`
	Background *Background `json:"background,omitempty" yaml:"background,omitempty"`
	ThemeID    string      `json:"themeId,omitempty" yaml:"theme_id,omitempty"`
	Version    int64       `json:"version" yaml:"-"`
	CreatedAt  time.Time   `json:"createdAt" yaml:"-"`
	UpdatedAt  time.Time   `json:"updatedAt" yaml:"-"`
}

// Product is one item of a group.
type Product struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	ImageID  BlobID `json:"imageId" yaml:"image_id"`
	IsActive bool   `json:"isActive" yaml:"active"`
}

// BackgroundKind enumerates background variants.
type BackgroundKind string

const (
	// BackgroundColor is a flat color fill.
	BackgroundColor BackgroundKind = "color"
	// BackgroundImage is an image stretched over the whole canvas.
	BackgroundImage BackgroundKind = "image"
)

// Background is either a color or an image reference.
type Background struct {
	Kind    BackgroundKind `json:"type" yaml:"type"`
	Color   string         `json:"value,omitempty" yaml:"value,omitempty"`
	ImageID BlobID         `json:"imageId,omitempty" yaml:"image_id,omitempty"`
}

// ColorBackground returns a color background.
func ColorBackground(value string) *Background {
	return &Background{Kind: BackgroundColor, Color: value}
}

// ImageBackground returns an image background.
func ImageBackground(id BlobID) *Background {
	return &Background{Kind: BackgroundImage, ImageID: id}
}

// ActiveProducts returns products with IsActive set, in their original order.
func (g Group) ActiveProducts() []Product {
	active := make([]Product, 0, len(g.Products))
	for _, p := range g.Products {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active
}

// ImageIDs returns every blob id referenced by the group: all product images
// and the background image, if any.
func (g Group) ImageIDs() []BlobID {
	ids := make([]BlobID, 0, len(g.Products)+1)
	for _, p := range g.Products {
		if p.ImageID != "" {
			ids = append(ids, p.ImageID)
		}
	}
	if g.Background != nil && g.Background.Kind == BackgroundImage && g.Background.ImageID != "" {
		ids = append(ids, g.Background.ImageID)
	}
	return ids
}

// ProductIndex returns the index of the product with id or -1.
func (g Group) ProductIndex(id string) int {
	for i, p := range g.Products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can mutate products and background
// without touching the original record.
func (g Group) Clone() Group {
	out := g
	out.Products = append([]Product(nil), g.Products...)
	if g.Background != nil {
		bg := *g.Background
		out.Background = &bg
	}
	return out
}
