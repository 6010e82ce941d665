package model

import (
	"context"
	"io"
)

// BlobID is an opaque identifier minted by the blob store. It carries no
// meaning and is never derived from content.
type BlobID string

// String implements fmt.Stringer.
func (id BlobID) String() string { return string(id) }

// Storage is a raw object backend addressed by keys.
type Storage interface {
	Upload(ctx context.Context, key string, reader io.Reader) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
