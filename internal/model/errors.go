package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrBlobNotFound is returned when no bytes are stored under a blob id.
	ErrBlobNotFound = errors.New("blob not found")
	// ErrNoActiveItems is returned when a group has no active products to compose.
	ErrNoActiveItems = errors.New("no active items")
	// ErrConflict is returned when a record changed since it was read.
	ErrConflict = errors.New("concurrent modification")
	// ErrInvalidArgument marks caller input the editor refuses.
	ErrInvalidArgument = errors.New("invalid argument")
)

// StoreError reports a blob store failure during an editing mutation.
type StoreError struct {
	Op  string
	ID  BlobID
	Err error
}

func (e *StoreError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("blob store %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("blob store %s %s: %v", e.Op, e.ID, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }
