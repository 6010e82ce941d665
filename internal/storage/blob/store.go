package blob

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/metrics"
	"github.com/dtroode/gophframe/internal/model"
)

// DefaultFetchConcurrency bounds GetMany when no limit is configured.
const DefaultFetchConcurrency = 8

// Store hands out opaque ids for binary payloads kept in a model.Storage
// backend. Every Put mints a new id; nothing is deduplicated, refcounted or
// collected.
type Store struct {
	backend     model.Storage
	log         *logger.Logger
	metrics     *metrics.Metrics
	concurrency int
}

// NewStore wraps backend. concurrency <= 0 falls back to DefaultFetchConcurrency.
func NewStore(backend model.Storage, log *logger.Logger, concurrency int) *Store {
	if concurrency <= 0 {
		concurrency = DefaultFetchConcurrency
	}
	return &Store{
		backend:     backend,
		log:         log,
		concurrency: concurrency,
	}
}

// WithMetrics makes the store count its operations in m.
func (s *Store) WithMetrics(m *metrics.Metrics) *Store {
	s.metrics = m
	return s
}

// Put stores data under a freshly minted id.
func (s *Store) Put(ctx context.Context, data []byte) (model.BlobID, error) {
	id := model.BlobID(uuid.NewString())
	err := s.backend.Upload(ctx, id.String(), bytes.NewReader(data))
	s.metrics.BlobOp("put", err)
	if err != nil {
		return "", fmt.Errorf("failed to put blob: %w", err)
	}
	s.log.Debug("blob stored", "id", id, "size", len(data))
	return id, nil
}

// Get returns the bytes stored under id or model.ErrBlobNotFound.
func (s *Store) Get(ctx context.Context, id model.BlobID) ([]byte, error) {
	if id == "" {
		return nil, model.ErrBlobNotFound
	}
	rc, err := s.backend.Download(ctx, id.String())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.metrics.BlobOp("get", nil)
			return nil, model.ErrBlobNotFound
		}
		s.metrics.BlobOp("get", err)
		return nil, fmt.Errorf("failed to get blob %s: %w", id, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	s.metrics.BlobOp("get", err)
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %s: %w", id, err)
	}
	return data, nil
}

// Delete removes id. Deleting an absent id succeeds.
func (s *Store) Delete(ctx context.Context, id model.BlobID) error {
	if id == "" {
		return nil
	}
	err := s.backend.Delete(ctx, id.String())
	if errors.Is(err, model.ErrNotFound) {
		err = nil
	}
	s.metrics.BlobOp("delete", err)
	if err != nil {
		return fmt.Errorf("failed to delete blob %s: %w", id, err)
	}
	s.log.Debug("blob deleted", "id", id)
	return nil
}

// GetMany reads every id concurrently. Ids that are missing or fail to load
// are left out of the result; the call itself never fails.
func (s *Store) GetMany(ctx context.Context, ids []model.BlobID) map[model.BlobID][]byte {
	out := make(map[model.BlobID][]byte, len(ids))
	var mu sync.Mutex

	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	seen := make(map[model.BlobID]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			data, err := s.Get(ctx, id)
			if err != nil {
				if !errors.Is(err, model.ErrBlobNotFound) {
					s.log.Warn("blob read failed", "id", id, "error", err)
				}
				return nil
			}
			mu.Lock()
			out[id] = data
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// IDs lists every id currently held by the backend.
func (s *Store) IDs(ctx context.Context) ([]model.BlobID, error) {
	keys, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list blobs: %w", err)
	}
	ids := make([]model.BlobID, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, model.BlobID(k))
	}
	return ids, nil
}
