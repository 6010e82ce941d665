package handler

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/gophframe/internal/api/grpc/framepb"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// BlobService defines the blob store operations exposed over gRPC.
type BlobService interface {
	Put(ctx context.Context, data []byte) (model.BlobID, error)
	Get(ctx context.Context, id model.BlobID) ([]byte, error)
	Delete(ctx context.Context, id model.BlobID) error
}

// Blob handles gRPC endpoints for raw image storage.
type Blob struct {
	framepb.UnimplementedBlobsServer
	blobs  BlobService
	logger *logger.Logger
}

// NewBlob creates a new Blob handler.
func NewBlob(blobs BlobService, logger *logger.Logger) *Blob {
	return &Blob{
		blobs:  blobs,
		logger: logger,
	}
}

// Put stores the bytes and returns the minted id.
func (h *Blob) Put(ctx context.Context, req *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	if len(req.GetValue()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "blob data is required")
	}

	id, err := h.blobs.Put(ctx, req.GetValue())
	if err != nil {
		h.logger.Error("Blob handler: put failed", "size", len(req.GetValue()), "error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Debug("Blob handler: stored blob", "image_id", id)
	return wrapperspb.String(id.String()), nil
}

// Get returns the bytes stored under the id.
func (h *Blob) Get(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	data, err := h.blobs.Get(ctx, model.BlobID(req.GetValue()))
	if err != nil {
		h.logger.Debug("Blob handler: get failed", "image_id", req.GetValue(), "error", err.Error())
		return nil, handleError(err)
	}
	return wrapperspb.Bytes(data), nil
}

// Delete removes the blob. Deleting an unknown id succeeds.
func (h *Blob) Delete(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	if err := h.blobs.Delete(ctx, model.BlobID(req.GetValue())); err != nil {
		h.logger.Error("Blob handler: delete failed", "image_id", req.GetValue(), "error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}
