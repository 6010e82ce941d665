package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophframe/internal/model"
)

func handleError(err error) error {
	if _, ok := status.FromError(err); ok && err != nil {
		return err
	}

	var storeErr *model.StoreError
	switch {
	case errors.Is(err, model.ErrBlobNotFound):
		return status.Error(codes.NotFound, "blob not found")
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "record not found")
	case errors.Is(err, model.ErrNoActiveItems):
		return status.Error(codes.FailedPrecondition, "group has no active items")
	case errors.Is(err, model.ErrConflict):
		return status.Error(codes.Aborted, "group was modified concurrently, retry")
	case errors.Is(err, model.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &storeErr):
		return status.Error(codes.Unavailable, "image storage unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
