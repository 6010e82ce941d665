package handler

import (
	"context"
	"net/url"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dtroode/gophframe/internal/api/grpc/framepb"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/service"
)

// FrameRenderer renders a stored group.
type FrameRenderer interface {
	Render(ctx context.Context, groupID string) (service.Rendered, error)
}

// Frame handles gRPC endpoints for rendering.
type Frame struct {
	framepb.UnimplementedFramesServer
	renderer FrameRenderer
	logger   *logger.Logger
}

// NewFrame creates a new Frame handler.
func NewFrame(renderer FrameRenderer, logger *logger.Logger) *Frame {
	return &Frame{
		renderer: renderer,
		logger:   logger,
	}
}

// Render composes the group and returns PNG bytes. The percent-encoded
// download name and the fallback count travel as response headers.
func (h *Frame) Render(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	groupID := req.GetValue()
	if groupID == "" {
		return nil, status.Error(codes.InvalidArgument, "group id is required")
	}

	h.logger.Debug("Frame handler: processing render request", "group_id", groupID)

	rendered, err := h.renderer.Render(ctx, groupID)
	if err != nil {
		h.logger.Error("Frame handler: render failed",
			"group_id", groupID,
			"error", err.Error())
		return nil, handleError(err)
	}

	md := metadata.Pairs(
		framepb.HeaderFilename, url.PathEscape(rendered.Filename),
		framepb.HeaderFallbacks, strconv.Itoa(len(rendered.Fallbacks)),
	)
	if err := grpc.SetHeader(ctx, md); err != nil {
		h.logger.Warn("Frame handler: failed to set response headers", "error", err.Error())
	}

	return wrapperspb.Bytes(rendered.PNG), nil
}
