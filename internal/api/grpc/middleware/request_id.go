package middleware

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	grpccontext "github.com/dtroode/gophframe/internal/api/grpc/context"
	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// RequestID makes sure every call carries a request id and echoes it back
// in the response headers.
type RequestID struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewRequestID creates a new RequestID middleware instance.
func NewRequestID(contextManager model.ContextManager, logger *logger.Logger) *RequestID {
	return &RequestID{contextManager: contextManager, logger: logger}
}

// HandleGRPC keeps a client supplied id or mints a new one.
func (m *RequestID) HandleGRPC(ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	requestID, ok := m.contextManager.GetRequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
		ctx = m.contextManager.SetRequestIDToContext(ctx, requestID)
	}

	if err := grpc.SetHeader(ctx, metadata.Pairs(grpccontext.RequestIDKey, requestID)); err != nil {
		m.logger.Debug("failed to echo request id", "request_id", requestID, "error", err.Error())
	}

	return handler(ctx, req)
}
