package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophframe/internal/logger"
	"github.com/dtroode/gophframe/internal/model"
)

// Logging is a unary interceptor that logs gRPC requests and results.
type Logging struct {
	logger         *logger.Logger
	contextManager model.ContextManager
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger, contextManager model.ContextManager) *Logging {
	return &Logging{logger: logger, contextManager: contextManager}
}

// HandleGRPC writes one line per call. Caller mistakes such as an unknown
// group log at warn level; server side failures log at error level.
func (l *Logging) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	log := l.logger.With("method", info.FullMethod)
	if requestID, ok := l.contextManager.GetRequestIDFromContext(ctx); ok {
		log = log.With("request_id", requestID)
	}
	log.Debug("gRPC request started")

	resp, err := handler(ctx, req)

	code := status.Code(err)
	if err != nil {
		if _, ok := status.FromError(err); !ok {
			code = codes.Internal
		}
	}
	attrs := []any{"duration_ms", time.Since(start).Milliseconds(), "status", code.String()}

	switch code {
	case codes.OK:
		log.Info("gRPC request completed", attrs...)
	case codes.Internal, codes.Unavailable, codes.Unknown, codes.DataLoss:
		log.Error("gRPC request failed", append(attrs, "error", err)...)
	default:
		log.Warn("gRPC request rejected", append(attrs, "error", err)...)
	}

	return resp, err
}
