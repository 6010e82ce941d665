package context

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// RequestIDKey is the metadata key carrying the request id, both on incoming
// calls and on response headers.
const RequestIDKey = "x-request-id"

// Manager represents a gRPC context manager for request id operations.
// It keeps the id in incoming metadata so handlers and interceptors read it
// the same way whether the client sent one or the server minted it.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetRequestIDToContext sets the request id in the incoming metadata.
func (m *Manager) SetRequestIDToContext(ctx context.Context, requestID string) context.Context {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(map[string]string{RequestIDKey: requestID})
	} else {
		md = md.Copy()
		md.Set(RequestIDKey, requestID)
	}

	return metadata.NewIncomingContext(ctx, md)
}

// GetRequestIDFromContext returns the request id from incoming metadata.
func (m *Manager) GetRequestIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	return firstValue(md)
}

// GetRequestIDFromResponseMetadata returns the request id a server echoed
// in its response headers.
func (m *Manager) GetRequestIDFromResponseMetadata(md metadata.MD) (string, bool) {
	return firstValue(md)
}

func firstValue(md metadata.MD) (string, bool) {
	ids := md.Get(RequestIDKey)
	if len(ids) == 0 || ids[0] == "" {
		return "", false
	}
	return ids[0], true
}
