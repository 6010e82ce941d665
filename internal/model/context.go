package model

import (
	"context"
)

// ContextManager carries the request id of a call through its context.
type ContextManager interface {
	SetRequestIDToContext(ctx context.Context, requestID string) context.Context
	GetRequestIDFromContext(ctx context.Context) (string, bool)
}
