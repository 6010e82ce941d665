package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_SetAndGetRequestID(t *testing.T) {
	m := NewManager()
	ctx := m.SetRequestIDToContext(stdctx.Background(), "req-1")

	got, ok := m.GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", got)
}

func TestManager_GetRequestID_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetRequestIDFromContext(stdctx.Background())
	assert.False(t, ok)

	empty := metadata.NewIncomingContext(stdctx.Background(), metadata.New(map[string]string{RequestIDKey: ""}))
	_, ok = m.GetRequestIDFromContext(empty)
	assert.False(t, ok)
}

func TestManager_SetRequestID_KeepsExistingMetadata(t *testing.T) {
	m := NewManager()
	baseMD := metadata.New(map[string]string{"x-trace-id": "t"})
	ctxWithMD := metadata.NewIncomingContext(stdctx.Background(), baseMD)

	ctx := m.SetRequestIDToContext(ctxWithMD, "req-2")
	got, ok := m.GetRequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-2", got)

	md, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, md.Get("x-trace-id"))
	assert.Empty(t, baseMD.Get(RequestIDKey), "original metadata must not change")
}

func TestManager_GetRequestIDFromResponseMetadata(t *testing.T) {
	m := NewManager()
	got, ok := m.GetRequestIDFromResponseMetadata(metadata.Pairs(RequestIDKey, "req-3"))
	assert.True(t, ok)
	assert.Equal(t, "req-3", got)
}
