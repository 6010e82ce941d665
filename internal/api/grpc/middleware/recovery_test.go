package middleware

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophframe/internal/testutil"
)

func TestRecovery_HandlePanic(t *testing.T) {
	t.Parallel()

	rec := NewRecovery(testutil.MakeNoopLogger())
	interceptor := recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(rec.HandlePanic))

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/svc/Method"},
		func(context.Context, interface{}) (interface{}, error) {
			panic("renderer exploded")
		})

	st, ok := status.FromError(err)
	assert.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, "internal server error", st.Message())
}
