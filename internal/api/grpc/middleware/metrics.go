package middleware

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/dtroode/gophframe/internal/metrics"
)

// Metrics counts unary calls by method and status code.
type Metrics struct {
	metrics *metrics.Metrics
}

// NewMetrics creates a new Metrics middleware. A nil collector records nothing.
func NewMetrics(m *metrics.Metrics) *Metrics {
	return &Metrics{metrics: m}
}

// HandleGRPC records the status code of each unary request.
func (m *Metrics) HandleGRPC(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	resp, err := handler(ctx, req)
	m.metrics.GRPCRequest(info.FullMethod, status.Code(err).String())
	return resp, err
}
