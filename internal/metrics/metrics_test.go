package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveComposition("done", 30*time.Millisecond)
	m.ObserveComposition("done", 10*time.Millisecond)
	m.ObserveComposition("failed", time.Millisecond)
	m.AddFallback("item_missing")
	m.BlobOp("put", nil)
	m.BlobOp("put", errors.New("x"))
	m.GRPCRequest("/gophframe.v1.Frames/Render", "OK")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.compositions.WithLabelValues("done")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.compositions.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fallbacks.WithLabelValues("item_missing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.blobOps.WithLabelValues("put", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.blobOps.WithLabelValues("put", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.grpcRequests.WithLabelValues("/gophframe.v1.Frames/Render", "OK")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveComposition("done", time.Second)
		m.AddFallback("font")
		m.BlobOp("get", nil)
		m.GRPCRequest("/m", "OK")
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.ObserveComposition("done", time.Millisecond)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `gophframe_compositions_total{state="done"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
