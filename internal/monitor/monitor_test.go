package monitor

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTrackOperationWithError(t *testing.T) {
	c := New()
	boom := errors.New("boom")

	c.TrackOperation(OperationFilter, func() {})
	err := c.TrackOperationWithError(OperationReload, func() error { return boom })
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("filter", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("reload", "error")))

	snap, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(1), snap.Operations[OperationFilter].SuccessCount)
	assert.Equal(t, int64(1), snap.Operations[OperationReload].ErrorCount)
	assert.Equal(t, int64(1), snap.Operations[OperationReload].Count())
}

func TestRecordNavigationAndAsks(t *testing.T) {
	c := New()
	c.RecordNavigation("detail", "select")
	c.RecordNavigation("cdm-list", "back")
	c.RecordAsk("ollama", AskAnswered, 42)
	c.RecordAsk("ollama", AskFallback, 0)
	c.RecordAsk("ollama", AskCanceled, 0)

	snap, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.Navigations)
	assert.Equal(t, int64(42), snap.AskTokens)
	assert.Equal(t, map[string]int64{AskAnswered: 1, AskFallback: 1, AskCanceled: 1}, snap.Asks)
}

func TestObserveAccumulatesTime(t *testing.T) {
	c := New()
	c.Observe(OperationAsk, 2*time.Second, nil)
	c.Observe(OperationAsk, 4*time.Second, nil)

	snap, err := c.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, snap.Operations[OperationAsk].AvgTime())
	assert.Zero(t, OperationMetrics{}.AvgTime())
}

func TestServeExposesMetrics(t *testing.T) {
	defer goleak.VerifyNone(t)

	c := New()
	c.SetCatalogSize(map[string]int{"objects": 6, "domains": 8})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.Contains(string(body), `datagov_catalog_items{kind="objects"} 6`), string(body))

	cancel()
	require.NoError(t, <-done)
}

func TestServeRequiresAddr(t *testing.T) {
	assert.ErrorIs(t, New().Serve(context.Background(), ""), ErrNoAddr)
}
