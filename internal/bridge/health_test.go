package bridge_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/saunova/saunova-server/internal/bridge"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthMonitor_TracksBridgeState(t *testing.T) {
	var healthy atomic.Bool
	healthy.Store(true)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	client := bridge.NewClient(srv.URL, zap.NewNop())
	monitor := bridge.NewHealthMonitor(client, 20*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitor.Run(ctx)

	assert.Eventually(t, func() bool { return monitor.Ready() }, time.Second, 10*time.Millisecond)

	healthy.Store(false)
	assert.Eventually(t, func() bool { return !monitor.Ready() }, time.Second, 10*time.Millisecond)

	healthy.Store(true)
	assert.Eventually(t, func() bool { return monitor.Ready() }, time.Second, 10*time.Millisecond)
}

func TestHealthMonitor_StartsNotReady(t *testing.T) {
	client := bridge.NewClient("http://127.0.0.1:1", zap.NewNop())
	monitor := bridge.NewHealthMonitor(client, time.Minute, zap.NewNop())

	assert.False(t, monitor.Ready())
}
