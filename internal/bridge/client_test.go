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
	"github.com/saunova/saunova-server/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Health(t *testing.T) {
	t.Run("ok status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		}))
		defer srv.Close()

		c := bridge.NewClient(srv.URL, zap.NewNop())
		assert.NoError(t, c.Health(context.Background()))
	})

	t.Run("non-ok status body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "starting"})
		}))
		defer srv.Close()

		c := bridge.NewClient(srv.URL, zap.NewNop())
		assert.Error(t, c.Health(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		c := bridge.NewClient("http://127.0.0.1:1", zap.NewNop())
		assert.Error(t, c.Health(context.Background()))
	})
}

func TestClient_Recommendations(t *testing.T) {
	t.Run("relays payload verbatim", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/sauna/recommendations", r.URL.Path)

			var req bridge.RecommendationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, 30, req.Age)

			w.Write([]byte(`{"recommendations":[{"temperature":80}]}`))
		}))
		defer srv.Close()

		c := bridge.NewClient(srv.URL, zap.NewNop())
		data, err := c.Recommendations(context.Background(), bridge.RecommendationRequest{Age: 30})
		require.NoError(t, err)
		assert.JSONEq(t, `{"recommendations":[{"temperature":80}]}`, string(data))
	})

	t.Run("404 maps to no data", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		c := bridge.NewClient(srv.URL, zap.NewNop())
		_, err := c.Recommendations(context.Background(), bridge.RecommendationRequest{})
		assert.ErrorIs(t, err, domain.ErrNoData)
	})
}

func TestClient_NotifySessionStart(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sauna/start_session", r.URL.Path)

		var payload map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "uid_1", payload["uid"])

		calls.Add(1)
		json.NewEncoder(w).Encode(map[string]string{"status": "started"})
	}))
	defer srv.Close()

	c := bridge.NewClient(srv.URL, zap.NewNop())
	c.NotifySessionStart(80, 20, 15, "uid_1")

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 3*time.Second, 20*time.Millisecond)
}

func TestClient_NotifySessionStart_FailureIsSwallowed(t *testing.T) {
	// nothing listens here; the goroutine must only log
	c := bridge.NewClient("http://127.0.0.1:1", zap.NewNop())
	c.NotifySessionStart(80, 20, 15, "uid_1")
	time.Sleep(100 * time.Millisecond)
}

func TestClient_Ask(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/ask", r.URL.Path)
		w.Write([]byte(`{"answer":"keep it under 90"}`))
	}))
	defer srv.Close()

	c := bridge.NewClient(srv.URL, zap.NewNop())
	data, err := c.Ask(context.Background(), "how hot?")
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"keep it under 90"}`, string(data))
}

func TestClient_EndSession_Error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := bridge.NewClient(srv.URL, zap.NewNop())
	_, err := c.EndSession(context.Background())
	assert.Error(t, err)
}
