package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// BridgeStub stands in for the recommendation/chat service. It records
// start-session notifications and can be switched into a failing mode.
type BridgeStub struct {
	server *httptest.Server

	mu         sync.Mutex
	startCalls []map[string]interface{}
	failAll    bool
}

func NewBridgeStub(t *testing.T) *BridgeStub {
	t.Helper()

	stub := &BridgeStub{}
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if stub.failing() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/sauna/recommendations", func(w http.ResponseWriter, r *http.Request) {
		if stub.failing() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]interface{}{
			"recommendations": []map[string]interface{}{
				{"temperature": 80, "humidity": 20, "duration": 15},
			},
		})
	})

	mux.HandleFunc("/sauna/start_session", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]interface{}
		_ = json.NewDecoder(r.Body).Decode(&payload)

		stub.mu.Lock()
		stub.startCalls = append(stub.startCalls, payload)
		stub.mu.Unlock()

		if stub.failing() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]string{"status": "started"})
	})

	mux.HandleFunc("/sauna/end_session", func(w http.ResponseWriter, r *http.Request) {
		if stub.failing() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, map[string]string{"status": "session ended"})
	})

	mux.HandleFunc("/chat/ask", func(w http.ResponseWriter, r *http.Request) {
		if stub.failing() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		var req struct {
			Question string `json:"question"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		writeJSON(w, map[string]string{"answer": "stub answer to: " + req.Question})
	})

	stub.server = httptest.NewServer(mux)
	t.Cleanup(stub.server.Close)

	return stub
}

func (s *BridgeStub) URL() string {
	return s.server.URL
}

// SetFailing makes every endpoint return 503.
func (s *BridgeStub) SetFailing(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failAll = fail
}

// StartCalls returns the recorded start-session payloads.
func (s *BridgeStub) StartCalls() []map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	calls := make([]map[string]interface{}, len(s.startCalls))
	copy(calls, s.startCalls)
	return calls
}

func (s *BridgeStub) failing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failAll
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
