// Package bridge talks to the external recommendation/chat service. It is a
// boundary client: responses are relayed verbatim as raw JSON.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/saunova/saunova-server/internal/domain"
	"go.uber.org/zap"
)

const (
	requestTimeout     = 10 * time.Second
	startNotifyTimeout = 15 * time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// RecommendationRequest carries the profile attributes forwarded for
// recommendation scoring.
type RecommendationRequest struct {
	Age    int      `json:"age"`
	Gender string   `json:"gender"`
	Height float64  `json:"height"`
	Weight float64  `json:"weight"`
	Goals  []string `json:"goals"`
}

// Health polls the bridge status endpoint. An error means not ready.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bridge health returned %d", resp.StatusCode)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return err
	}
	if body.Status != "ok" {
		return fmt.Errorf("bridge health status %q", body.Status)
	}
	return nil
}

// Recommendations forwards the profile and relays the bridge's payload.
func (c *Client) Recommendations(ctx context.Context, profile RecommendationRequest) (json.RawMessage, error) {
	return c.post(ctx, "/sauna/recommendations", profile)
}

// NotifySessionStart is fire-and-forget: it runs on a detached goroutine with
// its own deadline, and delivery failures are logged, never surfaced.
func (c *Client) NotifySessionStart(temperature, humidity, sessionLength float64, authID string) {
	payload := map[string]interface{}{
		"temperature":    temperature,
		"humidity":       humidity,
		"session_length": sessionLength,
		"uid":            authID,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), startNotifyTimeout)
		defer cancel()

		if _, err := c.post(ctx, "/sauna/start_session", payload); err != nil {
			c.logger.Warn("session start notification failed", zap.Error(err))
		}
	}()
}

// EndSession is synchronous; the caller surfaces failures.
func (c *Client) EndSession(ctx context.Context) (json.RawMessage, error) {
	return c.post(ctx, "/sauna/end_session", struct{}{})
}

// Ask forwards a free-text question and relays the answer.
func (c *Client) Ask(ctx context.Context, question string) (json.RawMessage, error) {
	payload := map[string]string{"question": question}
	return c.post(ctx, "/chat/ask", payload)
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) (json.RawMessage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNoData
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("bridge %s returned %d", path, resp.StatusCode)
	}
	return json.RawMessage(data), nil
}
