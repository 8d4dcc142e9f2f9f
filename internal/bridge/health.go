package bridge

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthMonitor holds the bridge readiness state. It is owned by main and
// injected into handlers; the state refreshes on a ticker rather than living
// in a process-wide mutable flag.
type HealthMonitor struct {
	client   *Client
	interval time.Duration
	logger   *zap.Logger

	mu    sync.RWMutex
	ready bool
}

func NewHealthMonitor(client *Client, interval time.Duration, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		client:   client,
		interval: interval,
		logger:   logger,
	}
}

// Ready reports the last observed bridge state.
func (m *HealthMonitor) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Run checks once immediately, then on every tick until ctx is cancelled.
// Startup does not depend on the first check succeeding.
func (m *HealthMonitor) Run(ctx context.Context) {
	m.refresh(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.refresh(ctx)
		}
	}
}

func (m *HealthMonitor) refresh(ctx context.Context) {
	err := m.client.Health(ctx)

	m.mu.Lock()
	wasReady := m.ready
	m.ready = err == nil
	m.mu.Unlock()

	if err != nil && wasReady {
		m.logger.Warn("bridge became unhealthy", zap.Error(err))
	} else if err == nil && !wasReady {
		m.logger.Info("bridge is ready")
	}
}
