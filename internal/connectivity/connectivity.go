// Package connectivity observes network reachability and exposes a
// tri-state status to the rest of the app.
package connectivity

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/budget-bites/budgetbites/internal/http"
)

// ConnectionType is the advisory link quality classification.
type ConnectionType string

const (
	ConnectionOnline  ConnectionType = "online"
	ConnectionOffline ConnectionType = "offline"
	ConnectionSlow    ConnectionType = "slow"
)

const (
	// DefaultProbeURL is the reachability endpoint probed with a HEAD
	// request.
	DefaultProbeURL = "https://httpbin.org/json"

	// slowThreshold demotes online to slow when a successful probe takes
	// longer than this. Advisory only; isOnline is unaffected.
	slowThreshold = 3 * time.Second

	defaultInterval = 30 * time.Second
)

// State is a snapshot of the monitor. HasBeenOffline is sticky for the
// lifetime of the process and never resets to false.
type State struct {
	IsOnline       bool           `json:"isOnline"`
	IsOffline      bool           `json:"isOffline"`
	HasBeenOffline bool           `json:"hasBeenOffline"`
	ConnectionType ConnectionType `json:"connectionType"`
}

type Monitor struct {
	client   *http.HTTP
	log      *slog.Logger
	probeURL string
	interval time.Duration
	slow     time.Duration

	mu    sync.Mutex
	state State
}

type Option func(*Monitor)

func WithProbeURL(url string) Option {
	return func(m *Monitor) {
		m.probeURL = url
	}
}

func WithInterval(interval time.Duration) Option {
	return func(m *Monitor) {
		m.interval = interval
	}
}

// New creates a monitor that assumes it is online until a probe says
// otherwise.
func New(client *http.HTTP, logger *slog.Logger, opts ...Option) *Monitor {
	m := &Monitor{
		client:   client,
		log:      logger,
		probeURL: DefaultProbeURL,
		interval: defaultInterval,
		slow:     slowThreshold,
		state: State{
			IsOnline:       true,
			ConnectionType: ConnectionOnline,
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// State returns the current snapshot.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Online reports whether online operations such as bulk prefetch are
// permitted.
func (m *Monitor) Online() bool {
	return m.State().IsOnline
}

// Run probes periodically until the context is cancelled. One probe fires
// immediately on start.
func (m *Monitor) Run(ctx context.Context) {
	m.Probe(ctx)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

// Probe performs one reachability round-trip and applies the resulting
// transition. Probe failures are contained here; they mark the monitor
// offline, they never propagate.
func (m *Monitor) Probe(ctx context.Context) State {
	start := time.Now()
	err := m.headProbe(ctx)
	elapsed := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case err != nil:
		if m.state.IsOnline {
			m.log.InfoContext(ctx, "connectivity lost", slog.Any("error", err))
		}
		m.state.IsOnline = false
		m.state.IsOffline = true
		m.state.HasBeenOffline = true
		m.state.ConnectionType = ConnectionOffline
	case elapsed > m.slow:
		if m.state.IsOffline {
			m.log.InfoContext(ctx, "connectivity restored")
		}
		m.state.IsOnline = true
		m.state.IsOffline = false
		m.state.ConnectionType = ConnectionSlow
	default:
		if m.state.IsOffline {
			m.log.InfoContext(ctx, "connectivity restored")
		}
		m.state.IsOnline = true
		m.state.IsOffline = false
		m.state.ConnectionType = ConnectionOnline
	}
	return m.state
}

func (m *Monitor) headProbe(ctx context.Context) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, nethttp.MethodHead, m.probeURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return http.ExpectStatus2xx(resp)
}
