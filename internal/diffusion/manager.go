package diffusion

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var ErrNotAvailable = errors.New("diffusion backend not available")

// Status is the snapshot the AI endpoints report.
type Status struct {
	Available bool   `json:"available"`
	Loaded    bool   `json:"loaded"`
	Loading   bool   `json:"loading"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

// Manager guards the lifecycle of one diffusion backend. The backend must
// be loaded before generation; loading probes the provider once and
// concurrent loads collapse into a single probe.
type Manager struct {
	client   ImageClient
	provider string
	model    string
	logger   *zerolog.Logger

	mu        sync.Mutex
	loaded    bool
	loading   bool
	lastError string
}

// NewManager wraps client. A nil client means generation runs without a
// backend and every wireframe falls back to the deterministic renderer.
func NewManager(client ImageClient, provider, model string, logger *zerolog.Logger) *Manager {
	return &Manager{
		client:   client,
		provider: provider,
		model:    model,
		logger:   logger,
	}
}

func (m *Manager) Available() bool {
	return m.client != nil
}

// Load probes the backend and marks it ready. Callers racing on a load in
// progress wait for its outcome instead of probing again.
func (m *Manager) Load(ctx context.Context) error {
	if m.client == nil {
		return ErrNotAvailable
	}

	m.mu.Lock()
	if m.loaded {
		m.mu.Unlock()
		return nil
	}
	if m.loading {
		m.mu.Unlock()
		return m.waitForLoad(ctx)
	}
	m.loading = true
	m.mu.Unlock()

	m.logger.Info().Str("provider", m.provider).Str("model", m.model).Msg("Loading diffusion backend")

	err := m.client.Ping(ctx)

	m.mu.Lock()
	m.loading = false
	if err == nil {
		m.loaded = true
		m.lastError = ""
	} else {
		m.lastError = err.Error()
	}
	m.mu.Unlock()

	if err != nil {
		m.logger.Error().Err(err).Str("provider", m.provider).Msg("Failed to load diffusion backend")
		return fmt.Errorf("failed to load diffusion backend: %w", err)
	}

	m.logger.Info().Str("provider", m.provider).Msg("Diffusion backend ready")
	return nil
}

func (m *Manager) waitForLoad(ctx context.Context) error {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			m.mu.Lock()
			loaded, loading := m.loaded, m.loading
			m.mu.Unlock()

			if loaded {
				return nil
			}
			if !loading {
				return errors.New("diffusion backend failed to load")
			}
		}
	}
}

// Unload drops the ready state; the next generation probes again.
func (m *Manager) Unload() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.loaded = false
	m.logger.Info().Str("provider", m.provider).Msg("Diffusion backend unloaded")
}

func (m *Manager) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := Status{
		Available: m.client != nil,
		Loaded:    m.loaded,
		Loading:   m.loading,
	}
	if status.Available {
		status.Provider = m.provider
		status.Model = m.model
		status.LastError = m.lastError
	}

	return status
}

// Generate loads the backend if needed and runs one generation with the
// provider's retry policy.
func (m *Manager) Generate(ctx context.Context, request ImageRequest) (*ImageResponse, error) {
	if m.client == nil {
		return nil, ErrNotAvailable
	}

	if err := m.Load(ctx); err != nil {
		return nil, err
	}

	return m.client.GenerateImageWithRetry(ctx, request)
}
