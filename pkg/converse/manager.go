package converse

import (
	"context"
	"fmt"
	"time"

	"tablebooker/pkg/log"
)

// Manager orchestrates responder selection, fallback, and retry logic
type Manager struct {
	responders []Responder
	config     *Config
	logger     log.Logger
}

// Config defines configuration for the responder Manager
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // global timeout for the entire fallback chain
}

// NewManager creates a new Manager with the given responders, config, and logger.
// Responders are tried in the order given.
func NewManager(responders []Responder, config *Config, logger log.Logger) *Manager {
	return &Manager{
		responders: responders,
		config:     config,
		logger:     logger,
	}
}

// Respond iterates through responders in priority order with fallback logic
func (m *Manager) Respond(ctx context.Context, req *Request) (*Response, error) {
	if len(m.responders) == 0 {
		return nil, ErrNoRespondersConfigured
	}

	var cancel context.CancelFunc
	if m.config.MaxTotalTimeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error

	for _, responder := range m.responders {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("global timeout exceeded after trying %d responder(s): %w",
				len(m.responders), ctx.Err())
		default:
		}

		resp, err := m.respondWithRetry(ctx, responder, req)
		if err == nil {
			m.logSuccess(ctx, responder, resp)
			return resp, nil
		}

		m.logFailure(ctx, responder, err)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllRespondersFailed, lastErr)
}

// respondWithRetry retries a single responder with linear backoff
func (m *Manager) respondWithRetry(ctx context.Context, responder Responder, req *Request) (*Response, error) {
	var lastErr error

	for attempt := 0; attempt < m.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			delay := time.Duration(attempt) * m.config.RetryDelay
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := responder.Respond(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err
	}

	return nil, lastErr
}

func (m *Manager) logSuccess(ctx context.Context, responder Responder, resp *Response) {
	m.logger.Info(ctx, "reply generation successful",
		"responder", responder.Name(),
		"model", responder.Model(),
		"degraded", resp.Degraded,
	)
}

func (m *Manager) logFailure(ctx context.Context, responder Responder, err error) {
	m.logger.Warn(ctx, "reply generation failed",
		"responder", responder.Name(),
		"model", responder.Model(),
		"error", err.Error(),
	)
}
