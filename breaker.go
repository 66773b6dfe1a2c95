// peopledatalabs - Go client for the People Data Labs API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/peopledatalabs

package peopledatalabs

import (
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/peopledatalabs/internal/logging"
	"github.com/tomtom215/peopledatalabs/internal/metrics"
)

// BreakerSettings configures the circuit breaker enabled by WithCircuitBreaker.
// Zero values take the defaults noted on each field.
type BreakerSettings struct {
	// Name labels metrics and logs. Default "pdl-api".
	Name string
	// MaxRequests allowed through while half-open. Default 1.
	MaxRequests uint32
	// Interval after which closed-state counts reset. Zero never resets.
	Interval time.Duration
	// Timeout before an open breaker moves to half-open. Default 30s.
	Timeout time.Duration
	// MinRequests before the failure ratio is considered. Default 10.
	MinRequests uint32
	// FailureRatio at or above which the breaker opens. Default 0.6.
	FailureRatio float64
}

// WithCircuitBreaker stops sending requests after repeated network failures
// and 5xx responses. Rejected calls return a *NetworkError wrapping
// ErrCircuitOpen. Client errors (4xx) never trip the breaker.
func WithCircuitBreaker(s BreakerSettings) Option {
	return func(c *Client) { c.breaker = newCircuitBreaker(s) }
}

// circuitBreaker wraps the raw exchange with gobreaker.
//
// The breaker uses real time for its interval and timeout; tests drive it
// with Timeout values short enough to wait out.
type circuitBreaker struct {
	cb   *gobreaker.CircuitBreaker[[]byte]
	name string
}

func newCircuitBreaker(s BreakerSettings) *circuitBreaker {
	if s.Name == "" {
		s.Name = "pdl-api"
	}
	if s.MaxRequests == 0 {
		s.MaxRequests = 1
	}
	if s.Timeout <= 0 {
		s.Timeout = 30 * time.Second
	}
	if s.MinRequests == 0 {
		s.MinRequests = 10
	}
	if s.FailureRatio <= 0 || s.FailureRatio > 1 {
		s.FailureRatio = 0.6
	}

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= s.FailureRatio
			if shouldTrip {
				logging.Warn().Str("breaker", s.Name).Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: isBreakerSuccess,
	})

	return &circuitBreaker{cb: cb, name: s.Name}
}

// isBreakerSuccess counts only faults of the service or the network as
// failures. A 4xx says the request was wrong, not that the service is down.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode < 500
	}
	return !errors.Is(err, ErrNetwork)
}

// execute runs fn under the breaker and maps rejections to ErrCircuitOpen.
func (b *circuitBreaker) execute(op string, fn func() ([]byte, error)) ([]byte, error) {
	result, err := b.cb.Execute(fn)

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Str("breaker", b.name).Str("op", op).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, &NetworkError{Op: op, Err: errors.Join(ErrCircuitOpen, err)}
		}
		outcome := "failure"
		if isBreakerSuccess(err) {
			outcome = "success"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, outcome).Inc()
		counts := b.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return result, nil
}

// BreakerState reports the breaker state: "closed", "half-open", "open", or
// "disabled" when the client has no breaker.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return stateToString(c.breaker.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
