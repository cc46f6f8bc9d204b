package services

import (
	"errors"
	"sync"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/models"
)

var (
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
)

const (
	StateClosed models.CircuitBreakerState = iota
	StateOpen
	StateHalfOpen
)

// CircuitBreaker stops calls to a data source after repeated failures and
// probes it again once the reset timeout has passed.
type CircuitBreaker struct {
	mu                sync.RWMutex
	name              string
	settings          config.CircuitBreakerSettings
	metrics           MetricsRecorderInterface
	state             models.CircuitBreakerState
	failures          int
	halfOpenSuccesses int
	lastFailureTime   time.Time
	now               func() time.Time
}

func NewCircuitBreaker(name string, settings config.CircuitBreakerSettings, metrics MetricsRecorderInterface) CircuitBreakerInterface {
	if settings.MaxFailures < 1 {
		settings.MaxFailures = 5
	}
	if settings.HalfOpenMaxSucc < 1 {
		settings.HalfOpenMaxSucc = 1
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &CircuitBreaker{
		name:     name,
		settings: settings,
		metrics:  metrics,
		state:    StateClosed,
		now:      time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen && cb.shouldTransitionToHalfOpen() {
		cb.setState(StateHalfOpen)
		return false
	}

	return cb.state == StateOpen
}

func (cb *CircuitBreaker) shouldTransitionToHalfOpen() bool {
	return cb.now().Sub(cb.lastFailureTime) > cb.settings.ResetTimeout
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateHalfOpen:
		cb.halfOpenSuccesses++
		if cb.halfOpenSuccesses >= cb.settings.HalfOpenMaxSucc {
			cb.failures = 0
			cb.setState(StateClosed)
		}
	case StateClosed:
		cb.failures = 0
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.lastFailureTime = cb.now()

	switch cb.state {
	case StateHalfOpen:
		cb.setState(StateOpen)
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.settings.MaxFailures {
			cb.setState(StateOpen)
		}
	}
}

// setState must be called with mu held
func (cb *CircuitBreaker) setState(state models.CircuitBreakerState) {
	cb.state = state
	cb.halfOpenSuccesses = 0
	cb.metrics.RecordGauge("circuit_breaker.state", float64(state), map[string]string{"service": cb.name})
}

func (cb *CircuitBreaker) GetState() models.CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures = 0
	cb.setState(StateClosed)
}

func (cb *CircuitBreaker) GetFailureCount() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.failures
}
