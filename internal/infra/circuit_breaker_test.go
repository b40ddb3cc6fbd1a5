package infra

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSMTP = errors.New("smtp: connection refused")

func TestCircuitBreakerTripsAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errSMTP })
		assert.ErrorIs(t, err, errSMTP)
	}
	assert.Equal(t, CBOpen, cb.State())

	// Open: fast-fail without invoking fn.
	llamado := false
	err := cb.Execute(func() error { llamado = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
	assert.False(t, llamado)
}

func TestCircuitBreakerSuccessResetsFailures(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 3, SuccessThreshold: 1, OpenTimeout: time.Minute})

	require.Error(t, cb.Execute(func() error { return errSMTP }))
	require.Error(t, cb.Execute(func() error { return errSMTP }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return errSMTP }))

	// The counter reset on success, so three non-consecutive failures do not trip.
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerRecoversThroughHalfOpen(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 2, OpenTimeout: 20 * time.Millisecond})

	require.Error(t, cb.Execute(func() error { return errSMTP }))
	require.Equal(t, CBOpen, cb.State())

	time.Sleep(30 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	// Two successful probes close the circuit again.
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, CBClosed, cb.State())
}

func TestCircuitBreakerProbeFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{FailureThreshold: 1, SuccessThreshold: 1, OpenTimeout: 20 * time.Millisecond})

	require.Error(t, cb.Execute(func() error { return errSMTP }))
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, CBHalfOpen, cb.State())

	require.Error(t, cb.Execute(func() error { return errSMTP }))
	assert.Equal(t, CBOpen, cb.State())
}

func TestCircuitBreakerDefaults(t *testing.T) {
	cb := NewCircuitBreaker(CircuitBreakerConfig{})
	assert.Equal(t, CBClosed, cb.State())
	assert.Equal(t, "closed", cb.State().String())
}
