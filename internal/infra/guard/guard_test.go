package guard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/logger"
)

type metricsStub struct {
	states []int
}

func (m *metricsStub) SetBreakerState(_ string, state int) {
	m.states = append(m.states, state)
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	stub := &metricsStub{}
	b := New[int]("bookings", Settings{MaxRequests: 1, Timeout: time.Hour, ConsecutiveFailures: 2}, stub, logger.Nop())
	boom := errors.New("db down")
	calls := 0

	fail := func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	}

	_, err := b.Execute(context.Background(), fail)
	assert.ErrorIs(t, err, boom)
	_, err = b.Execute(context.Background(), fail)
	assert.ErrorIs(t, err, boom)

	_, err = b.Execute(context.Background(), fail)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 2, calls)
	assert.Equal(t, gobreaker.StateOpen, b.State())
	assert.Equal(t, []int{int(gobreaker.StateClosed), int(gobreaker.StateOpen)}, stub.states)
}

func TestBreaker_PassesResult(t *testing.T) {
	b := New[string]("bookings", Settings{ConsecutiveFailures: 1}, &metricsStub{}, logger.Nop())

	got, err := b.Execute(context.Background(), func(ctx context.Context) (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", got)
}

func TestBreaker_CancellationIsNotFailure(t *testing.T) {
	b := New[int]("bookings", Settings{ConsecutiveFailures: 1, Timeout: time.Hour}, &metricsStub{}, logger.Nop())

	_, err := b.Execute(context.Background(), func(ctx context.Context) (int, error) {
		return 0, context.Canceled
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gobreaker.StateClosed, b.State())
}
