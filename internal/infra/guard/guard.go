package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"
)

// ErrUnavailable возвращается, когда breaker разомкнут и вызов не выполнялся
var ErrUnavailable = errors.New("guard: dependency unavailable (circuit open)")

// Metrics интерфейс для метрик состояния breaker
type Metrics interface {
	SetBreakerState(name string, state int)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Settings параметры breaker
type Settings struct {
	MaxRequests         uint32        // Пробных запросов в half-open
	Interval            time.Duration // Период сброса счетчиков в closed
	Timeout             time.Duration // Время в open до перехода в half-open
	ConsecutiveFailures uint32        // Подряд ошибок до размыкания
}

// Breaker circuit breaker вокруг вызовов, возвращающих T
type Breaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// New создает breaker с именем name
// Отмена контекста вызывающим не считается ошибкой зависимости
func New[T any](name string, s Settings, metrics Metrics, logger Logger) *Breaker[T] {
	threshold := s.ConsecutiveFailures
	if threshold == 0 {
		threshold = 1
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: s.MaxRequests,
		Interval:    s.Interval,
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Breaker %s: state changed %s -> %s", name, from.String(), to.String())
			metrics.SetBreakerState(name, int(to))
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	metrics.SetBreakerState(name, int(gobreaker.StateClosed))

	return &Breaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Execute выполняет fn под защитой breaker
func (b *Breaker[T]) Execute(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	result, err := b.cb.Execute(func() (T, error) {
		return fn(ctx)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrUnavailable, b.cb.Name(), err)
	}
	return result, err
}

// State возвращает текущее состояние breaker
func (b *Breaker[T]) State() gobreaker.State {
	return b.cb.State()
}
