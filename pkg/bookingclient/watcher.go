package bookingclient

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounce задержка перед проверкой после последнего изменения запроса
const DefaultDebounce = time.Second

// AvailabilityChecker источник результатов проверки (реализуется *Client)
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, req AvailabilityRequest) *AvailabilityResult
}

// ResultHandler получает результат актуального запроса
type ResultHandler func(req AvailabilityRequest, result *AvailabilityResult)

// Watcher проверяет доступность по мере редактирования формы
// Запрос отправляется спустя delay после последнего изменения, повтор того же запроса пропускается,
// новый запрос отменяет ожидающий и выполняющийся, устаревшие результаты отбрасываются
type Watcher struct {
	checker  AvailabilityChecker
	delay    time.Duration
	onResult ResultHandler

	mu      sync.Mutex
	lastKey string
	seq     uint64
	timer   *time.Timer
	cancel  context.CancelFunc
}

// NewWatcher создает наблюдатель. delay <= 0 означает DefaultDebounce
func NewWatcher(checker AvailabilityChecker, delay time.Duration, onResult ResultHandler) *Watcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Watcher{
		checker:  checker,
		delay:    delay,
		onResult: onResult,
	}
}

// Submit сообщает о новом состоянии запроса
func (w *Watcher) Submit(req AvailabilityRequest) {
	if !req.IsComplete() {
		w.mu.Lock()
		w.resetLocked()
		w.lastKey = ""
		w.mu.Unlock()

		w.onResult(req, permissive(false))
		return
	}

	key := req.Key()

	w.mu.Lock()
	defer w.mu.Unlock()

	if key == w.lastKey {
		return
	}
	w.resetLocked()
	w.lastKey = key

	seq := w.seq
	w.timer = time.AfterFunc(w.delay, func() {
		w.run(seq, key, req)
	})
}

// Stop отменяет ожидающую и выполняющуюся проверку
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.resetLocked()
	w.lastKey = ""
}

func (w *Watcher) run(seq uint64, key string, req AvailabilityRequest) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		return
	}
	w.cancel = cancel
	w.mu.Unlock()

	result := w.checker.CheckAvailability(ctx, req)

	w.mu.Lock()
	if seq != w.seq {
		w.mu.Unlock()
		return
	}
	w.cancel = nil
	// Деградированный результат не запоминается, тот же запрос можно повторить
	if result.Degraded && w.lastKey == key {
		w.lastKey = ""
	}
	w.mu.Unlock()

	w.onResult(req, result)
}

// resetLocked останавливает таймер, отменяет текущий запрос и делает его результат устаревшим
func (w *Watcher) resetLocked() {
	w.seq++
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}
