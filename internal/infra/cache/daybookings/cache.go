package daybookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

const (
	resultHit   = "hit"
	resultMiss  = "miss"
	resultError = "error"
)

// setIfFresh записывает значение, только если по ключу нет метки инвалидации
// KEYS[1] - ключ данных, KEYS[2] - метка, ARGV[1] - значение, ARGV[2] - TTL в мс
var setIfFresh = redis.NewScript(`
if redis.call("EXISTS", KEYS[2]) == 1 then
	return 0
end
redis.call("SET", KEYS[1], ARGV[1], "PX", ARGV[2])
return 1
`)

// Cache кэш бронирований комнаты за день в Redis
// Ключ: <prefix>:bookings:<roomID>:<YYYY-MM-DD>, значение - JSON списка бронирований
// Invalidate оставляет метку <key>:stale на время TTL: чтение, начатое до записи в БД,
// не сможет вернуть устаревшие данные в кэш
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	prefix  string
	metrics Metrics
	logger  Logger
}

// NewCache создает кэш. ttl <= 0 отключает кэширование
func NewCache(client *redis.Client, ttl time.Duration, prefix string, metrics Metrics, logger Logger) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		prefix:  prefix,
		metrics: metrics,
		logger:  logger,
	}
}

// Key возвращает ключ кэша для комнаты и календарного дня
func (c *Cache) Key(roomID string, day time.Time) string {
	return fmt.Sprintf("%s:bookings:%s:%s", c.prefix, roomID, day.Format(domain.DateFormat))
}

func (c *Cache) staleKey(roomID string, day time.Time) string {
	return c.Key(roomID, day) + ":stale"
}

// Get возвращает бронирования из кэша
// Любая ошибка Redis считается промахом
func (c *Cache) Get(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, bool) {
	if !c.enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, c.Key(roomID, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.metrics.IncCache(resultMiss)
		return nil, false
	}
	if err != nil {
		c.metrics.IncCache(resultError)
		c.logger.Warn("DayBookingsCache: get room=%s day=%s failed: %v", roomID, day.Format(domain.DateFormat), err)
		return nil, false
	}

	var bookings []*domain.Booking
	if err := json.Unmarshal(data, &bookings); err != nil {
		c.metrics.IncCache(resultError)
		c.logger.Warn("DayBookingsCache: corrupted entry room=%s day=%s: %v", roomID, day.Format(domain.DateFormat), err)
		return nil, false
	}

	c.metrics.IncCache(resultHit)
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, true
}

// Set сохраняет бронирования в кэш. Ошибки только логируются
// Запись пропускается, если день был инвалидирован в течение последнего TTL
func (c *Cache) Set(ctx context.Context, roomID string, day time.Time, bookings []*domain.Booking) {
	if !c.enabled() {
		return
	}

	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	data, err := json.Marshal(bookings)
	if err != nil {
		c.logger.Warn("DayBookingsCache: marshal room=%s failed: %v", roomID, err)
		return
	}

	keys := []string{c.Key(roomID, day), c.staleKey(roomID, day)}
	if err := setIfFresh.Run(ctx, c.client, keys, data, c.ttl.Milliseconds()).Err(); err != nil {
		c.logger.Warn("DayBookingsCache: set room=%s day=%s failed: %v", roomID, day.Format(domain.DateFormat), err)
	}
}

// Invalidate удаляет записи комнаты за указанные дни и ставит метки инвалидации
func (c *Cache) Invalidate(ctx context.Context, roomID string, days ...time.Time) error {
	if !c.enabled() || len(days) == 0 {
		return nil
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, day := range days {
			pipe.Set(ctx, c.staleKey(roomID, day), 1, c.ttl)
			pipe.Del(ctx, c.Key(roomID, day))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: room=%s: %w", ErrInvalidate, roomID, err)
	}
	return nil
}

func (c *Cache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}
