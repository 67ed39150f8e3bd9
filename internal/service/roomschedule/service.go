package roomschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Service источник бронирований комнаты за календарный день
// Читает через кэш, обращение к БД защищено breaker (оба опциональны)
type Service struct {
	repo     BookingRepository
	cache    Cache
	breaker  Breaker
	location *time.Location
	logger   Logger
}

// NewService создает сервис. cache и breaker могут быть nil
func NewService(repo BookingRepository, cache Cache, breaker Breaker, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		repo:     repo,
		cache:    cache,
		breaker:  breaker,
		location: location,
		logger:   logger,
	}
}

// DayBounds возвращает границы календарного дня [from, to) в локации сервиса
func (s *Service) DayBounds(day time.Time) (time.Time, time.Time) {
	return DayBounds(day, s.location)
}

// DayBounds возвращает границы календарного дня [from, to) в локации loc
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}

// DayFilter фильтр бронирований одной комнаты за день
func (s *Service) DayFilter(roomID string, day time.Time) domain.BookingsFilter {
	from, to := s.DayBounds(day)
	return domain.BookingsFilter{RoomID: &roomID, From: &from, To: &to}
}

// Load возвращает бронирования комнаты, пересекающиеся с днем day
func (s *Service) Load(ctx context.Context, roomID string, day time.Time) ([]*domain.Booking, error) {
	day, _ = s.DayBounds(day)

	if s.cache != nil {
		if bookings, ok := s.cache.Get(ctx, roomID, day); ok {
			return bookings, nil
		}
	}

	filter := s.DayFilter(roomID, day)
	load := func(ctx context.Context) ([]*domain.Booking, error) {
		return s.repo.List(ctx, filter)
	}

	var (
		bookings []*domain.Booking
		err      error
	)
	if s.breaker != nil {
		bookings, err = s.breaker.Execute(ctx, load)
	} else {
		bookings, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: room=%s day=%s: %v", ErrLoad, roomID, day.Format(domain.DateFormat), err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, roomID, day, bookings)
	}
	return bookings, nil
}

// Invalidate сбрасывает кэш комнаты за дни, которых касаются бронирования
// Ошибки только логируются: запись истечет по TTL
func (s *Service) Invalidate(ctx context.Context, bookings ...*domain.Booking) {
	if s.cache == nil {
		return
	}

	byRoom := make(map[string][]time.Time)
	for _, b := range bookings {
		if b == nil {
			continue
		}
		byRoom[b.RoomID] = append(byRoom[b.RoomID], s.daysOf(b)...)
	}

	for roomID, days := range byRoom {
		if err := s.cache.Invalidate(ctx, roomID, days...); err != nil {
			s.logger.Warn("RoomSchedule: cache invalidation failed for room=%s: %v", roomID, err)
		}
	}
}

// daysOf возвращает все календарные дни, которые пересекает бронирование
func (s *Service) daysOf(b *domain.Booking) []time.Time {
	day, _ := s.DayBounds(b.StartAt.In(s.location))
	end := b.EndAt.In(s.location)

	days := []time.Time{day}
	for next := day.AddDate(0, 0, 1); next.Before(end); next = next.AddDate(0, 0, 1) {
		days = append(days, next)
	}
	return days
}
