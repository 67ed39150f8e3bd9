package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Service сервис показателей дашборда
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса дашборда
func NewService(bookingRepo BookingRepository, roomRepo RoomRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Stats возвращает показатели за сегодняшний день
func (s *Service) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.timeProvider.Now().In(s.location)
	y, m, d := now.Date()
	dayStart := time.Date(y, m, d, 0, 0, 0, 0, s.location)
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{From: &dayStart, To: &dayEnd})
	if err != nil {
		s.logger.Error("Stats: failed to get today's bookings: %v", err)
		return nil, fmt.Errorf("%w: Stats - bookings: %v", ErrInternal, err)
	}

	totalRooms, err := s.roomRepo.Count(ctx)
	if err != nil {
		s.logger.Error("Stats: failed to count rooms: %v", err)
		return nil, fmt.Errorf("%w: Stats - rooms: %v", ErrInternal, err)
	}

	stats := ComputeStats(bookings, totalRooms, dayStart, now)
	return &stats, nil
}
