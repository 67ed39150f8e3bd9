package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований
type Service struct {
	bookingRepo  BookingRepository
	schedule     RoomSchedule
	publisher    EventPublisher
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	schedule RoomSchedule,
	publisher EventPublisher,
	metrics Metrics,
	location *time.Location,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &Service{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		publisher:    publisher,
		metrics:      metrics,
		location:     location,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Location возвращает локацию, в которой выводятся даты бронирований
func (s *Service) Location() *time.Location {
	return s.location
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking, s.location), nil
}

// List получает бронирования с фильтрацией по комнате, менеджеру и периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, ErrInvalidTimeRange
	}

	filter := req.ToDomainFilter(s.location)

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings, s.location), nil
}

// Delete удаляет бронирование
// После удаления сбрасывается кэш дня комнаты и публикуется событие booking.deleted
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: deleting booking id=%s", id)

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found during delete", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.schedule.Invalidate(ctx, booking)
	s.metrics.IncBooking("deleted")
	if err := s.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingDeleted, booking, s.timeProvider.Now())); err != nil {
		s.logger.Warn("Delete: failed to publish event for booking id=%s: %v", id, err)
	}

	s.logger.Info("Delete: successfully deleted booking id=%s", id)
	return nil
}
