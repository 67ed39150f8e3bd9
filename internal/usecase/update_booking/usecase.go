package update_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	bookingRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/booking"
	managerRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/manager"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для частичного обновления бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	roomRepo         RoomRepository
	managerRepo      ManagerRepository
	engine           AvailabilityEngine
	schedule         RoomSchedule
	txManager        TransactionManager
	publisher        EventPublisher
	metrics          Metrics
	timeProvider     TimeProvider
	minNoticeMinutes int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	managerRepo ManagerRepository,
	engine AvailabilityEngine,
	schedule RoomSchedule,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	minNoticeMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		roomRepo:         roomRepo,
		managerRepo:      managerRepo,
		engine:           engine,
		schedule:         schedule,
		txManager:        txManager,
		publisher:        publisher,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		minNoticeMinutes: minNoticeMinutes,
		logger:           logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case обновления бронирования
// При смене комнаты или времени доступность проверяется заново без учета самого бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBooking: id=%s, reschedule=%t", req.ID, req.reschedules())

	if strings.TrimSpace(req.ID) == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()
	loc := uc.engine.Location()

	// 1. Текущее состояние
	current, err := uc.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("UpdateBooking: booking id=%s not found", req.ID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("UpdateBooking: failed to get booking id=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	previous := *current

	// 2. Слияние и валидация
	updated := *current
	applyDetails(req, &updated)
	if err := validateDetails(&updated); err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		return nil, err
	}

	sched := mergeSchedule(req, current, loc)
	if req.reschedules() {
		if err := validateTimeRange(sched.start, sched.end); err != nil {
			uc.logger.Warn("UpdateBooking: validation failed: %v", err)
			return nil, err
		}
	}

	// 3. Новые комната и менеджер должны существовать
	if req.RoomID != nil && *req.RoomID != current.RoomID {
		if _, err := uc.roomRepo.GetByID(ctx, *req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return nil, ErrRoomNotFound
			}
			return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}
		updated.RoomID = *req.RoomID
	}
	if req.ManagerID != nil && *req.ManagerID != current.ManagerID {
		if _, err := uc.managerRepo.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, managerRepo.ErrManagerNotFound) {
				return nil, ErrManagerNotFound
			}
			return nil, fmt.Errorf("%w: failed to get manager: %v", ErrInternal, err)
		}
	}

	// 4. Новые абсолютные границы
	if req.reschedules() {
		startAt, err := sched.start.OnDate(sched.date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		endAt, err := sched.end.OnDate(sched.date, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}
		if !startAt.Equal(current.StartAt) {
			if err := validateBookingTime(startAt, now, uc.minNoticeMinutes); err != nil {
				uc.logger.Warn("UpdateBooking: booking time validation failed: %v", err)
				return nil, err
			}
		}
		updated.StartAt = startAt
		updated.EndAt = endAt
	}

	// 5. Проверка пересечений и сохранение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if req.reschedules() {
			bookings, err := uc.bookingRepo.List(txCtx, uc.schedule.DayFilter(updated.RoomID, sched.date))
			if err != nil {
				uc.logger.Error("UpdateBooking: failed to get bookings for room=%s: %v", updated.RoomID, err)
				return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
			}

			availability, err := uc.engine.CheckAvailability(domain.AvailabilityRequest{
				RoomID:           updated.RoomID,
				Date:             sched.date,
				StartTime:        sched.start,
				EndTime:          sched.end,
				ExcludeBookingID: updated.ID,
			}, bookings)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidTime, err)
			}

			if !availability.Available {
				uc.logger.Warn("UpdateBooking: booking id=%s conflicts with %d booking(s)",
					updated.ID, len(availability.ConflictingBookings))
				return &ConflictError{Result: availability}
			}
		}

		if _, err := uc.bookingRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%s: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBooking("rejected")
		}
		return nil, err
	}

	// 6. Побочные эффекты после фиксации
	uc.schedule.Invalidate(ctx, &previous, &updated)
	uc.metrics.IncBooking("updated")
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingUpdated, &updated, now)); err != nil {
		uc.logger.Warn("UpdateBooking: failed to publish event for booking id=%s: %v", updated.ID, err)
	}

	// Перечитываем для актуальных денормализованных полей
	fresh, err := uc.bookingRepo.GetByID(ctx, updated.ID)
	if err != nil {
		uc.logger.Warn("UpdateBooking: failed to reload booking id=%s: %v", updated.ID, err)
		fresh = &updated
	}

	uc.logger.Info("UpdateBooking: successfully updated booking id=%s", updated.ID)
	return &Response{Booking: fresh}, nil
}
