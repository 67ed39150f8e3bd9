package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/events"
	managerRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/manager"
	roomRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/room"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	roomRepo         RoomRepository
	managerRepo      ManagerRepository
	defaults         DefaultsProvider
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
	defaults DefaultsProvider,
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
		defaults:         defaults,
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

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%q, manager=%q, date=%s, time=%s-%s",
		req.RoomID, req.ManagerID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	var usedDefaults UsedDefaults

	// 2. Комната (по умолчанию, если не указана)
	room, usedDefaultRoom, err := uc.resolveRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	usedDefaults.Room = usedDefaultRoom

	// 3. Менеджер (по умолчанию, если не указан)
	manager, usedDefaultManager, err := uc.resolveManager(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	usedDefaults.Manager = usedDefaultManager

	// 4. Абсолютные границы интервала в часовом поясе сервиса
	loc := uc.engine.Location()
	startAt, err := req.StartTime.OnDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}
	endAt, err := req.EndTime.OnDate(req.Date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	// 5. Нельзя бронировать в прошлом и позже минимального срока
	if err := validateBookingTime(startAt, now, uc.minNoticeMinutes); err != nil {
		uc.logger.Warn("CreateBooking: booking time validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 6. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Бронирования комнаты за день (FOR UPDATE внутри транзакции)
		bookings, err := uc.bookingRepo.List(txCtx, uc.schedule.DayFilter(room.ID, req.Date))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for room=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		// 6.2. Проверка доступности
		availability, err := uc.engine.CheckAvailability(domain.AvailabilityRequest{
			RoomID:    room.ID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		}, bookings)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTime, err)
		}

		if !availability.Available {
			uc.logger.Warn("CreateBooking: slot %s-%s in room=%s conflicts with %d booking(s)",
				req.StartTime, req.EndTime, room.ID, len(availability.ConflictingBookings))
			return &ConflictError{Result: availability}
		}

		// 6.3. Создание
		booking := &domain.Booking{
			RoomID:                 room.ID,
			ManagerID:              manager.ID,
			StartAt:                startAt,
			EndAt:                  endAt,
			Name:                   req.Name,
			Description:            req.Description,
			HasRefreshments:        req.HasRefreshments,
			RefreshmentQuantity:    req.RefreshmentQuantity,
			RefreshmentDescription: req.RefreshmentDescription,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.metrics.IncBooking("rejected")
		}
		return nil, err
	}

	// Денормализация для ответа
	result.RoomName = &room.Name
	result.RoomLocation = room.LocationName
	result.ManagerName = &manager.Name
	result.ManagerEmail = &manager.Email

	// 7. Побочные эффекты после фиксации транзакции
	uc.schedule.Invalidate(ctx, result)
	uc.metrics.IncBooking("created")
	if err := uc.publisher.Publish(ctx, events.NewBookingEvent(events.TypeBookingCreated, result, now)); err != nil {
		uc.logger.Warn("CreateBooking: failed to publish event for booking id=%s: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s (default room=%t, default manager=%t)",
		result.ID, usedDefaults.Room, usedDefaults.Manager)

	return &Response{Booking: result, UsedDefaults: usedDefaults}, nil
}

func (uc *UseCase) resolveRoom(ctx context.Context, roomID string) (*domain.Room, bool, error) {
	if roomID == "" {
		room, err := uc.defaults.DefaultRoom(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get default room: %v", err)
			return nil, false, fmt.Errorf("%w: failed to get default room: %v", ErrInternal, err)
		}
		return room, true, nil
	}

	room, err := uc.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CreateBooking: room id=%s not found", roomID)
			return nil, false, ErrRoomNotFound
		}
		uc.logger.Error("CreateBooking: failed to get room id=%s: %v", roomID, err)
		return nil, false, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}
	return room, false, nil
}

func (uc *UseCase) resolveManager(ctx context.Context, managerID string) (*domain.Manager, bool, error) {
	if managerID == "" {
		manager, err := uc.defaults.DefaultManager(ctx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get default manager: %v", err)
			return nil, false, fmt.Errorf("%w: failed to get default manager: %v", ErrInternal, err)
		}
		return manager, true, nil
	}

	manager, err := uc.managerRepo.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, managerRepo.ErrManagerNotFound) {
			uc.logger.Warn("CreateBooking: manager id=%s not found", managerID)
			return nil, false, ErrManagerNotFound
		}
		uc.logger.Error("CreateBooking: failed to get manager id=%s: %v", managerID, err)
		return nil, false, fmt.Errorf("%w: failed to get manager: %v", ErrInternal, err)
	}
	return manager, false, nil
}
