package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/availability"
)

// Исходы проверки для метрик
const (
	outcomeAvailable  = "available"
	outcomeConflict   = "conflict"
	outcomeIncomplete = "incomplete"
	outcomeFailOpen   = "fail_open"
)

// UseCase use case проверки доступности комнаты
type UseCase struct {
	schedule RoomSchedule
	engine   AvailabilityEngine
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule RoomSchedule, engine AvailabilityEngine, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		engine:   engine,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute проверяет запрос против бронирований комнаты за день
// Если бронирования получить не удалось, возвращается разрешающий результат с Degraded=true
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	domainReq := domain.AvailabilityRequest{
		RoomID:           req.RoomID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		ExcludeBookingID: req.ExcludeBookingID,
	}

	// 1. Неполный запрос не требует обращения к хранилищу
	if !domainReq.IsComplete() {
		uc.metrics.IncAvailabilityCheck(outcomeIncomplete)
		return &Response{Result: domain.NewAvailableResult()}, nil
	}

	// 2. Некорректное время отклоняется до загрузки
	if _, err := availability.NewTimeInterval(req.StartTime, req.EndTime); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, mapEngineError(err)
	}

	// 3. Бронирования комнаты за день
	bookings, err := uc.schedule.Load(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Warn("CheckAvailability: falling back to available for room=%s: %v", req.RoomID, err)
		uc.metrics.IncAvailabilityCheck(outcomeFailOpen)
		return &Response{Result: domain.NewAvailableResult(), Degraded: true}, nil
	}

	// 4. Проверка
	result, err := uc.engine.CheckAvailability(domainReq, bookings)
	if err != nil {
		uc.logger.Warn("CheckAvailability: engine rejected request: %v", err)
		return nil, mapEngineError(err)
	}

	if result.Available {
		uc.metrics.IncAvailabilityCheck(outcomeAvailable)
	} else {
		uc.metrics.IncAvailabilityCheck(outcomeConflict)
		uc.metrics.ObserveSuggestedSlots(len(result.SuggestedSlots))
		uc.logger.Info("CheckAvailability: room=%s %s %s-%s has %d conflict(s)",
			req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, len(result.ConflictingBookings))
	}

	return &Response{Result: result}, nil
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, availability.ErrInvalidTimeRange):
		return ErrInvalidTimeRange
	case errors.Is(err, availability.ErrInvalidTime):
		return fmt.Errorf("%w: %v", ErrInvalidTime, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
