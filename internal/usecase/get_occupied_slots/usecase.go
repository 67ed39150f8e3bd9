package get_occupied_slots

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// UseCase use case получения занятых интервалов комнаты за день
type UseCase struct {
	schedule RoomSchedule
	engine   AvailabilityEngine
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule RoomSchedule, engine AvailabilityEngine, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		engine:   engine,
		logger:   logger,
	}
}

// Execute возвращает бронирования комнаты за день в виде интервалов HH:MM
// Ошибка загрузки не пробрасывается: возвращается пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.RoomID) == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	resp := &Response{
		Date:   req.Date,
		RoomID: req.RoomID,
		Slots:  []domain.OccupiedSlot{},
	}

	bookings, err := uc.schedule.Load(ctx, req.RoomID, req.Date)
	if err != nil {
		uc.logger.Warn("GetOccupiedSlots: returning empty list for room=%s: %v", req.RoomID, err)
		resp.Degraded = true
		return resp, nil
	}

	resp.Slots = uc.engine.OccupiedSlots(bookings)
	return resp, nil
}
