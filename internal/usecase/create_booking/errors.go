package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("create_booking: room not found")

	// ErrManagerNotFound возвращается, когда менеджер не найден
	ErrManagerNotFound = errors.New("create_booking: manager not found")

	// ErrInvalidTime возвращается, когда время не в формате HH:MM
	ErrInvalidTime = errors.New("create_booking: invalid time format, expected HH:MM")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("create_booking: end time must be after start time")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrTooLateToBook возвращается, когда начало бронирования раньше now + min notice
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда интервал пересекается с существующими бронированиями
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError ошибка пересечения с результатом проверки (конфликты и предложения)
type ConflictError struct {
	Result *domain.AvailabilityResult
}

func (e *ConflictError) Error() string {
	return ErrSlotNotAvailable.Error()
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
