package update_booking

import (
	"errors"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrRoomNotFound возвращается, когда новая комната не найдена
	ErrRoomNotFound = errors.New("update_booking: room not found")

	// ErrManagerNotFound возвращается, когда новый менеджер не найден
	ErrManagerNotFound = errors.New("update_booking: manager not found")

	// ErrInvalidTime возвращается, когда время не в формате HH:MM
	ErrInvalidTime = errors.New("update_booking: invalid time format, expected HH:MM")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("update_booking: end time must be after start time")

	// ErrDateInPast возвращается при переносе бронирования на прошедшую дату
	ErrDateInPast = errors.New("update_booking: date is in the past")

	// ErrTooLateToBook возвращается, когда новое начало раньше now + min notice
	ErrTooLateToBook = errors.New("update_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с другими бронированиями
	ErrSlotNotAvailable = errors.New("update_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
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
