package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// validateRequest проверяет входные данные без обращения к хранилищу
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		length := utf8.RuneCountInString(name)
		if length < domain.MinBookingNameLength || length > domain.MaxBookingNameLength {
			return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidInput,
				domain.MinBookingNameLength, domain.MaxBookingNameLength)
		}
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long (max %d)", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	if req.RefreshmentQuantity < 0 || req.RefreshmentQuantity > domain.MaxRefreshmentQuantity {
		return fmt.Errorf("%w: refreshment quantity must be in 0..%d", ErrInvalidInput, domain.MaxRefreshmentQuantity)
	}

	if !req.HasRefreshments && req.RefreshmentQuantity > 0 {
		return fmt.Errorf("%w: refreshment quantity requires hasRefreshments", ErrInvalidInput)
	}

	return nil
}

// validateTimeRange проверяет формат HH:MM и что окончание позже начала
func validateTimeRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTime, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTime, err)
	}
	if !end.IsAfter(start) {
		return ErrInvalidTimeRange
	}
	return nil
}

// validateBookingTime проверяет, что бронирование не в прошлом
// Начало должно быть не раньше now + minNoticeMinutes
func validateBookingTime(startAt, now time.Time, minNoticeMinutes int) error {
	loc := startAt.Location()
	localNow := now.In(loc)

	y, m, d := startAt.Date()
	ny, nm, nd := localNow.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, loc)

	if day.Before(today) {
		return ErrDateInPast
	}

	minAllowed := localNow.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if startAt.Before(minAllowed) {
		return fmt.Errorf("%w: start %s is before %s", ErrTooLateToBook,
			startAt.Format(domain.TimeFormat), minAllowed.Format(domain.TimeFormat))
	}

	return nil
}
