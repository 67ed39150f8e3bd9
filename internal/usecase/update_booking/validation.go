package update_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// schedule новые дата и время бронирования после слияния с текущими
type schedule struct {
	date  time.Time
	start types.TimeString
	end   types.TimeString
}

// mergeSchedule берет из запроса измененные поля, остальное из текущего бронирования
func mergeSchedule(req *Request, current *domain.Booking, loc *time.Location) schedule {
	startLocal := current.StartAt.In(loc)
	y, m, d := startLocal.Date()

	s := schedule{
		date:  time.Date(y, m, d, 0, 0, 0, 0, loc),
		start: types.NewTimeString(startLocal),
		end:   types.NewTimeString(current.EndAt.In(loc)),
	}
	if req.Date != nil {
		s.date = *req.Date
	}
	if req.StartTime != nil {
		s.start = *req.StartTime
	}
	if req.EndTime != nil {
		s.end = *req.EndTime
	}
	return s
}

// applyDetails переносит описательные поля запроса в бронирование
func applyDetails(req *Request, b *domain.Booking) {
	if req.ManagerID != nil {
		b.ManagerID = *req.ManagerID
	}
	if req.Name != nil {
		b.Name = req.Name
	}
	if req.Description != nil {
		b.Description = req.Description
	}
	if req.HasRefreshments != nil {
		b.HasRefreshments = *req.HasRefreshments
	}
	if req.RefreshmentQuantity != nil {
		b.RefreshmentQuantity = *req.RefreshmentQuantity
	}
	if req.RefreshmentDescription != nil {
		b.RefreshmentDescription = req.RefreshmentDescription
	}
	if !b.HasRefreshments {
		b.RefreshmentQuantity = 0
	}
}

// validateDetails проверяет описательные поля после слияния
func validateDetails(b *domain.Booking) error {
	if b.Name != nil {
		length := utf8.RuneCountInString(strings.TrimSpace(*b.Name))
		if length < domain.MinBookingNameLength || length > domain.MaxBookingNameLength {
			return fmt.Errorf("%w: name must be %d-%d characters", ErrInvalidInput,
				domain.MinBookingNameLength, domain.MaxBookingNameLength)
		}
	}
	if b.Description != nil && utf8.RuneCountInString(*b.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is too long (max %d)", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if b.RefreshmentQuantity < 0 || b.RefreshmentQuantity > domain.MaxRefreshmentQuantity {
		return fmt.Errorf("%w: refreshment quantity must be in 0..%d", ErrInvalidInput, domain.MaxRefreshmentQuantity)
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

// validateBookingTime проверяет, что новое начало не в прошлом и не раньше now + minNoticeMinutes
func validateBookingTime(startAt, now time.Time, minNoticeMinutes int) error {
	loc := startAt.Location()
	localNow := now.In(loc)

	y, m, d := startAt.Date()
	ny, nm, nd := localNow.Date()
	if time.Date(y, m, d, 0, 0, 0, 0, loc).Before(time.Date(ny, nm, nd, 0, 0, 0, 0, loc)) {
		return ErrDateInPast
	}

	minAllowed := localNow.Add(time.Duration(minNoticeMinutes) * time.Minute)
	if startAt.Before(minAllowed) {
		return fmt.Errorf("%w: start %s is before %s", ErrTooLateToBook,
			startAt.Format(domain.TimeFormat), minAllowed.Format(domain.TimeFormat))
	}
	return nil
}
