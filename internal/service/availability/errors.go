package availability

import "errors"

var (
	// ErrInvalidTime возвращается, когда время начала или окончания не в формате HH:MM
	ErrInvalidTime = errors.New("availability: invalid time")

	// ErrInvalidTimeRange возвращается, когда время окончания не позже времени начала
	ErrInvalidTimeRange = errors.New("availability: end time must be after start time")
)
