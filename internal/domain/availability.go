package domain

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// AvailabilityRequest candidate reservation to check against existing bookings
// Пустые поля означают, что запрос еще не заполнен
type AvailabilityRequest struct {
	RoomID           string
	Date             time.Time // Календарная дата (время суток игнорируется)
	StartTime        types.TimeString
	EndTime          types.TimeString
	ExcludeBookingID string // Бронирование, исключаемое из проверки (редактирование)
}

// IsComplete returns true if every required field is present
func (r AvailabilityRequest) IsComplete() bool {
	return r.RoomID != "" && !r.Date.IsZero() && !r.StartTime.IsZero() && !r.EndTime.IsZero()
}

// AvailabilityResult verdict of an availability check
type AvailabilityResult struct {
	Available           bool
	ConflictingBookings []*Booking      // В порядке входного списка
	SuggestedSlots      []SuggestedSlot // В порядке генерации (раньше в течение дня - первые)
}

// NewAvailableResult returns the permissive "available" result with empty lists
func NewAvailableResult() *AvailabilityResult {
	return &AvailabilityResult{
		Available:           true,
		ConflictingBookings: []*Booking{},
		SuggestedSlots:      []SuggestedSlot{},
	}
}

// SuggestedSlot alternative free time slot of the requested duration
type SuggestedSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
	Available bool
	Reason    *string // Заполняется только для резервного предложения "на завтра"
}

// IsFallback returns true for the advisory "tomorrow" suggestion
func (s SuggestedSlot) IsFallback() bool {
	return s.Reason != nil
}

// OccupiedSlot booking projected to time-of-day bounds for visualization
type OccupiedSlot struct {
	Start   types.TimeString
	End     types.TimeString
	Booking *Booking
}
