package domain

import "time"

// Booking represents a room reservation in the system
type Booking struct {
	ID        string
	RoomID    string
	ManagerID string
	StartAt   time.Time
	EndAt     time.Time

	Name        *string
	Description *string

	HasRefreshments        bool
	RefreshmentQuantity    int
	RefreshmentDescription *string

	// Denormalized data for display (filled on read, never used for availability logic)
	RoomName     *string
	RoomLocation *string
	ManagerName  *string
	ManagerEmail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the booked duration
func (b *Booking) Duration() time.Duration {
	return b.EndAt.Sub(b.StartAt)
}

// IsValidInterval returns true if the booking starts strictly before it ends
func (b *Booking) IsValidInterval() bool {
	return b.StartAt.Before(b.EndAt)
}

// Overlaps returns true if the booking strictly overlaps [start, end)
// Touching intervals (end of one == start of another) do not overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndAt) && end.After(b.StartAt)
}

// IsOngoing returns true if the booking is in progress at the given moment (inclusive bounds)
func (b *Booking) IsOngoing(now time.Time) bool {
	return !b.StartAt.After(now) && !b.EndAt.Before(now)
}

// IsUpcoming returns true if the booking starts after the given moment
func (b *Booking) IsUpcoming(now time.Time) bool {
	return b.StartAt.After(now)
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	RoomID    *string    // Фильтр по комнате (опционально)
	ManagerID *string    // Фильтр по менеджеру (опционально)
	From      *time.Time // Бронирования, заканчивающиеся после From (опционально)
	To        *time.Time // Бронирования, начинающиеся до To (опционально)
}

// IsSingleRoomDay returns true if the filter targets one room within a window of at most one day
func (f BookingsFilter) IsSingleRoomDay() bool {
	return f.RoomID != nil && f.From != nil && f.To != nil && f.To.Sub(*f.From) <= 24*time.Hour
}
