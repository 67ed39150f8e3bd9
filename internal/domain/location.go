package domain

import "time"

// Location represents a site (office, building) that contains rooms
type Location struct {
	ID          string
	Name        string
	Address     *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Room represents a bookable meeting room
type Room struct {
	ID           string
	Name         string
	Capacity     *int
	LocationID   string
	LocationName *string // Denormalized on read
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Manager represents the person responsible for a booking
type Manager struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
