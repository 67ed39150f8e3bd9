package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// CreateLocationRequest запрос на создание локации
type CreateLocationRequest struct {
	Name        string  `json:"name"`
	Address     *string `json:"address,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateRoomRequest запрос на создание комнаты
type CreateRoomRequest struct {
	Name        string  `json:"name"`
	LocationID  string  `json:"locationId"`
	Capacity    *int    `json:"capacity,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CreateManagerRequest запрос на создание менеджера
type CreateManagerRequest struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Response модели

// LocationResponse ответ с данными локации
type LocationResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Address     *string   `json:"address,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LocationID   string    `json:"locationId"`
	LocationName *string   `json:"locationName,omitempty"`
	Capacity     *int      `json:"capacity,omitempty"`
	Description  *string   `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ManagerResponse ответ с данными менеджера
type ManagerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainLocation конвертирует domain модель в DTO
func FromDomainLocation(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Address:     l.Address,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) RoomResponse {
	return RoomResponse{
		ID:           r.ID,
		Name:         r.Name,
		LocationID:   r.LocationID,
		LocationName: r.LocationName,
		Capacity:     r.Capacity,
		Description:  r.Description,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// FromDomainManager конвертирует domain модель в DTO
func FromDomainManager(m *domain.Manager) ManagerResponse {
	return ManagerResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomainLocations конвертирует список локаций
func FromDomainLocations(items []*domain.Location) []LocationResponse {
	result := make([]LocationResponse, 0, len(items))
	for _, l := range items {
		result = append(result, FromDomainLocation(l))
	}
	return result
}

// FromDomainRooms конвертирует список комнат
func FromDomainRooms(items []*domain.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(items))
	for _, r := range items {
		result = append(result, FromDomainRoom(r))
	}
	return result
}

// FromDomainManagers конвертирует список менеджеров
func FromDomainManagers(items []*domain.Manager) []ManagerResponse {
	result := make([]ManagerResponse, 0, len(items))
	for _, m := range items {
		result = append(result, FromDomainManager(m))
	}
	return result
}
