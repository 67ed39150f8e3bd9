package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
// Даты включительные: EndDate захватывает весь указанный день
type ListBookingsRequest struct {
	RoomID    *string    `json:"roomId,omitempty"`
	ManagerID *string    `json:"managerId,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр, даты трактуются в локации loc
func (r *ListBookingsRequest) ToDomainFilter(loc *time.Location) domain.BookingsFilter {
	filter := domain.BookingsFilter{
		RoomID:    r.RoomID,
		ManagerID: r.ManagerID,
	}

	if r.StartDate != nil {
		from := startOfDay(*r.StartDate, loc)
		filter.From = &from
	}
	if r.EndDate != nil {
		to := startOfDay(*r.EndDate, loc).AddDate(0, 0, 1)
		filter.To = &to
	}

	return filter
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	ManagerID string `json:"managerId"`
	Date      string `json:"date"`      // "2026-10-21"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"

	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`

	Name                   *string `json:"name,omitempty"`
	Description            *string `json:"description,omitempty"`
	HasRefreshments        bool    `json:"hasRefreshments"`
	RefreshmentQuantity    int     `json:"refreshmentQuantity"`
	RefreshmentDescription *string `json:"refreshmentDescription,omitempty"`

	// Денормализованные данные
	RoomName     *string `json:"roomName,omitempty"`
	RoomLocation *string `json:"roomLocation,omitempty"`
	ManagerName  *string `json:"managerName,omitempty"`
	ManagerEmail *string `json:"managerEmail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// Дата и время суток выводятся в локации loc
func FromDomainBooking(b *domain.Booking, loc *time.Location) *BookingResponse {
	if b == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}

	startLocal := b.StartAt.In(loc)

	return &BookingResponse{
		ID:                     b.ID,
		RoomID:                 b.RoomID,
		ManagerID:              b.ManagerID,
		Date:                   startLocal.Format(domain.DateFormat),
		StartTime:              types.NewTimeString(startLocal).String(),
		EndTime:                types.NewTimeString(b.EndAt.In(loc)).String(),
		StartAt:                b.StartAt,
		EndAt:                  b.EndAt,
		Name:                   b.Name,
		Description:            b.Description,
		HasRefreshments:        b.HasRefreshments,
		RefreshmentQuantity:    b.RefreshmentQuantity,
		RefreshmentDescription: b.RefreshmentDescription,
		RoomName:               b.RoomName,
		RoomLocation:           b.RoomLocation,
		ManagerName:            b.ManagerName,
		ManagerEmail:           b.ManagerEmail,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking, loc *time.Location) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		if dto := FromDomainBooking(b, loc); dto != nil {
			resp.Bookings = append(resp.Bookings, *dto)
		}
	}
	return resp
}
