package bookingclient

import "strings"

// AvailabilityRequest запрос проверки доступности
// Date в формате YYYY-MM-DD, время в формате HH:MM
type AvailabilityRequest struct {
	RoomID           string `json:"roomId"`
	Date             string `json:"date"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// IsComplete возвращает true, если заполнены комната, дата и оба времени
func (r AvailabilityRequest) IsComplete() bool {
	return r.RoomID != "" && r.Date != "" && r.StartTime != "" && r.EndTime != ""
}

// Key ключ запроса для дедупликации
func (r AvailabilityRequest) Key() string {
	return strings.Join([]string{r.RoomID, r.Date, r.StartTime, r.EndTime, r.ExcludeBookingID}, "|")
}

// Booking бронирование в ответе сервиса (только нужные клиенту поля)
type Booking struct {
	ID          string  `json:"id"`
	RoomID      string  `json:"roomId"`
	ManagerID   string  `json:"managerId"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Name        *string `json:"name,omitempty"`
	RoomName    *string `json:"roomName,omitempty"`
	ManagerName *string `json:"managerName,omitempty"`
}

// SuggestedSlot предложенный свободный интервал
type SuggestedSlot struct {
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Available bool    `json:"available"`
	Reason    *string `json:"reason,omitempty"`
}

// AvailabilityResult результат проверки доступности
// Invalid выставляется клиентом, когда сервис отклонил запрос (400): интервал не считается свободным,
// Message содержит текст ошибки
type AvailabilityResult struct {
	Available           bool            `json:"available"`
	ConflictingBookings []Booking       `json:"conflictingBookings"`
	SuggestedSlots      []SuggestedSlot `json:"suggestedSlots"`
	Degraded            bool            `json:"degraded,omitempty"`
	Invalid             bool            `json:"-"`
	Message             string          `json:"-"`
}

// OccupiedSlot занятый интервал комнаты
type OccupiedSlot struct {
	Start   string  `json:"start"`
	End     string  `json:"end"`
	Booking Booking `json:"booking"`
}

type occupiedSlotsResponse struct {
	RoomID   string         `json:"roomId"`
	Date     string         `json:"date"`
	Slots    []OccupiedSlot `json:"slots"`
	Degraded bool           `json:"degraded,omitempty"`
}

// ErrorResponse модель ошибки сервиса
type ErrorResponse struct {
	Error string `json:"error"`
}

// permissive результат по умолчанию, когда проверить доступность не удалось
func permissive(degraded bool) *AvailabilityResult {
	return &AvailabilityResult{
		Available:           true,
		ConflictingBookings: []Booking{},
		SuggestedSlots:      []SuggestedSlot{},
		Degraded:            degraded,
	}
}

// rejected результат для запроса, который сервис признал некорректным
func rejected(message string) *AvailabilityResult {
	return &AvailabilityResult{
		Available:           false,
		ConflictingBookings: []Booking{},
		SuggestedSlots:      []SuggestedSlot{},
		Invalid:             true,
		Message:             message,
	}
}
