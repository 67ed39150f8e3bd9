package get_dashboard_stats

import "github.com/m04kA/SMC-RoomBookingService/internal/domain"

// DashboardStatsResponse HTTP response model
type DashboardStatsResponse struct {
	TotalBookings      int `json:"totalBookings"`
	MeetingsToday      int `json:"meetingsToday"`
	OngoingMeetings    int `json:"ongoingMeetings"`
	UpcomingMeetings   int `json:"upcomingMeetings"`
	AvailableRooms     int `json:"availableRooms"`
	TotalRooms         int `json:"totalRooms"`
	ActiveParticipants int `json:"activeParticipants"`
	CoffeeOrders       int `json:"coffeeOrders"`
}

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalBookings:      s.TotalBookings,
		MeetingsToday:      s.MeetingsToday,
		OngoingMeetings:    s.OngoingMeetings,
		UpcomingMeetings:   s.UpcomingMeetings,
		AvailableRooms:     s.AvailableRooms,
		TotalRooms:         s.TotalRooms,
		ActiveParticipants: s.ActiveParticipants,
		CoffeeOrders:       s.CoffeeOrders,
	}
}
