package dashboard

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// ComputeStats считает показатели по бронированиям дня [dayStart, dayStart+24h)
func ComputeStats(bookings []*domain.Booking, totalRooms int, dayStart, now time.Time) domain.DashboardStats {
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := domain.DashboardStats{
		TotalBookings: len(bookings),
		TotalRooms:    totalRooms,
	}

	busyRooms := make(map[string]struct{})
	for _, b := range bookings {
		if !b.StartAt.Before(dayStart) && b.StartAt.Before(dayEnd) {
			stats.MeetingsToday++
		}
		switch {
		case b.IsOngoing(now):
			stats.OngoingMeetings++
			busyRooms[b.RoomID] = struct{}{}
		case b.IsUpcoming(now):
			stats.UpcomingMeetings++
		}
		if b.HasRefreshments {
			stats.CoffeeOrders += b.RefreshmentQuantity
		}
	}

	stats.AvailableRooms = totalRooms - len(busyRooms)
	if stats.AvailableRooms < 0 {
		stats.AvailableRooms = 0
	}
	stats.ActiveParticipants = stats.MeetingsToday * domain.EstimatedParticipants

	return stats
}
