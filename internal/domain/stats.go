package domain

// DashboardStats aggregate numbers shown on the dashboard
type DashboardStats struct {
	TotalBookings      int // Все бронирования за сегодня
	MeetingsToday      int // Бронирования, начинающиеся сегодня
	OngoingMeetings    int // Идут прямо сейчас
	UpcomingMeetings   int // Начнутся позже
	AvailableRooms     int // Комнаты без текущей встречи
	TotalRooms         int
	ActiveParticipants int // Оценка: MeetingsToday * EstimatedParticipants
	CoffeeOrders       int // Сумма заказанных порций кофе-брейка
}
