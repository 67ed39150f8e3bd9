package get_dashboard_stats

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

type DashboardService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
