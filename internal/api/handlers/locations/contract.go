package locations

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListLocations(ctx context.Context, search *string) ([]models.LocationResponse, error)
	CreateLocation(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error)
	DefaultLocation(ctx context.Context) (*domain.Location, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
