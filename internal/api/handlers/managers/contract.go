package managers

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListManagers(ctx context.Context, search *string) ([]models.ManagerResponse, error)
	CreateManager(ctx context.Context, req *models.CreateManagerRequest) (*models.ManagerResponse, error)
	DefaultManager(ctx context.Context) (*domain.Manager, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
