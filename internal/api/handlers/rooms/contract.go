package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/directory/models"
)

type DirectoryService interface {
	ListRooms(ctx context.Context, locationID *string) ([]models.RoomResponse, error)
	CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
	DefaultRoom(ctx context.Context) (*domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
