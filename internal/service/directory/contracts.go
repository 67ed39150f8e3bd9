package directory

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// LocationRepository интерфейс репозитория локаций
type LocationRepository interface {
	Create(ctx context.Context, location *domain.Location) (*domain.Location, error)
	GetByID(ctx context.Context, id string) (*domain.Location, error)
	GetByName(ctx context.Context, name string) (*domain.Location, error)
	List(ctx context.Context, search *string) ([]*domain.Location, error)
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetByName(ctx context.Context, locationID, name string) (*domain.Room, error)
	List(ctx context.Context, locationID *string) ([]*domain.Room, error)
}

// ManagerRepository интерфейс репозитория менеджеров
type ManagerRepository interface {
	Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error)
	GetByEmail(ctx context.Context, email string) (*domain.Manager, error)
	List(ctx context.Context, search *string) ([]*domain.Manager, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
