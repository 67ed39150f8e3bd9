package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

var roomColumns = []string{
	"r.id",
	"r.name",
	"r.capacity",
	"r.location_id",
	"l.name",
	"r.description",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает комнату
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns("id", "name", "capacity", "location_id", "description").
		Values(room.ID, room.Name, room.Capacity, room.LocationID, room.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&room.CreatedAt, &room.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"r.id": id})
}

// GetByName получает первую комнату с указанным именем в локации
func (r *Repository) GetByName(ctx context.Context, locationID, name string) (*domain.Room, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"r.location_id": locationID, "r.name": name})
}

// List получает комнаты, опционально только для одной локации
func (r *Repository) List(ctx context.Context, locationID *string) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectRooms().OrderBy("r.name ASC")
	if locationID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"r.location_id": *locationID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return rooms, nil
}

// Count возвращает общее количество комнат
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("rooms").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %w", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectRooms().
		Where(where).
		OrderBy("r.created_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan room: %w", ErrScanRow, op, err)
	}

	return room, nil
}

func selectRooms() squirrel.SelectBuilder {
	return psqlbuilder.Select(roomColumns...).
		From("rooms r").
		LeftJoin("locations l ON l.id = r.location_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.LocationID,
		&room.LocationName,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}
