package location

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

var locationColumns = []string{"id", "name", "address", "description", "created_at", "updated_at"}

// Repository репозиторий локаций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория локаций
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает локацию
func (r *Repository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if location.ID == "" {
		location.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("locations").
		Columns("id", "name", "address", "description").
		Values(location.ID, location.Name, location.Address, location.Description).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&location.CreatedAt, &location.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return location, nil
}

// GetByID получает локацию по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByName получает первую локацию с указанным именем
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Location, error) {
	return r.getOne(ctx, "GetByName", squirrel.Eq{"name": name})
}

// List получает локации, опционально фильтруя по подстроке в названии или адресе
func (r *Repository) List(ctx context.Context, search *string) ([]*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(locationColumns...).
		From("locations").
		OrderBy("name ASC")

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"address": pattern},
		})
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

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return locations, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Location, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(locationColumns...).
		From("locations").
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	location, err := scanLocation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan location: %w", ErrScanRow, op, err)
	}

	return location, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocation(row rowScanner) (*domain.Location, error) {
	var location domain.Location
	err := row.Scan(
		&location.ID,
		&location.Name,
		&location.Address,
		&location.Description,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &location, nil
}
