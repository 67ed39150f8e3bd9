package manager

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

var managerColumns = []string{"id", "name", "email", "phone", "created_at", "updated_at"}

// Repository репозиторий менеджеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория менеджеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает менеджера
func (r *Repository) Create(ctx context.Context, manager *domain.Manager) (*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if manager.ID == "" {
		manager.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("managers").
		Columns("id", "name", "email", "phone").
		Values(manager.ID, manager.Name, manager.Email, manager.Phone).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&manager.CreatedAt, &manager.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return manager, nil
}

// GetByID получает менеджера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Manager, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает менеджера по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Manager, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Eq{"email": email})
}

// List получает менеджеров, опционально фильтруя по подстроке в имени или email
func (r *Repository) List(ctx context.Context, search *string) ([]*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(managerColumns...).
		From("managers").
		OrderBy("name ASC")

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"email": pattern},
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

	managers := make([]*domain.Manager, 0)
	for rows.Next() {
		manager, err := scanManager(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		managers = append(managers, manager)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return managers, nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Manager, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(managerColumns...).
		From("managers").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	manager, err := scanManager(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrManagerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan manager: %w", ErrScanRow, op, err)
	}

	return manager, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanManager(row rowScanner) (*domain.Manager, error) {
	var manager domain.Manager
	err := row.Scan(
		&manager.ID,
		&manager.Name,
		&manager.Email,
		&manager.Phone,
		&manager.CreatedAt,
		&manager.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &manager, nil
}
