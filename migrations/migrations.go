package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var files embed.FS

var (
	// ErrReadMigrations возвращается, когда встроенные миграции не удалось прочитать
	ErrReadMigrations = errors.New("migrations: failed to read migrations")

	// ErrApplyMigration возвращается при ошибке применения миграции
	ErrApplyMigration = errors.New("migrations: failed to apply migration")
)

const createVersionsTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Migration встроенный SQL файл
type Migration struct {
	Version string
	SQL     string
}

// List возвращает миграции в порядке применения
func List() ([]Migration, error) {
	names, err := fs.Glob(files, "sql/*.sql")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadMigrations, err)
	}
	sort.Strings(names)

	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrReadMigrations, name, err)
		}
		version := strings.TrimSuffix(strings.TrimPrefix(name, "sql/"), ".sql")
		migrations = append(migrations, Migration{Version: version, SQL: string(data)})
	}
	return migrations, nil
}

// Up применяет еще не примененные миграции, каждую в своей транзакции
// Возвращает количество примененных миграций
func Up(ctx context.Context, db *sql.DB, logger Logger) (int, error) {
	if _, err := db.ExecContext(ctx, createVersionsTable); err != nil {
		return 0, fmt.Errorf("%w: schema_migrations: %v", ErrApplyMigration, err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return 0, err
	}

	migrations, err := List()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return count, err
		}
		logger.Info("Migration %s applied", m.Version)
		count++
	}
	return count, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("%w: read versions: %v", ErrApplyMigration, err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("%w: scan version: %v", ErrApplyMigration, err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read versions: %v", ErrApplyMigration, err)
	}
	return applied, nil
}

func apply(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApplyMigration, m.Version, err)
	}

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s: %v", ErrApplyMigration, m.Version, err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", m.Version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %s: %v", ErrApplyMigration, m.Version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrApplyMigration, m.Version, err)
	}
	return nil
}
