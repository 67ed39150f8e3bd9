package dbmetrics

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	operations []string
	errors     int
}

func (r *recorderStub) ObserveDBQuery(operation string, _ time.Duration, err error) {
	r.operations = append(r.operations, operation)
	if err != nil {
		r.errors++
	}
}

func (r *recorderStub) SetDBStats(sql.DBStats) {}

func TestDB_RecordsOperations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &recorderStub{}
	wrapped := Wrap(db, rec)

	mock.ExpectExec("DELETE FROM bookings").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM rooms").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("r-1"))

	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM bookings WHERE id = $1", "b-1")
	require.NoError(t, err)

	rows, err := wrapped.QueryContext(context.Background(), "SELECT id FROM rooms")
	require.NoError(t, err)
	rows.Close()

	assert.Equal(t, []string{"delete", "select"}, rec.operations)
	assert.Zero(t, rec.errors)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetExecutor_UsesTransactionFromContext(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	wrapped := Wrap(db, nil)

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(wrapped), GetExecutor(ctx, wrapped))

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, wrapped))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOperationOf(t *testing.T) {
	assert.Equal(t, "select", operationOf("  SELECT * FROM bookings"))
	assert.Equal(t, "insert", operationOf("INSERT INTO rooms"))
	assert.Equal(t, "other", operationOf("CREATE TABLE x"))
	assert.Equal(t, "unknown", operationOf(""))
}
