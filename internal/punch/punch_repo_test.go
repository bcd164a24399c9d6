package punch_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"optitrack/internal/punch"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (punch.Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{DisableAutomaticPing: true})
	assert.NoError(t, err)

	return punch.NewRepository(gdb), mock, db
}

func TestPunchRepository_LockEmployee(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New().String()
	lockSQL := regexp.QuoteMeta(`SELECT "id" FROM "employees" WHERE id = $1 LIMIT $2 FOR UPDATE`)

	t.Run("existing employee", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)
		mock.ExpectQuery(lockSQL).WithArgs(empID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(empID))

		ok, err := repo.LockEmployee(ctx, empID)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo, mock, _ := setupRepoTest(t)
		mock.ExpectQuery(lockSQL).WithArgs(empID, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		ok, err := repo.LockEmployee(ctx, empID)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPunchRepository_FindLastNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := setupRepoTest(t)
	empID := uuid.New()
	ts := time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "punches" WHERE employee_id = \$1 ORDER BY timestamp DESC`).
		WithArgs(empID.String(), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "punch_type", "timestamp"}).
			AddRow(uuid.NewString(), empID.String(), punch.TypeOut, ts))

	p, err := repo.FindLast(ctx, empID.String())
	assert.NoError(t, err)
	assert.Equal(t, punch.TypeOut, p.PunchType)
	assert.True(t, ts.Equal(p.Timestamp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPunchRepository_CountClockedIn(t *testing.T) {
	ctx := context.Background()
	repo, mock, _ := setupRepoTest(t)

	mock.ExpectQuery(`SELECT DISTINCT ON \(employee_id\) employee_id, punch_type`).
		WithArgs(punch.TypeIn).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountClockedIn(ctx)
	assert.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPunchRepository_WithTxLeavesRootUsable(t *testing.T) {
	ctx := context.Background()
	repo, mock, db := setupRepoTest(t)
	empID := uuid.New().String()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "employees" WHERE id = $1 LIMIT $2 FOR UPDATE`)).
		WithArgs(empID, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(empID))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "punches" ORDER BY timestamp DESC LIMIT $1`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "punch_type", "timestamp"}))

	tx, err := db.BeginTx(ctx, nil)
	assert.NoError(t, err)
	ok, err := repo.WithTx(tx).LockEmployee(ctx, empID)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, tx.Commit())

	rows, err := repo.ListAll(ctx, 5)
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
