package punch

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"
	"time"

	puncherrors "optitrack/internal/punch/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// ledgerRepo keeps punches in memory and records the order of calls.
type ledgerRepo struct {
	employees map[string]bool
	punches   []Punch
	calls     []string
	createErr error
}

func newLedgerRepo(employeeIDs ...string) *ledgerRepo {
	r := &ledgerRepo{employees: map[string]bool{}}
	for _, id := range employeeIDs {
		r.employees[id] = true
	}
	return r
}

func (r *ledgerRepo) WithTx(tx *sql.Tx) Repository { return r }

func (r *ledgerRepo) LockEmployee(ctx context.Context, employeeID string) (bool, error) {
	r.calls = append(r.calls, "lock")
	return r.employees[employeeID], nil
}

func (r *ledgerRepo) FindLast(ctx context.Context, employeeID string) (*Punch, error) {
	r.calls = append(r.calls, "last")
	var last *Punch
	for i := range r.punches {
		p := r.punches[i]
		if p.EmployeeID.String() == employeeID && (last == nil || p.Timestamp.After(last.Timestamp)) {
			last = &p
		}
	}
	if last == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return last, nil
}

func (r *ledgerRepo) Create(ctx context.Context, p *Punch) error {
	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return r.createErr
	}
	r.punches = append(r.punches, *p)
	return nil
}

func (r *ledgerRepo) ListByEmployee(ctx context.Context, employeeID string) ([]Punch, error) {
	var out []Punch
	for _, p := range r.punches {
		if p.EmployeeID.String() == employeeID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}

func (r *ledgerRepo) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error) {
	return nil, nil
}

func (r *ledgerRepo) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Punch, error) {
	return nil, nil
}

func (r *ledgerRepo) ListBetween(ctx context.Context, start, end time.Time) ([]Punch, error) {
	return nil, nil
}

func (r *ledgerRepo) ListAll(ctx context.Context, limit int) ([]Punch, error) {
	out := append([]Punch(nil), r.punches...)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *ledgerRepo) CountClockedIn(ctx context.Context) (int64, error) { return 0, nil }

func newTestService(t *testing.T, repo Repository) (*service, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	clock := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := NewService(db, repo).(*service)
	svc.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc, mock
}

func TestService_RecordPunch_Alternation(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New().String()
	repo := newLedgerRepo(empID)
	svc, mock := newTestService(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	in, err := svc.ClockIn(ctx, empID)
	assert.NoError(t, err)
	assert.Equal(t, TypeIn, in.PunchType)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockIn(ctx, empID)
	assert.ErrorIs(t, err, puncherrors.ErrAlreadyClockedIn)

	mock.ExpectBegin()
	mock.ExpectCommit()
	out, err := svc.RecordPunch(ctx, empID, "out")
	assert.NoError(t, err)
	assert.Equal(t, TypeOut, out.PunchType)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err = svc.ClockOut(ctx, empID)
	assert.ErrorIs(t, err, puncherrors.ErrNotClockedIn)

	assert.NoError(t, mock.ExpectationsWereMet())
	assert.Len(t, repo.punches, 2)

	list, err := svc.ListByEmployee(ctx, empID)
	assert.NoError(t, err)
	assert.Equal(t, []string{TypeIn, TypeOut}, []string{list[0].PunchType, list[1].PunchType})
}

func TestService_RecordPunch_FirstPunchMustBeIn(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New().String()
	repo := newLedgerRepo(empID)
	svc, mock := newTestService(t, repo)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := svc.ClockOut(ctx, empID)
	assert.ErrorIs(t, err, puncherrors.ErrNotClockedIn)
	assert.Empty(t, repo.punches)
}

func TestService_RecordPunch_LocksBeforeReading(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New().String()
	repo := newLedgerRepo(empID)
	svc, mock := newTestService(t, repo)

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err := svc.ClockIn(ctx, empID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"lock", "last", "create"}, repo.calls)
}

func TestService_RecordPunch_Rejections(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid type", func(t *testing.T) {
		svc, _ := newTestService(t, newLedgerRepo())
		_, err := svc.RecordPunch(ctx, uuid.New().String(), "BREAK")
		assert.ErrorIs(t, err, puncherrors.ErrInvalidPunchType)
	})

	t.Run("invalid employee id", func(t *testing.T) {
		svc, _ := newTestService(t, newLedgerRepo())
		_, err := svc.RecordPunch(ctx, "abc", TypeIn)
		assert.ErrorIs(t, err, puncherrors.ErrInvalidEmployeeID)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := newLedgerRepo()
		svc, mock := newTestService(t, repo)
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.ClockIn(ctx, uuid.New().String())
		assert.ErrorIs(t, err, puncherrors.ErrEmployeeNotFound)
		assert.Empty(t, repo.punches)
	})

	t.Run("store failure rolls back", func(t *testing.T) {
		empID := uuid.New().String()
		repo := newLedgerRepo(empID)
		repo.createErr = errors.New("disk full")
		svc, mock := newTestService(t, repo)
		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.ClockIn(ctx, empID)
		assert.EqualError(t, err, "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestService_ListAll_DefaultLimit(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New().String()
	repo := newLedgerRepo(empID)
	svc, mock := newTestService(t, repo)

	for i := 0; i < 4; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		if i%2 == 0 {
			_, _ = svc.ClockIn(ctx, empID)
		} else {
			_, _ = svc.ClockOut(ctx, empID)
		}
	}

	all, err := svc.ListAll(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, TypeOut, all[0].PunchType)

	two, err := svc.ListAll(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, two, 2)
}
