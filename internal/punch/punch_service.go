package punch

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"optitrack/internal/metrics"
	puncherrors "optitrack/internal/punch/errors"
	"optitrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const DefaultListAllLimit = 100

//go:generate mockgen -source=punch_service.go -destination=mock/punch_service_mock.go -package=mock
type Service interface {
	RecordPunch(ctx context.Context, employeeID, punchType string) (PunchResponse, error)
	ClockIn(ctx context.Context, employeeID string) (PunchResponse, error)
	ClockOut(ctx context.Context, employeeID string) (PunchResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]PunchResponse, error)
	ListAll(ctx context.Context, limit int) ([]PunchResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("punch.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

// RecordPunch appends a punch when it keeps the employee's IN/OUT sequence alternating.
// The employee row lock serialises concurrent punches for the same employee.
func (s *service) RecordPunch(ctx context.Context, employeeID, punchType string) (PunchResponse, error) {
	punchType = strings.ToUpper(strings.TrimSpace(punchType))
	if punchType != TypeIn && punchType != TypeOut {
		return PunchResponse{}, puncherrors.ErrInvalidPunchType
	}
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return PunchResponse{}, puncherrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.LockEmployee(ctx, employeeID)
	if err != nil {
		return PunchResponse{}, err
	}
	if !found {
		return PunchResponse{}, puncherrors.ErrEmployeeNotFound
	}

	clockedIn := false
	last, err := qtx.FindLast(ctx, employeeID)
	switch {
	case err == nil:
		clockedIn = last.PunchType == TypeIn
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return PunchResponse{}, err
	}

	if punchType == TypeIn && clockedIn {
		metrics.PunchConflicts.WithLabelValues(punchType).Inc()
		return PunchResponse{}, puncherrors.ErrAlreadyClockedIn
	}
	if punchType == TypeOut && !clockedIn {
		metrics.PunchConflicts.WithLabelValues(punchType).Inc()
		return PunchResponse{}, puncherrors.ErrNotClockedIn
	}

	row := &Punch{
		ID:         uuid.New(),
		EmployeeID: empID,
		PunchType:  punchType,
		Timestamp:  s.now().UTC(),
	}
	if err := qtx.Create(ctx, row); err != nil {
		return PunchResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return PunchResponse{}, err
	}

	metrics.PunchesRecorded.WithLabelValues(punchType).Inc()
	s.logger.Info("punch recorded",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("employee_id", employeeID),
		zap.String("type", punchType),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (PunchResponse, error) {
	return s.RecordPunch(ctx, employeeID, TypeIn)
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (PunchResponse, error) {
	return s.RecordPunch(ctx, employeeID, TypeOut)
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]PunchResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, puncherrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return MapToResponses(rows), nil
}

func (s *service) ListAll(ctx context.Context, limit int) ([]PunchResponse, error) {
	if limit <= 0 {
		limit = DefaultListAllLimit
	}
	rows, err := s.repo.ListAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return MapToResponses(rows), nil
}

func mapToResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		PunchType:  p.PunchType,
		Timestamp:  p.Timestamp.UTC().Format(time.RFC3339),
	}
}

func MapToResponses(rows []Punch) []PunchResponse {
	res := make([]PunchResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}
