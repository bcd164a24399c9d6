package report

import (
	"context"
	"time"

	"optitrack/internal/punch"
	reporterrors "optitrack/internal/report/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PunchStore is the read side of the punch ledger.
type PunchStore interface {
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]punch.Punch, error)
}

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	HoursBetween(ctx context.Context, employeeID string, start, end time.Time) (HoursResponse, error)
	TodayHours(ctx context.Context, employeeID string) (HoursResponse, error)
	WeeklyHours(ctx context.Context, employeeID string) (HoursResponse, error)
	Location() *time.Location
}

type service struct {
	store  PunchStore
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(store PunchStore, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{store: store, loc: loc, now: time.Now, logger: l}
}

func (s *service) Location() *time.Location {
	return s.loc
}

func (s *service) HoursBetween(ctx context.Context, employeeID string, start, end time.Time) (HoursResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return HoursResponse{}, reporterrors.ErrInvalidEmployeeID
	}
	if start.After(end) {
		return HoursResponse{}, reporterrors.ErrInvalidRange
	}

	rows, err := s.store.ListByEmployeeBetween(ctx, employeeID, start, end)
	if err != nil {
		s.logger.Error("load punches failed", zap.String("employee_id", employeeID), zap.Error(err))
		return HoursResponse{}, err
	}

	return HoursResponse{
		EmployeeID: employeeID,
		Start:      start.Format(time.RFC3339),
		End:        end.Format(time.RFC3339),
		Hours:      HoursWorked(rows, start, end),
	}, nil
}

func (s *service) TodayHours(ctx context.Context, employeeID string) (HoursResponse, error) {
	start, end := TodayWindow(s.now(), s.loc)
	return s.HoursBetween(ctx, employeeID, start, end)
}

func (s *service) WeeklyHours(ctx context.Context, employeeID string) (HoursResponse, error) {
	start, end := WeekWindow(s.now(), s.loc)
	return s.HoursBetween(ctx, employeeID, start, end)
}
