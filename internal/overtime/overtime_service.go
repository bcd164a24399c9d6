package overtime

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"optitrack/internal/employee"
	employeeerrors "optitrack/internal/employee/errors"
	"optitrack/internal/metrics"
	"optitrack/internal/notification"
	overtimeerrors "optitrack/internal/overtime/errors"
	"optitrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

var maxRequestedHours = decimal.NewFromInt(1000)

// EmployeeDirectory resolves the employees overtime requests belong to.
type EmployeeDirectory interface {
	Exists(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetNames(ctx context.Context, ids []string) (map[string]string, error)
}

//go:generate mockgen -source=overtime_service.go -destination=mock/overtime_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitOvertimeRequest) (OvertimeResponse, error)
	ListPending(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
	ListApproved(ctx context.Context, employeeID string) ([]OvertimeResponse, error)
	ListAllPending(ctx context.Context) ([]OvertimeResponse, error)
	Approve(ctx context.Context, id string) (OvertimeResponse, error)
	Reject(ctx context.Context, id string) (OvertimeResponse, error)
	CountAllPending(ctx context.Context) (int64, error)
	CountPendingByEmployee(ctx context.Context, employeeID string) (int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeDirectory
	sender    notification.Sender
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeDirectory, sender notification.Sender, logger ...*zap.Logger) Service {
	l := zap.L().Named("overtime.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		sender:    sender,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitOvertimeRequest) (OvertimeResponse, error) {
	empID, err := uuid.Parse(employeeID)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidEmployeeID
	}
	// Bounds apply to the stored numeric(5,2) value.
	hours := req.RequestedHours.Round(2)
	if !hours.IsPositive() {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidRequestedHours
	}
	if hours.GreaterThanOrEqual(maxRequestedHours) {
		return OvertimeResponse{}, overtimeerrors.ErrRequestedHoursTooLarge
	}
	overtimeDate, err := time.Parse(dateLayout, req.OvertimeDate)
	if err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidDateFormat
	}

	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return OvertimeResponse{}, err
	}
	if !exists {
		return OvertimeResponse{}, overtimeerrors.ErrEmployeeNotFound
	}

	o := &OvertimeRequest{
		ID:              uuid.New(),
		EmployeeID:      empID,
		RequestDateTime: s.now().UTC(),
		OvertimeDate:    overtimeDate,
		RequestedHours:  hours,
		Status:          StatusPending,
		Reason:          req.Reason,
	}
	if err := s.repo.Create(ctx, o); err != nil {
		s.logger.Error("submit overtime persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return OvertimeResponse{}, err
	}

	s.logger.Info("overtime submitted",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("overtime_id", o.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("hours", o.RequestedHours.StringFixed(2)),
	)
	return mapToResponse(*o, ""), nil
}

func (s *service) ListPending(ctx context.Context, employeeID string) ([]OvertimeResponse, error) {
	return s.listByEmployee(ctx, employeeID, StatusPending)
}

func (s *service) ListApproved(ctx context.Context, employeeID string) ([]OvertimeResponse, error) {
	return s.listByEmployee(ctx, employeeID, StatusApproved)
}

func (s *service) listByEmployee(ctx context.Context, employeeID, status string) ([]OvertimeResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, overtimeerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployeeAndStatus(ctx, employeeID, status)
	if err != nil {
		return nil, err
	}
	return s.withNames(ctx, rows), nil
}

func (s *service) ListAllPending(ctx context.Context) ([]OvertimeResponse, error) {
	rows, err := s.repo.FindByStatus(ctx, StatusPending)
	if err != nil {
		return nil, err
	}
	return s.withNames(ctx, rows), nil
}

func (s *service) Approve(ctx context.Context, id string) (OvertimeResponse, error) {
	return s.decide(ctx, id, StatusApproved, overtimeerrors.ErrOnlyPendingApprovable)
}

func (s *service) Reject(ctx context.Context, id string) (OvertimeResponse, error) {
	return s.decide(ctx, id, StatusRejected, overtimeerrors.ErrOnlyPendingRejectable)
}

// decide moves a PENDING request to a terminal status under a row lock.
func (s *service) decide(ctx context.Context, id, targetStatus string, notPending error) (OvertimeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return OvertimeResponse{}, overtimeerrors.ErrInvalidOvertimeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("overtime decision begin tx failed", zap.Error(err))
		return OvertimeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	o, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OvertimeResponse{}, overtimeerrors.ErrOvertimeNotFound
		}
		return OvertimeResponse{}, err
	}
	if o.Status != StatusPending {
		s.logger.Warn("overtime decision on non pending request",
			zap.String("overtime_id", id),
			zap.String("from_status", o.Status),
			zap.String("to_status", targetStatus),
		)
		return OvertimeResponse{}, notPending
	}

	if err := qtx.UpdateStatus(ctx, id, targetStatus); err != nil {
		s.logger.Error("overtime decision persist failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("overtime decision commit failed", zap.String("overtime_id", id), zap.Error(err))
		return OvertimeResponse{}, err
	}
	o.Status = targetStatus

	metrics.OvertimeTransitions.WithLabelValues(targetStatus).Inc()
	s.logger.Info("overtime decided",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("overtime_id", id),
		zap.String("status", targetStatus),
	)

	name := s.notifyDecision(ctx, *o)
	return mapToResponse(*o, name), nil
}

// notifyDecision mails the employee and returns their name when it could be resolved.
func (s *service) notifyDecision(ctx context.Context, o OvertimeRequest) string {
	emp, err := s.employees.GetByID(ctx, o.EmployeeID.String())
	if err != nil {
		if !errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			s.logger.Warn("overtime decision lookup failed", zap.String("overtime_id", o.ID.String()), zap.Error(err))
		}
		return ""
	}

	notification.SendAsync(ctx, s.sender, s.logger, emp.Email,
		notification.OvertimeDecisionSubject(o.Status),
		notification.OvertimeDecisionBody(emp.FullName, o.OvertimeDate.Format(dateLayout), o.RequestedHours.StringFixed(2), o.Status),
	)
	return emp.FullName
}

func (s *service) CountAllPending(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, StatusPending)
}

func (s *service) CountPendingByEmployee(ctx context.Context, employeeID string) (int64, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return 0, overtimeerrors.ErrInvalidEmployeeID
	}
	return s.repo.CountByEmployeeAndStatus(ctx, employeeID, StatusPending)
}

func (s *service) withNames(ctx context.Context, rows []OvertimeRequest) []OvertimeResponse {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.EmployeeID.String())
	}

	names := map[string]string{}
	if len(ids) > 0 {
		var err error
		if names, err = s.employees.GetNames(ctx, ids); err != nil {
			s.logger.Warn("resolve employee names failed", zap.Error(err))
			names = map[string]string{}
		}
	}

	res := make([]OvertimeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, names[r.EmployeeID.String()])
	}
	return res
}

func mapToResponse(o OvertimeRequest, employeeName string) OvertimeResponse {
	return OvertimeResponse{
		ID:               o.ID.String(),
		EmployeeID:       o.EmployeeID.String(),
		EmployeeFullName: employeeName,
		RequestDateTime:  o.RequestDateTime.UTC().Format(time.RFC3339),
		OvertimeDate:     o.OvertimeDate.Format(dateLayout),
		RequestedHours:   o.RequestedHours.StringFixed(2),
		Status:           o.Status,
		Reason:           o.Reason,
	}
}
