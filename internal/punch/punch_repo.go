package punch

import (
	"context"
	"database/sql"
	"time"

	"optitrack/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=punch_repo.go -destination=mock/punch_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	LockEmployee(ctx context.Context, employeeID string) (bool, error)
	FindLast(ctx context.Context, employeeID string) (*Punch, error)
	Create(ctx context.Context, p *Punch) error
	ListByEmployee(ctx context.Context, employeeID string) ([]Punch, error)
	ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error)
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Punch, error)
	ListBetween(ctx context.Context, start, end time.Time) ([]Punch, error)
	ListAll(ctx context.Context, limit int) ([]Punch, error)
	CountClockedIn(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.BindTx(r.db, tx)}
}

// LockEmployee takes a row lock on the employee and reports whether it exists.
func (r *repository) LockEmployee(ctx context.Context, employeeID string) (bool, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", employeeID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return false, err
	}
	return len(ids) > 0, nil
}

func (r *repository) FindLast(ctx context.Context, employeeID string) (*Punch, error) {
	var p Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("timestamp DESC").
		First(&p).Error
	return &p, err
}

func (r *repository) Create(ctx context.Context, p *Punch) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("timestamp ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployeeBetween(ctx context.Context, employeeID string, start, end time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Order("timestamp ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListBetween(ctx context.Context, start, end time.Time) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Where("timestamp BETWEEN ? AND ?", start.UTC(), end.UTC()).
		Order("employee_id, timestamp ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListAll(ctx context.Context, limit int) ([]Punch, error) {
	var rows []Punch
	err := r.db.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

// CountClockedIn counts employees whose latest punch is IN.
func (r *repository) CountClockedIn(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM (
			SELECT DISTINCT ON (employee_id) employee_id, punch_type
			FROM punches
			ORDER BY employee_id, timestamp DESC
		) latest
		WHERE latest.punch_type = ?`, TypeIn).
		Scan(&count).Error
	return count, err
}
