package overtime

import (
	"context"
	"database/sql"

	"optitrack/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=overtime_repo.go -destination=mock/overtime_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, o *OvertimeRequest) error
	FindByIDForUpdate(ctx context.Context, id string) (*OvertimeRequest, error)
	FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]OvertimeRequest, error)
	FindByStatus(ctx context.Context, status string) ([]OvertimeRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error)
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

func (r *repository) Create(ctx context.Context, o *OvertimeRequest) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*OvertimeRequest, error) {
	var o OvertimeRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&o, "id = ?", id).Error
	return &o, err
}

func (r *repository) FindByEmployeeAndStatus(ctx context.Context, employeeID, status string) ([]OvertimeRequest, error) {
	var rows []OvertimeRequest
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Order("request_date_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]OvertimeRequest, error) {
	var rows []OvertimeRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("request_date_time ASC").
		Find(&rows).Error
	return rows, err
}

// UpdateStatus touches status and updated_at only.
func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&OvertimeRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OvertimeRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByEmployeeAndStatus(ctx context.Context, employeeID, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OvertimeRequest{}).
		Where("employee_id = ? AND status = ?", employeeID, status).
		Count(&count).Error
	return count, err
}
