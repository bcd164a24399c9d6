package overtime

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type OvertimeRequest struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_overtime_employee_status"`
	RequestDateTime time.Time       `gorm:"column:request_date_time;type:timestamptz;not null"`
	OvertimeDate    time.Time       `gorm:"type:date;not null"`
	RequestedHours  decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_overtime_employee_status;index:idx_overtime_status"`
	Reason          *string         `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OvertimeRequest) TableName() string {
	return "overtime_requests"
}
