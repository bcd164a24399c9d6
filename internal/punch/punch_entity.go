package punch

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeIn  = "IN"
	TypeOut = "OUT"
)

// Punch is immutable once written.
type Punch struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index:idx_punches_employee_ts,priority:1"`
	PunchType  string    `gorm:"column:punch_type;type:varchar(3);not null"`
	Timestamp  time.Time `gorm:"column:timestamp;type:timestamptz;not null;index:idx_punches_employee_ts,priority:2,sort:desc"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Punch) TableName() string {
	return "punches"
}
