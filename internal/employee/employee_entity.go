package employee

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	FirstName     string     `gorm:"column:first_name;type:varchar(100);not null"`
	LastName      string     `gorm:"column:last_name;type:varchar(100);not null"`
	Email         string     `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Department    string     `gorm:"column:department;type:varchar(100)"`
	Position      string     `gorm:"column:position;type:varchar(100)"`
	ContactNumber string     `gorm:"column:contact_number;type:varchar(50)"`
	Address       string     `gorm:"column:address;type:text"`
	HireDate      *time.Time `gorm:"column:hire_date;type:date"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	UpdatedAt     time.Time  `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
