package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a login credential. EmployeeID is nil for accounts with no employee record.
type User struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID       *uuid.UUID `gorm:"column:employee_id;type:uuid;uniqueIndex"`
	Email            string     `gorm:"column:email;type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password         string     `gorm:"column:password;type:varchar(255);not null"`
	Role             string     `gorm:"column:role;type:varchar(20);not null;default:'EMPLOYEE'"`
	ResetToken       *string    `gorm:"column:reset_token;type:varchar(64);uniqueIndex"`
	ResetTokenExpiry *time.Time `gorm:"column:reset_token_expiry;type:timestamptz"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u User) EmployeeIDString() string {
	if u.EmployeeID == nil {
		return ""
	}
	return u.EmployeeID.String()
}
