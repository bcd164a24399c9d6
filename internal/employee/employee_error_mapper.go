package employee

import (
	"errors"

	employeeerrors "optitrack/internal/employee/errors"
	"optitrack/internal/shared/apperror"

	"gorm.io/gorm"
)

// mapRepositoryError translates storage failures into employee errors.
// The only unique constraint on employees is the email.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case apperror.IsUniqueViolation(err):
		return employeeerrors.ErrEmployeeAlreadyExists.WithCause(err)
	default:
		return err
	}
}
