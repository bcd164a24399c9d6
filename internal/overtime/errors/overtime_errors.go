package overtimeerrors

import (
	"net/http"

	"optitrack/internal/shared/apperror"
)

var (
	ErrOvertimeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Overtime request not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidOvertimeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid overtime request ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid overtimeDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRequestedHours = apperror.New(
		apperror.CodeInvalidInput,
		"requestedHours must be greater than zero",
		http.StatusBadRequest,
	)
	ErrRequestedHoursTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"requestedHours must be below 1000",
		http.StatusBadRequest,
	)
	ErrOnlyPendingApprovable = apperror.New(
		apperror.CodeConflict,
		"Only pending requests can be approved.",
		http.StatusConflict,
	)
	ErrOnlyPendingRejectable = apperror.New(
		apperror.CodeConflict,
		"Only pending requests can be rejected.",
		http.StatusConflict,
	)
	ErrNoLinkedEmployee = apperror.New(
		apperror.CodeForbidden,
		"This account is not linked to an employee",
		http.StatusForbidden,
	)
)
