package puncherrors

import (
	"net/http"

	"optitrack/internal/shared/apperror"
)

var (
	ErrInvalidPunchType = apperror.New(
		apperror.CodeInvalidInput,
		"Punch type must be IN or OUT",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"employee is already clocked IN",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeConflict,
		"employee is not currently clocked IN",
		http.StatusConflict,
	)
	ErrNoLinkedEmployee = apperror.New(
		apperror.CodeForbidden,
		"This account is not linked to an employee",
		http.StatusForbidden,
	)
)
