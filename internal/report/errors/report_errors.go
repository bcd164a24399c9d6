package reporterrors

import (
	"net/http"

	"optitrack/internal/shared/apperror"
)

var (
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"start must not be after end",
		http.StatusBadRequest,
	)
	ErrInvalidTimestamp = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid timestamp, expected RFC3339 or 2006-01-02T15:04:05",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)
