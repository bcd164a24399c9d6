package autherrors

import (
	"net/http"

	"optitrack/internal/shared/apperror"
)

const (
	CodeInvalidResetToken = "INVALID_RESET_TOKEN"
	CodeResetTokenExpired = "RESET_TOKEN_EXPIRED"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidation,
		"Role must be ADMIN or EMPLOYEE",
		http.StatusBadRequest,
	)
	ErrInvalidResetToken = apperror.New(
		CodeInvalidResetToken,
		"Invalid password setup token",
		http.StatusBadRequest,
	)
	ErrResetTokenExpired = apperror.New(
		CodeResetTokenExpired,
		"Password setup token has expired",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeValidation,
		"Password must be at least 8 characters",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
