package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP_AppError(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", Conflict("employee is already clocked IN"))

	got := ToHTTP(err)

	assert.Equal(t, http.StatusConflict, got.Status)
	assert.Equal(t, CodeConflict, got.Code)
	assert.Equal(t, "employee is already clocked IN", got.Message)
}

func TestToHTTP_UnknownErrorIsInternal(t *testing.T) {
	got := ToHTTP(errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, CodeInternalError, got.Code)
	assert.NotContains(t, got.Message, "connection refused")
}

func TestWrap_KeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, CodeInternalError, "failed", http.StatusInternalServerError)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "failed: boom", err.Error())
	assert.Nil(t, Wrap(nil, CodeInternalError, "failed", http.StatusInternalServerError))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		RequestedHours float64 `json:"requestedHours" validate:"required"`
		Email          string  `json:"email" validate:"email"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string { return f.Tag.Get("json") })

	err := MapValidationError(v.Struct(payload{Email: "x@y.z"}))
	assert.Equal(t, "Requested Hours is required", err.Error())

	err = MapValidationError(v.Struct(payload{RequestedHours: 1, Email: "nope"}))
	assert.Equal(t, "Email is invalid", err.Error())

	err = MapValidationError(errors.New("EOF"))
	assert.True(t, IsCode(err, CodeValidation))
}

func TestAppError_WithCauseKeepsIdentity(t *testing.T) {
	sentinel := New(CodeConflict, "Employee with the same email already exists", http.StatusConflict)
	cause := errors.New("duplicate key value violates unique constraint")

	err := sentinel.WithCause(cause)

	assert.ErrorIs(t, err, sentinel)
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, sentinel.Err)
	assert.Contains(t, err.Error(), "duplicate key")
	assert.Equal(t, sentinel.Message, ToHTTP(err).Message)
}

func TestAppError_IsDistinguishesSentinels(t *testing.T) {
	a := New(CodeValidation, "Invalid role", http.StatusBadRequest)
	b := New(CodeValidation, "Password must be at least 8 characters", http.StatusBadRequest)

	assert.False(t, errors.Is(a, b))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", a), a))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
}
