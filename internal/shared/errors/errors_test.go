package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		wantType ErrorType
		wantCode int
	}{
		{name: "validation", err: NewValidationError("bad input"), wantType: ErrorTypeValidation, wantCode: http.StatusBadRequest},
		{name: "not found", err: NewNotFoundError("missing"), wantType: ErrorTypeNotFound, wantCode: http.StatusNotFound},
		{name: "conflict", err: NewConflictError("duplicate"), wantType: ErrorTypeConflict, wantCode: http.StatusConflict},
		{name: "unauthorized", err: NewUnauthorizedError("no token"), wantType: ErrorTypeUnauthorized, wantCode: http.StatusUnauthorized},
		{name: "forbidden", err: NewForbiddenError("not yours"), wantType: ErrorTypeForbidden, wantCode: http.StatusForbidden},
		{name: "internal", err: NewInternalError("boom"), wantType: ErrorTypeInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "not_found: missing", NewNotFoundError("missing").Error())
	assert.Equal(t, "not_found: missing (row 7)", NewNotFoundError("missing", "row 7").Error())
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsNotFoundError(NewNotFoundError("missing")))
	assert.False(t, IsNotFoundError(NewValidationError("bad input")))
	assert.False(t, IsNotFoundError(fmt.Errorf("plain error")))

	// Predicates follow wrapped chains.
	wrapped := fmt.Errorf("loading profile: %w", NewNotFoundError("missing"))
	assert.True(t, IsNotFoundError(wrapped))
	assert.True(t, IsAppError(wrapped))
}

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("Invalid request", []FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "content", Message: "content is too short"},
	})

	assert.Equal(t, "title: title is required", err.Details)
	assert.Len(t, err.Fields, 2)
}
