package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "error without wrapped error",
			appErr:   &AppError{Code: CodeNotFound, Message: "resource not found"},
			expected: "resource not found",
		},
		{
			name: "error with wrapped error",
			appErr: &AppError{
				Code:    CodeInternalError,
				Message: "internal error",
				Err:     errors.New("database connection failed"),
			},
			expected: "internal error: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.appErr.Error(); got != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := Wrap(originalErr, ErrInternalError)

	if unwrapped := appErr.Unwrap(); unwrapped != originalErr {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, originalErr)
	}
	if !errors.Is(appErr, originalErr) {
		t.Error("errors.Is() should see the wrapped error")
	}
}

func TestNew(t *testing.T) {
	appErr := New(CodeBadRequest, "bad request test", http.StatusBadRequest)

	if appErr.Code != CodeBadRequest {
		t.Errorf("New() Code = %v, want %v", appErr.Code, CodeBadRequest)
	}
	if appErr.Status != http.StatusBadRequest {
		t.Errorf("New() Status = %v, want %v", appErr.Status, http.StatusBadRequest)
	}
}

func TestWithMessage(t *testing.T) {
	custom := ErrValidation.WithMessage("title is required")

	if custom.Message != "title is required" {
		t.Errorf("WithMessage() Message = %v", custom.Message)
	}
	if custom.Code != CodeValidationError {
		t.Errorf("WithMessage() Code = %v, want %v", custom.Code, CodeValidationError)
	}
	if ErrValidation.Message != "validation failed" {
		t.Error("WithMessage() must not modify the sentinel")
	}
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("saving about: %w", ErrVersionConflict.WithMessage("stale"))

	if !Is(wrapped, ErrVersionConflict) {
		t.Error("Is() should match through fmt wrapping")
	}
	if Is(wrapped, ErrConflict) {
		t.Error("Is() should compare codes, not statuses")
	}
	if Is(errors.New("plain"), ErrNotFound) {
		t.Error("Is() should be false for plain errors")
	}
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"version conflict", ErrVersionConflict, http.StatusConflict},
		{"validation", ErrValidation.WithMessage("x"), http.StatusUnprocessableEntity},
		{"wrapped", fmt.Errorf("ctx: %w", ErrUnauthorized), http.StatusUnauthorized},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetStatus(tt.err); got != tt.want {
				t.Errorf("GetStatus() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetMessage(t *testing.T) {
	if got := GetMessage(ErrNotFound.WithMessage("blog post not found")); got != "blog post not found" {
		t.Errorf("GetMessage() = %v", got)
	}
	if got := GetMessage(errors.New("sql: connection refused")); got != "internal server error" {
		t.Errorf("GetMessage() leaked %q", got)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"sentinel copy", ErrNotFound.WithMessage("blog post not found"), CodeNotFound},
		{"wrapped", fmt.Errorf("saving: %w", ErrVersionConflict), CodeVersionConflict},
		{"plain error", errors.New("disk full"), CodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
