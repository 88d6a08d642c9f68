package commonerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestDomainError_WithCausePreservesIdentity(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrDatabase.WithCause(cause)

	if !errors.Is(err, ErrDatabase) {
		t.Error("expected errors.Is to match the sentinel")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to reach the cause")
	}
	if err.Message() != "erro ao acessar o banco de dados" {
		t.Errorf("message should not include the cause, got %q", err.Message())
	}
	if err.Error() != "erro ao acessar o banco de dados: connection refused" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestAsDomainError_Wrapped(t *testing.T) {
	base := NewValidationError("ID_TOO_SHORT", "id", "id curto")
	wrapped := fmt.Errorf("create user: %w", base)

	de, ok := AsDomainError(wrapped)
	if !ok {
		t.Fatal("expected a domain error")
	}
	if de.HTTPStatus() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", de.HTTPStatus())
	}
	if de.Field() != "id" {
		t.Errorf("expected field id, got %q", de.Field())
	}
	if de.Category() != CategoryValidation {
		t.Errorf("expected validation category, got %s", de.Category())
	}
}

func TestAsDomainError_PlainError(t *testing.T) {
	if _, ok := AsDomainError(errors.New("boom")); ok {
		t.Error("plain errors must not be reported as domain errors")
	}
	if _, ok := AsDomainError(nil); ok {
		t.Error("nil is not a domain error")
	}
}

func TestConstructorsStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      DomainError
		status   int
		category ErrorCategory
	}{
		{"validation", NewValidationError("X", "f", "m"), http.StatusBadRequest, CategoryValidation},
		{"not found", NewNotFoundError("X", "m"), http.StatusNotFound, CategoryNotFound},
		{"internal", NewInternalError("X", "m", errors.New("cause")), http.StatusInternalServerError, CategoryInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.HTTPStatus() != tc.status {
				t.Errorf("expected %d, got %d", tc.status, tc.err.HTTPStatus())
			}
			if tc.err.Category() != tc.category {
				t.Errorf("expected %s, got %s", tc.category, tc.err.Category())
			}
		})
	}
}
