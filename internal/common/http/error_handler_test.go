package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
	"github.com/AlibekovAA/users-api/internal/common/logger"
)

func TestErrorHandler_HandleError(t *testing.T) {
	h := NewErrorHandler(logger.NewWithWriter(io.Discard, "test", "debug"))

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
		wantHdr  string
	}{
		{
			name:     "validation",
			err:      commonerrors.NewValidationError("ID_ALREADY_EXISTS", "id", "id já existe"),
			wantCode: http.StatusBadRequest,
			wantBody: "id já existe",
			wantHdr:  "ID_ALREADY_EXISTS",
		},
		{
			name:     "not found wrapped",
			err:      fmt.Errorf("delete: %w", commonerrors.NewNotFoundError("USER_NOT_FOUND", "id não encontrado")),
			wantCode: http.StatusNotFound,
			wantBody: "id não encontrado",
			wantHdr:  "USER_NOT_FOUND",
		},
		{
			name:     "database failure hides driver text",
			err:      commonerrors.ErrDatabase.WithCause(errors.New("pq: password authentication failed")),
			wantCode: http.StatusInternalServerError,
			wantBody: "erro ao acessar o banco de dados",
			wantHdr:  "DATABASE_ERROR",
		},
		{
			name:     "plain error",
			err:      errors.New("something odd"),
			wantCode: http.StatusInternalServerError,
			wantBody: "Erro inesperado",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/users", nil)

			h.HandleError(rec, req, tc.err)

			if rec.Code != tc.wantCode {
				t.Errorf("expected status %d, got %d", tc.wantCode, rec.Code)
			}
			if rec.Body.String() != tc.wantBody {
				t.Errorf("expected body %q, got %q", tc.wantBody, rec.Body.String())
			}
			if got := rec.Header().Get("X-Error-Code"); got != tc.wantHdr {
				t.Errorf("expected X-Error-Code %q, got %q", tc.wantHdr, got)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
				t.Errorf("expected plain text, got %q", ct)
			}
		})
	}
}

func TestErrorHandler_NilIsNoop(t *testing.T) {
	h := NewErrorHandler(logger.NewWithWriter(io.Discard, "test", "error"))
	rec := httptest.NewRecorder()

	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/ping", nil), nil)

	if rec.Body.Len() != 0 {
		t.Errorf("expected no body, got %q", rec.Body.String())
	}
}
