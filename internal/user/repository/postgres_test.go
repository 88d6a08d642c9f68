package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgconn"
)

func TestPgConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil", nil, nil},
		{"plain error", errors.New("boom"), nil},
		{"primary key", &pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"}, ErrIDAlreadyExists},
		{"email", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, ErrEmailAlreadyExists},
		{"wrapped email", fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}), ErrEmailAlreadyExists},
		{"other constraint", &pgconn.PgError{Code: "23505", ConstraintName: "other_key"}, nil},
		{"not null", &pgconn.PgError{Code: "23502", ConstraintName: "users_pkey"}, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pgConflict(tc.err); got != tc.want {
				t.Errorf("pgConflict() = %v, want %v", got, tc.want)
			}
		})
	}
}
