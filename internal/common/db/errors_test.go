package db

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	pgx "github.com/jackc/pgx/v4"
)

var errNotFound = errors.New("not found")

func TestHandleQueryError(t *testing.T) {
	start := time.Now()

	if err := HandleQueryError(DriverSQLite, nil, errNotFound, "find user by id", "users", start); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	if err := HandleQueryError(DriverPostgres, pgx.ErrNoRows, errNotFound, "find user by id", "users", start); !errors.Is(err, errNotFound) {
		t.Errorf("expected not found for pgx, got %v", err)
	}
	if err := HandleQueryError(DriverSQLite, sql.ErrNoRows, errNotFound, "find user by id", "users", start); !errors.Is(err, errNotFound) {
		t.Errorf("expected not found for database/sql, got %v", err)
	}

	cause := errors.New("disk I/O error")
	err := HandleQueryError(DriverSQLite, cause, errNotFound, "find user by id", "users", start)
	if !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
	if err.Error() != "failed to find user by id: disk I/O error" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestHandleExecError(t *testing.T) {
	if err := HandleExecError(DriverSQLite, nil, "delete user", "users", time.Now()); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	cause := errors.New("locked")
	if err := HandleExecError(DriverSQLite, cause, "delete user", "users", time.Now()); !errors.Is(err, cause) {
		t.Errorf("expected wrapped cause, got %v", err)
	}
}
