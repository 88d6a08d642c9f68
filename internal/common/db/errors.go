package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	pgx "github.com/jackc/pgx/v4"

	"github.com/AlibekovAA/users-api/internal/observability/metrics"
)

// HandleQueryError records the query latency and maps "no rows" from either
// driver to notFoundErr. Other errors are counted and wrapped with operation.
func HandleQueryError(driver string, err error, notFoundErr error, operation, table string, startTime time.Time) error {
	MeasureQueryDuration(driver, operation, table, startTime)

	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return notFoundErr
	}
	countQueryError(driver, operation, table, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func HandleExecError(driver string, err error, operation, table string, startTime time.Time) error {
	MeasureQueryDuration(driver, operation, table, startTime)

	if err == nil {
		return nil
	}
	countQueryError(driver, operation, table, err)
	return fmt.Errorf("failed to %s: %w", operation, err)
}

func MeasureQueryDuration(driver, operation, table string, startTime time.Time) {
	metrics.DBQueryDurationSeconds.WithLabelValues(driver, operation, table).Observe(time.Since(startTime).Seconds())
}

func countQueryError(driver, operation, table string, err error) {
	errorType := fmt.Sprintf("%T", err)
	metrics.DBQueryErrors.WithLabelValues(driver, operation, table, errorType).Inc()
}
