package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/AlibekovAA/users-api/internal/common/constants"
	"github.com/AlibekovAA/users-api/internal/common/logger"
)

const DriverSQLite = "sqlite"

// OpenSQLite opens the database file at path with WAL journaling and a busy
// timeout. SQLite allows a single writer, so the pool is capped at one connection.
func OpenSQLite(ctx context.Context, log *logger.Logger, path string) (*sql.DB, error) {
	sqlDB, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	log.Infof("sqlite database opened: %s", path)
	StartSQLMetrics(ctx, sqlDB, DriverSQLite, constants.DBPoolMetricsInterval)
	return sqlDB, nil
}
