package db

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/users-api/internal/common/constants"
	"github.com/AlibekovAA/users-api/internal/observability/metrics"
)

type poolStats struct {
	acquired int64
	idle     int64
	max      int64
	total    int64
}

func StartPoolMetrics(ctx context.Context, pool *pgxpool.Pool, interval time.Duration) {
	startStatsLoop(ctx, "postgres", interval, func() poolStats {
		stats := pool.Stat()
		return poolStats{
			acquired: int64(stats.AcquiredConns()),
			idle:     int64(stats.IdleConns()),
			max:      int64(stats.MaxConns()),
			total:    int64(stats.TotalConns()),
		}
	})
}

func StartSQLMetrics(ctx context.Context, db *sql.DB, driver string, interval time.Duration) {
	startStatsLoop(ctx, driver, interval, func() poolStats {
		stats := db.Stats()
		return poolStats{
			acquired: int64(stats.InUse),
			idle:     int64(stats.Idle),
			max:      int64(stats.MaxOpenConnections),
			total:    int64(stats.OpenConnections),
		}
	})
}

func startStatsLoop(ctx context.Context, driver string, interval time.Duration, collect func() poolStats) {
	if interval <= 0 {
		interval = constants.DBPoolMetricsInterval
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				publishStats(driver, collect())
			}
		}
	}()
}

func publishStats(driver string, s poolStats) {
	metrics.DBPoolAcquiredConnections.WithLabelValues(driver).Set(float64(s.acquired))
	metrics.DBPoolIdleConnections.WithLabelValues(driver).Set(float64(s.idle))
	metrics.DBPoolMaxConnections.WithLabelValues(driver).Set(float64(s.max))
	metrics.DBPoolTotalConnections.WithLabelValues(driver).Set(float64(s.total))
}
