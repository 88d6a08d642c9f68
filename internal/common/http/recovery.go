package http

import (
	"net/http"
	"runtime/debug"

	commonerrors "github.com/AlibekovAA/users-api/internal/common/errors"
	"github.com/AlibekovAA/users-api/internal/common/logger"
	"github.com/AlibekovAA/users-api/internal/observability/metrics"
)

func RecoveryMiddleware(log *logger.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}
					metrics.PanicsRecoveredTotal.Inc()
					log.WithFields(r.Context(), logger.Fields{"action": "panic"}).
						Errorf("panic recovered: %v\n%s", err, debug.Stack())
					WriteError(w, http.StatusInternalServerError, commonerrors.FallbackMessage)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
