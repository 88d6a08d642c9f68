package http

import (
	"net/http"

	"github.com/AlibekovAA/users-api/internal/common/httpmetrics"
	"github.com/AlibekovAA/users-api/internal/common/logger"
)

type BaseHandlerOptions struct {
	CORSAllowedOrigins []string
	MaxRequestSize     int64
	// RateLimiter is optional; probes on /health and /metrics are never limited.
	RateLimiter *RateLimiter
}

func BuildBaseHandler(appName string, log *logger.Logger, handler http.Handler, opts BaseHandlerOptions) http.Handler {
	metrics := httpmetrics.New(appName)
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(opts.MaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware
	csp := ContentSecurityPolicyMiddleware("")
	cors := CORSMiddleware(opts.CORSAllowedOrigins)

	inner := metrics.Wrap(handler)
	if opts.RateLimiter != nil {
		inner = skipPaths(opts.RateLimiter.Middleware(), inner, "/health", "/metrics")
	}

	return securityHeaders(csp(cors(recovery(traceID(maxRequestSize(inner))))))
}

func skipPaths(mw func(http.Handler) http.Handler, next http.Handler, paths ...string) http.Handler {
	wrapped := mw(next)
	skip := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		skip[p] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := skip[r.URL.Path]; ok {
			next.ServeHTTP(w, r)
			return
		}
		wrapped.ServeHTTP(w, r)
	})
}
