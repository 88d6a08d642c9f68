package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AlibekovAA/users-api/internal/common/bootstrap"
	commonhttp "github.com/AlibekovAA/users-api/internal/common/http"
	srv "github.com/AlibekovAA/users-api/internal/common/server"
	userhttp "github.com/AlibekovAA/users-api/internal/user/http"
)

const serviceName = "users-api"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.NewApp(ctx, serviceName)
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to start %s: %v\n", serviceName, err))
		os.Exit(1)
	}
	log := app.Log
	cfg := app.Config

	handler := userhttp.NewHandler(app.UserService, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle("GET /metrics", promhttp.Handler())

	rateLimiter := commonhttp.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.TrustProxyHeaders)
	baseHandler := commonhttp.BuildBaseHandler(serviceName, log, mux, commonhttp.BaseHandlerOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimiter:        rateLimiter,
	})

	serverConfig := srv.DefaultServerConfig(cfg.HTTPPort)
	server := srv.NewServer(serverConfig, baseHandler)

	shutdownHooks := []srv.ShutdownHook{
		func(context.Context) error {
			log.Infof("%s: stopping rate limiter", serviceName)
			rateLimiter.Stop()
			return nil
		},
		func(context.Context) error {
			log.Infof("%s: closing database", serviceName)
			cancel()
			app.Close()
			return nil
		},
	}

	srv.StartWithGracefulShutdownAndHooks(server, log, serviceName, shutdownHooks)
}
