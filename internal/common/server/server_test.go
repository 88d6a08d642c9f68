package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/AlibekovAA/users-api/internal/common/logger"
)

func TestServe_ShutsDownAndRunsHooks(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := NewServer(DefaultServerConfig("0"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	log := logger.NewWithWriter(io.Discard, "test", "error")

	ctx, cancel := context.WithCancel(context.Background())
	hookCalls := 0
	listenerClosedBeforeHooks := false
	hooks := []ShutdownHook{
		func(context.Context) error {
			hookCalls++
			conn, dialErr := net.DialTimeout("tcp", listener.Addr().String(), time.Second)
			if dialErr == nil {
				conn.Close()
			}
			listenerClosedBeforeHooks = dialErr != nil
			return nil
		},
		func(context.Context) error {
			hookCalls++
			return io.ErrUnexpectedEOF
		},
	}

	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, srv, listener, log, "test", hooks)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204, got %d", resp.StatusCode)
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if hookCalls != 2 {
		t.Errorf("expected both hooks to run, got %d", hookCalls)
	}
	if !listenerClosedBeforeHooks {
		t.Error("expected the server to stop listening before hooks run")
	}
}

func TestDefaultServerConfig(t *testing.T) {
	cfg := DefaultServerConfig("3003")
	if cfg.Addr != ":3003" {
		t.Errorf("expected :3003, got %q", cfg.Addr)
	}
	if cfg.ReadHeaderTimeout <= 0 || cfg.WriteTimeout <= 0 {
		t.Error("expected non-zero timeouts")
	}
}
