package httpserver_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chiclang/chicweb/pkg/httpserver"
)

// startServer runs srv in the background and returns the bound address and
// a channel that receives Run's result.
func startServer(t *testing.T, srv *httpserver.Server, started <-chan struct{}, ctx context.Context, h http.Handler) (string, <-chan error) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, h) }()
	select {
	case <-started:
	case err := <-done:
		t.Fatalf("run returned early: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not start")
	}
	return srv.Addr(), done
}

func waitDone(t *testing.T, done <-chan error) {
	t.Helper()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not finish")
	}
}

func TestRunAndCancel(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr, done := startServer(t, srv, started, ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusTeapot, resp.StatusCode)

	cancel()
	waitDone(t, done)
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestManualShutdownRunsStopHooks(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	var stopped atomic.Bool
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(100*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
		httpserver.WithStopHook(func(*slog.Logger) { stopped.Store(true) }),
	)

	_, done := startServer(t, srv, started, context.Background(), nil)
	require.NoError(t, srv.Shutdown(context.Background()))
	require.NoError(t, srv.Shutdown(context.Background()), "second shutdown")
	waitDone(t, done)
	assert.True(t, stopped.Load())
}

func TestStartError(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := httpserver.New(httpserver.WithAddr(ln.Addr().String()))
	err = srv.Run(context.Background(), http.NewServeMux())
	require.Error(t, err)
	assert.ErrorIs(t, err, httpserver.ErrStart)
}

func TestAlreadyRunning(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	srv := httpserver.New(
		httpserver.WithAddr("127.0.0.1:0"),
		httpserver.WithShutdownTimeout(50*time.Millisecond),
		httpserver.WithStartHook(func(*slog.Logger) { close(started) }),
	)
	ctx, cancel := context.WithCancel(context.Background())
	_, done := startServer(t, srv, started, ctx, http.NewServeMux())

	err := srv.Run(context.Background(), http.NewServeMux())
	assert.ErrorIs(t, err, httpserver.ErrStart)
	assert.ErrorIs(t, err, httpserver.ErrAlreadyRunning)

	cancel()
	waitDone(t, done)
}

func TestShutdownBeforeRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New()
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, ":8080", srv.Addr())
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	started := make(chan struct{})
	var gotLogger *slog.Logger
	l := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := httpserver.NewFromConfig(httpserver.Config{
		Addr:            "127.0.0.1:0",
		ReadTimeout:     time.Second,
		ShutdownTimeout: 50 * time.Millisecond,
	},
		httpserver.WithLogger(l),
		httpserver.WithStartHook(func(lg *slog.Logger) {
			gotLogger = lg
			close(started)
		}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	addr, done := startServer(t, srv, started, ctx, nil)

	assert.NotEqual(t, "127.0.0.1:0", addr, "bound port is reported")
	assert.Equal(t, l, gotLogger)

	resp, err := http.Get("http://" + addr)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "nil handler serves 404")

	cancel()
	waitDone(t, done)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fn   func()
	}{
		{"addr", func() { httpserver.WithAddr("") }},
		{"read", func() { httpserver.WithReadTimeout(-time.Second) }},
		{"read header", func() { httpserver.WithReadHeaderTimeout(0) }},
		{"write", func() { httpserver.WithWriteTimeout(-time.Second) }},
		{"idle", func() { httpserver.WithIdleTimeout(-time.Second) }},
		{"shutdown", func() { httpserver.WithShutdownTimeout(-time.Second) }},
		{"start hook", func() { httpserver.WithStartHook(nil) }},
		{"stop hook", func() { httpserver.WithStopHook(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Panics(t, tt.fn)
		})
	}
	assert.NotPanics(t, func() { httpserver.WithLogger(nil) })
}

func TestLivenessHandler(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	httpserver.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	t.Parallel()

	ok := httpserver.Check{Name: "store", Func: func(context.Context) error { return nil }}
	failing := httpserver.Check{Name: "redis", Func: func(context.Context) error { return errors.New("down") }}
	deadline := httpserver.Check{Name: "deadline", Func: func(ctx context.Context) error {
		if _, has := ctx.Deadline(); !has {
			return errors.New("no deadline")
		}
		return nil
	}}

	tests := []struct {
		name     string
		checks   []httpserver.Check
		wantCode int
		wantBody string
	}{
		{"no checks", nil, http.StatusOK, "READY"},
		{"all pass", []httpserver.Check{ok, deadline}, http.StatusOK, "READY"},
		{"one fails", []httpserver.Check{ok, failing}, http.StatusServiceUnavailable, "NOT_READY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			h := httpserver.ReadinessHandler(nil, time.Second, tt.checks...)
			h(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
