package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"lawyerup/config"
	"lawyerup/internal/delivery/worker/handler"
	"lawyerup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type countingAssistant struct {
	usecase.AssistantUsecase
	calls   atomic.Int32
	started chan struct{}
	release chan struct{}
}

func (a *countingAssistant) RefreshNews(context.Context) error {
	if a.calls.Add(1) == 1 && a.started != nil {
		close(a.started)
		<-a.release
	}

	return nil
}

func newTestServer(t *testing.T, news *config.NewsConfig) (*workerServer, *countingAssistant, error) {
	t.Helper()

	return newTestServerWith(t, news, &countingAssistant{})
}

func newTestServerWith(t *testing.T, news *config.NewsConfig, assistant *countingAssistant) (*workerServer, *countingAssistant, error) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	d, err := NewServer(ServerParams{
		Lc:      lc,
		Ctx:     context.Background(),
		Cfg:     &config.Config{News: news},
		Logger:  logger,
		NewsJob: handler.NewNewsJob(handler.NewsJobParams{Assistant: assistant, Logger: logger}),
	})
	if err != nil {
		return nil, assistant, err
	}

	lc.RequireStart()
	t.Cleanup(lc.RequireStop)

	return d.(*workerServer), assistant, nil
}

func TestNewServer(t *testing.T) {
	t.Run("schedules the refresh", func(t *testing.T) {
		srv, _, err := newTestServer(t, &config.NewsConfig{Enabled: true, RefreshSpec: "@every 30m"})
		require.NoError(t, err)
		assert.Len(t, srv.cron.Entries(), 1)
	})

	t.Run("invalid spec", func(t *testing.T) {
		_, _, err := newTestServer(t, &config.NewsConfig{Enabled: true, RefreshSpec: "every now and then"})
		assert.Error(t, err)
	})

	t.Run("disabled worker is idle", func(t *testing.T) {
		for _, news := range []*config.NewsConfig{nil, {Enabled: false, RefreshSpec: "@every 1m"}} {
			srv, assistant, err := newTestServer(t, news)
			require.NoError(t, err)
			assert.Empty(t, srv.cron.Entries())

			done := make(chan error, 1)
			go func() { done <- srv.Serve(context.Background()) }()

			select {
			case err := <-done:
				assert.NoError(t, err)
			case <-time.After(time.Second):
				t.Fatal("disabled worker should return immediately")
			}
			assert.Zero(t, assistant.calls.Load())
		}
	})
}

func serveAsync(srv *workerServer) <-chan error {
	done := make(chan error, 1)
	go func() { done <- srv.Serve(context.Background()) }()

	return done
}

func requireReturns(t *testing.T, done <-chan error) {
	t.Helper()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestServe_StopDuringWarmup(t *testing.T) {
	assistant := &countingAssistant{started: make(chan struct{}), release: make(chan struct{})}
	srv, _, err := newTestServerWith(t, &config.NewsConfig{Enabled: true, RefreshSpec: "@every 30m"}, assistant)
	require.NoError(t, err)

	done := serveAsync(srv)

	select {
	case <-assistant.started:
	case <-time.After(5 * time.Second):
		t.Fatal("warm-up refresh never ran")
	}

	require.NoError(t, srv.stop(context.Background()))
	close(assistant.release)

	requireReturns(t, done)
}

func TestServe_StopBeforeServe(t *testing.T) {
	srv, assistant, err := newTestServer(t, &config.NewsConfig{Enabled: true, RefreshSpec: "@every 30m"})
	require.NoError(t, err)

	require.NoError(t, srv.stop(context.Background()))

	requireReturns(t, serveAsync(srv))
	assert.Zero(t, assistant.calls.Load())
}
