// Package worker runs scheduled background jobs.
package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"lawyerup/config"
	"lawyerup/internal/delivery"
	"lawyerup/internal/delivery/worker/handler"
	"lawyerup/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type workerServer struct {
	ctx     context.Context
	logger  *slog.Logger
	cron    *cron.Cron
	newsJob *handler.NewsJob
	enabled bool

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// ServerParams holds dependencies for the worker
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Cfg     *config.Config
	Logger  *slog.Logger
	NewsJob *handler.NewsJob
}

// NewServer creates the scheduled job runner
func NewServer(params ServerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "worker"))
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger), cron.Recover(cron.DiscardLogger)),
	)

	srv := &workerServer{
		ctx:     params.Ctx,
		logger:  logger,
		cron:    c,
		newsJob: params.NewsJob,
		enabled: params.Cfg.News != nil && params.Cfg.News.Enabled,
		done:    make(chan struct{}),
	}

	if srv.enabled {
		spec := params.Cfg.News.RefreshSpec
		if _, err := c.AddFunc(spec, func() { srv.newsJob.Run(srv.ctx) }); err != nil {
			return nil, errors.Wrapf(err, "invalid news refresh spec %q", spec)
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the scheduler, warms the news cache and blocks until the worker is stopped.
func (s *workerServer) Serve(ctx context.Context) error {
	if !s.enabled {
		s.logger.Info("News refresh disabled, worker idle")
		return nil
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.cron.Start()
	s.mu.Unlock()

	s.logger.Info("Starting worker", slog.Int("jobs", len(s.cron.Entries())))
	s.newsJob.Run(ctx)

	<-s.done

	return nil
}

// stop halts the scheduler, releases Serve and waits for running jobs to finish.
// Calling it before Serve keeps the scheduler from ever starting.
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down worker")

	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.done)
	}
	s.mu.Unlock()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "worker jobs did not finish")
	}
}
