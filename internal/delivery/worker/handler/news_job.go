// Package handler contains the jobs run by the background worker.
package handler

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// NewsJob refreshes the cached legal news batch.
type NewsJob struct {
	assistant usecase.AssistantUsecase
	timeout   time.Duration
	logger    *slog.Logger
}

// NewsJobParams holds dependencies for NewsJob, injected by Fx.
type NewsJobParams struct {
	fx.In

	Assistant usecase.AssistantUsecase
	Logger    *slog.Logger
}

// NewNewsJob creates the news refresh job.
func NewNewsJob(params NewsJobParams) *NewsJob {
	return &NewsJob{
		assistant: params.Assistant,
		timeout:   2 * time.Minute,
		logger:    params.Logger,
	}
}

// Run performs one refresh. Each run gets its own trace id and logger.
func (j *NewsJob) Run(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, j.timeout)
	defer cancel()

	runID := uuid.NewString()
	logger := j.logger.With(slog.String("job", "news_refresh"), slog.String("request_id", runID))
	ctx = deliverycontext.WithRequestID(ctx, runID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	start := time.Now()
	if err := j.assistant.RefreshNews(ctx); err != nil {
		logger.Error("News refresh failed", slog.Any("error", err))
		return
	}

	logger.Debug("News refresh finished", slog.Duration("elapsed", time.Since(start)))
}
