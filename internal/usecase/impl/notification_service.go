package impl

import (
	"context"
	"log/slog"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService creates the read side of notifications. Notifications
// are written by the lifecycle operations inside their own transactions.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListNotifications returns the user's notifications, newest first.
func (s *notificationService) ListNotifications(ctx context.Context, userID string) (*usecase.NotificationList, error) {
	items, err := s.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}

	return &usecase.NotificationList{Items: items, Unread: unread}, nil
}

// MarkAllRead acknowledges every notification of the user at once.
func (s *notificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	marked, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	s.log(ctx).Debug("Notifications marked read", slog.String("userID", userID), slog.Int("count", marked))

	return marked, nil
}
