package notification

import (
	"context"
	"log/slog"
	"time"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const pushTitle = "LawyerUp"

// UserTopic is the push topic a user's devices subscribe to.
func UserTopic(userID string) string {
	return "user-" + userID
}

type fanoutSink struct {
	realtime service.RealtimePublisher
	push     service.PushService
	logger   *slog.Logger
}

// SinkParams holds dependencies for the notification sink, injected by Fx.
type SinkParams struct {
	fx.In

	Realtime service.RealtimePublisher `optional:"true"`
	Push     service.PushService       `optional:"true"`
	Logger   *slog.Logger
}

// NewNotificationSink fans a notification out to the realtime hub and, when
// configured, to the recipient's push topic.
func NewNotificationSink(params SinkParams) service.NotificationSink {
	return &fanoutSink{
		realtime: params.Realtime,
		push:     params.Push,
		logger:   params.Logger,
	}
}

func (s *fanoutSink) Deliver(ctx context.Context, n *entity.Notification) error {
	if s.realtime != nil {
		queued := s.realtime.SendToUser(n.UserID, service.RealtimeEventNotification, n)
		s.logger.Debug("Notification queued on realtime connections",
			slog.String("notificationID", n.ID),
			slog.Int("connections", queued),
		)
	}

	if s.push == nil {
		return nil
	}

	data := map[string]string{
		"notification_id": n.ID,
		"timestamp":       n.Timestamp.UTC().Format(time.RFC3339),
	}
	if err := s.push.SendToTopic(ctx, UserTopic(n.UserID), pushTitle, n.Message, data); err != nil {
		return errors.Wrap(err, "push delivery failed")
	}

	return nil
}
