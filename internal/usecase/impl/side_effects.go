// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// Id prefixes of generated records.
const (
	prefixRequest      = "req-"
	prefixCase         = "case-"
	prefixNotification = "notif-"
	prefixMessage      = "msg-"
	prefixPost         = "p-"
	prefixComment      = "c-"
	prefixUser         = "u-"
)

// newID returns a time-ordered identifier with the given prefix.
func newID(prefix string) string {
	return prefix + uuid.Must(uuid.NewV7()).String()
}

// SideEffectParams holds the delivery channels used after a transaction commits.
// All of them are optional.
type SideEffectParams struct {
	fx.In

	Sink      service.NotificationSink  `optional:"true"`
	Publisher service.EventPublisher    `optional:"true"`
	Realtime  service.RealtimePublisher `optional:"true"`
}

// sideEffects runs best-effort work after commit. Failures are logged and never
// change the outcome of the operation that triggered them.
type sideEffects struct {
	sink      service.NotificationSink
	publisher service.EventPublisher
	realtime  service.RealtimePublisher
	logger    *slog.Logger
}

func newSideEffects(params SideEffectParams, logger *slog.Logger) *sideEffects {
	return &sideEffects{
		sink:      params.Sink,
		publisher: params.Publisher,
		realtime:  params.Realtime,
		logger:    logger,
	}
}

func (s *sideEffects) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *sideEffects) deliverNotifications(ctx context.Context, notifications ...*entity.Notification) {
	if s.sink == nil {
		return
	}

	for _, n := range notifications {
		if err := s.sink.Deliver(ctx, n); err != nil {
			s.log(ctx).Warn("Failed to deliver notification",
				slog.String("notificationID", n.ID),
				slog.String("userID", n.UserID),
				slog.Any("error", err),
			)
		}
	}
}

func (s *sideEffects) publishLifecycle(ctx context.Context, eventType string, req *entity.ClientRequest, caseID, chatID string) {
	if s.publisher == nil {
		return
	}

	event := &service.LifecycleEvent{
		TraceID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		RequestID:  req.ID,
		ClientID:   req.Client.ID,
		LawyerID:   req.Lawyer.ID,
		CaseID:     caseID,
		ChatID:     chatID,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishLifecycleEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish lifecycle event",
			slog.String("type", eventType),
			slog.String("requestID", req.ID),
			slog.Any("error", err),
		)
	}
}

func (s *sideEffects) pushChatMessage(ctx context.Context, chatID string, msg *entity.ChatMessage) {
	if s.realtime == nil {
		return
	}

	s.realtime.SendToUser(msg.ReceiverID, service.RealtimeEventChatMessage, map[string]any{
		"chatId":  chatID,
		"message": msg,
	})
}

// emitNotification prepends an unread notification for userID through repo.
func emitNotification(ctx context.Context, repo repository.NotificationRepository, userID, message string) (*entity.Notification, error) {
	n := &entity.Notification{
		ID:        newID(prefixNotification),
		UserID:    userID,
		Message:   message,
		Timestamp: time.Now(),
		Read:      false,
	}
	if err := repo.Create(ctx, n); err != nil {
		return nil, err
	}

	return n, nil
}
