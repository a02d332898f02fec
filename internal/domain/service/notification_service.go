package service

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// PushService defines the interface for mobile push notification providers.
type PushService interface {
	// SendToTopic pushes a message to every device subscribed to topic.
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) error
}

// NotificationSink delivers a committed notification to the recipient's live channels.
// Delivery is best-effort; callers log failures and never roll back on them.
type NotificationSink interface {
	Deliver(ctx context.Context, n *entity.Notification) error
}

// Realtime event names pushed to connected clients.
const (
	RealtimeEventNotification = "notification"
	RealtimeEventChatMessage  = "chat_message"
)

// RealtimePublisher pushes events to a user's open realtime connections.
type RealtimePublisher interface {
	// SendToUser returns the number of connections the event was queued on.
	SendToUser(userID, event string, payload any) int
}
