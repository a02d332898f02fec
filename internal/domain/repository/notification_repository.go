package repository

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// NotificationRepository defines persistence operations for user notifications.
type NotificationRepository interface {
	// Create prepends the notification to the list.
	Create(ctx context.Context, n *entity.Notification) error

	// ListByUser returns the user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error)

	// MarkAllRead flips read for every notification of userID and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)
}
