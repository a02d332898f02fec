package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// NotificationList is a user's notifications, newest first, with the unread count.
type NotificationList struct {
	Items  []*entity.Notification `json:"items"`
	Unread int                    `json:"unread"`
}

// NotificationUsecase defines the interface for user notifications
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID string) (*NotificationList, error)

	// MarkAllRead flips every notification of userID to read and returns how many changed.
	MarkAllRead(ctx context.Context, userID string) (int, error)
}
