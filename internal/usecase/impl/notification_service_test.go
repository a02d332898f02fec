package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListAndMarkAllRead(t *testing.T) {
	ts := newTestStore(t, false)
	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: ts.notificationRepo,
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()

	first, err := emitNotification(ctx, ts.notificationRepo, "c1", "first")
	require.NoError(t, err)
	second, err := emitNotification(ctx, ts.notificationRepo, "c1", "second")
	require.NoError(t, err)
	_, err = emitNotification(ctx, ts.notificationRepo, "l1", "other user")
	require.NoError(t, err)

	list, err := svc.ListNotifications(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, second.ID, list.Items[0].ID)
	assert.Equal(t, first.ID, list.Items[1].ID)
	assert.Equal(t, 2, list.Unread)

	marked, err := svc.MarkAllRead(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, marked)

	list, err = svc.ListNotifications(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 0, list.Unread)

	other, err := svc.ListNotifications(ctx, "l1")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Unread)
}

func TestNotificationService_ListEmpty(t *testing.T) {
	ts := newTestStore(t, false)
	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: ts.notificationRepo,
		Logger:           newDiscardLogger(),
	})

	list, err := svc.ListNotifications(context.Background(), "c1")

	require.NoError(t, err)
	assert.Empty(t, list.Items)
	assert.Zero(t, list.Unread)
}
