package impl

import (
	"context"
	"testing"

	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/service"
	mockService "lawyerup/internal/mocks/service"
	"lawyerup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestChatService(t *testing.T) (usecase.ChatUsecase, *testStore, *mockService.MockRealtimePublisher) {
	ts := newTestStore(t, true)
	realtime := mockService.NewMockRealtimePublisher(t)

	svc := NewChatService(ChatServiceParams{
		ChatRepo:    ts.chatRepo,
		SideEffects: SideEffectParams{Realtime: realtime},
		Logger:      newDiscardLogger(),
	})

	return svc, ts, realtime
}

func TestChatService_SendMessage(t *testing.T) {
	svc, ts, realtime := createTestChatService(t)
	ctx := context.Background()
	realtime.EXPECT().SendToUser("l3", service.RealtimeEventChatMessage, mock.Anything).Return(1).Once()

	msg, err := svc.SendMessage(ctx, "c1", "chat1", "Does Thursday work?")
	require.NoError(t, err)
	assert.Equal(t, "c1", msg.SenderID)
	assert.Equal(t, "l3", msg.ReceiverID)

	chat, err := ts.chatRepo.FindByID(ctx, "chat1")
	require.NoError(t, err)
	require.Len(t, chat.Messages, 3)
	assert.Equal(t, msg.ID, chat.Messages[2].ID)
}

func TestChatService_SendMessage_UnknownChat(t *testing.T) {
	svc, ts, _ := createTestChatService(t)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "c1", "chat-missing", "hello")
	require.ErrorIs(t, err, domainerrors.ErrChatNotFound)

	chats, err := ts.chatRepo.ListByParticipant(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Len(t, chats[0].Messages, 2)
}

func TestChatService_SendMessage_NotParticipant(t *testing.T) {
	svc, _, _ := createTestChatService(t)

	_, err := svc.SendMessage(context.Background(), "l1", "chat1", "hello")

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestChatService_SendMessage_EmptyText(t *testing.T) {
	svc, _, _ := createTestChatService(t)

	_, err := svc.SendMessage(context.Background(), "c1", "chat1", "")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_ListChats(t *testing.T) {
	svc, _, _ := createTestChatService(t)
	ctx := context.Background()

	chats, err := svc.ListChats(ctx, "l3")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "John Doe", chats[0].Participants["c1"].Name)

	none, err := svc.ListChats(ctx, "l7")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
