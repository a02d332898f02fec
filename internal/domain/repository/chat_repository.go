package repository

import (
	"context"
	"errors"

	"lawyerup/internal/domain/entity"
)

var (
	// ErrChatNotFound is returned when a chat is not found.
	ErrChatNotFound = errors.New("chat not found")
	// ErrChatExists is returned when a chat with the same id already exists.
	ErrChatExists = errors.New("chat already exists")
)

// ChatRepository defines persistence operations for two-party chats.
type ChatRepository interface {
	Create(ctx context.Context, chat *entity.Chat) error
	FindByID(ctx context.Context, id string) (*entity.Chat, error)

	// AppendMessage adds msg to the end of the chat's message list.
	AppendMessage(ctx context.Context, chatID string, msg entity.ChatMessage) error

	// UpdateParticipant rewrites the snapshot of userID in every chat that contains it.
	UpdateParticipant(ctx context.Context, userID string, p entity.Participant) (int, error)

	ListByParticipant(ctx context.Context, userID string) ([]*entity.Chat, error)
}
