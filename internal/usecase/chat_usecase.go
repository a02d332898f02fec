package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// ChatUsecase relays messages between the two parties of a chat.
type ChatUsecase interface {
	ListChats(ctx context.Context, userID string) ([]*entity.Chat, error)
	GetChat(ctx context.Context, userID, chatID string) (*entity.Chat, error)

	// SendMessage appends a message from senderID to the other participant.
	SendMessage(ctx context.Context, senderID, chatID, text string) (*entity.ChatMessage, error)
}
