package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type chatService struct {
	chatRepo repository.ChatRepository
	effects  *sideEffects
	logger   *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	ChatRepo    repository.ChatRepository
	SideEffects SideEffectParams
	Logger      *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		chatRepo: params.ChatRepo,
		effects:  newSideEffects(params.SideEffects, params.Logger),
		logger:   params.Logger,
	}
}

func (s *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func (s *chatService) ListChats(ctx context.Context, userID string) ([]*entity.Chat, error) {
	chats, err := s.chatRepo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}
	if chats == nil {
		chats = []*entity.Chat{}
	}

	return chats, nil
}

func (s *chatService) GetChat(ctx context.Context, userID, chatID string) (*entity.Chat, error) {
	chat, err := s.chatRepo.FindByID(ctx, chatID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, chatID)
		}

		return nil, errors.Wrap(err, "failed to load chat")
	}

	if !chat.HasParticipant(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "not a chat participant")
	}

	return chat, nil
}

// SendMessage appends to the chat in arrival order. A chat that does not exist
// is left untouched and reported as not found.
func (s *chatService) SendMessage(ctx context.Context, senderID, chatID, text string) (*entity.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "message text is empty")
	}

	chat, err := s.GetChat(ctx, senderID, chatID)
	if err != nil {
		return nil, err
	}

	msg := entity.ChatMessage{
		ID:         newID(prefixMessage),
		SenderID:   senderID,
		ReceiverID: chat.Counterpart(senderID),
		Text:       text,
		Timestamp:  time.Now(),
	}
	if err := s.chatRepo.AppendMessage(ctx, chat.ID, msg); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, chatID)
		}

		return nil, errors.Wrap(err, "failed to append message")
	}

	s.log(ctx).Debug("Chat message appended", slog.String("chatID", chatID), slog.String("messageID", msg.ID))
	s.effects.pushChatMessage(ctx, chat.ID, &msg)

	return &msg, nil
}
