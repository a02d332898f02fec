package memory

import (
	"context"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"
)

type chatRepository struct {
	src source
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(store *Store) repository.ChatRepository {
	return &chatRepository{src: store}
}

func (repo *chatRepository) Create(ctx context.Context, chat *entity.Chat) error {
	return repo.src.write(ctx, func(st *state) error {
		if st.chats.has(chat.ID) {
			return repository.ErrChatExists
		}
		st.chats.add(chat.ID, chat.Clone(), false)

		return nil
	})
}

func (repo *chatRepository) FindByID(ctx context.Context, id string) (*entity.Chat, error) {
	var out *entity.Chat
	err := repo.src.read(ctx, func(st *state) error {
		chat, ok := st.chats.get(id)
		if !ok {
			return repository.ErrChatNotFound
		}
		out = chat.Clone()

		return nil
	})

	return out, err
}

// AppendMessage adds msg to the end of the chat. Unknown chats are left untouched.
func (repo *chatRepository) AppendMessage(ctx context.Context, chatID string, msg entity.ChatMessage) error {
	return repo.src.write(ctx, func(st *state) error {
		chat, ok := st.chats.get(chatID)
		if !ok {
			return repository.ErrChatNotFound
		}
		next := chat.Clone()
		next.Messages = append(next.Messages, msg)
		st.chats.put(chatID, next)

		return nil
	})
}

func (repo *chatRepository) UpdateParticipant(ctx context.Context, userID string, p entity.Participant) (int, error) {
	updated := 0
	err := repo.src.write(ctx, func(st *state) error {
		var changed []*entity.Chat
		st.chats.each(func(chat *entity.Chat) bool {
			if _, ok := chat.Participants[userID]; ok {
				next := chat.Clone()
				next.Participants[userID] = p
				changed = append(changed, next)
			}

			return true
		})
		for _, chat := range changed {
			st.chats.put(chat.ID, chat)
		}
		updated = len(changed)

		return nil
	})

	return updated, err
}

func (repo *chatRepository) ListByParticipant(ctx context.Context, userID string) ([]*entity.Chat, error) {
	var out []*entity.Chat
	err := repo.src.read(ctx, func(st *state) error {
		st.chats.each(func(chat *entity.Chat) bool {
			if chat.HasParticipant(userID) {
				out = append(out, chat.Clone())
			}

			return true
		})

		return nil
	})

	return out, err
}
