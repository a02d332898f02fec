package memory

import (
	"context"

	"lawyerup/internal/domain/repository"

	"github.com/pkg/errors"
)

// storeTransactionManager implements the domain's TransactionManager over the in-memory store.
type storeTransactionManager struct {
	store *Store
}

// storeRepositoryFactory hands out repositories bound to one transaction draft.
type storeRepositoryFactory struct {
	src source
}

// NewTransactionManager is the constructor for storeTransactionManager.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &storeTransactionManager{store: store}
}

// Execute takes the write lock, runs fn against a draft copy of every collection
// and swaps the draft in only if fn returns nil. Readers never observe a partial result.
func (tm *storeTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	draft := tm.store.st.clone()
	if err := fn(&storeRepositoryFactory{src: &txSource{st: draft}}); err != nil {
		return err
	}
	tm.store.st = draft

	return nil
}

func (f *storeRepositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewRequestRepository() repository.RequestRepository {
	return &requestRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewCaseRepository() repository.CaseRepository {
	return &caseRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewChatRepository() repository.ChatRepository {
	return &chatRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewPostRepository() repository.PostRepository {
	return &postRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewNotificationRepository() repository.NotificationRepository {
	return &notificationRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewNewsRepository() repository.NewsRepository {
	return &newsRepository{src: f.src}
}

func (f *storeRepositoryFactory) NewBotTranscriptRepository() repository.BotTranscriptRepository {
	return &botTranscriptRepository{src: f.src}
}
