package repository

import "context"

// TransactionManager defines the interface for running multi-step mutations atomically.
// This lets the use case layer group writes without depending on a specific store implementation.
type TransactionManager interface {
	// Execute runs fn against repositories bound to a single transaction.
	// If fn returns an error nothing it wrote becomes visible. Otherwise all writes are committed together.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
type RepositoryFactory interface {
	NewUserRepository() UserRepository
	NewRequestRepository() RequestRepository
	NewCaseRepository() CaseRepository
	NewChatRepository() ChatRepository
	NewPostRepository() PostRepository
	NewNotificationRepository() NotificationRepository
	NewNewsRepository() NewsRepository
	NewBotTranscriptRepository() BotTranscriptRepository
}
