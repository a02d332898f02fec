package repository

import (
	"context"
	"time"

	"lawyerup/internal/domain/entity"
)

// NewsRepository caches the most recent news batch.
type NewsRepository interface {
	// Replace swaps the cached batch for articles.
	Replace(ctx context.Context, articles []entity.NewsArticle, fetchedAt time.Time) error

	// List returns the cached batch and when it was fetched. A zero time means never.
	List(ctx context.Context) ([]entity.NewsArticle, time.Time, error)
}

// BotTranscriptRepository stores each user's conversation with the legal assistant.
type BotTranscriptRepository interface {
	Append(ctx context.Context, userID string, msgs ...entity.ChatMessage) error
	List(ctx context.Context, userID string) ([]entity.ChatMessage, error)
}
