package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// NewsCategoryAll selects every article.
const NewsCategoryAll = "All"

// NewsOutput is a filtered news view. Categories always starts with NewsCategoryAll.
type NewsOutput struct {
	Categories []string             `json:"categories"`
	Articles   []entity.NewsArticle `json:"articles"`
}

// LawBotExchange is one question and the assistant's answer.
type LawBotExchange struct {
	Question entity.ChatMessage `json:"question"`
	Answer   entity.ChatMessage `json:"answer"`
}

// AssistantUsecase exposes the legal news feed and the LawBot chat.
type AssistantUsecase interface {
	GetNews(ctx context.Context, category string) (*NewsOutput, error)

	// RefreshNews replaces the cached batch. An empty fetch keeps the current cache.
	RefreshNews(ctx context.Context) error

	GetLawBotTranscript(ctx context.Context, userID string) ([]entity.ChatMessage, error)
	AskLawBot(ctx context.Context, userID, text string) (*LawBotExchange, error)
}
