package service

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// LegalAssistant is the external generative collaborator behind recommendations,
// news summaries and the LawBot chat. Implementations never return errors: on any
// failure they degrade to an empty or default result.
type LegalAssistant interface {
	// RecommendLawyers ranks up to three lawyers against the case template.
	RecommendLawyers(ctx context.Context, tmpl *entity.CaseTemplate, lawyers []*entity.User) []entity.Recommendation

	// FetchNews returns a fresh batch of legal news, empty on failure.
	FetchNews(ctx context.Context) []entity.NewsArticle

	// Reply answers the last user turn of history, or returns ApologyReply on failure.
	Reply(ctx context.Context, history []entity.ChatMessage) string
}

// ApologyReply is returned by the assistant when it cannot answer.
const ApologyReply = "Sorry, I am having trouble responding right now."
