package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/domain/service"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type assistantService struct {
	newsRepo       repository.NewsRepository
	transcriptRepo repository.BotTranscriptRepository
	assistant      service.LegalAssistant
	logger         *slog.Logger

	// users with a LawBot question awaiting its answer
	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// AssistantServiceParams holds dependencies for AssistantService, injected by Fx.
type AssistantServiceParams struct {
	fx.In

	NewsRepo       repository.NewsRepository
	TranscriptRepo repository.BotTranscriptRepository
	Assistant      service.LegalAssistant
	Logger         *slog.Logger
}

// NewAssistantService is the constructor for assistantService.
func NewAssistantService(params AssistantServiceParams) usecase.AssistantUsecase {
	return &assistantService{
		newsRepo:       params.NewsRepo,
		transcriptRepo: params.TranscriptRepo,
		assistant:      params.Assistant,
		logger:         params.Logger,
		pending:        make(map[string]struct{}),
	}
}

func (s *assistantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetNews serves the cached batch, fetching on demand when nothing has been cached yet.
func (s *assistantService) GetNews(ctx context.Context, category string) (*usecase.NewsOutput, error) {
	articles, fetchedAt, err := s.newsRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read news cache")
	}

	if fetchedAt.IsZero() {
		if err := s.RefreshNews(ctx); err != nil {
			return nil, err
		}
		if articles, _, err = s.newsRepo.List(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to read news cache")
		}
	}

	return filterNews(articles, category), nil
}

// RefreshNews asks the assistant for a new batch. An empty batch means the
// assistant failed, so the previous cache is kept and the next read retries.
func (s *assistantService) RefreshNews(ctx context.Context) error {
	articles := s.assistant.FetchNews(ctx)
	if len(articles) == 0 {
		s.log(ctx).Warn("News refresh returned no articles, keeping cache")

		return nil
	}

	if err := s.newsRepo.Replace(ctx, articles, time.Now()); err != nil {
		return errors.Wrap(err, "failed to store news")
	}

	s.log(ctx).Info("News cache refreshed", slog.Int("articles", len(articles)))

	return nil
}

func (s *assistantService) GetLawBotTranscript(ctx context.Context, userID string) ([]entity.ChatMessage, error) {
	msgs, err := s.transcriptRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transcript")
	}

	return msgs, nil
}

// AskLawBot records the question, sends the whole transcript to the assistant
// and records the answer. The assistant is called without holding the store.
// A user has at most one question in flight; a second one gets ErrLawBotBusy.
func (s *assistantService) AskLawBot(ctx context.Context, userID, text string) (*usecase.LawBotExchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "question is empty")
	}

	if !s.beginQuestion(userID) {
		return nil, errors.WithStack(domainerrors.ErrLawBotBusy)
	}
	defer s.endQuestion(userID)

	question := entity.ChatMessage{
		ID:         newID(prefixMessage),
		SenderID:   userID,
		ReceiverID: entity.LawBotID,
		Text:       text,
		Timestamp:  time.Now(),
	}
	if err := s.transcriptRepo.Append(ctx, userID, question); err != nil {
		return nil, errors.Wrap(err, "failed to record question")
	}

	history, err := s.transcriptRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read transcript")
	}

	answer := entity.ChatMessage{
		ID:         newID(prefixMessage),
		SenderID:   entity.LawBotID,
		ReceiverID: userID,
		Text:       s.assistant.Reply(ctx, history),
		Timestamp:  time.Now(),
	}
	if err := s.transcriptRepo.Append(ctx, userID, answer); err != nil {
		return nil, errors.Wrap(err, "failed to record answer")
	}

	return &usecase.LawBotExchange{Question: question, Answer: answer}, nil
}

func (s *assistantService) beginQuestion(userID string) bool {
	s.pendingMu.Lock()
	defer s.pendingMu.Unlock()

	if _, ok := s.pending[userID]; ok {
		return false
	}
	s.pending[userID] = struct{}{}

	return true
}

func (s *assistantService) endQuestion(userID string) {
	s.pendingMu.Lock()
	delete(s.pending, userID)
	s.pendingMu.Unlock()
}

// filterNews builds the category list ("All" first, then first-seen order) and
// keeps the articles of the selected category.
func filterNews(articles []entity.NewsArticle, category string) *usecase.NewsOutput {
	out := &usecase.NewsOutput{
		Categories: []string{usecase.NewsCategoryAll},
		Articles:   []entity.NewsArticle{},
	}

	seen := map[string]struct{}{usecase.NewsCategoryAll: {}}
	for _, a := range articles {
		if _, ok := seen[a.Category]; !ok && a.Category != "" {
			seen[a.Category] = struct{}{}
			out.Categories = append(out.Categories, a.Category)
		}
	}

	for _, a := range articles {
		if category == "" || category == usecase.NewsCategoryAll || a.Category == category {
			out.Articles = append(out.Articles, a)
		}
	}

	return out
}
