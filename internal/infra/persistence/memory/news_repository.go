package memory

import (
	"context"
	"slices"
	"time"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"
)

type newsRepository struct {
	src source
}

// NewNewsRepository is the constructor for newsRepository.
func NewNewsRepository(store *Store) repository.NewsRepository {
	return &newsRepository{src: store}
}

func (repo *newsRepository) Replace(ctx context.Context, articles []entity.NewsArticle, fetchedAt time.Time) error {
	return repo.src.write(ctx, func(st *state) error {
		st.news = slices.Clone(articles)
		st.newsFetchedAt = fetchedAt

		return nil
	})
}

func (repo *newsRepository) List(ctx context.Context) ([]entity.NewsArticle, time.Time, error) {
	var (
		out       []entity.NewsArticle
		fetchedAt time.Time
	)
	err := repo.src.read(ctx, func(st *state) error {
		out = slices.Clone(st.news)
		fetchedAt = st.newsFetchedAt

		return nil
	})

	return out, fetchedAt, err
}

type botTranscriptRepository struct {
	src source
}

// NewBotTranscriptRepository is the constructor for botTranscriptRepository.
func NewBotTranscriptRepository(store *Store) repository.BotTranscriptRepository {
	return &botTranscriptRepository{src: store}
}

func (repo *botTranscriptRepository) Append(ctx context.Context, userID string, msgs ...entity.ChatMessage) error {
	return repo.src.write(ctx, func(st *state) error {
		// Copy before append so the committed transcript slice is never shared with the draft.
		next := slices.Clone(st.transcripts[userID])
		st.transcripts[userID] = append(next, msgs...)

		return nil
	})
}

func (repo *botTranscriptRepository) List(ctx context.Context, userID string) ([]entity.ChatMessage, error) {
	out := []entity.ChatMessage{}
	err := repo.src.read(ctx, func(st *state) error {
		out = append(out, st.transcripts[userID]...)
		return nil
	})

	return out, err
}
