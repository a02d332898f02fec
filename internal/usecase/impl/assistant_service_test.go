package impl

import (
	"context"
	"testing"
	"time"

	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/service"
	mockService "lawyerup/internal/mocks/service"
	"lawyerup/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAssistantService(t *testing.T) (usecase.AssistantUsecase, *mockService.MockLegalAssistant) {
	ts := newTestStore(t, false)
	assistant := mockService.NewMockLegalAssistant(t)

	svc := NewAssistantService(AssistantServiceParams{
		NewsRepo:       ts.newsRepo,
		TranscriptRepo: ts.transcriptRepo,
		Assistant:      assistant,
		Logger:         newDiscardLogger(),
	})

	return svc, assistant
}

func sampleNews() []entity.NewsArticle {
	return []entity.NewsArticle{
		{Headline: "Court rules on data scraping", Category: "Tech Law"},
		{Headline: "New arbitration guidelines", Category: "Corporate Law"},
		{Headline: "AI and copyright", Category: "Tech Law"},
	}
}

func TestAssistantService_GetNews_FetchesOnceAndFilters(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()
	assistant.EXPECT().FetchNews(mock.Anything).Return(sampleNews()).Once()

	all, err := svc.GetNews(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Tech Law", "Corporate Law"}, all.Categories)
	assert.Len(t, all.Articles, 3)

	tech, err := svc.GetNews(ctx, "Tech Law")
	require.NoError(t, err)
	assert.Len(t, tech.Articles, 2)

	none, err := svc.GetNews(ctx, "Family Law")
	require.NoError(t, err)
	assert.NotNil(t, none.Articles)
	assert.Empty(t, none.Articles)
}

func TestAssistantService_GetNews_FailureYieldsEmptyAndRetries(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()
	assistant.EXPECT().FetchNews(mock.Anything).Return(nil).Once()

	out, err := svc.GetNews(ctx, usecase.NewsCategoryAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"All"}, out.Categories)
	assert.Empty(t, out.Articles)

	assistant.EXPECT().FetchNews(mock.Anything).Return(sampleNews()).Once()

	out, err = svc.GetNews(ctx, usecase.NewsCategoryAll)
	require.NoError(t, err)
	assert.Len(t, out.Articles, 3)
}

func TestAssistantService_RefreshNews_KeepsCacheOnEmptyBatch(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()
	assistant.EXPECT().FetchNews(mock.Anything).Return(sampleNews()).Once()
	require.NoError(t, svc.RefreshNews(ctx))

	assistant.EXPECT().FetchNews(mock.Anything).Return(nil).Once()
	require.NoError(t, svc.RefreshNews(ctx))

	out, err := svc.GetNews(ctx, "")
	require.NoError(t, err)
	assert.Len(t, out.Articles, 3)
}

func TestAssistantService_AskLawBot(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()
	assistant.EXPECT().
		Reply(mock.Anything, mock.MatchedBy(func(history []entity.ChatMessage) bool {
			return len(history) == 1 && history[0].Text == "What is bail?"
		})).
		Return("Bail is the temporary release of an accused person.").
		Once()

	exchange, err := svc.AskLawBot(ctx, "c1", "What is bail?")
	require.NoError(t, err)
	assert.Equal(t, entity.LawBotID, exchange.Question.ReceiverID)
	assert.Equal(t, entity.LawBotID, exchange.Answer.SenderID)
	assert.Equal(t, "c1", exchange.Answer.ReceiverID)

	transcript, err := svc.GetLawBotTranscript(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "What is bail?", transcript[0].Text)
}

func TestAssistantService_AskLawBot_ApologyIsRecorded(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()
	assistant.EXPECT().Reply(mock.Anything, mock.Anything).Return(service.ApologyReply).Once()

	exchange, err := svc.AskLawBot(ctx, "l1", "Hello?")
	require.NoError(t, err)
	assert.Equal(t, service.ApologyReply, exchange.Answer.Text)

	transcript, err := svc.GetLawBotTranscript(ctx, "l1")
	require.NoError(t, err)
	assert.Len(t, transcript, 2)
}

func TestAssistantService_AskLawBot_EmptyText(t *testing.T) {
	svc, _ := createTestAssistantService(t)

	_, err := svc.AskLawBot(context.Background(), "c1", " ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAssistantService_AskLawBot_OneQuestionInFlightPerUser(t *testing.T) {
	svc, assistant := createTestAssistantService(t)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	assistant.EXPECT().
		Reply(mock.Anything, mock.MatchedBy(func(history []entity.ChatMessage) bool {
			return len(history) == 1 && history[0].SenderID == "c1"
		})).
		Run(func(context.Context, []entity.ChatMessage) {
			close(started)
			<-release
		}).
		Return("first answer").
		Once()
	assistant.EXPECT().
		Reply(mock.Anything, mock.MatchedBy(func(history []entity.ChatMessage) bool {
			return len(history) == 1 && history[0].SenderID == "l1"
		})).
		Return("other user answer").
		Once()

	done := make(chan error, 1)
	go func() {
		_, err := svc.AskLawBot(ctx, "c1", "first question")
		done <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("first question never reached the assistant")
	}

	_, err := svc.AskLawBot(ctx, "c1", "second question")
	require.ErrorIs(t, err, domainerrors.ErrLawBotBusy)

	_, err = svc.AskLawBot(ctx, "l1", "unrelated question")
	require.NoError(t, err)

	close(release)
	require.NoError(t, <-done)

	transcript, err := svc.GetLawBotTranscript(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, "first question", transcript[0].Text)
	assert.Equal(t, "first answer", transcript[1].Text)

	assistant.EXPECT().Reply(mock.Anything, mock.Anything).Return("follow-up answer").Once()
	_, err = svc.AskLawBot(ctx, "c1", "second question")
	require.NoError(t, err)
}
