package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"lawyerup/internal/domain/entity"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/domain/service"
	"lawyerup/internal/infra/persistence/memory"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testStore bundles a store with repositories bound to it.
type testStore struct {
	store            *memory.Store
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	requestRepo      repository.RequestRepository
	caseRepo         repository.CaseRepository
	chatRepo         repository.ChatRepository
	postRepo         repository.PostRepository
	notificationRepo repository.NotificationRepository
	newsRepo         repository.NewsRepository
	transcriptRepo   repository.BotTranscriptRepository
}

func newTestStore(t *testing.T, seed bool) *testStore {
	t.Helper()

	store := memory.NewStore()
	if seed {
		store.Seed("hashed:"+memory.SeedPassword, time.Now())
	}

	return &testStore{
		store:            store,
		txManager:        memory.NewTransactionManager(store),
		userRepo:         memory.NewUserRepository(store),
		requestRepo:      memory.NewRequestRepository(store),
		caseRepo:         memory.NewCaseRepository(store),
		chatRepo:         memory.NewChatRepository(store),
		postRepo:         memory.NewPostRepository(store),
		notificationRepo: memory.NewNotificationRepository(store),
		newsRepo:         memory.NewNewsRepository(store),
		transcriptRepo:   memory.NewBotTranscriptRepository(store),
	}
}

func (ts *testStore) addClient(t *testing.T, id, name string, tmpl *entity.CaseTemplate) *entity.User {
	t.Helper()

	u := &entity.User{
		ID:     id,
		Name:   name,
		Role:   entity.RoleClient,
		Client: &entity.ClientProfile{Username: strings.ToLower(id), CurrentCase: tmpl},
	}
	require.NoError(t, ts.userRepo.Create(context.Background(), u))

	return u
}

func (ts *testStore) addLawyer(t *testing.T, id, name string, experience int) *entity.User {
	t.Helper()

	u := &entity.User{
		ID:     id,
		Name:   name,
		Role:   entity.RoleLawyer,
		Lawyer: &entity.LawyerProfile{BarCouncilID: "BCI-" + id, ExperienceYears: experience},
	}
	require.NoError(t, ts.userRepo.Create(context.Background(), u))

	return u
}

func (ts *testStore) notifications(t *testing.T, userID string) []*entity.Notification {
	t.Helper()

	list, err := ts.notificationRepo.ListByUser(context.Background(), userID)
	require.NoError(t, err)

	return list
}

// plainHasher stores passwords with a visible prefix.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return hash == "hashed:"+password }

// staticTokens issues predictable tokens.
type staticTokens struct{}

func (staticTokens) GenerateAccessToken(userID string, roles []string) (string, error) {
	return "token-" + userID + "-" + strings.Join(roles, ","), nil
}

func (staticTokens) ValidateToken(string) (*service.Claims, error) { return nil, nil }

func (staticTokens) AccessTokenTTL() time.Duration { return time.Hour }
