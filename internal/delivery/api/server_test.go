package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lawyerup/config"
	apimiddleware "lawyerup/internal/delivery/api/middleware"
	"lawyerup/internal/delivery/api/router"
	"lawyerup/internal/delivery/api/router/handler"
	"lawyerup/internal/infra/auth"
	"lawyerup/internal/infra/persistence/memory"
	"lawyerup/internal/infra/qrcode"
	"lawyerup/internal/infra/realtime"
	mockservice "lawyerup/internal/mocks/service"
	"lawyerup/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type testAPI struct {
	t    *testing.T
	echo *echo.Echo
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.SecretKey.Access = "test-secret"
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost, AccessTokenTTL: time.Hour}

	hasher := auth.NewBcryptHasher(cfg)
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	hash, err := hasher.Hash(memory.SeedPassword)
	require.NoError(t, err)

	store := memory.NewStore()
	store.Seed(hash, time.Now())

	txManager := memory.NewTransactionManager(store)
	userRepo := memory.NewUserRepository(store)
	assistant := mockservice.NewMockLegalAssistant(t)
	hub := realtime.NewHub(realtime.HubParams{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: logger})

	params := router.RouterParams{
		UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
			UserUC: impl.NewUserService(impl.UserServiceParams{
				UserRepo: userRepo, Hasher: hasher, TokenService: tokens, Logger: logger,
			}),
			Logger: logger,
		}),
		ProfileHandler: handler.NewProfileHandler(handler.ProfileHandlerParams{
			ProfileUC: impl.NewProfileService(impl.ProfileServiceParams{
				TxManager: txManager, UserRepo: userRepo, Logger: logger,
			}),
		}),
		DirectoryHandler: handler.NewDirectoryHandler(handler.DirectoryHandlerParams{
			DirectoryUC: impl.NewDirectoryService(impl.DirectoryServiceParams{
				UserRepo: userRepo, Assistant: assistant, QRService: qrcode.NewQRCodeService(cfg), Logger: logger,
			}),
		}),
		RequestHandler: handler.NewRequestHandler(handler.RequestHandlerParams{
			RequestUC: impl.NewRequestService(impl.RequestServiceParams{
				TxManager: txManager, RequestRepo: memory.NewRequestRepository(store), Logger: logger,
			}),
		}),
		CaseHandler: handler.NewCaseHandler(handler.CaseHandlerParams{
			CaseUC: impl.NewCaseService(impl.CaseServiceParams{
				TxManager: txManager, UserRepo: userRepo, CaseRepo: memory.NewCaseRepository(store), Logger: logger,
			}),
		}),
		ChatHandler: handler.NewChatHandler(handler.ChatHandlerParams{
			ChatUC: impl.NewChatService(impl.ChatServiceParams{
				ChatRepo: memory.NewChatRepository(store), Logger: logger,
			}),
		}),
		FeedHandler: handler.NewFeedHandler(handler.FeedHandlerParams{
			FeedUC: impl.NewFeedService(impl.FeedServiceParams{
				TxManager: txManager, PostRepo: memory.NewPostRepository(store), UserRepo: userRepo, Logger: logger,
			}),
		}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{
			NotificationUC: impl.NewNotificationService(impl.NotificationServiceParams{
				NotificationRepo: memory.NewNotificationRepository(store), Logger: logger,
			}),
		}),
		AssistantHandler: handler.NewAssistantHandler(handler.AssistantHandlerParams{
			AssistantUC: impl.NewAssistantService(impl.AssistantServiceParams{
				NewsRepo:       memory.NewNewsRepository(store),
				TranscriptRepo: memory.NewBotTranscriptRepository(store),
				Assistant:      assistant,
				Logger:         logger,
			}),
		}),
		StreamHandler:  handler.NewStreamHandler(handler.StreamHandlerParams{Hub: hub, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{TokenService: tokens}),
	}

	return &testAPI{t: t, echo: newEcho(cfg, logger, params)}
}

func (a *testAPI) do(method, path, token, body string) (int, *envelope, *httptest.ResponseRecorder) {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec.Code, &env, rec
}

func (a *testAPI) login(role, loginID string) string {
	a.t.Helper()

	code, env, _ := a.do(http.MethodPost, "/api/v1/auth/login", "",
		`{"role":"`+role+`","loginId":"`+loginID+`","password":"`+memory.SeedPassword+`"}`)
	require.Equal(a.t, http.StatusOK, code)

	var out handler.AuthResponse
	require.NoError(a.t, json.Unmarshal(env.Data, &out))
	require.NotEmpty(a.t, out.AccessToken)

	return out.AccessToken
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	code, env, rec := api.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, env.Meta.RequestID)
	assert.Equal(t, env.Meta.RequestID, rec.Header().Get(echo.HeaderXRequestID))
}

func TestRequestLifecycleOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	client := api.login("client", "john_doe")
	lawyer := api.login("lawyer", "BCI789012")

	// c1 already has a pending request with l1.
	code, env, _ := api.do(http.MethodPost, "/api/v1/requests", client, `{"lawyerId":"l1"}`)
	require.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "DUPLICATE_REQUEST", env.Error.Code)
	assert.Equal(t, "You already have a pending request with this lawyer.", env.Error.Message)

	code, env, _ = api.do(http.MethodPost, "/api/v1/requests", client, `{"lawyerId":"l2"}`)
	require.Equal(t, http.StatusCreated, code)

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created.Status)

	// Clients cannot accept.
	code, _, _ = api.do(http.MethodPost, "/api/v1/requests/"+created.ID+"/accept", client, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, env, _ = api.do(http.MethodPost, "/api/v1/requests/"+created.ID+"/accept", lawyer, "")
	require.Equal(t, http.StatusOK, code)

	var accepted struct {
		Request struct {
			Status string `json:"status"`
		} `json:"request"`
		Chat struct {
			ID string `json:"id"`
		} `json:"chat"`
		Case struct {
			Status string `json:"status"`
		} `json:"case"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &accepted))
	assert.Equal(t, "accepted", accepted.Request.Status)
	assert.Equal(t, "chat-"+created.ID, accepted.Chat.ID)
	assert.Equal(t, "active", accepted.Case.Status)

	code, env, _ = api.do(http.MethodPost, "/api/v1/requests/"+created.ID+"/accept", lawyer, "")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "REQUEST_NOT_PENDING", env.Error.Code)

	code, env, _ = api.do(http.MethodGet, "/api/v1/notifications", client, "")
	require.Equal(t, http.StatusOK, code)

	var list struct {
		Items []struct {
			Message string `json:"message"`
		} `json:"items"`
		Unread int `json:"unread"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.NotEmpty(t, list.Items)
	assert.Contains(t, list.Items[0].Message, "accepted")

	code, _, _ = api.do(http.MethodPost, "/api/v1/notifications/read-all", client, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestAuthErrors(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name     string
		token    string
		wantCode string
	}{
		{name: "missing token", token: "", wantCode: "MISSING_TOKEN"},
		{name: "garbage token", token: "not-a-jwt", wantCode: "INVALID_TOKEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env, _ := api.do(http.MethodGet, "/api/v1/profile", tt.token, "")
			assert.Equal(t, http.StatusUnauthorized, code)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}

	t.Run("wrong password", func(t *testing.T) {
		code, env, _ := api.do(http.MethodPost, "/api/v1/auth/login", "",
			`{"role":"client","loginId":"john_doe","password":"nope"}`)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	})

	t.Run("clients cannot post", func(t *testing.T) {
		client := api.login("client", "john_doe")
		code, _, _ := api.do(http.MethodPost, "/api/v1/posts", client, `{"text":"hello"}`)
		assert.Equal(t, http.StatusForbidden, code)
	})
}

func TestValidationErrors(t *testing.T) {
	api := newTestAPI(t)
	client := api.login("client", "john_doe")

	code, env, _ := api.do(http.MethodPost, "/api/v1/chats/chat1/messages", client, `{"text":""}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, map[string]string{"text": "required"}, env.Error.Details)

	code, env, _ = api.do(http.MethodPost, "/api/v1/auth/login", "", `{"role":"judge","loginId":"x","password":"y"}`)
	require.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "role", env.Error.Details["role"])

	code, _, _ = api.do(http.MethodPost, "/api/v1/chats/chat1/messages", client, `{not json`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestChatAndFeedOverHTTP(t *testing.T) {
	api := newTestAPI(t)
	client := api.login("client", "john_doe")
	lawyer := api.login("lawyer", "BCI123456")

	code, _, _ := api.do(http.MethodPost, "/api/v1/chats/chat1/messages", client, `{"text":"Any update?"}`)
	assert.Equal(t, http.StatusCreated, code)

	// l1 is not a member of chat1.
	code, _, _ = api.do(http.MethodGet, "/api/v1/chats/chat1", lawyer, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, env, _ := api.do(http.MethodPost, "/api/v1/posts/p1/like", client, "")
	require.Equal(t, http.StatusOK, code)

	var like handler.LikeResponse
	require.NoError(t, json.Unmarshal(env.Data, &like))
	first := like.Liked

	_, env, _ = api.do(http.MethodPost, "/api/v1/posts/p1/like", client, "")
	require.NoError(t, json.Unmarshal(env.Data, &like))
	assert.Equal(t, !first, like.Liked)

	code, _, _ = api.do(http.MethodPost, "/api/v1/posts", lawyer, `{"text":"New ruling on data privacy"}`)
	assert.Equal(t, http.StatusCreated, code)

	code, _, _ = api.do(http.MethodPost, "/api/v1/posts/missing/comments", client, `{"text":"hi"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestLawyerQRCode(t *testing.T) {
	api := newTestAPI(t)
	client := api.login("client", "john_doe")

	code, _, rec := api.do(http.MethodGet, "/api/v1/lawyers/l1/qr", client, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	code, _, _ = api.do(http.MethodGet, "/api/v1/clients/c1", client, "")
	assert.Equal(t, http.StatusForbidden, code)
}
