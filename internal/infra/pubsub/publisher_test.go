package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lawyerup/config"
	"lawyerup/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleEvent() *service.LifecycleEvent {
	return &service.LifecycleEvent{
		TraceID:    "trace-1",
		Type:       service.EventRequestAccepted,
		RequestID:  "req1",
		ClientID:   "c1",
		LawyerID:   "l1",
		CaseID:     "case-1",
		ChatID:     "chat-req1",
		OccurredAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishLifecycleEvent(t *testing.T) {
	var (
		received PushMessage
		traceID  string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	require.NoError(t, publisher.PublishLifecycleEvent(context.Background(), sampleEvent()))

	assert.Equal(t, "trace-1", traceID)
	assert.Equal(t, localSubscription, received.Subscription)
	assert.Equal(t, service.EventRequestAccepted, received.Message.Attributes["event_type"])
	assert.Equal(t, "req1", received.Message.Attributes["request_id"])

	assert.Equal(t, "req1", received.Message.OrderingKey)
	assert.Equal(t, "l1", received.Message.Attributes["lawyer_id"])

	var event service.LifecycleEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &event))
	assert.Equal(t, "chat-req1", event.ChatID)
	assert.Equal(t, "case-1", event.CaseID)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishLifecycleEvent(context.Background(), sampleEvent())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestEncodeEvent(t *testing.T) {
	encoded, err := encodeEvent(sampleEvent())
	require.NoError(t, err)
	assert.Equal(t, "req1", encoded.orderingKey)
	assert.Equal(t, "trace-1", encoded.attributes["trace_id"])
	assert.Equal(t, "c1", encoded.attributes["client_id"])

	noTrace := sampleEvent()
	noTrace.TraceID = ""
	encoded, err = encodeEvent(noTrace)
	require.NoError(t, err)
	assert.NotContains(t, encoded.attributes, "trace_id")

	_, err = encodeEvent(&service.LifecycleEvent{Type: service.EventRequestSent})
	assert.Error(t, err)
	_, err = encodeEvent(nil)
	assert.Error(t, err)
}

func TestLocalHTTPPublisher_RejectsInvalidEvent(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	assert.Error(t, publisher.PublishLifecycleEvent(context.Background(), &service.LifecycleEvent{}))
	assert.False(t, called)
}

func TestNoopPublisher(t *testing.T) {
	publisher := &noopPublisher{logger: discardLogger()}

	assert.NoError(t, publisher.PublishLifecycleEvent(context.Background(), sampleEvent()))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr string
	}{
		{name: "not configured", cfg: nil},
		{name: "noop", cfg: &config.PubSubConfig{Provider: "noop"}},
		{name: "local", cfg: &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:9999/push"}},
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", cfg: &config.PubSubConfig{Provider: "google", TopicID: "t"}, wantErr: "project ID is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: discardLogger(),
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}
