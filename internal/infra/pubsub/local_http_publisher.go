package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"lawyerup/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	localSubscription    = "projects/local/subscriptions/lifecycle-sub"
	localPublishTimeout  = 10 * time.Second
	headerXRequestID     = "X-Request-Id"
	localContentTypeJSON = "application/json"
)

// localHTTPPublisher delivers lifecycle events to an HTTP endpoint in the Pub/Sub
// push format, so a push subscriber can be developed without a real topic.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage is the body Pub/Sub sends to push subscribers.
type PushMessage struct {
	Message      PushMessageBody `json:"message"`
	Subscription string          `json:"subscription"`
}

// PushMessageBody is the message part of a push request. Data is base64 encoded
// by encoding/json because it is a byte slice.
type PushMessageBody struct {
	Data        []byte            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	PublishTime time.Time         `json:"publishTime"`
	OrderingKey string            `json:"orderingKey,omitempty"`
}

// NewLocalHTTPPublisher creates a push-style publisher for development.
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPublishTimeout},
		logger:     logger,
	}
}

// PublishLifecycleEvent posts the event and treats any non-2xx answer as a failure.
func (p *localHTTPPublisher) PublishLifecycleEvent(ctx context.Context, event *service.LifecycleEvent) error {
	encoded, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushMessage{
		Message: PushMessageBody{
			Data:        encoded.data,
			Attributes:  encoded.attributes,
			MessageID:   uuid.NewString(),
			PublishTime: time.Now().UTC(),
			OrderingKey: encoded.orderingKey,
		},
		Subscription: localSubscription,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", localContentTypeJSON)
	if event.TraceID != "" {
		req.Header.Set(headerXRequestID, event.TraceID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "push lifecycle event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint answered %d for %s", resp.StatusCode, event.Type)
	}

	p.logger.Debug("Lifecycle event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("type", event.Type),
		slog.String("request_id", event.RequestID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
