package pubsub

import (
	"encoding/json"

	"lawyerup/internal/domain/service"

	"github.com/pkg/errors"
)

// encodedEvent is a lifecycle event ready for any transport.
type encodedEvent struct {
	data        []byte
	attributes  map[string]string
	orderingKey string
}

// encodeEvent serialises the event and derives the attributes subscribers
// filter on. Events of the same request share an ordering key.
func encodeEvent(event *service.LifecycleEvent) (*encodedEvent, error) {
	if event == nil || event.Type == "" || event.RequestID == "" {
		return nil, errors.New("lifecycle event needs a type and a request id")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode lifecycle event")
	}

	attributes := map[string]string{
		"event_type": event.Type,
		"request_id": event.RequestID,
		"client_id":  event.ClientID,
		"lawyer_id":  event.LawyerID,
	}
	if event.TraceID != "" {
		attributes["trace_id"] = event.TraceID
	}

	return &encodedEvent{data: data, attributes: attributes, orderingKey: event.RequestID}, nil
}
