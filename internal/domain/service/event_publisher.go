package service

import (
	"context"
	"time"
)

// Lifecycle event types published on request transitions.
const (
	EventRequestSent      = "request.sent"
	EventRequestAccepted  = "request.accepted"
	EventRequestRejected  = "request.rejected"
	EventRequestCancelled = "request.cancelled"
)

// LifecycleEvent describes a committed request transition.
type LifecycleEvent struct {
	TraceID    string    `json:"trace_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id"`
	ClientID   string    `json:"client_id"`
	LawyerID   string    `json:"lawyer_id"`
	CaseID     string    `json:"case_id,omitempty"`
	ChatID     string    `json:"chat_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a request transition for downstream consumers
	PublishLifecycleEvent(ctx context.Context, event *LifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
