package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// AcceptRequestOutput holds the records derived from an accepted request.
type AcceptRequestOutput struct {
	Request *entity.ClientRequest `json:"request"`
	Case    *entity.Case          `json:"case"`
	Chat    *entity.Chat          `json:"chat"`
}

// RequestUsecase drives the client request state machine:
// pending -> accepted | rejected | cancelled.
type RequestUsecase interface {
	// SendRequest creates a pending request from the client's case template.
	SendRequest(ctx context.Context, clientID, lawyerID string) (*entity.ClientRequest, error)

	// AcceptRequest accepts a pending request addressed to lawyerID and derives a case and a chat.
	AcceptRequest(ctx context.Context, lawyerID, requestID string) (*AcceptRequestOutput, error)

	// RejectRequest rejects a pending request addressed to lawyerID.
	RejectRequest(ctx context.Context, lawyerID, requestID string) (*entity.ClientRequest, error)

	// CancelRequest withdraws a pending request sent by clientID.
	CancelRequest(ctx context.Context, clientID, requestID string) (*entity.ClientRequest, error)

	// ListRequests returns every request the user is a party to.
	ListRequests(ctx context.Context, userID string) ([]*entity.ClientRequest, error)
}
