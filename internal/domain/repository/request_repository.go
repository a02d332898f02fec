package repository

import (
	"context"
	"errors"

	"lawyerup/internal/domain/entity"
)

// ErrRequestNotFound is returned when a client request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines persistence operations for client requests.
type RequestRepository interface {
	Create(ctx context.Context, request *entity.ClientRequest) error
	FindByID(ctx context.Context, id string) (*entity.ClientRequest, error)
	Update(ctx context.Context, request *entity.ClientRequest) error

	// FindOpenBetween returns the pending or accepted request for the pair, or ErrRequestNotFound.
	FindOpenBetween(ctx context.Context, clientID, lawyerID string) (*entity.ClientRequest, error)

	// ListByParticipant returns every request where userID is the client or the lawyer.
	ListByParticipant(ctx context.Context, userID string) ([]*entity.ClientRequest, error)
}
