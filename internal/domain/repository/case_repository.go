package repository

import (
	"context"
	"errors"

	"lawyerup/internal/domain/entity"
)

// ErrCaseNotFound is returned when a case is not found.
var ErrCaseNotFound = errors.New("case not found")

// CaseRepository defines persistence operations for cases.
type CaseRepository interface {
	Create(ctx context.Context, c *entity.Case) error
	FindByID(ctx context.Context, id string) (*entity.Case, error)
	Update(ctx context.Context, c *entity.Case) error
	ListByClient(ctx context.Context, clientID string) ([]*entity.Case, error)
	ListByLawyer(ctx context.Context, lawyerID string) ([]*entity.Case, error)
}
