package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// CaseUsecase covers work on cases after a request has been accepted.
type CaseUsecase interface {
	// ListCases returns all of a client's cases, or a lawyer's active cases.
	ListCases(ctx context.Context, userID string) ([]*entity.Case, error)

	AddCaseNote(ctx context.Context, lawyerID, caseID, note string) (*entity.Case, error)

	// CloseCase moves an active case to closed and tells the client.
	CloseCase(ctx context.Context, lawyerID, caseID string) (*entity.Case, error)
}
