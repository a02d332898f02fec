package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// UpdateProfileInput carries the fields a user may change. Nil means unchanged.
// Client-only and lawyer-only fields are ignored for the other role.
type UpdateProfileInput struct {
	Name          *string
	Email         *string
	Phone         *string
	ProfilePicURL *string

	// Client
	CurrentCase *CaseTemplateInput

	// Lawyer
	Bio             *string
	Location        *string
	AvgPrice        *int
	Specializations []string
	Achievements    []string
	Awards          []string
	DomainStrengths []string
}

// ProfileUsecase reads and edits the caller's own record and keeps every
// denormalized snapshot of it in step.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.User, error)

	// UpdateProfile replaces the user record and propagates name and picture
	// into requests, chat participants, posts and comments in the same transaction.
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.User, error)
}
