// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// --- Input DTOs ---

// IdentityInput holds the base identity shared by both roles.
type IdentityInput struct {
	Name            string
	Email           string
	Phone           string
	DOB             string
	CitizenID       string
	Password        string
	ConfirmPassword string
	ProfilePicURL   string
}

// CaseTemplateInput describes a client's matter before any lawyer is involved.
type CaseTemplateInput struct {
	CaseType    string
	Description string
	Urgency     entity.Urgency
}

// RegisterClientInput defines the data required to register a client.
type RegisterClientInput struct {
	IdentityInput
	Username    string
	CurrentCase *CaseTemplateInput
}

// RegisterLawyerInput defines the data required to register a lawyer.
type RegisterLawyerInput struct {
	IdentityInput
	BarCouncilID    string
	Gender          string
	Qualification   string
	University      string
	GradYear        int
	Achievements    []string
	Awards          []string
	Bio             string
	DomainStrengths []string
	Specializations []string
	ExperienceYears int
	Location        string
	AvgPrice        int
}

// LoginInput defines the data required to log in. LoginID is a username for
// clients and a bar council id for lawyers.
type LoginInput struct {
	Role     entity.Role
	LoginID  string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the signed access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines account registration and login.
type UserUsecase interface {
	RegisterClient(ctx context.Context, input *RegisterClientInput) (*RegisterOutput, error)
	RegisterLawyer(ctx context.Context, input *RegisterLawyerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
