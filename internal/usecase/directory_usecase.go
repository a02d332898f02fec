package usecase

import (
	"context"

	"lawyerup/internal/domain/entity"
)

// LawyerListing is a lawyer as shown in the browse list. Rank is set when the
// assistant recommended the lawyer for the viewer's case.
type LawyerListing struct {
	*entity.User
	Rank        int `json:"rank,omitempty"`
	SuccessRate int `json:"successRate"`
}

// DirectoryUsecase lets users discover each other.
type DirectoryUsecase interface {
	// BrowseLawyers lists lawyers, recommended ones first for a client with a described case.
	BrowseLawyers(ctx context.Context, viewerID string) ([]*LawyerListing, error)

	GetLawyer(ctx context.Context, lawyerID string) (*LawyerListing, error)

	// GetClient returns a client profile. Only lawyers may look clients up.
	GetClient(ctx context.Context, viewerID, clientID string) (*entity.User, error)

	// LawyerQRCode renders a PNG share code for a lawyer's profile.
	LawyerQRCode(ctx context.Context, lawyerID string) ([]byte, error)
}
