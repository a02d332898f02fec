package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/domain/service"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxRecommendationRank is the lowest rank the assistant may assign.
const maxRecommendationRank = 3

type directoryService struct {
	userRepo  repository.UserRepository
	assistant service.LegalAssistant
	qrService service.QRCodeService
	logger    *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Assistant service.LegalAssistant
	QRService service.QRCodeService
	Logger    *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		userRepo:  params.UserRepo,
		assistant: params.Assistant,
		qrService: params.QRService,
		logger:    params.Logger,
	}
}

func (s *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// BrowseLawyers lists lawyers for the viewer. Ranked lawyers come first in rank
// order, then the rest by experience descending. The assistant call happens
// outside any store transaction.
func (s *directoryService) BrowseLawyers(ctx context.Context, viewerID string) ([]*usecase.LawyerListing, error) {
	viewer, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		return nil, mapUserErr(err, viewerID)
	}

	lawyers, err := s.userRepo.ListByRole(ctx, entity.RoleLawyer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list lawyers")
	}

	var ranks map[string]int
	if viewer.IsClient() && viewer.Client.CurrentCase.HasMatter() {
		recs := s.assistant.RecommendLawyers(ctx, viewer.Client.CurrentCase, lawyers)
		ranks = acceptedRanks(recs, lawyers)
		s.log(ctx).Debug("Recommendations applied", slog.String("viewerID", viewerID), slog.Int("ranked", len(ranks)))
	}

	return rankLawyers(lawyers, ranks), nil
}

func (s *directoryService) GetLawyer(ctx context.Context, lawyerID string) (*usecase.LawyerListing, error) {
	lawyer, err := s.userRepo.FindByID(ctx, lawyerID)
	if err != nil {
		return nil, mapUserErr(err, lawyerID)
	}
	if !lawyer.IsLawyer() {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, lawyerID)
	}

	return newListing(lawyer, 0), nil
}

func (s *directoryService) GetClient(ctx context.Context, viewerID, clientID string) (*entity.User, error) {
	viewer, err := s.userRepo.FindByID(ctx, viewerID)
	if err != nil {
		return nil, mapUserErr(err, viewerID)
	}
	if !viewer.IsLawyer() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only lawyers can view client profiles")
	}

	client, err := s.userRepo.FindByID(ctx, clientID)
	if err != nil {
		return nil, mapUserErr(err, clientID)
	}
	if !client.IsClient() {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, clientID)
	}

	return client, nil
}

func (s *directoryService) LawyerQRCode(ctx context.Context, lawyerID string) ([]byte, error) {
	if _, err := s.GetLawyer(ctx, lawyerID); err != nil {
		return nil, err
	}

	png, err := s.qrService.GenerateProfileQR(lawyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// acceptedRanks keeps recommendations that name a known lawyer with a rank in
// 1..3. The first recommendation for a lawyer wins.
func acceptedRanks(recs []entity.Recommendation, lawyers []*entity.User) map[string]int {
	known := make(map[string]struct{}, len(lawyers))
	for _, l := range lawyers {
		known[l.ID] = struct{}{}
	}

	ranks := make(map[string]int, len(recs))
	for _, rec := range recs {
		if rec.Rank < 1 || rec.Rank > maxRecommendationRank {
			continue
		}
		if _, ok := known[rec.LawyerID]; !ok {
			continue
		}
		if _, seen := ranks[rec.LawyerID]; seen {
			continue
		}
		ranks[rec.LawyerID] = rec.Rank
	}

	return ranks
}

// rankLawyers orders lawyers: both ranked by ascending rank, ranked before
// unranked, otherwise by experience descending. The sort is stable.
func rankLawyers(lawyers []*entity.User, ranks map[string]int) []*usecase.LawyerListing {
	out := make([]*usecase.LawyerListing, 0, len(lawyers))
	for _, l := range lawyers {
		out = append(out, newListing(l, ranks[l.ID]))
	}

	slices.SortStableFunc(out, func(a, b *usecase.LawyerListing) int {
		switch {
		case a.Rank > 0 && b.Rank > 0:
			return cmp.Compare(a.Rank, b.Rank)
		case a.Rank > 0:
			return -1
		case b.Rank > 0:
			return 1
		default:
			return cmp.Compare(b.Lawyer.ExperienceYears, a.Lawyer.ExperienceYears)
		}
	})

	return out
}

func newListing(lawyer *entity.User, rank int) *usecase.LawyerListing {
	return &usecase.LawyerListing{
		User:        lawyer,
		Rank:        rank,
		SuccessRate: lawyer.Lawyer.SuccessRate(),
	}
}
