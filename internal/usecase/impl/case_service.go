package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type caseService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	caseRepo  repository.CaseRepository
	effects   *sideEffects
	logger    *slog.Logger
}

// CaseServiceParams holds dependencies for CaseService, injected by Fx.
type CaseServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	CaseRepo    repository.CaseRepository
	SideEffects SideEffectParams
	Logger      *slog.Logger
}

// NewCaseService is the constructor for caseService.
func NewCaseService(params CaseServiceParams) usecase.CaseUsecase {
	return &caseService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		caseRepo:  params.CaseRepo,
		effects:   newSideEffects(params.SideEffects, params.Logger),
		logger:    params.Logger,
	}
}

func (s *caseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListCases returns a client's cases in every status, or a lawyer's active ones.
func (s *caseService) ListCases(ctx context.Context, userID string) ([]*entity.Case, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err, userID)
	}

	out := []*entity.Case{}
	if user.IsClient() {
		cases, err := s.caseRepo.ListByClient(ctx, userID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list cases")
		}

		return append(out, cases...), nil
	}

	cases, err := s.caseRepo.ListByLawyer(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cases")
	}
	for _, c := range cases {
		if c.Status == entity.CaseStatusActive {
			out = append(out, c)
		}
	}

	return out, nil
}

// AddCaseNote appends a note to an active case owned by the lawyer.
func (s *caseService) AddCaseNote(ctx context.Context, lawyerID, caseID, note string) (*entity.Case, error) {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "note is empty")
	}

	var updated *entity.Case
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewCaseRepository()
		c, err := findActiveCase(ctx, repo, lawyerID, caseID)
		if err != nil {
			return err
		}

		c.Notes = append(c.Notes, note)
		if err := repo.Update(ctx, c); err != nil {
			return errors.Wrap(err, "failed to update case")
		}
		updated = c

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// CloseCase closes an active case and notifies the client.
func (s *caseService) CloseCase(ctx context.Context, lawyerID, caseID string) (*entity.Case, error) {
	var (
		updated      *entity.Case
		notification *entity.Notification
	)

	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		repo := repoFactory.NewCaseRepository()
		c, err := findActiveCase(ctx, repo, lawyerID, caseID)
		if err != nil {
			return err
		}

		lawyer, err := findUserWithRole(ctx, repoFactory.NewUserRepository(), lawyerID, entity.RoleLawyer)
		if err != nil {
			return err
		}

		c.Status = entity.CaseStatusClosed
		if err := repo.Update(ctx, c); err != nil {
			return errors.Wrap(err, "failed to update case")
		}

		notification, err = emitNotification(ctx, repoFactory.NewNotificationRepository(), c.ClientID,
			fmt.Sprintf("%s has closed your %s case.", lawyer.Name, c.CaseType))
		if err != nil {
			return errors.Wrap(err, "failed to notify client")
		}
		updated = c

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Failed to close case", slog.String("caseID", caseID), slog.Any("error", err))

		return nil, err
	}

	s.log(ctx).Info("Case closed", slog.String("caseID", caseID))
	s.effects.deliverNotifications(ctx, notification)

	return updated, nil
}

func findActiveCase(ctx context.Context, repo repository.CaseRepository, lawyerID, caseID string) (*entity.Case, error) {
	c, err := repo.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCaseNotFound, caseID)
		}

		return nil, errors.Wrap(err, "failed to load case")
	}

	if c.LawyerID != lawyerID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "case belongs to another lawyer")
	}
	if c.Status != entity.CaseStatusActive {
		return nil, errors.Wrapf(domainerrors.ErrCaseNotActive, "case %s is %s", c.ID, c.Status)
	}

	return c, nil
}
