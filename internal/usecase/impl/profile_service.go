package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	domainerrors "lawyerup/internal/domain/errors"
	"lawyerup/internal/domain/repository"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (s *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetProfile returns the caller's own record.
func (s *profileService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err, userID)
	}

	return user, nil
}

// UpdateProfile applies the edit and refreshes every snapshot of the user atomically.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapUserErr(err, userID)
		}

		if err := applyProfileInput(user, input); err != nil {
			return err
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		stats, err := propagateSnapshot(ctx, repoFactory, user)
		if err != nil {
			return err
		}

		s.log(ctx).Debug("Profile snapshot propagated",
			slog.String("userID", user.ID),
			slog.Int("requests", stats.requests),
			slog.Int("chats", stats.chats),
			slog.Int("posts", stats.posts),
		)
		updated = user

		return nil
	})
	if err != nil {
		s.log(ctx).Warn("Failed to update profile", slog.String("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return updated, nil
}

func applyProfileInput(user *entity.User, input *usecase.UpdateProfileInput) error {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed, "name cannot be empty")
		}
		user.Name = name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.ProfilePicURL != nil {
		user.ProfilePicURL = *input.ProfilePicURL
		if user.ProfilePicURL == "" {
			user.ProfilePicURL = entity.DefaultProfilePicURL(user.Name)
		}
	}

	switch {
	case user.IsClient():
		if input.CurrentCase != nil {
			user.Client.CurrentCase = newCaseTemplate(input.CurrentCase)
		}
	case user.IsLawyer():
		l := user.Lawyer
		if input.Bio != nil {
			l.Bio = *input.Bio
		}
		if input.Location != nil {
			l.Location = *input.Location
		}
		if input.AvgPrice != nil {
			l.AvgPrice = *input.AvgPrice
		}
		if input.Specializations != nil {
			l.Specializations = slices.Clone(input.Specializations)
		}
		if input.Achievements != nil {
			l.Achievements = slices.Clone(input.Achievements)
		}
		if input.Awards != nil {
			l.Awards = slices.Clone(input.Awards)
		}
		if input.DomainStrengths != nil {
			l.DomainStrengths = slices.Clone(input.DomainStrengths)
		}
	}

	return nil
}

type propagationStats struct {
	requests int
	chats    int
	posts    int
}

// propagateSnapshot is the one place that rewrites denormalized copies of a user:
// request parties, chat participants, post authors and post commenters.
func propagateSnapshot(ctx context.Context, repoFactory repository.RepositoryFactory, user *entity.User) (propagationStats, error) {
	var stats propagationStats
	snapshot := user.Snapshot()

	requestRepo := repoFactory.NewRequestRepository()
	requests, err := requestRepo.ListByParticipant(ctx, user.ID)
	if err != nil {
		return stats, errors.Wrap(err, "failed to list requests for propagation")
	}
	for _, req := range requests {
		if req.Client.ID == user.ID {
			req.Client = snapshot
		}
		if req.Lawyer.ID == user.ID {
			req.Lawyer = snapshot
		}
		if err := requestRepo.Update(ctx, req); err != nil {
			return stats, errors.Wrap(err, "failed to propagate to request")
		}
		stats.requests++
	}

	stats.chats, err = repoFactory.NewChatRepository().UpdateParticipant(ctx, user.ID, entity.Participant{
		Name:          user.Name,
		ProfilePicURL: user.ProfilePicURL,
	})
	if err != nil {
		return stats, errors.Wrap(err, "failed to propagate to chats")
	}

	postRepo := repoFactory.NewPostRepository()
	posts, err := postRepo.List(ctx)
	if err != nil {
		return stats, errors.Wrap(err, "failed to list posts for propagation")
	}
	for _, post := range posts {
		changed := false
		if post.Author.ID == user.ID {
			post.Author.Name = user.Name
			post.Author.ProfilePicURL = user.ProfilePicURL
			changed = true
		}
		for i := range post.Comments {
			if post.Comments[i].Commenter.ID == user.ID {
				post.Comments[i].Commenter.Name = user.Name
				post.Comments[i].Commenter.ProfilePicURL = user.ProfilePicURL
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := postRepo.Update(ctx, post); err != nil {
			return stats, errors.Wrap(err, "failed to propagate to post")
		}
		stats.posts++
	}

	return stats, nil
}

func newCaseTemplate(in *usecase.CaseTemplateInput) *entity.CaseTemplate {
	urgency := in.Urgency
	if !urgency.IsValid() {
		urgency = entity.UrgencyNone
	}

	return &entity.CaseTemplate{
		CaseType:    in.CaseType,
		Description: in.Description,
		Urgency:     urgency,
		Status:      entity.CaseStatusPending,
		Notes:       []string{},
		Files:       []string{},
	}
}
