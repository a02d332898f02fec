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
	"lawyerup/internal/domain/service"
	"lawyerup/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterClient creates a client account with an optional case template.
func (srv *userService) RegisterClient(ctx context.Context, input *usecase.RegisterClientInput) (*usecase.RegisterOutput, error) {
	user, err := srv.newIdentity(&input.IdentityInput, entity.RoleClient)
	if err != nil {
		return nil, err
	}

	user.Client = &entity.ClientProfile{Username: strings.TrimSpace(input.Username)}
	if input.CurrentCase != nil {
		user.Client.CurrentCase = newCaseTemplate(input.CurrentCase)
	}

	return srv.register(ctx, user)
}

// RegisterLawyer creates a lawyer account with a zero win/loss record.
func (srv *userService) RegisterLawyer(ctx context.Context, input *usecase.RegisterLawyerInput) (*usecase.RegisterOutput, error) {
	user, err := srv.newIdentity(&input.IdentityInput, entity.RoleLawyer)
	if err != nil {
		return nil, err
	}

	user.Lawyer = &entity.LawyerProfile{
		BarCouncilID:    strings.TrimSpace(input.BarCouncilID),
		Gender:          input.Gender,
		Qualification:   input.Qualification,
		University:      input.University,
		GradYear:        input.GradYear,
		Achievements:    nonNil(input.Achievements),
		Awards:          nonNil(input.Awards),
		Bio:             input.Bio,
		DomainStrengths: nonNil(input.DomainStrengths),
		Specializations: nonNil(input.Specializations),
		ExperienceYears: input.ExperienceYears,
		Location:        input.Location,
		AvgPrice:        input.AvgPrice,
	}

	return srv.register(ctx, user)
}

// Login checks the password of the account matching the role and login id.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByLoginID(ctx, input.Role, strings.TrimSpace(input.LoginID))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login for unknown account", slog.Any("role", input.Role), slog.String("loginID", input.LoginID))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, user.Role.Claims())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.LoginOutput{AccessToken: token, User: user}, nil
}

func (srv *userService) newIdentity(in *usecase.IdentityInput, role entity.Role) (*entity.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	hash, err := srv.hasher.Hash(in.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	name := strings.TrimSpace(in.Name)
	pic := strings.TrimSpace(in.ProfilePicURL)
	if pic == "" {
		pic = entity.DefaultProfilePicURL(name)
	}

	return &entity.User{
		ID:            newID(prefixUser),
		Name:          name,
		Email:         strings.TrimSpace(in.Email),
		Phone:         in.Phone,
		DOB:           in.DOB,
		CitizenID:     in.CitizenID,
		PasswordHash:  hash,
		ProfilePicURL: pic,
		Role:          role,
	}, nil
}

func (srv *userService) register(ctx context.Context, user *entity.User) (*usecase.RegisterOutput, error) {
	if user.LoginID() == "" {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "%s is required", user.Role.LoginIDField())
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return nil, errors.WithStack(domainerrors.ErrUserAlreadyExists)
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID), slog.Any("role", user.Role))

	return &usecase.RegisterOutput{User: user}, nil
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}

	return slices.Clone(in)
}
