package handler

import (
	"log/slog"
	"net/http"

	"lawyerup/internal/delivery/api/response"
	"lawyerup/internal/domain/entity"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// IdentityRequest is the identity block shared by both registration forms.
type IdentityRequest struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,max=20"`
	DOB             string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	CitizenID       string `json:"citizenId" validate:"required,max=32"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	ProfilePicURL   string `json:"profilePicUrl" validate:"omitempty,url"`
}

func (r *IdentityRequest) toInput() usecase.IdentityInput {
	return usecase.IdentityInput{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		DOB:             r.DOB,
		CitizenID:       r.CitizenID,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		ProfilePicURL:   r.ProfilePicURL,
	}
}

// CaseTemplateRequest describes a client's matter.
type CaseTemplateRequest struct {
	CaseType    string `json:"caseType" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=2000"`
	Urgency     string `json:"urgency" validate:"required,urgency"`
}

func (r *CaseTemplateRequest) toInput() *usecase.CaseTemplateInput {
	if r == nil {
		return nil
	}

	return &usecase.CaseTemplateInput{
		CaseType:    r.CaseType,
		Description: r.Description,
		Urgency:     entity.Urgency(r.Urgency),
	}
}

// RegisterClientRequest represents the request body for client registration
type RegisterClientRequest struct {
	IdentityRequest
	Username    string               `json:"username" validate:"required,min=3,max=32"`
	CurrentCase *CaseTemplateRequest `json:"currentCase" validate:"omitempty"`
}

// RegisterLawyerRequest represents the request body for lawyer registration
type RegisterLawyerRequest struct {
	IdentityRequest
	BarCouncilID    string   `json:"barCouncilId" validate:"required,max=32"`
	Gender          string   `json:"gender" validate:"omitempty,max=20"`
	Qualification   string   `json:"qualification" validate:"required"`
	University      string   `json:"university" validate:"required"`
	GradYear        int      `json:"gradYear" validate:"omitempty,gte=1950,lte=2100"`
	Achievements    []string `json:"achievements"`
	Awards          []string `json:"awards"`
	Bio             string   `json:"bio" validate:"max=2000"`
	DomainStrengths []string `json:"domainStrengths"`
	Specializations []string `json:"specializations" validate:"required,min=1,dive,required"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0,lte=80"`
	Location        string   `json:"location" validate:"required"`
	AvgPrice        int      `json:"avgPrice" validate:"gte=0"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Role     string `json:"role" validate:"required,role"`
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by login.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	TokenType   string       `json:"tokenType"`
	User        *entity.User `json:"user"`
}

// RegisterClient handles client registration
func (h *UserHandler) RegisterClient(c echo.Context) error {
	var req RegisterClientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.RegisterClient(c.Request().Context(), &usecase.RegisterClientInput{
		IdentityInput: req.toInput(),
		Username:      req.Username,
		CurrentCase:   req.CurrentCase.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out.User)
}

// RegisterLawyer handles lawyer registration
func (h *UserHandler) RegisterLawyer(c echo.Context) error {
	var req RegisterLawyerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.RegisterLawyer(c.Request().Context(), &usecase.RegisterLawyerInput{
		IdentityInput:   req.toInput(),
		BarCouncilID:    req.BarCouncilID,
		Gender:          req.Gender,
		Qualification:   req.Qualification,
		University:      req.University,
		GradYear:        req.GradYear,
		Achievements:    req.Achievements,
		Awards:          req.Awards,
		Bio:             req.Bio,
		DomainStrengths: req.DomainStrengths,
		Specializations: req.Specializations,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		AvgPrice:        req.AvgPrice,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, out.User)
}

// Login handles user login
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Role:     entity.Role(req.Role),
		LoginID:  req.LoginID,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AuthResponse{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		User:        out.User,
	})
}
