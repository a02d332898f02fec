package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// UpdateProfileRequest is a partial update. Absent fields are left unchanged.
type UpdateProfileRequest struct {
	Name          *string `json:"name" validate:"omitempty,max=100"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=20"`
	ProfilePicURL *string `json:"profilePicUrl" validate:"omitempty,url"`

	CurrentCase *CaseTemplateRequest `json:"currentCase" validate:"omitempty"`

	Bio             *string  `json:"bio" validate:"omitempty,max=2000"`
	Location        *string  `json:"location"`
	AvgPrice        *int     `json:"avgPrice" validate:"omitempty,gte=0"`
	Specializations []string `json:"specializations" validate:"omitempty,dive,required"`
	Achievements    []string `json:"achievements"`
	Awards          []string `json:"awards"`
	DomainStrengths []string `json:"domainStrengths"`
}

// GetProfile returns the authenticated user's record.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	user, err := h.profileUC.GetProfile(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile applies a partial update to the authenticated user's record.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.UpdateProfileInput{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		ProfilePicURL:   req.ProfilePicURL,
		CurrentCase:     req.CurrentCase.toInput(),
		Bio:             req.Bio,
		Location:        req.Location,
		AvgPrice:        req.AvgPrice,
		Specializations: req.Specializations,
		Achievements:    req.Achievements,
		Awards:          req.Awards,
		DomainStrengths: req.DomainStrengths,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}
