package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DirectoryHandlerParams holds dependencies for DirectoryHandler, injected by Fx.
type DirectoryHandlerParams struct {
	fx.In

	DirectoryUC usecase.DirectoryUsecase
}

// DirectoryHandler serves lawyer browsing and profile lookups.
type DirectoryHandler struct {
	directoryUC usecase.DirectoryUsecase
}

// NewDirectoryHandler is the constructor for DirectoryHandler
func NewDirectoryHandler(params DirectoryHandlerParams) *DirectoryHandler {
	return &DirectoryHandler{directoryUC: params.DirectoryUC}
}

// ListLawyers returns every lawyer, recommended ones first for clients.
func (h *DirectoryHandler) ListLawyers(c echo.Context) error {
	lawyers, err := h.directoryUC.BrowseLawyers(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lawyers)
}

// GetLawyer returns one lawyer's public profile.
func (h *DirectoryHandler) GetLawyer(c echo.Context) error {
	lawyer, err := h.directoryUC.GetLawyer(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, lawyer)
}

// GetLawyerQR renders the lawyer's profile share code as a PNG.
func (h *DirectoryHandler) GetLawyerQR(c echo.Context) error {
	png, err := h.directoryUC.LawyerQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetClient returns a client profile to a lawyer.
func (h *DirectoryHandler) GetClient(c echo.Context) error {
	client, err := h.directoryUC.GetClient(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, client)
}
