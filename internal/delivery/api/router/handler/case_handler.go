package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CaseHandlerParams holds dependencies for CaseHandler, injected by Fx.
type CaseHandlerParams struct {
	fx.In

	CaseUC usecase.CaseUsecase
}

// CaseHandler serves case listing and the lawyer's case actions.
type CaseHandler struct {
	caseUC usecase.CaseUsecase
}

// NewCaseHandler is the constructor for CaseHandler
func NewCaseHandler(params CaseHandlerParams) *CaseHandler {
	return &CaseHandler{caseUC: params.CaseUC}
}

// AddNoteRequest represents the request body for adding a case note
type AddNoteRequest struct {
	Note string `json:"note" validate:"required,max=2000"`
}

// ListCases returns the caller's cases.
func (h *CaseHandler) ListCases(c echo.Context) error {
	cases, err := h.caseUC.ListCases(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cases)
}

// AddNote appends a note to a case the lawyer handles.
func (h *CaseHandler) AddNote(c echo.Context) error {
	var req AddNoteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	updated, err := h.caseUC.AddCaseNote(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"), req.Note)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// CloseCase closes an active case.
func (h *CaseHandler) CloseCase(c echo.Context) error {
	closed, err := h.caseUC.CloseCase(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, closed)
}
