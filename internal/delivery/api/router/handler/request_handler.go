package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RequestHandlerParams holds dependencies for RequestHandler, injected by Fx.
type RequestHandlerParams struct {
	fx.In

	RequestUC usecase.RequestUsecase
}

// RequestHandler exposes the client request lifecycle.
type RequestHandler struct {
	requestUC usecase.RequestUsecase
}

// NewRequestHandler is the constructor for RequestHandler
func NewRequestHandler(params RequestHandlerParams) *RequestHandler {
	return &RequestHandler{requestUC: params.RequestUC}
}

// SendRequestRequest represents the request body for sending a request to a lawyer
type SendRequestRequest struct {
	LawyerID string `json:"lawyerId" validate:"required"`
}

// SendRequest creates a pending request from the calling client.
func (h *RequestHandler) SendRequest(c echo.Context) error {
	var req SendRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.requestUC.SendRequest(c.Request().Context(), deliverycontext.GetUserID(c), req.LawyerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created)
}

// ListRequests returns requests the caller is a party to.
func (h *RequestHandler) ListRequests(c echo.Context) error {
	requests, err := h.requestUC.ListRequests(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// AcceptRequest accepts a pending request and returns the derived case and chat.
func (h *RequestHandler) AcceptRequest(c echo.Context) error {
	out, err := h.requestUC.AcceptRequest(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// RejectRequest rejects a pending request.
func (h *RequestHandler) RejectRequest(c echo.Context) error {
	updated, err := h.requestUC.RejectRequest(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}

// CancelRequest withdraws a pending request.
func (h *RequestHandler) CancelRequest(c echo.Context) error {
	updated, err := h.requestUC.CancelRequest(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}
