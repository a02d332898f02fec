package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AssistantHandlerParams holds dependencies for AssistantHandler, injected by Fx.
type AssistantHandlerParams struct {
	fx.In

	AssistantUC usecase.AssistantUsecase
}

// AssistantHandler serves legal news and the LawBot chat.
type AssistantHandler struct {
	assistantUC usecase.AssistantUsecase
}

// NewAssistantHandler is the constructor for AssistantHandler
func NewAssistantHandler(params AssistantHandlerParams) *AssistantHandler {
	return &AssistantHandler{assistantUC: params.AssistantUC}
}

// AskLawBotRequest represents a question for LawBot
type AskLawBotRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// GetNews returns cached news, optionally filtered by ?category=.
func (h *AssistantHandler) GetNews(c echo.Context) error {
	news, err := h.assistantUC.GetNews(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, news)
}

// GetLawBot returns the caller's LawBot transcript.
func (h *AssistantHandler) GetLawBot(c echo.Context) error {
	transcript, err := h.assistantUC.GetLawBotTranscript(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transcript)
}

// AskLawBot sends a question and returns it with the answer.
func (h *AssistantHandler) AskLawBot(c echo.Context) error {
	var req AskLawBotRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	exchange, err := h.assistantUC.AskLawBot(c.Request().Context(), deliverycontext.GetUserID(c), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, exchange)
}
