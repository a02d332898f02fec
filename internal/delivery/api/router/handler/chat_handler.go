package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
}

// ChatHandler serves chat threads.
type ChatHandler struct {
	chatUC usecase.ChatUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{chatUC: params.ChatUC}
}

// SendMessageRequest represents the request body for a chat message
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,max=4000"`
}

// ListChats returns the caller's chats.
func (h *ChatHandler) ListChats(c echo.Context) error {
	chats, err := h.chatUC.ListChats(c.Request().Context(), deliverycontext.GetUserID(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chats)
}

// GetChat returns one chat with its messages.
func (h *ChatHandler) GetChat(c echo.Context) error {
	chat, err := h.chatUC.GetChat(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, chat)
}

// SendMessage posts a message to the other participant.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req SendMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msg, err := h.chatUC.SendMessage(c.Request().Context(), deliverycontext.GetUserID(c), c.Param("id"), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, msg)
}
