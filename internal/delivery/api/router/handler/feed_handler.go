package handler

import (
	"net/http"

	"lawyerup/internal/delivery/api/response"
	deliverycontext "lawyerup/internal/delivery/context"
	"lawyerup/internal/domain/entity"
	"lawyerup/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FeedHandlerParams holds dependencies for FeedHandler, injected by Fx.
type FeedHandlerParams struct {
	fx.In

	FeedUC usecase.FeedUsecase
}

// FeedHandler serves the social feed.
type FeedHandler struct {
	feedUC usecase.FeedUsecase
}

// NewFeedHandler is the constructor for FeedHandler
func NewFeedHandler(params FeedHandlerParams) *FeedHandler {
	return &FeedHandler{feedUC: params.FeedUC}
}

// AddPostRequest represents the request body for a new post
type AddPostRequest struct {
	Text     string `json:"text" validate:"required,max=4000"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// AddCommentRequest represents the request body for a comment
type AddCommentRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

// LikeResponse reports the like state after a toggle.
type LikeResponse struct {
	Post  *entity.Post `json:"post"`
	Liked bool         `json:"liked"`
}

// ListPosts returns the feed, newest first.
func (h *FeedHandler) ListPosts(c echo.Context) error {
	posts, err := h.feedUC.ListPosts(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, posts)
}

// AddPost publishes a post.
func (h *FeedHandler) AddPost(c echo.Context) error {
	var req AddPostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	post, err := h.feedUC.AddPost(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.AddPostInput{
		Text:     req.Text,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, post)
}

// ToggleLike likes or unlikes a post for the caller.
func (h *FeedHandler) ToggleLike(c echo.Context) error {
	userID := deliverycontext.GetUserID(c)

	post, err := h.feedUC.ToggleLike(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, LikeResponse{Post: post, Liked: post.LikedBy(userID)})
}

// AddComment appends a comment to a post.
func (h *FeedHandler) AddComment(c echo.Context) error {
	var req AddCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	comment, err := h.feedUC.AddComment(c.Request().Context(), c.Param("id"), deliverycontext.GetUserID(c), req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, comment)
}
