// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lawyerup/internal/delivery/api/middleware"
	"lawyerup/internal/delivery/api/router/handler"
	"lawyerup/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ProfileHandler      *handler.ProfileHandler
	DirectoryHandler    *handler.DirectoryHandler
	RequestHandler      *handler.RequestHandler
	CaseHandler         *handler.CaseHandler
	ChatHandler         *handler.ChatHandler
	FeedHandler         *handler.FeedHandler
	NotificationHandler *handler.NotificationHandler
	AssistantHandler    *handler.AssistantHandler
	StreamHandler       *handler.StreamHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Public auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register/client", r.UserHandler.RegisterClient)
		authGroup.POST("/register/lawyer", r.UserHandler.RegisterLawyer)
		authGroup.POST("/login", r.UserHandler.Login)
	}

	// Everything below requires a valid access token
	authed := apiV1.Group("", r.AuthMiddleware.Authenticate)
	asClient := r.AuthMiddleware.RequireRole(entity.RoleClient)
	asLawyer := r.AuthMiddleware.RequireRole(entity.RoleLawyer)

	authed.GET("/profile", r.ProfileHandler.GetProfile)
	authed.PUT("/profile", r.ProfileHandler.UpdateProfile)

	authed.GET("/lawyers", r.DirectoryHandler.ListLawyers)
	authed.GET("/lawyers/:id", r.DirectoryHandler.GetLawyer)
	authed.GET("/lawyers/:id/qr", r.DirectoryHandler.GetLawyerQR)
	authed.GET("/clients/:id", r.DirectoryHandler.GetClient, asLawyer)

	requestsGroup := authed.Group("/requests")
	{
		requestsGroup.GET("", r.RequestHandler.ListRequests)
		requestsGroup.POST("", r.RequestHandler.SendRequest, asClient)
		requestsGroup.POST("/:id/accept", r.RequestHandler.AcceptRequest, asLawyer)
		requestsGroup.POST("/:id/reject", r.RequestHandler.RejectRequest, asLawyer)
		requestsGroup.POST("/:id/cancel", r.RequestHandler.CancelRequest, asClient)
	}

	casesGroup := authed.Group("/cases")
	{
		casesGroup.GET("", r.CaseHandler.ListCases)
		casesGroup.POST("/:id/notes", r.CaseHandler.AddNote, asLawyer)
		casesGroup.POST("/:id/close", r.CaseHandler.CloseCase, asLawyer)
	}

	chatsGroup := authed.Group("/chats")
	{
		chatsGroup.GET("", r.ChatHandler.ListChats)
		chatsGroup.GET("/:id", r.ChatHandler.GetChat)
		chatsGroup.POST("/:id/messages", r.ChatHandler.SendMessage)
	}

	postsGroup := authed.Group("/posts")
	{
		postsGroup.GET("", r.FeedHandler.ListPosts)
		// Only lawyers publish; anyone signed in may like and comment.
		postsGroup.POST("", r.FeedHandler.AddPost, asLawyer)
		postsGroup.POST("/:id/like", r.FeedHandler.ToggleLike)
		postsGroup.POST("/:id/comments", r.FeedHandler.AddComment)
	}

	authed.GET("/notifications", r.NotificationHandler.ListNotifications)
	authed.POST("/notifications/read-all", r.NotificationHandler.MarkAllRead)

	authed.GET("/news", r.AssistantHandler.GetNews)
	authed.GET("/lawbot", r.AssistantHandler.GetLawBot)
	authed.POST("/lawbot/messages", r.AssistantHandler.AskLawBot)

	authed.GET("/stream", r.StreamHandler.Stream)
}
