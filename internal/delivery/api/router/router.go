// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wedump/internal/delivery/api/middleware"
	"wedump/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	FeedHandler         *handler.FeedHandler
	NotificationHandler *handler.NotificationHandler
	PageHandler         *handler.PageHandler
	MediaHandler        *handler.MediaHandler
	RealtimeHandler     *handler.RealtimeHandler
	ShareHandler        *handler.ShareHandler
	SessionMiddleware   *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	feedHandler         *handler.FeedHandler
	notificationHandler *handler.NotificationHandler
	pageHandler         *handler.PageHandler
	mediaHandler        *handler.MediaHandler
	realtimeHandler     *handler.RealtimeHandler
	shareHandler        *handler.ShareHandler
	sessionMiddleware   *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		feedHandler:         params.FeedHandler,
		notificationHandler: params.NotificationHandler,
		pageHandler:         params.PageHandler,
		mediaHandler:        params.MediaHandler,
		realtimeHandler:     params.RealtimeHandler,
		shareHandler:        params.ShareHandler,
		sessionMiddleware:   params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Screen and fragments render for signed out visitors too
	e.GET("/", r.pageHandler.Screen)
	e.GET("/fragments/wall", r.pageHandler.Wall)
	e.GET("/media/*", r.mediaHandler.Download)
	e.GET("/ws", r.realtimeHandler.Connect)

	authGroup := e.Group("/auth", middleware.SameOrigin)
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/federated", r.authHandler.FederatedLogin)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password-reset", r.authHandler.PasswordReset)
	}

	apiV1 := e.Group("/api/v1", middleware.SameOrigin)
	apiV1.GET("/session", r.authHandler.GetSession)

	// Everything else needs a signed-in identity
	private := apiV1.Group("", r.sessionMiddleware.RequireSession)
	{
		private.GET("/pages/:page", r.pageHandler.Navigate)
		private.GET("/users", r.feedHandler.ListUsers)
		private.GET("/stats", r.feedHandler.GetStats)
	}

	photosGroup := private.Group("/photos")
	{
		photosGroup.GET("", r.feedHandler.ListPhotos)
		photosGroup.POST("", r.feedHandler.UploadPhoto)
		photosGroup.POST("/reload", r.feedHandler.ReloadPhotos)
		photosGroup.POST("/preview", r.feedHandler.PreviewPhoto)
		photosGroup.POST("/:id/like", r.feedHandler.ToggleLike)
		photosGroup.DELETE("/:id", r.feedHandler.DeletePhoto)
		photosGroup.POST("/:id/comments", r.feedHandler.CommentOnPhoto)
		photosGroup.GET("/:id/qr", r.shareHandler.PhotoQRCode)
	}

	notificationsGroup := private.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.POST("/:id/read", r.notificationHandler.MarkRead)
	}
}
