// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dating/config"
	"dating/internal/delivery/http/middleware"
	"dating/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler       *handler.AccountHandler
	MemberHandler        *handler.MemberHandler
	PhotoHandler         *handler.PhotoHandler
	PhotoFileHandler     *handler.PhotoFileHandler
	AuthMiddleware       *middleware.AuthMiddleware
	LastActiveMiddleware *middleware.LastActiveMiddleware
	Config               *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	memberHandler    *handler.MemberHandler
	photoHandler     *handler.PhotoHandler
	photoFileHandler *handler.PhotoFileHandler
	authMiddleware   *middleware.AuthMiddleware
	lastActive       *middleware.LastActiveMiddleware
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		memberHandler:    params.MemberHandler,
		photoHandler:     params.PhotoHandler,
		photoFileHandler: params.PhotoFileHandler,
		authMiddleware:   params.AuthMiddleware,
		lastActive:       params.LastActiveMiddleware,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group(r.config.HTTP.BasePath)

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	accountGroup := api.Group("/account")
	{
		accountGroup.POST("/register", r.accountHandler.Register)
		accountGroup.POST("/login", r.accountHandler.Login)
	}

	// Middleware is attached per route: a group-level Use would also guard the public list.
	authenticated := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.lastActive.Touch}

	membersGroup := api.Group("/members")
	{
		membersGroup.GET("", r.memberHandler.ListMembers)
		membersGroup.GET("/:id", r.memberHandler.GetMember, authenticated...)
		membersGroup.GET("/:id/photos", r.memberHandler.GetMemberPhotos, authenticated...)
		membersGroup.PUT("", r.memberHandler.UpdateMember, authenticated...)
		membersGroup.POST("/add-photo", r.photoHandler.AddPhoto, authenticated...)
		membersGroup.PUT("/set-main-photo/:photoId", r.photoHandler.SetMainPhoto, authenticated...)
		membersGroup.DELETE("/delete-photo/:photoId", r.photoHandler.DeletePhoto, authenticated...)
	}

	e.GET("/photos/*", r.photoFileHandler.ServePhoto)
}
