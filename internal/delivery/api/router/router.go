// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sahara/internal/delivery/api/middleware"
	"sahara/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const loginRateLimitScope = "login"

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	ContactHandler      *handler.ContactHandler
	ReminderHandler     *handler.ReminderHandler
	CompanionHandler    *handler.CompanionHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	contactHandler      *handler.ContactHandler
	reminderHandler     *handler.ReminderHandler
	companionHandler    *handler.CompanionHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		contactHandler:      params.ContactHandler,
		reminderHandler:     params.ReminderHandler,
		companionHandler:    params.CompanionHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Account routes
	userGroup := apiV1.Group("/user")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login, r.rateLimitMiddleware.Limit(loginRateLimitScope))
		userGroup.POST("/logout", r.userHandler.Logout)
	}

	// Emergency contacts, scoped to the caller
	contactGroup := userGroup.Group("/contact")
	contactGroup.Use(r.authMiddleware.Authenticate)
	{
		contactGroup.POST("/create", r.contactHandler.CreateContact)
		contactGroup.GET("/getContacts", r.contactHandler.GetContacts)
		contactGroup.GET("/:id", r.contactHandler.GetContact)
		contactGroup.PUT("/:id", r.contactHandler.UpdateContact)
		contactGroup.DELETE("/:id", r.contactHandler.DeleteContact)
		contactGroup.GET("/:id/qrcode", r.contactHandler.ContactCard)
	}

	// Medication reminders, scoped to the caller
	medicGroup := userGroup.Group("/medic")
	medicGroup.Use(r.authMiddleware.Authenticate)
	{
		medicGroup.POST("/createReminder", r.reminderHandler.CreateReminder)
		medicGroup.GET("/getReminders", r.reminderHandler.GetReminders)
		medicGroup.GET("/:id", r.reminderHandler.GetReminder)
		medicGroup.PUT("/:id", r.reminderHandler.UpdateReminder)
		medicGroup.DELETE("/:id", r.reminderHandler.DeleteReminder)
	}

	companionGroup := apiV1.Group("/companion")
	companionGroup.Use(r.authMiddleware.Authenticate)
	{
		companionGroup.POST("/chat", r.companionHandler.Chat)
		companionGroup.GET("/fall-status", r.companionHandler.FallStatus)
		companionGroup.GET("/video-feed", r.companionHandler.VideoFeed)
	}
}
