// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"finboard/internal/delivery/http/middleware"
	"finboard/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	AccountHandler     *handler.AccountHandler
	TransactionHandler *handler.TransactionHandler
	BankHandler        *handler.BankHandler
	DashboardHandler   *handler.DashboardHandler
	SessionMiddleware  *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	accountHandler     *handler.AccountHandler
	transactionHandler *handler.TransactionHandler
	bankHandler        *handler.BankHandler
	dashboardHandler   *handler.DashboardHandler
	sessionMiddleware  *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		accountHandler:     params.AccountHandler,
		transactionHandler: params.TransactionHandler,
		bankHandler:        params.BankHandler,
		dashboardHandler:   params.DashboardHandler,
		sessionMiddleware:  params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes; Session stays public so clients can render the loading,
	// login or dashboard screen without probing a guarded route.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/forgot-password", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.GET("/session", r.authHandler.Session)
	}

	// Everything below needs an established session.
	guard := r.sessionMiddleware.RequireSession

	e.GET("/dashboard", r.dashboardHandler.Overview, guard)
	e.GET("/banks", r.bankHandler.All, guard)

	accountGroup := e.Group("/accounts")
	accountGroup.Use(guard)
	{
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.PUT("/:id", r.accountHandler.Update)
		accountGroup.DELETE("/:id", r.accountHandler.Delete)
	}

	transactionGroup := e.Group("/transactions")
	transactionGroup.Use(guard)
	{
		transactionGroup.GET("", r.transactionHandler.List)
		transactionGroup.GET("/summary", r.transactionHandler.Summary)
		transactionGroup.POST("", r.transactionHandler.Create)
		transactionGroup.PUT("/:id", r.transactionHandler.Update)
		transactionGroup.DELETE("/:id", r.transactionHandler.Delete)
	}
}
