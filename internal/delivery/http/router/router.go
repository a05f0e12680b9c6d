// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rossimethod/internal/delivery/http/middleware"
	"rossimethod/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CheckoutHandler     *handler.CheckoutHandler
	PaymentHandler      *handler.PaymentHandler
	CoachingHandler     *handler.CoachingHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	checkoutHandler     *handler.CheckoutHandler
	paymentHandler      *handler.PaymentHandler
	coachingHandler     *handler.CoachingHandler
	authMiddleware      *middleware.AuthMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		checkoutHandler:     params.CheckoutHandler,
		paymentHandler:      params.PaymentHandler,
		coachingHandler:     params.CoachingHandler,
		authMiddleware:      params.AuthMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// Personal area, requires authentication
	e.GET("/mi-area", r.userHandler.MyArea, r.authMiddleware.Authenticate)

	// Checkout and webhook API
	apiGroup := e.Group("/api")
	{
		apiGroup.POST("/checkout/preference", r.checkoutHandler.CreatePreference)
		apiGroup.POST("/coaching", r.coachingHandler.Send)
		apiGroup.POST("/webhooks/mercadopago", r.paymentHandler.Webhook)
	}

	// Payment provider return URLs
	paymentGroup := e.Group("/payment")
	{
		paymentGroup.GET("/success", r.paymentHandler.Success)
		paymentGroup.GET("/failure", r.paymentHandler.Failure)
		paymentGroup.GET("/pending", r.paymentHandler.Pending)
		paymentGroup.POST("/demo/simulate", r.paymentHandler.SimulateDemo)
	}
}
