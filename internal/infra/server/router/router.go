// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/gestor-app/backend/internal/integration/entrypoint/controller"
	"github.com/gestor-app/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	ledgerController      *controller.LedgerController
	transactionController *controller.TransactionController
	creditCardController  *controller.CreditCardController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	ledgerController *controller.LedgerController,
	transactionController *controller.TransactionController,
	creditCardController *controller.CreditCardController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		ledgerController:      ledgerController,
		transactionController: transactionController,
		creditCardController:  creditCardController,
		accountController:     accountController,
		categoryController:    categoryController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Ledger routes (require authentication)
		if r.ledgerController != nil && r.authMiddleware != nil {
			ledger := v1.Group("/ledger")
			ledger.Use(r.authMiddleware.Authenticate())
			{
				ledger.GET("", r.ledgerController.List)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.PATCH("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
				transactions.POST("/:id/toggle-paid", r.transactionController.TogglePaid)
			}
		}

		// Credit card routes (require authentication)
		if r.creditCardController != nil && r.authMiddleware != nil {
			creditCards := v1.Group("/credit-cards")
			creditCards.Use(r.authMiddleware.Authenticate())
			{
				creditCards.GET("", r.creditCardController.List)
				creditCards.POST("", r.creditCardController.Create)
				creditCards.PATCH("/:id", r.creditCardController.Update)
				creditCards.DELETE("/:id", r.creditCardController.Delete)
				creditCards.GET("/:id/invoices", r.creditCardController.GetInvoices)
				creditCards.POST("/:id/invoices/settle", r.creditCardController.SettleInvoice)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			accounts := v1.Group("/accounts")
			accounts.Use(r.authMiddleware.Authenticate())
			{
				accounts.GET("", r.accountController.List)
				accounts.POST("", r.accountController.Create)
				accounts.PATCH("/:id", r.accountController.Update)
				accounts.DELETE("/:id", r.accountController.Delete)
			}
		}

		// Category routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
