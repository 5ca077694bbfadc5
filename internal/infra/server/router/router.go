// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/herd-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	costController        *controller.CostController
	costImportController  *controller.CostImportController
	batchController       *controller.BatchController
	dashboardController   *controller.DashboardController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	costController *controller.CostController,
	costImportController *controller.CostImportController,
	batchController *controller.BatchController,
	dashboardController *controller.DashboardController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		costController:        costController,
		costImportController:  costImportController,
		batchController:       batchController,
		dashboardController:   dashboardController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Transaction routes (require authentication)
		if r.transactionController != nil && r.authMiddleware != nil {
			transactions := v1.Group("/transactions")
			transactions.Use(r.authMiddleware.Authenticate())
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("/purchase", r.transactionController.CreatePurchase)
				transactions.POST("/sale", r.transactionController.RecordSale)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		// Input cost routes (require authentication)
		if r.costController != nil && r.authMiddleware != nil {
			costs := v1.Group("/costs")
			costs.Use(r.authMiddleware.Authenticate())
			{
				costs.GET("", r.costController.List)
				costs.POST("", r.costController.Create)
				costs.DELETE("/:id", r.costController.Delete)
				costs.GET("/unaccounted", r.costController.GetUnaccounted)

				// Statement import routes (nested under costs)
				if r.costImportController != nil {
					costs.POST("/import/preview", r.costImportController.Preview)
					costs.POST("/import", r.costImportController.Commit)
				}
			}
		}

		// Batch routes (require authentication)
		if r.batchController != nil && r.authMiddleware != nil {
			batches := v1.Group("/batches")
			batches.Use(r.authMiddleware.Authenticate())
			{
				batches.GET("", r.batchController.List)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/metrics", r.dashboardController.GetMetrics)
				dashboard.GET("/daily", r.dashboardController.GetDailySeries)
				dashboard.GET("/monthly", r.dashboardController.GetMonthlyReport)
				dashboard.GET("/data-range", r.dashboardController.GetDataRange)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
