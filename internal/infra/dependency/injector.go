// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/herd-ledger/backend/config"
	"github.com/herd-ledger/backend/internal/application/usecase/auth"
	"github.com/herd-ledger/backend/internal/application/usecase/batch"
	"github.com/herd-ledger/backend/internal/application/usecase/cost"
	"github.com/herd-ledger/backend/internal/application/usecase/costimport"
	"github.com/herd-ledger/backend/internal/application/usecase/dashboard"
	"github.com/herd-ledger/backend/internal/application/usecase/transaction"
	"github.com/herd-ledger/backend/internal/infra/server/router"
	"github.com/herd-ledger/backend/internal/integration/adapters"
	"github.com/herd-ledger/backend/internal/integration/email"
	"github.com/herd-ledger/backend/internal/integration/email/templates"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/herd-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/herd-ledger/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	EmailWorker *email.Worker
}

// NewRedisClient creates a Redis client from the application configuration.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		slog.Error("Invalid Redis URL, falling back to defaults", "error", err)
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts)
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	allocationRepo := persistence.NewAllocationRepository(db)
	costRepo := persistence.NewCostRepository(db)
	dashboardRepo := persistence.NewDashboardRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Adapters and services
	passwordService := adapters.NewPasswordService()
	tokenBlacklist := adapters.NewRedisTokenBlacklist(redisClient)
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo, tokenBlacklist)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	batchCache := adapters.NewRedisBatchCache(redisClient, cfg.Redis.BatchCacheTTL)
	categorySuggester := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)
	emailService := email.NewService(emailQueueRepo)

	// Auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Transaction use cases
	createPurchaseUseCase := transaction.NewCreatePurchaseUseCase(transactionRepo, batchCache)
	recordSaleUseCase := transaction.NewRecordSaleUseCase(transactionRepo, allocationRepo, costRepo, batchCache)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, allocationRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo, allocationRepo, batchCache)

	// Cost use cases
	createCostUseCase := cost.NewCreateCostUseCase(costRepo)
	listCostsUseCase := cost.NewListCostsUseCase(costRepo)
	deleteCostUseCase := cost.NewDeleteCostUseCase(costRepo)
	unaccountedUseCase := cost.NewGetUnaccountedUseCase(costRepo, transactionRepo)

	// Statement import use cases
	previewImportUseCase := costimport.NewPreviewImportUseCase(categorySuggester)
	commitImportUseCase := costimport.NewCommitImportUseCase(costRepo)

	// Batch use case
	listBatchesUseCase := batch.NewListAvailableBatchesUseCase(transactionRepo, allocationRepo, batchCache)

	// Dashboard use cases
	metricsUseCase := dashboard.NewGetMetricsUseCase(dashboardRepo)
	dailySeriesUseCase := dashboard.NewGetDailySeriesUseCase(dashboardRepo)
	monthlyReportUseCase := dashboard.NewGetMonthlyReportUseCase(dashboardRepo)
	dataRangeUseCase := dashboard.NewGetDataRangeUseCase(dashboardRepo)

	// Controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	transactionController := controller.NewTransactionController(
		createPurchaseUseCase,
		recordSaleUseCase,
		listTransactionsUseCase,
		deleteTransactionUseCase,
	)

	costController := controller.NewCostController(
		createCostUseCase,
		listCostsUseCase,
		deleteCostUseCase,
		unaccountedUseCase,
	)

	costImportController := controller.NewCostImportController(
		previewImportUseCase,
		commitImportUseCase,
	)

	batchController := controller.NewBatchController(listBatchesUseCase)

	dashboardController := controller.NewDashboardController(
		metricsUseCase,
		dailySeriesUseCase,
		monthlyReportUseCase,
		dataRangeUseCase,
	)

	// Middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		costController,
		costImportController,
		batchController,
		dashboardController,
		loginRateLimiter,
		authMiddleware,
	)

	// Email worker (started by main when enabled)
	var emailWorker *email.Worker
	if cfg.Email.WorkerEnabled && cfg.Email.ResendAPIKey != "" {
		renderer, err := templates.NewRenderer()
		if err != nil {
			slog.Error("Failed to initialize email templates, worker disabled", "error", err)
		} else {
			sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
			emailWorker = email.NewWorker(emailQueueRepo, sender, renderer, email.WorkerConfig{
				PollInterval: cfg.Email.PollInterval,
				BatchSize:    cfg.Email.BatchSize,
			})
		}
	}

	return &Injector{
		Config:      cfg,
		DB:          db,
		Redis:       redisClient,
		Router:      r,
		EmailWorker: emailWorker,
	}
}
