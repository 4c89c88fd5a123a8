package router

import (
	"net/http"

	"fintrack/config"
	"fintrack/internal/handler"
	"fintrack/internal/middleware"
	"fintrack/internal/repository"
	"fintrack/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, rdb *redis.Client, generator service.TextGenerator) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// Services
	authSvc := service.NewAuthService(cfg, db, userRepo, walletRepo, categoryRepo)
	categorySvc := service.NewCategoryService(categoryRepo)
	transactionSvc := service.NewTransactionService(db, transactionRepo, walletRepo, categoryRepo)
	dashboardSvc := service.NewDashboardService(dashboardRepo, categoryRepo)
	insightSvc := service.NewInsightService(dashboardRepo, categoryRepo, generator)

	// Handlers
	authHandler := handler.NewAuthHandler(cfg, authSvc)
	categoryHandler := handler.NewCategoryHandler(categorySvc)
	transactionHandler := handler.NewTransactionHandler(transactionSvc, rdb)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc, rdb)
	insightHandler := handler.NewInsightHandler(insightSvc)

	authMw := middleware.AuthRequired(&cfg.JWT)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "fintrack API running")
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/logout", authHandler.Logout)
		authGroup.GET("/me", authMw, authHandler.Me)
	}

	categories := r.Group("/categories", authMw)
	{
		categories.GET("", categoryHandler.List)
		categories.POST("", categoryHandler.Create)
		categories.DELETE("/:id", categoryHandler.Delete)
	}

	transactions := r.Group("/transactions", authMw)
	{
		transactions.GET("", transactionHandler.List)
		transactions.POST("", transactionHandler.Create)
		transactions.GET("/:id", transactionHandler.Get)
		transactions.DELETE("/:id", transactionHandler.Delete)
	}

	dashboard := r.Group("/dashboard", authMw)
	{
		dashboard.GET("/summary", dashboardHandler.Summary)
		dashboard.GET("/charts", dashboardHandler.Charts)
		dashboard.GET("/top-categories", dashboardHandler.TopCategories)
		dashboard.GET("/recent-activity", dashboardHandler.RecentActivity)
	}

	ai := r.Group("/ai", authMw)
	{
		ai.GET("/spending-summary", insightHandler.SpendingSummary)
		ai.GET("/saving-recommendations", insightHandler.SavingRecommendations)
		ai.GET("/forecast", insightHandler.Forecast)
	}

	return r
}
