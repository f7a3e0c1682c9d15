// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"agent360/internal/domain/accounts"
	"agent360/internal/domain/analytics"
	"agent360/internal/domain/campaigns"
	"agent360/internal/domain/cases"
	"agent360/internal/domain/products"
	"agent360/internal/domain/sales"
	"agent360/internal/domain/users"
	"agent360/internal/infrastructure/http/v1/handlers"
	"agent360/internal/infrastructure/http/v1/middleware"
	"agent360/internal/infrastructure/storage/postgres"
	"agent360/internal/infrastructure/storage/postgres/account_repo"
	"agent360/internal/infrastructure/storage/postgres/analytics_repo"
	"agent360/internal/infrastructure/storage/postgres/campaign_repo"
	"agent360/internal/infrastructure/storage/postgres/case_repo"
	"agent360/internal/infrastructure/storage/postgres/product_repo"
	"agent360/internal/infrastructure/storage/postgres/sales_repo"
	"agent360/internal/infrastructure/storage/postgres/user_repo"
	"agent360/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// DB executes all repository queries
	DB *postgres.DB

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.DB)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	base := handlers.NewBaseHandler()
	api := router.Group("/api")

	// --- ANALYTICS ---
	{
		repo := analytics_repo.NewAnalyticsRepo(cfg.DB)
		service := analytics.NewService(repo)
		handler := handlers.NewAnalyticsHandler(base, service)
		api.GET("/analytics/", handler.Get)
	}

	// --- SALES ---
	salesService := sales.NewService(sales_repo.NewSalesRepo(cfg.DB))
	{
		handler := handlers.NewSalesHandler(base, salesService)
		salesGroup := api.Group("/sales")
		salesGroup.GET("/family/", handler.Family)
		salesGroup.GET("/product/", handler.Product)
		salesGroup.GET("/orders/", handler.Orders)
		salesGroup.GET("/order-details/", handler.OrderDetails)
	}

	// --- CASES ---
	{
		repo := case_repo.NewCaseRepo(cfg.DB)
		service := cases.NewService(repo)
		handler := handlers.NewCasesHandler(base, service)
		casesGroup := api.Group("/complaints-cases")
		casesGroup.GET("/", handler.List)
		casesGroup.GET("/summary/", handler.Summary)
		casesGroup.GET("/:id/", handler.Get)
		casesGroup.GET("/:id/comments/", handler.Comments)
		casesGroup.GET("/:id/timeline/", handler.Timeline)
	}

	// --- ACCOUNTS ---
	{
		repo := account_repo.NewAccountRepo(cfg.DB)
		service := accounts.NewService(repo)
		handler := handlers.NewAccountsHandler(base, service)
		accountsGroup := api.Group("/accounts")
		accountsGroup.GET("/", handler.List)
		accountsGroup.GET("/user/:user_id/", handler.List)
		accountsGroup.GET("/:id/", handler.Get)
	}

	// --- CAMPAIGNS ---
	{
		repo := campaign_repo.NewCampaignRepo(cfg.DB)
		service := campaigns.NewService(repo)
		handler := handlers.NewCampaignsHandler(base, service)
		campaignsGroup := api.Group("/campaigns")
		campaignsGroup.GET("/", handler.List)
		campaignsGroup.GET("/tasks/", handler.Tasks)
	}

	// --- USERS ---
	{
		repo := user_repo.NewUserRepo(cfg.DB)
		service := users.NewService(repo)
		handler := handlers.NewUsersHandler(base, service)
		api.GET("/users/", handler.List)
	}

	// --- PRODUCTS ---
	{
		repo := product_repo.NewProductRepo(cfg.DB)
		service := products.NewService(repo)
		handler := handlers.NewProductsHandler(base, service)
		salesHandler := handlers.NewSalesHandler(base, salesService)
		productsGroup := api.Group("/products")
		productsGroup.GET("/", handler.List)
		productsGroup.GET("/families/", handler.Families)
		productsGroup.GET("/performance/", salesHandler.Performance)
		productsGroup.GET("/:id/", handler.Get)
	}

	return router
}
