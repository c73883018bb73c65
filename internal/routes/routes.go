package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"invoice-dashboard-backend/internal/fixtures"
	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/services/invoice"
	"invoice-dashboard-backend/internal/viewcache"
)

type Deps struct {
	DB       *gorm.DB
	Cache    viewcache.Cache
	Log      *zap.Logger
	Fixtures fixtures.Dataset
	// OpenSeedStore acquires the store handle for one seed run.
	OpenSeedStore handler.StoreOpener
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	userRepo := repository.NewUserRepository(deps.DB)
	customerRepo := repository.NewCustomerRepository(deps.DB)
	invoiceRepo := repository.NewInvoiceRepository(deps.DB)
	revenueRepo := repository.NewRevenueRepository(deps.DB)

	invoiceService := invoice.New(invoiceRepo, customerRepo, deps.Log)
	dashboardService := dashboard.New(invoiceRepo, customerRepo, revenueRepo, deps.Log)
	authService := auth.New(userRepo, deps.Log)

	invoiceHandler := handler.NewInvoiceHandler(invoiceService, dashboardService, deps.Cache, deps.Log)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	queryHandler := handler.NewQueryHandler(invoiceRepo, deps.Log)
	seedHandler := handler.NewSeedHandler(deps.OpenSeedStore, deps.Fixtures, deps.Log)
	authHandler := handler.NewAuthHandler(authService, deps.Log)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/seed", seedHandler.Run)
	api.GET("/query", queryHandler.List)
	api.POST("/login", authHandler.Login)

	// Invoice routes
	invoices := api.Group("/invoices")
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/pages", invoiceHandler.Pages)
		invoices.GET("/:id", invoiceHandler.GetByID)
		invoices.POST("", invoiceHandler.Create)
		invoices.PUT("/:id", invoiceHandler.Update)
		invoices.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer routes
	customers := api.Group("/customers")
	{
		customers.GET("", dashboardHandler.Customers)
		customers.GET("/filtered", dashboardHandler.FilteredCustomers)
	}

	// Dashboard routes
	dash := api.Group("/dashboard")
	{
		dash.GET("/revenue", dashboardHandler.Revenue)
		dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)
		dash.GET("/cards", dashboardHandler.Cards)
	}
}
