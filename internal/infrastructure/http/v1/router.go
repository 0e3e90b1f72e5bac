package v1

import (
	"github.com/gin-gonic/gin"

	"capplan/internal/domain/audit"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/catalogs/client"
	"capplan/internal/domain/catalogs/norm"
	"capplan/internal/domain/catalogs/product"
	"capplan/internal/domain/catalogs/resource"
	"capplan/internal/domain/catalogs/warehouse"
	"capplan/internal/domain/catalogs/zone"
	"capplan/internal/domain/documents/inbound"
	"capplan/internal/domain/documents/outbound"
	"capplan/internal/domain/registers/availability"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/http/v1/handlers"
	"capplan/internal/infrastructure/http/v1/middleware"
	"capplan/internal/infrastructure/metrics"
	"capplan/internal/infrastructure/storage/postgres"
	"capplan/internal/infrastructure/storage/postgres/catalog_repo"
	"capplan/internal/infrastructure/storage/postgres/document_repo"
	"capplan/internal/infrastructure/storage/postgres/register_repo"
	"capplan/internal/infrastructure/storage/postgres/report_repo"
	"capplan/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is used by health checks
	Pool handlers.Database

	// TxManager is shared by all repositories and services
	TxManager *postgres.TxManager

	// Audit records document mutations. Nil disables the audit trail.
	Audit *postgres.AuditService

	// Metrics is optional. Nil disables /metrics and request metrics.
	Metrics *metrics.Metrics

	// Logger for request logging
	Logger *logger.Logger

	// Info is reported by /health/info
	Info handlers.AppInfo

	// Debug enables gin debug mode
	Debug bool
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware (order matters!)
	// Recovery сидит внутри ErrorHandler, иначе паника не превращается в JSON-ответ.
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger.WithComponent("http")))
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(cfg.Pool, cfg.Info)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		registerCatalogRoutes(v1, cfg)
		registerDocumentRoutes(v1, cfg)
		registerRegisterRoutes(v1, cfg)
		registerCapacityRoutes(v1, cfg)
	}

	return router
}

// registerCatalogRoutes registers catalog (справочник) endpoints.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()
	txm := cfg.TxManager

	// --- CLIENTS ---
	{
		service := client.NewService(catalog_repo.NewClientRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/clients"), handlers.NewClientHandler(baseHandler, service))
	}

	// --- WAREHOUSES ---
	{
		service := warehouse.NewService(catalog_repo.NewWarehouseRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/warehouses"), handlers.NewWarehouseHandler(baseHandler, service))
	}

	// --- ZONES ---
	{
		service := zone.NewService(catalog_repo.NewZoneRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/zones"), handlers.NewZoneHandler(baseHandler, service))
	}

	// --- PRODUCTS ---
	{
		service := product.NewService(catalog_repo.NewProductRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/products"), handlers.NewProductHandler(baseHandler, service))
	}

	// --- RESOURCES ---
	{
		service := resource.NewService(catalog_repo.NewResourceRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/resources"), handlers.NewResourceHandler(baseHandler, service))
	}

	// --- NORMS ---
	{
		service := norm.NewService(catalog_repo.NewNormRepo(txm), txm)
		RegisterCatalogRoutes(catalogs.Group("/norms"), handlers.NewNormHandler(baseHandler, service))
	}
}

// registerDocumentRoutes registers document endpoints.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/document")
	baseHandler := handlers.NewBaseHandler()
	txm := cfg.TxManager

	auditor, history := auditDeps(cfg.Audit)

	// --- INBOUND ---
	{
		service := inbound.NewService(document_repo.NewInboundRepo(txm), txm, auditor)
		handler := handlers.NewInboundHandler(baseHandler, service, history)
		RegisterDocumentRoutes(docsGroup.Group("/inbound"), handler)
	}

	// --- OUTBOUND ---
	{
		service := outbound.NewService(document_repo.NewOutboundRepo(txm), txm, auditor)
		handler := handlers.NewOutboundHandler(baseHandler, service, history)
		RegisterDocumentRoutes(docsGroup.Group("/outbound"), handler)
	}
}

// registerRegisterRoutes registers register endpoints.
func registerRegisterRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	registers := rg.Group("/registers")
	baseHandler := handlers.NewBaseHandler()
	txm := cfg.TxManager

	service := availability.NewService(register_repo.NewAvailabilityRepo(txm), txm)
	RegisterCatalogRoutes(registers.Group("/availability"), handlers.NewAvailabilityHandler(baseHandler, service))
}

// registerCapacityRoutes registers computation and report endpoints.
func registerCapacityRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()

	var m capacity.Metrics = capacity.NopMetrics{}
	if cfg.Metrics != nil {
		m = cfg.Metrics
	}

	capacityService := capacity.NewService(report_repo.NewCapacitySource(cfg.TxManager), m)
	capacityHandler := handlers.NewCapacityHandler(baseHandler, capacityService)

	cg := rg.Group("/capacity")
	{
		cg.GET("/requirements", capacityHandler.Requirements)
		cg.GET("/balance", capacityHandler.Balance)
		cg.GET("/recommendations", capacityHandler.Recommendations)
		cg.GET("/recommendations/export", capacityHandler.ExportRecommendations)
	}

	reportService := reports.NewService(report_repo.NewReportRepo(cfg.TxManager), capacityService)
	reportHandler := handlers.NewReportsHandler(baseHandler, reportService)

	rp := rg.Group("/reports")
	{
		rp.GET("", reportHandler.Types)
		rp.GET("/:type", reportHandler.Get)
	}
}

// auditDeps returns untyped nils when the audit trail is disabled.
func auditDeps(svc *postgres.AuditService) (audit.Logger, handlers.AuditHistory) {
	if svc == nil {
		return nil, nil
	}
	return svc, svc
}
