// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler defines the interface for catalog handlers.
// The availability register uses the same set of routes.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// DocumentRouteHandler defines the interface for document handlers.
type DocumentRouteHandler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Validate(c *gin.Context)
}

// DocumentHistoryHandler is an optional interface for documents with an audit trail.
type DocumentHistoryHandler interface {
	History(c *gin.Context)
	HasHistory() bool
}

// RegisterCatalogRoutes registers standard CRUD routes for a catalog.
//
// Usage:
//
//	repo := catalog_repo.NewZoneRepo(txm)
//	service := zone.NewService(repo, txm)
//	handler := handlers.NewZoneHandler(baseHandler, service)
//	RegisterCatalogRoutes(catalogs.Group("/zones"), handler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	group.POST("/:id/deletion-mark", handler.SetDeletionMark)
}

// RegisterDocumentRoutes registers standard CRUD + validation routes for a document.
// If the handler also implements DocumentHistoryHandler and has an audit source,
// the history route is registered as well.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler DocumentRouteHandler) {
	group.GET("", handler.List)
	group.POST("", handler.Create)
	group.GET("/:id", handler.Get)
	group.PUT("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)
	group.POST("/:id/validate", handler.Validate)

	if h, ok := handler.(DocumentHistoryHandler); ok && h.HasHistory() {
		group.GET("/:id/history", h.History)
	}
}
