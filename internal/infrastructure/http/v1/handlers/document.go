package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
	"capplan/internal/infrastructure/http/v1/dto"
	"capplan/internal/infrastructure/storage/postgres"
)

// defaultHistoryLimit bounds GET /:id/history.
const defaultHistoryLimit = 50

// DocumentService defines the interface that services must implement for BaseDocumentHandler.
type DocumentService[T any, F any] interface {
	List(ctx context.Context, filter F) (domain.ListResult[T], error)
	GetByID(ctx context.Context, id id.ID) (T, error)
	Create(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Delete(ctx context.Context, id id.ID) error
	Validate(ctx context.Context, id id.ID) (T, error)
}

// AuditHistory reads the audit trail of one entity.
type AuditHistory interface {
	GetEntityHistory(ctx context.Context, entityType string, entityID id.ID, limit int) ([]postgres.AuditEntry, error)
}

// DocumentQuery holds the list parameters shared by all document endpoints.
type DocumentQuery struct {
	List      domain.ListFilter
	ClientID  *id.ID
	ZoneID    *id.ID
	Validated *bool
	Dates     capacity.DateRange
}

// BaseDocumentHandler provides generic HTTP handlers for document entities.
type BaseDocumentHandler[T any, F any, CreateDTO any, UpdateDTO any] struct {
	*BaseHandler
	service    DocumentService[T, F]
	history    AuditHistory
	entityType string

	// Mapper functions
	mapCreateDTO func(dto CreateDTO) T
	mapUpdateDTO func(dto UpdateDTO, existing T) T
	mapToDTO     func(entity T) any
	buildFilter  func(q DocumentQuery) F
}

// BaseDocumentHandlerConfig configures the document handler.
type BaseDocumentHandlerConfig[T any, F any, CreateDTO any, UpdateDTO any] struct {
	Service      DocumentService[T, F]
	History      AuditHistory // optional
	EntityType   string
	MapCreateDTO func(dto CreateDTO) T
	MapUpdateDTO func(dto UpdateDTO, existing T) T
	MapToDTO     func(entity T) any
	BuildFilter  func(q DocumentQuery) F
}

// NewBaseDocumentHandler creates a new base document handler.
func NewBaseDocumentHandler[T any, F any, CreateDTO any, UpdateDTO any](
	base *BaseHandler,
	cfg BaseDocumentHandlerConfig[T, F, CreateDTO, UpdateDTO],
) *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO] {
	return &BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]{
		BaseHandler:  base,
		service:      cfg.Service,
		history:      cfg.History,
		entityType:   cfg.EntityType,
		mapCreateDTO: cfg.MapCreateDTO,
		mapUpdateDTO: cfg.MapUpdateDTO,
		mapToDTO:     cfg.MapToDTO,
		buildFilter:  cfg.BuildFilter,
	}
}

// List handles GET /{document}?startDate&endDate&clientId&zoneId&validated
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) List(c *gin.Context) {
	q := DocumentQuery{List: h.ListFilter(c)}

	var ok bool
	if q.Dates, ok = h.DateRange(c); !ok {
		return
	}
	if q.ClientID, ok = h.OptionalID(c, "clientId"); !ok {
		return
	}
	if q.ZoneID, ok = h.OptionalID(c, "zoneId"); !ok {
		return
	}
	if q.Validated, ok = h.OptionalBool(c, "validated"); !ok {
		return
	}

	result, err := h.service.List(c.Request.Context(), h.buildFilter(q))
	if err != nil {
		h.Error(c, err)
		return
	}

	items := make([]any, len(result.Items))
	for i, item := range result.Items {
		items[i] = h.mapToDTO(item)
	}

	h.OK(c, dto.ListResponse{
		Items:      items,
		TotalCount: result.TotalCount,
		Limit:      result.Limit,
		Offset:     result.Offset,
	})
}

// Get handles GET /{document}/:id
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) Get(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.service.GetByID(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// Create handles POST /{document}
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) Create(c *gin.Context) {
	var req CreateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	doc := h.mapCreateDTO(req)
	if err := h.service.Create(c.Request.Context(), doc); err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, h.mapToDTO(doc))
}

// Update handles PUT /{document}/:id
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) Update(c *gin.Context) {
	ctx := c.Request.Context()

	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	var req UpdateDTO
	if !h.BindJSON(c, &req) {
		return
	}

	existing, err := h.service.GetByID(ctx, docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated := h.mapUpdateDTO(req, existing)
	if err := h.service.Update(ctx, updated); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(updated))
}

// Delete handles DELETE /{document}/:id
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) Delete(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), docID); err != nil {
		h.Error(c, err)
		return
	}

	h.NoContent(c)
}

// Validate handles POST /{document}/:id/validate. Repeated calls are no-ops.
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) Validate(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	doc, err := h.service.Validate(c.Request.Context(), docID)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, h.mapToDTO(doc))
}

// History handles GET /{document}/:id/history
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) History(c *gin.Context) {
	docID, ok := h.ParseID(c)
	if !ok {
		return
	}

	limit := min(max(h.ParseIntQuery(c, "limit", defaultHistoryLimit), 1), maxListLimit)
	entries, err := h.history.GetEntityHistory(c.Request.Context(), h.entityType, docID, limit)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ItemsResponse{Items: dto.FromAuditEntries(entries)})
}

// HasHistory reports whether an audit reader is configured.
func (h *BaseDocumentHandler[T, F, CreateDTO, UpdateDTO]) HasHistory() bool {
	return h.history != nil
}
