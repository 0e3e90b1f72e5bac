package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/domain"
	"capplan/internal/domain/capacity"
	"capplan/internal/infrastructure/export"
	"capplan/internal/infrastructure/http/v1/dto"
)

// maxListLimit caps page sizes requested by clients.
const maxListLimit = 500

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers error on Gin context and aborts request.
// Actual JSON response is produced by middleware.ErrorHandler (single source of truth).
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ParseIntQuery parses integer query parameter with default value.
func (h *BaseHandler) ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	val := c.Query(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// ParseID reads the :id path parameter.
func (h *BaseHandler) ParseID(c *gin.Context) (id.ID, bool) {
	entityID, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id format").WithDetail("id", c.Param("id")))
		return id.Nil(), false
	}
	return entityID, true
}

// OptionalID reads an optional UUID query parameter.
func (h *BaseHandler) OptionalID(c *gin.Context, key string) (*id.ID, bool) {
	v, err := queryID(c, key)
	if err != nil {
		h.Error(c, err)
		return nil, false
	}
	return v, true
}

// OptionalBool reads an optional true/false query parameter.
func (h *BaseHandler) OptionalBool(c *gin.Context, key string) (*bool, bool) {
	raw := c.Query(key)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid boolean").WithDetail("field", key))
		return nil, false
	}
	return &v, true
}

// DateRange reads startDate and endDate (YYYY-MM-DD). Both are optional.
func (h *BaseHandler) DateRange(c *gin.Context) (capacity.DateRange, bool) {
	r, err := parseDateRange(c)
	if err != nil {
		h.Error(c, err)
		return capacity.DateRange{}, false
	}
	return r, true
}

func parseDateRange(c *gin.Context) (capacity.DateRange, error) {
	return capacity.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
}

// ListFilter reads search, paging and ordering parameters.
func (h *BaseHandler) ListFilter(c *gin.Context) domain.ListFilter {
	f := domain.DefaultListFilter()
	f.Search = c.Query("search")
	f.Limit = min(max(h.ParseIntQuery(c, "limit", f.Limit), 1), maxListLimit)
	f.Offset = max(h.ParseIntQuery(c, "offset", 0), 0)
	f.OrderBy = c.Query("orderBy")
	f.IncludeDeleted = c.Query("includeDeleted") == "true"
	return f
}

// Format reads the format query parameter.
func (h *BaseHandler) Format(c *gin.Context, def export.Format, allowed ...export.Format) (export.Format, bool) {
	f, err := export.ParseFormat(c.Query("format"), def, allowed...)
	if err != nil {
		h.Error(c, err)
		return "", false
	}
	return f, true
}

// Attachment renders sheet into a downloadable file.
// The body is buffered so that a render failure still yields a JSON error.
func (h *BaseHandler) Attachment(c *gin.Context, filename string, format export.Format, sheet export.Sheet) {
	var buf bytes.Buffer
	if err := export.Write(&buf, format, sheet); err != nil {
		h.Error(c, apperror.NewInternal(fmt.Errorf("render %s: %w", filename, err)))
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

// Created sends 201 response with data.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// OK sends 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Success sends success response.
func (h *BaseHandler) Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Message: message})
}
