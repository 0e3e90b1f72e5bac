package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"capplan/internal/domain/capacity"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/export"
	"capplan/internal/infrastructure/http/v1/dto"
)

// ReportGenerator is implemented by reports.Service.
type ReportGenerator interface {
	Generate(ctx context.Context, t reports.Type, r capacity.DateRange) (*reports.Report, error)
}

// ReportsHandler handles HTTP requests for reports.
type ReportsHandler struct {
	*BaseHandler
	service ReportGenerator
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(base *BaseHandler, service ReportGenerator) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: base,
		service:     service,
	}
}

// Types handles GET /reports - list of available reports.
func (h *ReportsHandler) Types(c *gin.Context) {
	items := make([]gin.H, 0, len(reports.Types))
	for _, t := range reports.Types {
		items = append(items, gin.H{"type": t, "title": t.Title()})
	}
	h.OK(c, dto.ItemsResponse{Items: items})
}

// Get handles GET /reports/:type?startDate&endDate&format=json|csv|xlsx
func (h *ReportsHandler) Get(c *gin.Context) {
	t, err := reports.ParseType(c.Param("type"))
	if err != nil {
		h.Error(c, err)
		return
	}
	format, ok := h.Format(c, export.FormatJSON, export.FormatJSON, export.FormatCSV, export.FormatXLSX)
	if !ok {
		return
	}
	r, ok := h.DateRange(c)
	if !ok {
		return
	}

	rep, err := h.service.Generate(c.Request.Context(), t, r)
	if err != nil {
		h.Error(c, err)
		return
	}

	if format == export.FormatJSON {
		h.OK(c, dto.FromReport(rep))
		return
	}
	h.Attachment(c, reports.FileName(t, r, string(format)), format, dto.ReportSheet(rep))
}
