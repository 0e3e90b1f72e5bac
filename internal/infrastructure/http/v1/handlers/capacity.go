package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"capplan/internal/domain/capacity"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/export"
	"capplan/internal/infrastructure/http/v1/dto"
)

// CapacityService is implemented by capacity.Service.
type CapacityService interface {
	ComputeRequirements(ctx context.Context, r capacity.DateRange) ([]capacity.RequirementRow, error)
	ComputeBalance(ctx context.Context, r capacity.DateRange) ([]capacity.BalanceRow, error)
	ComputeRecommendations(ctx context.Context, r capacity.DateRange) ([]capacity.Recommendation, error)
}

// CapacityHandler serves requirement, balance and recommendation queries.
type CapacityHandler struct {
	*BaseHandler
	service CapacityService
}

// NewCapacityHandler creates a new capacity handler.
func NewCapacityHandler(base *BaseHandler, service CapacityService) *CapacityHandler {
	return &CapacityHandler{BaseHandler: base, service: service}
}

// Requirements handles GET /capacity/requirements?startDate&endDate
func (h *CapacityHandler) Requirements(c *gin.Context) {
	r, ok := h.DateRange(c)
	if !ok {
		return
	}

	rows, err := h.service.ComputeRequirements(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ItemsResponse{Items: dto.FromRequirements(rows)})
}

// Balance handles GET /capacity/balance?startDate&endDate
func (h *CapacityHandler) Balance(c *gin.Context) {
	r, ok := h.DateRange(c)
	if !ok {
		return
	}

	rows, err := h.service.ComputeBalance(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ItemsResponse{Items: dto.FromBalance(rows)})
}

// Recommendations handles GET /capacity/recommendations?startDate&endDate
func (h *CapacityHandler) Recommendations(c *gin.Context) {
	r, ok := h.DateRange(c)
	if !ok {
		return
	}

	recs, err := h.service.ComputeRecommendations(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.ItemsResponse{Items: dto.FromRecommendations(recs)})
}

// ExportRecommendations handles GET /capacity/recommendations/export?format=csv|xlsx
func (h *CapacityHandler) ExportRecommendations(c *gin.Context) {
	format, ok := h.Format(c, export.FormatCSV, export.FormatCSV, export.FormatXLSX)
	if !ok {
		return
	}
	r, ok := h.DateRange(c)
	if !ok {
		return
	}

	recs, err := h.service.ComputeRecommendations(c.Request.Context(), r)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Attachment(c, reports.RecommendationsFileName(r, string(format)), format, dto.RecommendationsSheet(recs))
}
