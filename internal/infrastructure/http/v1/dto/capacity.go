package dto

import (
	"github.com/shopspring/decimal"

	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain/capacity"
	"capplan/internal/domain/registers/availability"
	"capplan/internal/domain/reports"
	"capplan/internal/infrastructure/export"
)

// --- Availability register ---

type CreateAvailabilityRequest struct {
	ResourceID     id.ID           `json:"resourceId"`
	Date           Date            `json:"date"`
	AvailableHours decimal.Decimal `json:"availableHours"`
}

func (r *CreateAvailabilityRequest) ToEntity() *availability.Record {
	return availability.NewRecord(r.ResourceID, r.Date.Time, r.AvailableHours)
}

type UpdateAvailabilityRequest struct {
	CreateAvailabilityRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateAvailabilityRequest) ApplyTo(rec *availability.Record) {
	rec.ResourceID = r.ResourceID
	rec.Date = r.Date.Time
	rec.Hours = r.AvailableHours
	rec.Version = r.Version
}

type AvailabilityResponse struct {
	BaseResponse
	ResourceID     string          `json:"resourceId"`
	Date           Date            `json:"date"`
	AvailableHours decimal.Decimal `json:"availableHours"`
}

func FromAvailability(rec *availability.Record) *AvailabilityResponse {
	return &AvailabilityResponse{
		BaseResponse:   FromBase(rec.BaseEntity),
		ResourceID:     rec.ResourceID.String(),
		Date:           NewDate(rec.Date),
		AvailableHours: rec.Hours,
	}
}

// --- Capacity ---

type RequirementResponse struct {
	Date            Date                   `json:"date"`
	Operation       capacity.OperationType `json:"operation"`
	DocumentNumber  string                 `json:"documentNumber"`
	ZoneID          string                 `json:"zoneId"`
	ZoneName        string                 `json:"zoneName"`
	ResourceSubtype string                 `json:"resourceSubtype"`
	RequiredUnits   decimal.Decimal        `json:"requiredUnits"`
}

func FromRequirements(rows []capacity.RequirementRow) []RequirementResponse {
	out := make([]RequirementResponse, 0, len(rows))
	for _, r := range rows {
		r = r.Rounded()
		out = append(out, RequirementResponse{
			Date:            NewDate(r.Date),
			Operation:       r.Operation,
			DocumentNumber:  r.DocumentNumber,
			ZoneID:          r.ZoneID.String(),
			ZoneName:        r.ZoneName,
			ResourceSubtype: r.ResourceSubtype,
			RequiredUnits:   r.RequiredUnits,
		})
	}
	return out
}

type BalanceResponse struct {
	Date            Date            `json:"date"`
	ZoneID          string          `json:"zoneId"`
	ZoneName        string          `json:"zoneName"`
	ResourceSubtype string          `json:"resourceSubtype"`
	RequiredHours   decimal.Decimal `json:"requiredHours"`
	AvailableHours  decimal.Decimal `json:"availableHours"`
	Balance         decimal.Decimal `json:"balance"`
}

func FromBalance(rows []capacity.BalanceRow) []BalanceResponse {
	out := make([]BalanceResponse, 0, len(rows))
	for _, r := range rows {
		r = r.Rounded()
		out = append(out, BalanceResponse{
			Date:            NewDate(r.Date),
			ZoneID:          r.ZoneID.String(),
			ZoneName:        r.ZoneName,
			ResourceSubtype: r.ResourceSubtype,
			RequiredHours:   r.RequiredHours,
			AvailableHours:  r.AvailableHours,
			Balance:         r.Balance,
		})
	}
	return out
}

type RecommendationResponse struct {
	Date            Date                  `json:"date"`
	ZoneID          string                `json:"zoneId"`
	ZoneName        string                `json:"zoneName"`
	ResourceSubtype string                `json:"resourceSubtype"`
	Balance         decimal.Decimal       `json:"balance"`
	Category        capacity.Category     `json:"category"`
	Kind            capacity.ResourceKind `json:"kind"`
	Message         string                `json:"message"`
}

func FromRecommendations(recs []capacity.Recommendation) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationResponse{
			Date:            NewDate(r.Date),
			ZoneID:          r.ZoneID.String(),
			ZoneName:        r.ZoneName,
			ResourceSubtype: r.ResourceSubtype,
			Balance:         types.Present(r.Balance),
			Category:        r.Category,
			Kind:            r.Kind,
			Message:         r.Message,
		})
	}
	return out
}

// ItemsResponse wraps an unpaginated result set.
type ItemsResponse struct {
	Items any `json:"items"`
}

// --- Reports ---

type ReportResponse struct {
	Type      reports.Type `json:"type"`
	Title     string       `json:"title"`
	StartDate *string      `json:"startDate"`
	EndDate   *string      `json:"endDate"`
	Columns   []string     `json:"columns"`
	Rows      [][]string   `json:"rows"`
}

func FromReport(rep *reports.Report) *ReportResponse {
	out := &ReportResponse{
		Type:    rep.Type,
		Title:   rep.Title,
		Columns: rep.Columns,
		Rows:    make([][]string, 0, len(rep.Rows)),
	}
	if rep.Range.Start != nil {
		s := rep.Range.Start.Format(DateLayout)
		out.StartDate = &s
	}
	if rep.Range.End != nil {
		e := rep.Range.End.Format(DateLayout)
		out.EndDate = &e
	}
	for _, row := range rep.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = export.FormatCell(v)
		}
		out.Rows = append(out.Rows, cells)
	}
	return out
}

// ReportSheet converts a report to an export sheet.
func ReportSheet(rep *reports.Report) export.Sheet {
	return export.Sheet{Title: rep.Title, Columns: rep.Columns, Rows: rep.Rows}
}

// RecommendationsSheet converts recommendations to an export sheet.
func RecommendationsSheet(recs []capacity.Recommendation) export.Sheet {
	return export.Sheet{
		Title:   "Рекомендации",
		Columns: reports.RecommendationColumns,
		Rows:    reports.RecommendationRows(recs),
	}
}
