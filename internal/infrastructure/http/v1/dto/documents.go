package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
	"capplan/internal/domain/documents/inbound"
	"capplan/internal/domain/documents/outbound"
	"capplan/internal/infrastructure/storage/postgres"
)

// --- Inbound documents (Поступления) ---

// InboundLineRequest is one line of an inbound document.
// Quantity is kept raw so that unusable lines are dropped instead of failing the request.
type InboundLineRequest struct {
	SkuID    id.ID               `json:"skuId"`
	ZoneID   id.ID               `json:"zoneId"`
	Quantity types.QuantityInput `json:"quantity"`
	UnitType string              `json:"unitType"`
}

type CreateInboundRequest struct {
	ClientID  id.ID                `json:"clientId"`
	DocNumber string               `json:"docNumber"`
	Date      Date                 `json:"date"`
	Lines     []InboundLineRequest `json:"lines"`
}

func (r *CreateInboundRequest) lineInputs() []inbound.LineInput {
	inputs := make([]inbound.LineInput, 0, len(r.Lines))
	for _, l := range r.Lines {
		inputs = append(inputs, inbound.LineInput{
			ProductID: l.SkuID,
			ZoneID:    l.ZoneID,
			Quantity:  l.Quantity,
			UnitType:  l.UnitType,
		})
	}
	return inputs
}

// ToEntity converts DTO to a draft document with cleaned lines.
func (r *CreateInboundRequest) ToEntity() *inbound.Document {
	doc := inbound.NewDocument(r.ClientID, r.DocNumber, r.Date.Time)
	doc.SetLines(r.lineInputs())
	return doc
}

type UpdateInboundRequest struct {
	CreateInboundRequest
	Version int `json:"version" binding:"required,min=1"`
}

// ApplyTo replaces the header and all lines. The validated flag is kept.
func (r *UpdateInboundRequest) ApplyTo(doc *inbound.Document) {
	doc.ClientID = r.ClientID
	doc.Number = r.DocNumber
	doc.Date = entity.TruncateDate(r.Date.Time)
	doc.SetLines(r.lineInputs())
	doc.Version = r.Version
}

type InboundLineResponse struct {
	LineID   string          `json:"lineId"`
	LineNo   int             `json:"lineNo"`
	SkuID    string          `json:"skuId"`
	ZoneID   string          `json:"zoneId"`
	Quantity decimal.Decimal `json:"quantity"`
	UnitType string          `json:"unitType"`
}

type InboundResponse struct {
	DocumentResponse
	DocNumber string                `json:"docNumber"`
	Lines     []InboundLineResponse `json:"lines"`
}

func FromInbound(doc *inbound.Document) *InboundResponse {
	lines := make([]InboundLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		lines = append(lines, InboundLineResponse{
			LineID:   l.LineID.String(),
			LineNo:   l.LineNo,
			SkuID:    l.ProductID.String(),
			ZoneID:   l.ZoneID.String(),
			Quantity: l.Quantity,
			UnitType: l.UnitType,
		})
	}
	return &InboundResponse{
		DocumentResponse: FromDocument(doc.Document),
		DocNumber:        doc.Number,
		Lines:            lines,
	}
}

// --- Outbound plan (План отгрузки) ---

type CreateOutboundRequest struct {
	ClientID  id.ID           `json:"clientId"`
	SkuID     id.ID           `json:"skuId"`
	ZoneID    id.ID           `json:"zoneId"`
	Date      Date            `json:"date"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitType  string          `json:"unitType"`
	Reference string          `json:"reference"`
}

func (r *CreateOutboundRequest) ToEntity() *outbound.PlanEntry {
	e := outbound.NewPlanEntry(r.ClientID, r.SkuID, r.ZoneID, r.Date.Time, r.Quantity)
	e.UnitType = types.UnitOrDefault(r.UnitType)
	e.Reference = r.Reference
	return e
}

type UpdateOutboundRequest struct {
	CreateOutboundRequest
	Version int `json:"version" binding:"required,min=1"`
}

func (r *UpdateOutboundRequest) ApplyTo(e *outbound.PlanEntry) {
	e.ClientID = r.ClientID
	e.ProductID = r.SkuID
	e.ZoneID = r.ZoneID
	e.Date = entity.TruncateDate(r.Date.Time)
	e.Quantity = r.Quantity
	e.UnitType = types.UnitOrDefault(r.UnitType)
	e.Reference = r.Reference
	e.Version = r.Version
}

type OutboundResponse struct {
	DocumentResponse
	SkuID          string          `json:"skuId"`
	ZoneID         string          `json:"zoneId"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitType       string          `json:"unitType"`
	Reference      string          `json:"reference,omitempty"`
	DocumentNumber string          `json:"documentNumber"`
}

func FromOutbound(e *outbound.PlanEntry) *OutboundResponse {
	return &OutboundResponse{
		DocumentResponse: FromDocument(e.Document),
		SkuID:            e.ProductID.String(),
		ZoneID:           e.ZoneID.String(),
		Quantity:         e.Quantity,
		UnitType:         e.UnitType,
		Reference:        e.Reference,
		DocumentNumber:   e.DocumentNumber(),
	}
}

// --- Audit trail ---

type AuditEntryResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// FromAuditEntries renders history entries. Undecodable snapshots are returned empty.
func FromAuditEntries(entries []postgres.AuditEntry) []AuditEntryResponse {
	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, AuditEntryResponse{
			ID:        e.ID.String(),
			Action:    string(e.Action),
			Changes:   e.Snapshot(),
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
