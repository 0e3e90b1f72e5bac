// Package inbound provides the inbound receipt document (Поступление).
// Validated documents feed inbound demand into capacity planning.
package inbound

import (
	"context"
	"strings"
	"time"

	"capplan/internal/core/apperror"
	"capplan/internal/core/entity"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
)

// EntityType names the document in the audit trail.
const EntityType = "inbound_document"

// Document is an inbound receipt with its item lines.
type Document struct {
	entity.Document

	// Number is the client's document number
	Number string `db:"doc_number" json:"docNumber"`

	// Table part: received items
	Lines []Item `db:"-" json:"lines"`
}

// Item is one received line.
type Item struct {
	LineID    id.ID          `db:"line_id" json:"lineId"`
	LineNo    int            `db:"line_no" json:"lineNo"`
	ProductID id.ID          `db:"sku_id" json:"skuId"`
	ZoneID    id.ID          `db:"zone_id" json:"zoneId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
	UnitType  string         `db:"unit_type" json:"unitType"`
}

// LineInput is an unchecked line as received from a client.
type LineInput struct {
	ProductID id.ID
	ZoneID    id.ID
	Quantity  types.QuantityInput
	UnitType  string
}

// NewDocument creates a new draft inbound document.
func NewDocument(clientID id.ID, number string, date time.Time) *Document {
	return &Document{
		Document: entity.NewDocument(clientID, date),
		Number:   strings.TrimSpace(number),
		Lines:    make([]Item, 0),
	}
}

// SetLines replaces the table part. Lines with an empty, malformed or
// non-positive quantity are dropped. Returns the number of kept lines.
func (d *Document) SetLines(inputs []LineInput) int {
	d.Lines = make([]Item, 0, len(inputs))
	for _, in := range inputs {
		qty, ok := in.Quantity.Parse()
		if !ok {
			continue
		}
		d.Lines = append(d.Lines, Item{
			LineID:    id.New(),
			LineNo:    len(d.Lines) + 1,
			ProductID: in.ProductID,
			ZoneID:    in.ZoneID,
			Quantity:  qty,
			UnitType:  types.UnitOrDefault(in.UnitType),
		})
	}
	return len(d.Lines)
}

// Validate implements entity.Validatable.
func (d *Document) Validate(ctx context.Context) error {
	if err := d.Document.Validate(ctx); err != nil {
		return err
	}

	d.Number = strings.TrimSpace(d.Number)
	if d.Number == "" {
		return apperror.NewValidation("document number is required").
			WithDetail("field", "docNumber")
	}

	if len(d.Lines) == 0 {
		return apperror.NewValidation("at least one line with a positive quantity is required").
			WithDetail("field", "lines")
	}

	for i, line := range d.Lines {
		if id.IsNil(line.ProductID) {
			return apperror.NewValidation("sku is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if id.IsNil(line.ZoneID) {
			return apperror.NewValidation("zone is required").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
		if !line.Quantity.IsPositive() {
			return apperror.NewValidation("quantity must be positive").
				WithDetail("field", "lines").
				WithDetail("lineNo", i+1)
		}
	}

	return nil
}
