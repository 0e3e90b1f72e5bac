package entity

import (
	"context"
	"time"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
)

// Document is the base type for ledger records that feed capacity demand.
// Examples: InboundDocument, OutboundPlan.
type Document struct {
	BaseDocument

	// ClientID is the owning client
	ClientID id.ID `db:"client_id" json:"clientId"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`

	// Validated marks the document as confirmed. Only validated documents
	// contribute to capacity requirements. There is no way back to draft.
	Validated bool `db:"validated" json:"validated"`
}

// NewDocument creates a new draft Document with generated ID.
func NewDocument(clientID id.ID, date time.Time) Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		ClientID:     clientID,
		Date:         TruncateDate(date),
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if id.IsNil(d.ClientID) {
		return apperror.NewValidation("client is required").
			WithDetail("field", "clientId")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}

// MarkValidated sets the validated flag. Returns false when it was already set.
func (d *Document) MarkValidated() bool {
	if d.Validated {
		return false
	}
	d.Validated = true
	return true
}

// GetID returns the document ID.
func (d *Document) GetID() id.ID {
	return d.ID
}

// TruncateDate drops the time of day, keeping a UTC calendar date.
func TruncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
