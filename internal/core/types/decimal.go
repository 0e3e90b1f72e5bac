// Package types provides common type aliases and utilities.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is an item count on a document line. Fractional values are allowed.
type Quantity = decimal.Decimal

// Hours is a duration in man- or machine-hours.
type Hours = decimal.Decimal

// PresentationPlaces is the number of fractional digits shown to users.
const PresentationPlaces int32 = 2

// DefaultUnitType is the unit label used when a line does not name one.
const DefaultUnitType = "шт"

// MustDecimal creates a decimal from a string, panics on error.
// Use only for constants and tests.
func MustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseQuantity parses user input into a quantity.
// A comma is accepted as decimal separator. Empty input is an error.
func ParseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty quantity")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse quantity %q: %w", s, err)
	}
	return d, nil
}

// Present rounds a value for display.
func Present(d decimal.Decimal) decimal.Decimal {
	return d.Round(PresentationPlaces)
}

// UnitOrDefault returns the trimmed unit label or DefaultUnitType when empty.
func UnitOrDefault(unit string) string {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return DefaultUnitType
	}
	return unit
}

// QuantityInput is raw user input for a quantity. It accepts a JSON number
// or a JSON string and keeps the text as sent, so that malformed values can
// be dropped during ingestion instead of failing the whole request.
type QuantityInput string

// UnmarshalJSON implements json.Unmarshaler.
func (q *QuantityInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*q = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = QuantityInput(s)
	default:
		*q = QuantityInput(data)
	}
	return nil
}

// Parse returns the quantity and whether it is usable (parseable and positive).
func (q QuantityInput) Parse() (Quantity, bool) {
	d, err := ParseQuantity(string(q))
	if err != nil || !d.IsPositive() {
		return decimal.Zero, false
	}
	return d, true
}
