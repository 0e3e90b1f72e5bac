// Package id holds identifiers of catalog items, documents and ledger records.
package id

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ID identifies any stored row. Values are UUIDv7, so newer rows sort later.
type ID = uuid.UUID

// ErrNil is returned by Parse for the all-zero UUID.
var ErrNil = errors.New("id: nil uuid")

// New returns a fresh UUIDv7.
func New() ID {
	v, err := uuid.NewV7()
	if err != nil {
		// NewV7 падает только если кончилась энтропия
		return uuid.New()
	}
	return v
}

// Parse reads an identifier from a path or query value.
// The zero UUID never names a stored row and is rejected.
func Parse(s string) (ID, error) {
	v, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, err
	}
	if v == uuid.Nil {
		return uuid.Nil, ErrNil
	}
	return v, nil
}

// ParseOptional is Parse for optional filters: blank input yields nil.
func ParseOptional(s string) (*ID, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Nil returns the zero UUID.
func Nil() ID { return uuid.Nil }

// IsNil reports whether v is unset.
func IsNil(v ID) bool { return v == uuid.Nil }
