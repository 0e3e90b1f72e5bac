// Package capacity computes resource requirements, the requirement-vs-availability
// balance and corrective recommendations for warehouse zones.
package capacity

import (
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/core/types"
)

// OperationType is the warehouse operation a norm applies to.
type OperationType string

const (
	OperationInbound  OperationType = "inbound"
	OperationOutbound OperationType = "outbound"
)

// IsValid reports whether op is a known operation.
func (op OperationType) IsValid() bool {
	return op == OperationInbound || op == OperationOutbound
}

// ResourceKind separates labor from machinery.
type ResourceKind string

const (
	KindStaff     ResourceKind = "staff"
	KindEquipment ResourceKind = "equipment"
	KindUnknown   ResourceKind = ""
)

// IsValid reports whether k is staff or equipment.
func (k ResourceKind) IsValid() bool {
	return k == KindStaff || k == KindEquipment
}

// Category of a recommendation.
type Category string

const (
	CategoryDeficit Category = "Deficit"
	CategorySurplus Category = "Surplus"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// DateRange is an optionally bounded, inclusive calendar interval.
// A nil bound means the range is open on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange builds a range and checks that start is not after end.
func NewDateRange(start, end *time.Time) (DateRange, error) {
	r := DateRange{}
	if start != nil {
		s := truncate(*start)
		r.Start = &s
	}
	if end != nil {
		e := truncate(*end)
		r.End = &e
	}
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, apperror.NewValidation("start date must not be after end date").
			WithDetail("startDate", r.Start.Format(DateLayout)).
			WithDetail("endDate", r.End.Format(DateLayout))
	}
	return r, nil
}

// ParseDateRange parses YYYY-MM-DD bounds. Empty strings leave the side open.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := parseBound("startDate", start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := parseBound("endDate", end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func parseBound(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperror.NewValidation("invalid date format, expected YYYY-MM-DD").
			WithDetail("field", field).
			WithDetail("value", value)
	}
	return &t, nil
}

// Contains reports whether the calendar date of t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	d := truncate(t)
	if r.Start != nil && d.Before(*r.Start) {
		return false
	}
	if r.End != nil && d.After(*r.End) {
		return false
	}
	return true
}

// Labels returns the bounds as strings, "all" for an open side.
func (r DateRange) Labels() (start, end string) {
	start, end = "all", "all"
	if r.Start != nil {
		start = r.Start.Format(DateLayout)
	}
	if r.End != nil {
		end = r.End.Format(DateLayout)
	}
	return start, end
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// --- Source records ---

// DemandLine is one ledger line that may generate resource demand:
// an inbound document item or an outbound plan entry.
type DemandLine struct {
	Operation      OperationType
	ClientID       id.ID
	ProductID      id.ID
	ZoneID         id.ID
	Quantity       types.Quantity
	UnitType       string
	DocumentNumber string
	Date           time.Time
	Validated      bool
}

// NormEntry is hours per unit for one resource subtype.
type NormEntry struct {
	ClientID        id.ID
	ProductID       id.ID
	Operation       OperationType
	ZoneType        string
	ResourceSubtype string
	UnitType        string
	Value           decimal.Decimal
}

// AvailabilityEntry is the hours a resource can work on a date.
type AvailabilityEntry struct {
	ResourceID id.ID
	Date       time.Time
	Hours      types.Hours
}

// ZoneInfo resolves a zone id to its display name and type tag.
type ZoneInfo struct {
	ID   id.ID
	Name string
	Type string
}

// ResourceInfo resolves a resource id to its subtype and placement.
type ResourceInfo struct {
	ID      id.ID
	Kind    ResourceKind
	Subtype string
	Name    string
	ZoneID  *id.ID
}

// --- Derived rows ---

// RequirementRow is the demand of one document for one subtype in one zone.
type RequirementRow struct {
	Date            time.Time       `json:"date"`
	Operation       OperationType   `json:"operation"`
	DocumentNumber  string          `json:"documentNumber"`
	ZoneID          id.ID           `json:"zoneId"`
	ZoneName        string          `json:"zoneName"`
	ResourceSubtype string          `json:"resourceSubtype"`
	RequiredUnits   decimal.Decimal `json:"requiredUnits"`
}

// Rounded returns a copy for presentation.
func (r RequirementRow) Rounded() RequirementRow {
	r.RequiredUnits = types.Present(r.RequiredUnits)
	return r
}

// BalanceRow is required against available hours in one (date, zone, subtype) cell.
type BalanceRow struct {
	Date            time.Time   `json:"date"`
	ZoneID          id.ID       `json:"zoneId"`
	ZoneName        string      `json:"zoneName"`
	ResourceSubtype string      `json:"resourceSubtype"`
	RequiredHours   types.Hours `json:"requiredHours"`
	AvailableHours  types.Hours `json:"availableHours"`
	Balance         types.Hours `json:"balance"`
}

// Rounded returns a copy for presentation.
func (r BalanceRow) Rounded() BalanceRow {
	r.RequiredHours = types.Present(r.RequiredHours)
	r.AvailableHours = types.Present(r.AvailableHours)
	r.Balance = types.Present(r.Balance)
	return r
}

// Recommendation is a textual suggestion for one imbalanced cell.
type Recommendation struct {
	Date            time.Time    `json:"date"`
	ZoneID          id.ID        `json:"zoneId"`
	ZoneName        string       `json:"zoneName"`
	ResourceSubtype string       `json:"resourceSubtype"`
	Balance         types.Hours  `json:"balance"`
	Category        Category     `json:"category"`
	Kind            ResourceKind `json:"kind"`
	Message         string       `json:"message"`
}
