package capacity

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/id"
)

// Engine joins requirements with availability.
type Engine struct {
	src  Source
	calc *Calculator
}

// NewEngine creates an engine on top of calc's source.
func NewEngine(calc *Calculator) *Engine {
	return &Engine{src: calc.src, calc: calc}
}

type cellKey struct {
	date    time.Time
	zone    id.ID
	subtype string
}

// Compute returns one row per (date, zone, subtype) present on either side.
func (e *Engine) Compute(ctx context.Context, r DateRange) ([]BalanceRow, error) {
	var rows []BalanceRow
	err := snapshot(ctx, e.src, func(ctx context.Context) error {
		var err error
		rows, err = e.compute(ctx, r)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Engine) compute(ctx context.Context, r DateRange) ([]BalanceRow, error) {
	zoneList, err := e.src.Zones(ctx)
	if err != nil {
		return nil, fmt.Errorf("load zones: %w", err)
	}
	zones := indexZones(zoneList)

	reqs, err := e.calc.compute(ctx, r, zones)
	if err != nil {
		return nil, err
	}

	resources, err := e.src.Resources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	byID := make(map[id.ID]ResourceInfo, len(resources))
	for _, res := range resources {
		byID[res.ID] = res
	}

	avail, err := e.src.Availability(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}

	cells := make(map[cellKey]*BalanceRow)
	cell := func(k cellKey, zoneName string) *BalanceRow {
		row, ok := cells[k]
		if !ok {
			row = &BalanceRow{
				Date:            k.date,
				ZoneID:          k.zone,
				ZoneName:        zoneName,
				ResourceSubtype: k.subtype,
				RequiredHours:   decimal.Zero,
				AvailableHours:  decimal.Zero,
			}
			cells[k] = row
		}
		return row
	}

	for _, req := range reqs {
		row := cell(cellKey{date: req.Date, zone: req.ZoneID, subtype: req.ResourceSubtype}, req.ZoneName)
		row.RequiredHours = row.RequiredHours.Add(req.RequiredUnits)
	}

	for _, a := range avail {
		if !r.Contains(a.Date) {
			continue
		}
		res, ok := byID[a.ResourceID]
		if !ok || res.ZoneID == nil {
			continue
		}
		zone, ok := zones[*res.ZoneID]
		if !ok {
			continue
		}
		row := cell(cellKey{date: truncate(a.Date), zone: zone.ID, subtype: res.Subtype}, zone.Name)
		row.AvailableHours = row.AvailableHours.Add(a.Hours)
	}

	rows := make([]BalanceRow, 0, len(cells))
	for _, row := range cells {
		row.Balance = row.AvailableHours.Sub(row.RequiredHours)
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, compareBalance)
	return rows, nil
}

func compareBalance(a, b BalanceRow) int {
	return cmp.Or(
		a.Date.Compare(b.Date),
		cmp.Compare(a.ZoneName, b.ZoneName),
		cmp.Compare(a.ResourceSubtype, b.ResourceSubtype),
		cmp.Compare(a.ZoneID.String(), b.ZoneID.String()),
	)
}
