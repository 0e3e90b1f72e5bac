// Package reports builds the tabular capacity reports (Отчёты).
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
	"capplan/internal/core/id"
	"capplan/internal/domain/capacity"
)

// Type selects a report.
type Type string

const (
	TypeBalance     Type = "balance"
	TypeLoad        Type = "load"
	TypeRequirement Type = "requirement"
	TypeCapacity    Type = "capacity"
)

// Types lists the supported reports in display order.
var Types = []Type{TypeBalance, TypeLoad, TypeRequirement, TypeCapacity}

var titles = map[Type]string{
	TypeBalance:     "Отчёт по балансу мощностей",
	TypeLoad:        "Отчёт нагрузка за период",
	TypeRequirement: "Отчёт потребность за период",
	TypeCapacity:    "Отчёт доступность за период",
}

var columns = map[Type][]string{
	TypeBalance:     {"Дата", "Зона", "Ресурс", "Требуемо, ч", "Доступно, ч", "Баланс, ч"},
	TypeLoad:        {"Дата", "Документ", "Клиент", "Товар", "Кол-во", "Ед.изм."},
	TypeRequirement: {"Дата", "Документ", "Зона", "Ресурс", "Требуемо, ед."},
	TypeCapacity:    {"Дата", "Ресурс", "Подтип", "Доступно, ч"},
}

// ParseType validates a report type name.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if _, ok := titles[t]; !ok {
		return "", apperror.NewValidation("unknown report type").
			WithDetail("field", "type").
			WithDetail("value", s)
	}
	return t, nil
}

// Title returns the report heading.
func (t Type) Title() string {
	return titles[t]
}

// Report is a titled table. Row cells are time.Time, string or decimal.Decimal.
type Report struct {
	Type    Type
	Title   string
	Range   capacity.DateRange
	Columns []string
	Rows    [][]any
}

// LoadItem is one validated inbound line with display names.
type LoadItem struct {
	Date           time.Time       `db:"date"`
	DocumentNumber string          `db:"doc_number"`
	ClientName     string          `db:"client_name"`
	ProductName    string          `db:"product_name"`
	Quantity       decimal.Decimal `db:"quantity"`
	UnitType       string          `db:"unit_type"`
}

// CapacityItem is one availability record with its resource.
type CapacityItem struct {
	Date            time.Time       `db:"date"`
	ResourceID      id.ID           `db:"resource_id"`
	ResourceName    string          `db:"resource_name"`
	ResourceSubtype string          `db:"subtype"`
	Hours           decimal.Decimal `db:"available_hours"`
}

// FileName returns report_{type}_{start}_{end}.{ext}, "all" for an open bound.
func FileName(t Type, r capacity.DateRange, ext string) string {
	start, end := r.Labels()
	return "report_" + string(t) + "_" + start + "_" + end + "." + ext
}

// RecommendationsFileName returns recommendations_{start}_{end}.{ext}.
func RecommendationsFileName(r capacity.DateRange, ext string) string {
	start, end := r.Labels()
	return "recommendations_" + start + "_" + end + "." + ext
}

// RecommendationColumns are the headers of the recommendation export.
var RecommendationColumns = []string{"Дата", "Зона", "Ресурс", "Баланс, ч", "Тип", "Рекомендация"}

// RecommendationRows renders recommendations as table rows.
func RecommendationRows(recs []capacity.Recommendation) [][]any {
	rows := make([][]any, 0, len(recs))
	for _, r := range recs {
		rows = append(rows, []any{r.Date, r.ZoneName, r.ResourceSubtype, r.Balance, string(r.Category), r.Message})
	}
	return rows
}
