// Package export renders report tables as CSV or XLSX files.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"capplan/internal/core/apperror"
)

// Format is an output file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DateLayout is used for every date cell.
const DateLayout = "2006-01-02"

// Sheet is a titled table ready for export.
type Sheet struct {
	Title   string
	Columns []string
	Rows    [][]any
}

// ParseFormat validates a format name. Empty input selects def.
func ParseFormat(s string, def Format, allowed ...Format) (Format, error) {
	if s == "" {
		return def, nil
	}
	f := Format(strings.ToLower(s))
	for _, a := range allowed {
		if a == f {
			return f, nil
		}
	}
	return "", apperror.NewValidation("unsupported export format").
		WithDetail("field", "format").
		WithDetail("value", s)
}

// ContentType returns the HTTP content type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json; charset=utf-8"
	}
}

// Write renders sheet in format f.
func Write(w io.Writer, f Format, sheet Sheet) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, sheet)
	case FormatXLSX:
		return WriteXLSX(w, sheet)
	default:
		return fmt.Errorf("export: format %q has no file writer", f)
	}
}

// FormatCell renders a cell as text: dates as YYYY-MM-DD, decimals with 2 places.
func FormatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case time.Time:
		return c.Format(DateLayout)
	case decimal.Decimal:
		return c.StringFixed(2)
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}
