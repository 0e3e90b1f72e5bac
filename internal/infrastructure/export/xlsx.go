package export

import (
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	minColWidth = 10
	maxColWidth = 60

	// Excel limits sheet names to 31 characters.
	maxSheetName = 31
)

// WriteXLSX writes a single-sheet workbook with a bold header row.
// Decimal cells stay numeric with a 0.00 format.
func WriteXLSX(w io.Writer, sheet Sheet) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := sheetName(sheet.Title)
	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), name); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	numberStyle, err := f.NewStyle(&excelize.Style{NumFmt: 2}) // 0.00
	if err != nil {
		return fmt.Errorf("number style: %w", err)
	}

	widths := make([]int, len(sheet.Columns))

	header := make([]any, len(sheet.Columns))
	for i, c := range sheet.Columns {
		header[i] = c
		widths[i] = utf8.RuneCountInString(c)
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(max(len(sheet.Columns), 1), 1)
	if err := f.SetCellStyle(name, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	for r, row := range sheet.Rows {
		rowNum := r + 2
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, rowNum)
			if err != nil {
				return err
			}
			if err := setCell(f, name, cell, v, numberStyle); err != nil {
				return fmt.Errorf("write cell %s: %w", cell, err)
			}
			if c < len(widths) {
				widths[c] = max(widths[c], utf8.RuneCountInString(FormatCell(v)))
			}
		}
	}

	for i, width := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, float64(min(max(width+2, minColWidth), maxColWidth))); err != nil {
			return fmt.Errorf("column width: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, sheet, cell string, v any, numberStyle int) error {
	switch c := v.(type) {
	case decimal.Decimal:
		if err := f.SetCellValue(sheet, cell, c.Round(2).InexactFloat64()); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, numberStyle)
	case time.Time:
		return f.SetCellStr(sheet, cell, c.Format(DateLayout))
	default:
		return f.SetCellStr(sheet, cell, FormatCell(v))
	}
}

// sheetName strips characters Excel rejects and trims to the length limit.
func sheetName(title string) string {
	out := make([]rune, 0, maxSheetName)
	for _, r := range title {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		out = append(out, r)
		if len(out) == maxSheetName {
			break
		}
	}
	if len(out) == 0 {
		return "Sheet1"
	}
	return string(out)
}
