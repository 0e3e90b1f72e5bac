package export

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
)

// utf8BOM lets spreadsheet programs detect the encoding of Cyrillic headers.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a BOM, the header row and all rows separated by ';'.
func WriteCSV(w io.Writer, sheet Sheet) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(utf8BOM); err != nil {
		return fmt.Errorf("write csv bom: %w", err)
	}

	cw := csv.NewWriter(bw)
	cw.Comma = ';'

	if err := cw.Write(sheet.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, len(sheet.Columns))
	for i, row := range sheet.Rows {
		record = record[:0]
		for _, cell := range row {
			record = append(record, FormatCell(cell))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return bw.Flush()
}
