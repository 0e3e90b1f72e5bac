package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"capplan/internal/core/apperror"
	"capplan/internal/core/types"
)

func balanceSheet() Sheet {
	return Sheet{
		Title:   "Отчёт по балансу мощностей",
		Columns: []string{"Дата", "Зона", "Ресурс", "Требуемо, ч", "Доступно, ч", "Баланс, ч"},
		Rows: [][]any{
			{time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "Приёмка", "Грузчик",
				types.MustDecimal("5"), types.MustDecimal("3"), types.MustDecimal("-2")},
			{time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "Отгрузка; склад 2", "Кладовщик",
				types.MustDecimal("1.255"), types.MustDecimal("0"), types.MustDecimal("-1.255")},
		},
	}
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "Зона А", "Зона А"},
		{"date", time.Date(2024, 1, 5, 13, 0, 0, 0, time.UTC), "2024-01-05"},
		{"decimal", types.MustDecimal("5"), "5.00"},
		{"negative decimal", types.MustDecimal("-2.5"), "-2.50"},
		{"int", 7, "7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(tt.in))
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("", FormatJSON, FormatJSON, FormatCSV, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("XLSX", FormatJSON, FormatJSON, FormatCSV, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, f)

	_, err = ParseFormat("json", FormatCSV, FormatCSV, FormatXLSX)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))

	_, err = ParseFormat("pdf", FormatJSON, FormatJSON, FormatCSV, FormatXLSX)
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, balanceSheet()))

	data := buf.Bytes()
	require.True(t, bytes.HasPrefix(data, utf8BOM), "missing BOM")

	r := csv.NewReader(bytes.NewReader(data[len(utf8BOM):]))
	r.Comma = ';'
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, balanceSheet().Columns, records[0])
	assert.Equal(t, []string{"2024-03-01", "Приёмка", "Грузчик", "5.00", "3.00", "-2.00"}, records[1])
	// separator inside a value is quoted, and rounding is half away from zero
	assert.Equal(t, "Отгрузка; склад 2", records[2][1])
	assert.Equal(t, "1.26", records[2][3])
	assert.Equal(t, "-1.26", records[2][5])
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	sheet := balanceSheet()
	sheet.Rows = nil
	require.NoError(t, WriteCSV(&buf, sheet))

	body := strings.TrimPrefix(buf.String(), string(utf8BOM))
	assert.Equal(t, "Дата;Зона;Ресурс;Требуемо, ч;Доступно, ч;Баланс, ч\n", body)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, balanceSheet()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	assert.Equal(t, "Отчёт по балансу мощностей", sheet)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, balanceSheet().Columns, rows[0])
	assert.Equal(t, "2024-03-01", rows[1][0])
	assert.Equal(t, "-2.00", rows[1][5])

	styleID, err := f.GetCellStyle(sheet, "A1")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.Font)
	assert.True(t, style.Font.Bold)

	width, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, width, float64(minColWidth))
}

func TestWrite_Dispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSV, balanceSheet()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), utf8BOM))

	assert.Error(t, Write(&buf, FormatJSON, balanceSheet()))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", sheetName(""))
	assert.Equal(t, "ab", sheetName("a/b"))
	assert.Len(t, []rune(sheetName(strings.Repeat("я", 40))), maxSheetName)
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv; charset=utf-8", FormatCSV.ContentType())
	assert.Contains(t, FormatXLSX.ContentType(), "spreadsheetml")
}
