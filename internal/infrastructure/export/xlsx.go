package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"hometheater_quote/internal/domain/records"
)

const sheetName = "ServiceRequests"

var columnWidths = []float64{8, 24, 16, 28, 60, 40, 14, 22}

// GenerateXLSX builds a single-sheet workbook with a styled header row.
func GenerateXLSX(rows []records.ExportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	for i, width := range columnWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	header := make([]interface{}, len(records.ExportColumns))
	for i, h := range records.ExportColumns {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	lastCol, _ := excelize.ColumnNumberToName(len(records.ExportColumns))
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			r.ID,
			r.Name,
			r.Phone,
			r.Email,
			r.Selections,
			r.Notes,
			r.TotalPrice,
			r.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}
	if len(rows) > 0 {
		if err := f.SetCellStyle(sheetName, "E2", fmt.Sprintf("F%d", len(rows)+1), wrapStyle); err != nil {
			return nil, fmt.Errorf("style body: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
