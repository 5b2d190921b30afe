package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"hometheater_quote/internal/domain/records"
)

// WriteCSV writes a header row followed by one line per row.
func WriteCSV(w io.Writer, rows []records.ExportRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(records.ExportColumns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(r.Strings()); err != nil {
			return fmt.Errorf("write csv row %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func GenerateCSV(rows []records.ExportRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
