// Package export serializes flattened service requests into downloadable files.
package export

import (
	"fmt"
	"strings"

	"hometheater_quote/internal/domain/records"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

const baseFileName = "service_requests"

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX:
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

func (f Format) ContentType() string {
	switch f {
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "text/csv; charset=utf-8"
	}
}

func (f Format) FileName() string {
	return baseFileName + "." + string(f)
}

// Render serializes rows in the given format.
func Render(f Format, rows []records.ExportRow) ([]byte, error) {
	switch f {
	case FormatCSV:
		return GenerateCSV(rows)
	case FormatXLSX:
		return GenerateXLSX(rows)
	}
	return nil, fmt.Errorf("unsupported export format %q", f)
}
