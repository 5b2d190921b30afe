package records

import (
	"strconv"
	"time"

	"hometheater_quote/internal/domain/entities"
)

// ExportColumns is the column order shared by every export format.
var ExportColumns = []string{"Id", "Name", "Phone", "Email", "Selections", "Notes", "TotalPrice", "CreatedAt"}

// ExportRow is the flat projection of a ServiceRequest.
type ExportRow struct {
	ID         int64
	Name       string
	Phone      string
	Email      string
	Selections string
	Notes      string
	TotalPrice int64
	CreatedAt  time.Time
}

func Flatten(records []entities.ServiceRequest) []ExportRow {
	rows := make([]ExportRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ExportRow{
			ID:         r.ID,
			Name:       r.Name,
			Phone:      r.Phone,
			Email:      entities.StringOrEmpty(r.Email),
			Selections: r.Selections.Format(),
			Notes:      entities.StringOrEmpty(r.Notes),
			TotalPrice: r.TotalPrice,
			CreatedAt:  r.CreatedAt,
		})
	}
	return rows
}

// Strings renders the row as text cells in ExportColumns order.
func (r ExportRow) Strings() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Name,
		r.Phone,
		r.Email,
		r.Selections,
		r.Notes,
		strconv.FormatInt(r.TotalPrice, 10),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
