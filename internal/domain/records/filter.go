// Package records implements the admin list view over stored service
// requests: free-text search, single-key sorting, pagination and the flat
// row projection used by exports.
package records

import (
	"strings"

	"hometheater_quote/internal/domain/entities"
)

// Filter keeps the records whose search text contains query, ignoring case.
// An empty query returns records unchanged.
func Filter(records []entities.ServiceRequest, query string) []entities.ServiceRequest {
	if query == "" {
		return records
	}
	needle := strings.ToLower(query)
	out := make([]entities.ServiceRequest, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(searchText(r)), needle) {
			out = append(out, r)
		}
	}
	return out
}

func searchText(r entities.ServiceRequest) string {
	return strings.Join([]string{
		r.Name,
		r.Phone,
		entities.StringOrEmpty(r.Email),
		r.Selections.Format(),
		entities.StringOrEmpty(r.Notes),
	}, " ")
}
