package records

import "hometheater_quote/internal/domain/entities"

const DefaultPageSize = 10

// Paginate returns the 1-indexed page of size pageSize. Pages before the
// first or past the last are empty.
func Paginate(records []entities.ServiceRequest, pageSize, page int) []entities.ServiceRequest {
	if pageSize <= 0 || page < 1 || page > TotalPages(len(records), pageSize) {
		return []entities.ServiceRequest{}
	}
	start := (page - 1) * pageSize
	return records[start : start+min(pageSize, len(records)-start)]
}

// TotalPages is the number of non-empty pages for n records.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 || n <= 0 {
		return 0
	}
	return (n-1)/pageSize + 1
}
