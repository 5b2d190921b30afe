package records

import "hometheater_quote/internal/domain/entities"

// Query describes the admin list state.
type Query struct {
	Search   string
	Sort     SortState
	Page     int
	PageSize int
}

// View is one rendered page of the list.
type View struct {
	Items      []entities.ServiceRequest
	Matched    int
	Page       int
	PageSize   int
	TotalPages int
	Sort       SortState
}

// Select filters then sorts. Exports use this set: it follows the search
// query and ignores the current page.
func Select(all []entities.ServiceRequest, search string, sort SortState) []entities.ServiceRequest {
	return Sort(Filter(all, search), sort.Field, sort.Order)
}

// Apply filters, sorts and paginates all.
func Apply(all []entities.ServiceRequest, q Query) View {
	size := q.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	selected := Select(all, q.Search, q.Sort)
	return View{
		Items:      Paginate(selected, size, q.Page),
		Matched:    len(selected),
		Page:       q.Page,
		PageSize:   size,
		TotalPages: TotalPages(len(selected), size),
		Sort:       q.Sort,
	}
}
