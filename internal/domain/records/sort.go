package records

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"hometheater_quote/internal/domain/entities"
)

type SortField string

const (
	SortByID         SortField = "id"
	SortByName       SortField = "name"
	SortByPhone      SortField = "phone"
	SortByEmail      SortField = "email"
	SortBySelections SortField = "selections"
	SortByNotes      SortField = "notes"
	SortByTotalPrice SortField = "total_price"
	SortByCreatedAt  SortField = "created_at"
)

// SortFields lists the sortable columns in table order.
func SortFields() []SortField {
	return []SortField{SortByID, SortByName, SortByPhone, SortByEmail, SortBySelections, SortByNotes, SortByTotalPrice, SortByCreatedAt}
}

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortField(s string) (SortField, error) {
	f := SortField(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range SortFields() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case Ascending:
		return Ascending, nil
	case Descending:
		return Descending, nil
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}

// SortState is the active column and direction of the list view.
type SortState struct {
	Field SortField
	Order SortOrder
}

// DefaultSortState shows the newest requests first.
func DefaultSortState() SortState {
	return SortState{Field: SortByCreatedAt, Order: Descending}
}

// Toggle applies a column click: the same column flips the order, another
// column becomes the key with ascending order.
func (s SortState) Toggle(field SortField) SortState {
	if s.Field == field {
		if s.Order == Ascending {
			return SortState{Field: field, Order: Descending}
		}
		return SortState{Field: field, Order: Ascending}
	}
	return SortState{Field: field, Order: Ascending}
}

// Sort returns a stably sorted copy of records.
//
// A nil email or notes value compares equal to anything, so those columns
// are not a total order when values are missing.
func Sort(records []entities.ServiceRequest, field SortField, order SortOrder) []entities.ServiceRequest {
	out := make([]entities.ServiceRequest, len(records))
	copy(out, records)

	col := collate.New(language.English)
	compare := comparator(field, col)
	sort.SliceStable(out, func(i, j int) bool {
		if order == Descending {
			return compare(out[j], out[i]) < 0
		}
		return compare(out[i], out[j]) < 0
	})
	return out
}

func comparator(field SortField, col *collate.Collator) func(a, b entities.ServiceRequest) int {
	switch field {
	case SortByID:
		return func(a, b entities.ServiceRequest) int { return cmp.Compare(a.ID, b.ID) }
	case SortByTotalPrice:
		return func(a, b entities.ServiceRequest) int { return cmp.Compare(a.TotalPrice, b.TotalPrice) }
	case SortByCreatedAt:
		return func(a, b entities.ServiceRequest) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortByName:
		return func(a, b entities.ServiceRequest) int { return col.CompareString(a.Name, b.Name) }
	case SortByPhone:
		return func(a, b entities.ServiceRequest) int { return col.CompareString(a.Phone, b.Phone) }
	case SortBySelections:
		return func(a, b entities.ServiceRequest) int {
			return col.CompareString(a.Selections.Format(), b.Selections.Format())
		}
	case SortByEmail:
		return nullableComparator(col, func(r entities.ServiceRequest) *string { return r.Email })
	case SortByNotes:
		return nullableComparator(col, func(r entities.ServiceRequest) *string { return r.Notes })
	default:
		return func(a, b entities.ServiceRequest) int { return 0 }
	}
}

func nullableComparator(col *collate.Collator, get func(entities.ServiceRequest) *string) func(a, b entities.ServiceRequest) int {
	return func(a, b entities.ServiceRequest) int {
		av, bv := get(a), get(b)
		if av == nil || bv == nil {
			return 0
		}
		return col.CompareString(*av, *bv)
	}
}
