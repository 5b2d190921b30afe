package entities

import "time"

// QuoteDraft is the in-progress form state of the quote wizard.
type QuoteDraft struct {
	Name       string
	Phone      string
	Email      string
	Notes      string
	Selections SelectionSet
}

// Select records a choice on the draft, creating the selection set on first use.
func (d *QuoteDraft) Select(cat Category, opt OptionLabel) {
	if d.Selections == nil {
		d.Selections = SelectionSet{}
	}
	d.Selections.Select(cat, opt)
}

// QuoteItem is one priced line of a quote. Known is false when the pair is
// not in the catalog; its Price is then zero.
type QuoteItem struct {
	Category Category
	Option   OptionLabel
	Price    int64
	Known    bool
}

// QuoteSubmission is the finalized payload handed to persistence.
type QuoteSubmission struct {
	QuoteDraft
	Items        []QuoteItem
	TotalPrice   int64
	CaptchaToken string
	Summary      string
}

// SelectionList returns the items in their quote order, ready to be stored.
func (s QuoteSubmission) SelectionList() SelectionList {
	out := make(SelectionList, 0, len(s.Items))
	for _, it := range s.Items {
		out = append(out, Selection{Category: string(it.Category), Option: string(it.Option)})
	}
	return out
}

// ServiceRequest is a persisted, immutable quote submission.
//
// Selections are a historical snapshot and are never checked against the
// current catalog. Email and Notes are nil when they were not provided.
type ServiceRequest struct {
	ID         int64
	Name       string
	Phone      string
	Email      *string
	Selections SelectionList
	Notes      *string
	TotalPrice int64
	CreatedAt  time.Time
}

// OptionalString maps an empty value to nil, the way blank optional form
// fields are stored.
func OptionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

// StringOrEmpty dereferences v, returning "" for nil.
func StringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
