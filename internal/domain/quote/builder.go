package quote

import (
	"sort"
	"strconv"
	"strings"

	"hometheater_quote/internal/domain/entities"
)

const (
	emailPlaceholder = "Not Provided"
	notesPlaceholder = "None"
)

// Quote is a priced view of a draft.
type Quote struct {
	Items      []entities.QuoteItem
	TotalPrice int64
	Summary    string
}

// Builder prices drafts against a catalog and formats their summary message.
type Builder struct {
	catalog *entities.PriceCatalog
}

func NewBuilder(catalog *entities.PriceCatalog) *Builder {
	return &Builder{catalog: catalog}
}

func (b *Builder) Catalog() *entities.PriceCatalog {
	return b.catalog
}

// Items lists the non-empty selections in catalog declaration order.
// Categories absent from the catalog follow in lexical order, priced at zero.
func (b *Builder) Items(s entities.SelectionSet) []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(s))
	for _, cat := range b.catalog.Categories() {
		opt, ok := s[cat.Name]
		if !ok || opt == "" {
			continue
		}
		price, known := b.catalog.Price(cat.Name, opt)
		items = append(items, entities.QuoteItem{Category: cat.Name, Option: opt, Price: price, Known: known})
	}

	var extra []entities.Category
	for cat, opt := range s {
		if opt != "" && !b.catalog.HasCategory(cat) {
			extra = append(extra, cat)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	for _, cat := range extra {
		items = append(items, entities.QuoteItem{Category: cat, Option: s[cat]})
	}
	return items
}

// Preview prices a draft without any validation.
func (b *Builder) Preview(d entities.QuoteDraft) Quote {
	items := b.Items(d.Selections)
	total := b.catalog.Total(d.Selections)
	return Quote{
		Items:      items,
		TotalPrice: total,
		Summary:    b.Summary(d, items, total),
	}
}

// BuildSubmission finalizes a draft. It fails with a ValidationError when
// the captcha token is blank or the contact fields are missing.
func (b *Builder) BuildSubmission(d entities.QuoteDraft, captchaToken string) (entities.QuoteSubmission, error) {
	if strings.TrimSpace(captchaToken) == "" {
		return entities.QuoteSubmission{}, NewValidationError(FieldCaptcha, MsgCaptchaRequired)
	}
	if verr := ValidateContact(d); verr != nil {
		return entities.QuoteSubmission{}, verr
	}

	q := b.Preview(d)
	return entities.QuoteSubmission{
		QuoteDraft:   d,
		Items:        q.Items,
		TotalPrice:   q.TotalPrice,
		CaptchaToken: captchaToken,
		Summary:      q.Summary,
	}, nil
}

// ItemLine renders "{category}: {option} - {currency}{price}".
func (b *Builder) ItemLine(it entities.QuoteItem) string {
	return string(it.Category) + ": " + string(it.Option) + " - " + b.money(it.Price)
}

// Summary renders the message sent through the messaging hand-off.
func (b *Builder) Summary(d entities.QuoteDraft, items []entities.QuoteItem, total int64) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, b.ItemLine(it))
	}

	email := d.Email
	if email == "" {
		email = emailPlaceholder
	}
	notes := d.Notes
	if notes == "" {
		notes = notesPlaceholder
	}

	var sb strings.Builder
	sb.WriteString("Name: " + d.Name + "\n")
	sb.WriteString("Phone: " + d.Phone + "\n")
	sb.WriteString("Email: " + email + "\n")
	sb.WriteString("Services:\n")
	sb.WriteString(strings.Join(lines, "\n") + "\n")
	sb.WriteString("Total: " + b.money(total) + "\n")
	sb.WriteString("Notes: " + notes)
	return sb.String()
}

func (b *Builder) money(v int64) string {
	return b.catalog.Currency() + strconv.FormatInt(v, 10)
}
