package response

import (
	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/domain/quote"
	"hometheater_quote/internal/usecase"
	"hometheater_quote/pkg"
)

type CatalogOptionResponse struct {
	Label string `json:"label"`
	Price int64  `json:"price"`
}

type CatalogCategoryResponse struct {
	Name    string                  `json:"name"`
	Options []CatalogOptionResponse `json:"options"`
}

type CatalogResponse struct {
	Currency   string                    `json:"currency"`
	Categories []CatalogCategoryResponse `json:"categories"`
}

func FromCatalog(c *entities.PriceCatalog) CatalogResponse {
	out := CatalogResponse{Currency: c.Currency()}
	for _, cat := range c.Categories() {
		cr := CatalogCategoryResponse{Name: string(cat.Name), Options: make([]CatalogOptionResponse, 0, len(cat.Options))}
		for _, opt := range cat.Options {
			cr.Options = append(cr.Options, CatalogOptionResponse{Label: string(opt.Label), Price: opt.Price})
		}
		out.Categories = append(out.Categories, cr)
	}
	return out
}

type WizardResponse struct {
	From     int               `json:"from"`
	To       int               `json:"to"`
	StepName string            `json:"stepName"`
	Moved    bool              `json:"moved"`
	Reason   string            `json:"reason,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func FromTransition(r quote.TransitionResult) WizardResponse {
	out := WizardResponse{
		From:     int(r.From),
		To:       int(r.To),
		StepName: r.To.String(),
		Moved:    r.Moved,
		Reason:   string(r.Reason),
	}
	if r.Validation != nil {
		out.Fields = r.Validation.Fields
	}
	return out
}

type QuoteItemResponse struct {
	Category string `json:"category"`
	Option   string `json:"option"`
	Price    int64  `json:"price"`
	Known    bool   `json:"known"`
}

type QuoteResponse struct {
	Currency   string              `json:"currency"`
	Items      []QuoteItemResponse `json:"items"`
	TotalPrice int64               `json:"totalPrice"`
	Summary    string              `json:"summary"`
}

func fromItems(items []entities.QuoteItem) []QuoteItemResponse {
	out := make([]QuoteItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, QuoteItemResponse{
			Category: string(it.Category),
			Option:   string(it.Option),
			Price:    it.Price,
			Known:    it.Known,
		})
	}
	return out
}

func FromQuote(currency string, q quote.Quote) QuoteResponse {
	return QuoteResponse{
		Currency:   currency,
		Items:      fromItems(q.Items),
		TotalPrice: q.TotalPrice,
		Summary:    q.Summary,
	}
}

type OperationResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type NotificationResponse struct {
	Channel string `json:"channel"`
	OK      bool   `json:"ok"`
	Target  string `json:"target,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SubmitResponse reports both side effects of a submission. Error is set
// when the request could not be stored.
type SubmitResponse struct {
	Success       bool                   `json:"success"`
	ID            *int64                 `json:"id,omitempty"`
	TotalPrice    int64                  `json:"totalPrice"`
	Summary       string                 `json:"summary"`
	WhatsAppLink  string                 `json:"whatsappLink,omitempty"`
	Persistence   OperationResponse      `json:"persistence"`
	Notifications []NotificationResponse `json:"notifications"`
	Error         *pkg.HTTPErrorBody     `json:"error,omitempty"`
}

func FromSubmissionOutcome(o usecase.SubmissionOutcome, linkChannel string) SubmitResponse {
	out := SubmitResponse{
		Success:       o.Persisted(),
		TotalPrice:    o.Submission.TotalPrice,
		Summary:       o.Submission.Summary,
		WhatsAppLink:  o.Link(linkChannel),
		Persistence:   OperationResponse{OK: o.Persisted()},
		Notifications: make([]NotificationResponse, 0, len(o.Notifications)),
	}
	if o.Persisted() {
		id := o.Persistence.ID
		out.ID = &id
	} else {
		out.Persistence.Error = "failed to save service request"
	}
	for _, n := range o.Notifications {
		nr := NotificationResponse{Channel: n.Channel, OK: n.Err == nil, Target: n.Target}
		if n.Err != nil {
			nr.Error = n.Channel + " notification failed"
		}
		out.Notifications = append(out.Notifications, nr)
	}
	return out
}
