package request

import (
	"strings"

	"hometheater_quote/internal/domain/entities"
)

// QuoteDraftRequest is the form state sent by the quote wizard. Selections
// map a category to the chosen option label.
type QuoteDraftRequest struct {
	Name       string            `json:"name"`
	Phone      string            `json:"phone"`
	Email      string            `json:"email"`
	Notes      string            `json:"notes"`
	Selections map[string]string `json:"selections"`
}

func (r QuoteDraftRequest) ToDraft() entities.QuoteDraft {
	d := entities.QuoteDraft{
		Name:  strings.TrimSpace(r.Name),
		Phone: strings.TrimSpace(r.Phone),
		Email: strings.TrimSpace(r.Email),
		Notes: strings.TrimSpace(r.Notes),
	}
	for cat, opt := range r.Selections {
		d.Select(entities.Category(cat), entities.OptionLabel(opt))
	}
	return d
}

type WizardRequest struct {
	Step   int               `json:"step"`
	Action string            `json:"action" binding:"required,oneof=next previous"`
	Draft  QuoteDraftRequest `json:"draft"`
}

// SubmitFormRequest is the final submission. TotalPrice is accepted for
// compatibility with existing clients and ignored: the total is always
// recomputed from the catalog.
type SubmitFormRequest struct {
	QuoteDraftRequest
	TotalPrice   *int64 `json:"totalPrice,omitempty"`
	CaptchaToken string `json:"captchaToken"`
}
