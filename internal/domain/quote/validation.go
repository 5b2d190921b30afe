package quote

import (
	"sort"
	"strings"

	"hometheater_quote/internal/domain/entities"
)

const (
	FieldName    = "name"
	FieldPhone   = "phone"
	FieldCaptcha = "captcha"
)

const (
	MsgNameRequired    = "Name is required"
	MsgPhoneRequired   = "Phone number is required"
	MsgCaptchaRequired = "Please complete the CAPTCHA"
	MsgCaptchaRejected = "CAPTCHA verification failed"
)

// ValidationError reports the fields that block progression, keyed by field
// name with a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ValidateContact checks the contact step: name and phone are required
// after trimming. It returns nil when both are present.
func ValidateContact(d entities.QuoteDraft) *ValidationError {
	fields := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		fields[FieldName] = MsgNameRequired
	}
	if strings.TrimSpace(d.Phone) == "" {
		fields[FieldPhone] = MsgPhoneRequired
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
