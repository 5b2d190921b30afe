// Package notify hands a submitted quote summary off to messaging channels.
package notify

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"hometheater_quote/internal/domain/entities"
	"hometheater_quote/internal/usecase/interfaces"
)

const ChannelWhatsApp = "whatsapp"

var ErrMissingDestination = errors.New("whatsapp destination phone is not configured")

var (
	_ interfaces.INotifier = (*WhatsAppLinker)(nil)
	_ interfaces.INotifier = (*SNSAlerter)(nil)
)

// WhatsAppLinker builds the deep link the client opens to send the summary.
// It performs no network call.
type WhatsAppLinker struct {
	phone string
}

func NewWhatsAppLinker(phone string) *WhatsAppLinker {
	return &WhatsAppLinker{phone: strings.TrimPrefix(strings.TrimSpace(phone), "+")}
}

func (w *WhatsAppLinker) Channel() string {
	return ChannelWhatsApp
}

func (w *WhatsAppLinker) Notify(_ context.Context, n entities.Notification) (entities.NotificationReceipt, error) {
	if w.phone == "" {
		return entities.NotificationReceipt{Channel: ChannelWhatsApp}, ErrMissingDestination
	}
	return entities.NotificationReceipt{
		Channel: ChannelWhatsApp,
		Target:  WhatsAppLink(w.phone, n.Summary, n.UserAgent),
	}, nil
}

// WhatsAppLink returns the app scheme link for mobile user agents and the
// wa.me web link otherwise.
func WhatsAppLink(phone, text, userAgent string) string {
	encoded := encodeURIComponent(text)
	if IsMobile(userAgent) {
		return "whatsapp://send?phone=" + encodeURIComponent(phone) + "&text=" + encoded
	}
	return "https://wa.me/" + url.PathEscape(phone) + "?text=" + encoded
}

// uriComponentUnreserved restores the characters QueryEscape escapes but
// browsers leave alone in URI components; spaces become %20.
var uriComponentUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func encodeURIComponent(s string) string {
	return uriComponentUnreserved.Replace(url.QueryEscape(s))
}

func IsMobile(userAgent string) bool {
	return strings.Contains(strings.ToLower(userAgent), "mobile")
}
