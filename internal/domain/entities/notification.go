package entities

// Notification is the messaging hand-off produced for a submitted quote.
type Notification struct {
	Summary   string
	UserAgent string
}

// NotificationReceipt describes what a channel did with a Notification.
// Target is a deep link for link-based channels or a provider message id.
type NotificationReceipt struct {
	Channel string
	Target  string
}
