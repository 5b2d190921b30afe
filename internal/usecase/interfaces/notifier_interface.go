package interfaces

import (
	"context"

	"hometheater_quote/internal/domain/entities"
)

// INotifier hands a quote summary off to one messaging channel.
type INotifier interface {
	Channel() string
	Notify(ctx context.Context, n entities.Notification) (entities.NotificationReceipt, error)
}
