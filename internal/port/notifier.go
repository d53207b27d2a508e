package port

import (
	"context"

	"docdigest/internal/domain"
)

// Notifier abstracts the notification topic a processed upload is announced
// on.
type Notifier interface {
	Publish(ctx context.Context, msg domain.NotificationMessage) error
}
