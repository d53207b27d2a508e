package port

import (
	"context"

	"docdigest/internal/domain"
)

// CallbackSender transmits a terminal provisioning response to a
// caller-supplied URL. It never returns an error: transmission failures are
// logged and reported as false, because there is no one left to notify.
type CallbackSender interface {
	Send(ctx context.Context, url string, resp *domain.ProvisioningResponse) bool
}
