package callback

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"docdigest/internal/domain"
	"docdigest/internal/port"
)

type reporter struct {
	client *http.Client
}

// NewReporter creates a CallbackSender that PUTs provisioning responses as
// JSON.
func NewReporter() port.CallbackSender {
	return &reporter{client: &http.Client{Timeout: 30 * time.Second}}
}

// Send transmits resp to url in a single synchronous PUT. There is no retry;
// failures are logged and reported through the return value only.
func (r *reporter) Send(ctx context.Context, url string, resp *domain.ProvisioningResponse) bool {
	body, err := json.Marshal(resp)
	if err != nil {
		log.Printf("callback: marshaling response: %v", err)
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("callback: creating request: %v", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(len(body))

	res, err := r.client.Do(req)
	if err != nil {
		log.Printf("callback: sending response to %s: %v", url, err)
		return false
	}
	defer func() { _ = res.Body.Close() }()

	log.Printf("callback: response sent (status %d)", res.StatusCode)
	return true
}
