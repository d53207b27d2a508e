package handler

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"docdigest/internal/config"
	"docdigest/internal/domain"
	"docdigest/internal/port"
)

// Dispatcher routes each invocation to exactly one of the two flows. It
// holds the external collaborators, constructed once per process lifetime
// and reused across invocations.
type Dispatcher struct {
	cfg        *config.Config
	storage    port.ObjectStorage
	store      port.SummaryStore
	notifier   port.Notifier
	summarizer port.Summarizer
	callback   port.CallbackSender
	logStream  string
}

// NewDispatcher creates a Dispatcher. logStream identifies the execution
// environment's log stream and is echoed in provisioning responses.
func NewDispatcher(
	cfg *config.Config,
	storage port.ObjectStorage,
	store port.SummaryStore,
	notifier port.Notifier,
	summarizer port.Summarizer,
	callback port.CallbackSender,
	logStream string,
) *Dispatcher {
	return &Dispatcher{
		cfg:        cfg,
		storage:    storage,
		store:      store,
		notifier:   notifier,
		summarizer: summarizer,
		callback:   callback,
		logStream:  logStream,
	}
}

// eventProbe is the minimal shape inspected to pick a flow.
type eventProbe struct {
	RequestType        string                     `json:"RequestType"`
	ResourceProperties map[string]json.RawMessage `json:"ResourceProperties"`
	Records            []struct {
		S3 *json.RawMessage `json:"s3"`
	} `json:"Records"`
}

// Handle processes one invocation. It routes resource-lifecycle requests to
// the provisioning flow and storage events to the ingestion flow; anything
// else yields the generic failure envelope. The error return is always nil
// so no exception surfaces past the entry point.
func (d *Dispatcher) Handle(ctx context.Context, raw json.RawMessage) (Response, error) {
	log.Printf("dispatcher: received event: %s", raw)

	var probe eventProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		log.Printf("dispatcher: unreadable event: %v", err)
		return errorResponse(), nil
	}

	if probe.RequestType != "" && probe.ResourceProperties != nil {
		if _, ok := probe.ResourceProperties["BucketName"]; ok {
			var ev domain.ProvisioningEvent
			if err := json.Unmarshal(raw, &ev); err != nil {
				log.Printf("dispatcher: decoding provisioning event: %v", err)
				return errorResponse(), nil
			}
			return d.provision(ctx, &ev), nil
		}
	}

	// Only the first record of a multi-record storage event is processed.
	if len(probe.Records) > 0 && probe.Records[0].S3 != nil {
		var ev events.S3Event
		if err := json.Unmarshal(raw, &ev); err != nil {
			log.Printf("dispatcher: decoding storage event: %v", err)
			return errorResponse(), nil
		}
		return d.ingest(ctx, &ev), nil
	}

	log.Printf("dispatcher: %v", domain.ErrInvalidEvent)
	return errorResponse(), nil
}
