package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
	"unicode/utf8"

	"github.com/aws/aws-lambda-go/events"

	"docdigest/internal/domain"
)

// ingest runs fetch → summarize → persist → notify for the event's first
// record. The fetch is fatal to the flow; every later step is flag-gated and
// fault-isolated, so a failure is logged and the flow continues with
// degraded defaults.
func (d *Dispatcher) ingest(ctx context.Context, ev *events.S3Event) Response {
	start := time.Now()
	bucket := ev.Records[0].S3.Bucket.Name
	key := ev.Records[0].S3.Object.Key

	text, err := d.fetchText(ctx, bucket, key)
	if err != nil {
		log.Printf("ingest: fetch %s/%s: %v", bucket, key, err)
		return errorResponse()
	}
	log.Printf("ingest: loaded %s (%d chars)", key, utf8.RuneCountInString(text))

	summary := domain.PlaceholderSummary
	if d.cfg.Summarizer.Enabled {
		out, err := d.summarizer.Summarize(ctx, domain.Truncate(text, domain.SummaryInputLimit))
		switch {
		case err != nil:
			log.Printf("ingest: summarize %s: %v", key, err)
		case out == "":
			log.Printf("ingest: empty summary for %s, keeping placeholder", key)
		default:
			summary = out
			log.Printf("ingest: summary received: %s", domain.Truncate(summary, 200))
		}
	}

	if d.cfg.Store.Enabled {
		if err := d.persist(ctx, key, bucket, text, summary); err != nil {
			log.Printf("ingest: persist %s: %v", key, err)
		} else {
			log.Printf("ingest: saved record for %s", key)
		}
	}

	if d.cfg.Notifier.Enabled {
		if err := d.notify(ctx, key, bucket, summary); err != nil {
			log.Printf("ingest: notify %s: %v", key, err)
		} else {
			log.Printf("ingest: notification sent for %s", key)
		}
	}

	log.Printf("ingest: processed %s/%s in %s", bucket, key, time.Since(start))
	return successResponse()
}

func (d *Dispatcher) fetchText(ctx context.Context, bucket, key string) (string, error) {
	data, err := d.storage.FetchObject(ctx, bucket, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("object %s/%s is not valid UTF-8", bucket, key)
	}
	return string(data), nil
}

// persist writes the summary record unless its serialized form exceeds the
// store's item size ceiling.
func (d *Dispatcher) persist(ctx context.Context, key, bucket, text, summary string) error {
	record := &domain.SummaryRecord{
		FileName: key,
		Bucket:   bucket,
		Text:     text,
		Summary:  summary,
	}

	serialized, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializing record: %w", err)
	}
	if len(serialized) > domain.MaxRecordBytes {
		return domain.ErrRecordTooLarge
	}

	return d.store.Put(ctx, record)
}

func (d *Dispatcher) notify(ctx context.Context, key, bucket, summary string) error {
	msg := domain.NotificationMessage{
		Subject: fmt.Sprintf("Nouveau fichier dans S3 : %s", key),
		Body: fmt.Sprintf(
			"Un fichier nommé '%s' a été déposé dans le bucket '%s'.\n\nRésumé du contenu :\n\n%s",
			key, bucket, domain.Truncate(summary, domain.NotificationExcerptLimit),
		),
	}
	return d.notifier.Publish(ctx, msg)
}
