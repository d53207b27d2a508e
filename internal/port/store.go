package port

import (
	"context"

	"docdigest/internal/domain"
)

// SummaryStore abstracts the key-value store holding one SummaryRecord per
// ingested file.
type SummaryStore interface {
	Put(ctx context.Context, record *domain.SummaryRecord) error
}
