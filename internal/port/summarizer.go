package port

import "context"

// Summarizer abstracts LLM-based text summarization. An empty summary with a
// nil error means the model returned nothing usable; the caller substitutes
// its own default.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}
