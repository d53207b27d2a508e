package port

import "context"

// ParameterStore abstracts secret retrieval: fetch a decrypted string value
// by parameter name.
type ParameterStore interface {
	GetParameter(ctx context.Context, name string) (string, error)
}
