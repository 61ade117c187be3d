package llm

import "context"

// Provider is one LLM backend. parts are sent in order as a single request,
// document text first and the instruction prompt last.
type Provider interface {
	Generate(ctx context.Context, parts []string) (string, error)
}
