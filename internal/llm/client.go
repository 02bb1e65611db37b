package llm

import (
	"context"
)

// Client is the minimal surface the pipeline needs from a hosted LLM.
// system carries the stage's role instruction and may be empty.
type Client interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}
