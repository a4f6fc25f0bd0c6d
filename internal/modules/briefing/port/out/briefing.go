package out

import (
	"context"

	"rovi/internal/modules/briefing/domain"
)

// Generator produces free text from a prompt. Satisfied by the same client
// the assistant module uses.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// QuoteCache keeps at most one quote per calendar day so the generation
// service is hit once a day, not once a render.
type QuoteCache interface {
	Get(ctx context.Context, day string) (domain.Quote, bool, error)
	Put(ctx context.Context, day string, quote domain.Quote) error
}
