package out

import (
	"context"

	"rovi/internal/modules/assistant/domain"
)

// ReplyGenerator is the external text-generation service. Its output is
// displayed verbatim; nothing downstream parses it.
type ReplyGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// HistoryStore persists conversation turns so chat context survives
// restarts.
type HistoryStore interface {
	Append(ctx context.Context, turn domain.Turn) error
	// Recent returns up to limit turns in chronological order.
	Recent(ctx context.Context, limit int) ([]domain.Turn, error)
	Clear(ctx context.Context) error
}
