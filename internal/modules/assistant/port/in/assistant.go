package in

import (
	"context"

	"rovi/internal/modules/assistant/dto"
)

type Usecase interface {
	Ask(ctx context.Context, input dto.AskInput) (dto.ReplyOutput, error)
	History(ctx context.Context, limit int) ([]dto.TurnOutput, error)
	ClearHistory(ctx context.Context) error
}
