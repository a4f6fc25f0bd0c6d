package in

import (
	"context"

	assistantdto "rovi/internal/modules/assistant/dto"
	assistantin "rovi/internal/modules/assistant/port/in"
)

type CLIHandler struct {
	usecase assistantin.Usecase
}

func NewCLIHandler(usecase assistantin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Ask(ctx context.Context, message string) (assistantdto.ReplyOutput, error) {
	return h.usecase.Ask(ctx, assistantdto.AskInput{Message: message})
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]assistantdto.TurnOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) ClearHistory(ctx context.Context) error {
	return h.usecase.ClearHistory(ctx)
}
