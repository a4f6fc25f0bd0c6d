package in

import (
	"context"

	briefingdto "rovi/internal/modules/briefing/dto"
	briefingin "rovi/internal/modules/briefing/port/in"
)

type CLIHandler struct {
	usecase briefingin.Usecase
}

func NewCLIHandler(usecase briefingin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Quote(ctx context.Context) (briefingdto.QuoteOutput, error) {
	return h.usecase.QuoteOfTheDay(ctx)
}

func (h CLIHandler) Summary(ctx context.Context) (briefingdto.SummaryOutput, error) {
	return h.usecase.DailySummary(ctx)
}
