package in

import (
	"context"

	"rovi/internal/modules/briefing/dto"
)

type Usecase interface {
	QuoteOfTheDay(ctx context.Context) (dto.QuoteOutput, error)
	DailySummary(ctx context.Context) (dto.SummaryOutput, error)
}
