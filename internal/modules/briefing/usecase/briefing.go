package usecase

import (
	"context"

	"go.uber.org/zap"

	"rovi/internal/modules/briefing/domain"
	"rovi/internal/modules/briefing/dto"
	briefingin "rovi/internal/modules/briefing/port/in"
	briefingout "rovi/internal/modules/briefing/port/out"
	"rovi/internal/modules/briefing/service"
	sessionin "rovi/internal/modules/session/port/in"
	"rovi/internal/platform/clock"
)

type Interactor struct {
	generator briefingout.Generator
	cache     briefingout.QuoteCache
	session   sessionin.Usecase
	clock     clock.Clock
	logger    *zap.Logger
}

func NewInteractor(
	generator briefingout.Generator,
	cache briefingout.QuoteCache,
	session sessionin.Usecase,
	clk clock.Clock,
	logger *zap.Logger,
) briefingin.Usecase {
	return &Interactor{generator: generator, cache: cache, session: session, clock: clk, logger: logger}
}

// QuoteOfTheDay serves the cached quote for today, generating one on the
// first ask. A generation failure falls back to the canned quote and is not
// cached, so a later ask can still succeed.
func (i *Interactor) QuoteOfTheDay(ctx context.Context) (dto.QuoteOutput, error) {
	day := i.clock.Now().Format("2006-01-02")
	if cached, ok, err := i.cache.Get(ctx, day); err == nil && ok {
		return dto.QuoteOutput{Text: cached.Text, Author: cached.Author}, nil
	} else if err != nil {
		i.logger.Warn("quote cache read failed", zap.Error(err))
	}

	raw, err := i.generator.Generate(ctx, service.QuotePrompt)
	if err != nil {
		i.logger.Error("quote generation failed", zap.Error(err))
		fallback := domain.Fallback()
		return dto.QuoteOutput{Text: fallback.Text, Author: fallback.Author}, nil
	}
	quote := domain.ParseQuote(raw)
	if err := i.cache.Put(ctx, day, quote); err != nil {
		i.logger.Warn("quote cache write failed", zap.Error(err))
	}
	return dto.QuoteOutput{Text: quote.Text, Author: quote.Author}, nil
}

func (i *Interactor) DailySummary(ctx context.Context) (dto.SummaryOutput, error) {
	snapshot, err := i.session.GetEffective(ctx)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		Date: i.clock.Now().Format("2006-01-02"),
		Text: service.BuildSummary(snapshot),
	}, nil
}
