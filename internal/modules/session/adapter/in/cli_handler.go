package in

import (
	"context"

	sessiondto "rovi/internal/modules/session/dto"
	sessionin "rovi/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Show(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.GetEffective(ctx)
}

func (h CLIHandler) ShowBaseline(ctx context.Context) (sessiondto.SessionOutput, error) {
	return h.usecase.GetSession(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.ClearSession(ctx)
}

func (h CLIHandler) Overrides(ctx context.Context) (sessiondto.OverridesOutput, error) {
	return h.usecase.GetOverrides(ctx)
}

func (h CLIHandler) SetHabit(ctx context.Context, name string, progress int) error {
	return h.usecase.SetHabitOverride(ctx, name, progress)
}

func (h CLIHandler) SetExpense(ctx context.Context, category string, amount float64) error {
	return h.usecase.SetExpenseOverride(ctx, category, amount)
}

func (h CLIHandler) SetPrice(ctx context.Context, item string, price float64) error {
	return h.usecase.SetPriceOverride(ctx, item, price)
}

func (h CLIHandler) ClearOverrides(ctx context.Context, scope string) error {
	return h.usecase.ResetOverrides(ctx, scope)
}
