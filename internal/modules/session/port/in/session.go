package in

import (
	"context"

	"rovi/internal/modules/session/dto"
)

type Usecase interface {
	// GetSession returns the stored baseline, regenerating it from the
	// seeded generators when absent or structurally incomplete.
	GetSession(ctx context.Context) (dto.SessionOutput, error)
	// GetEffective returns the baseline with all overrides merged in.
	GetEffective(ctx context.Context) (dto.SessionOutput, error)
	UpdateSession(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error)
	RescheduleMeeting(ctx context.Context, input dto.RescheduleInput) (dto.MeetingOutput, error)
	ClearSession(ctx context.Context) error

	GetOverrides(ctx context.Context) (dto.OverridesOutput, error)
	SetHabitOverride(ctx context.Context, name string, progress int) error
	SetExpenseOverride(ctx context.Context, category string, amount float64) error
	SetPriceOverride(ctx context.Context, item string, price float64) error
	ResetOverrides(ctx context.Context, scope string) error

	// Subscribe registers a listener for slot changes, local or made by
	// another process. The returned function unsubscribes.
	Subscribe(fn func(slot string)) func()
}
