package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"rovi/internal/modules/session/domain"
	"rovi/internal/modules/session/dto"
	sessionin "rovi/internal/modules/session/port/in"
	sessionout "rovi/internal/modules/session/port/out"
	"rovi/internal/modules/session/service"
)

// Interactor exposes the session slots to handlers and to other modules. It
// fans change notifications out to subscribers: local mutations notify
// directly, and the watcher relays writes made by other processes.
// Notifications are level triggers, subscribers re-read rather than carry a
// payload, so a duplicate for the same write is harmless.
type Interactor struct {
	svc     *service.SessionService
	watcher sessionout.ChangeWatcher
	logger  *zap.Logger

	mu        sync.Mutex
	nextSubID int
	subs      map[int]func(slot string)
	pumpOnce  sync.Once
}

func NewInteractor(svc *service.SessionService, watcher sessionout.ChangeWatcher, logger *zap.Logger) sessionin.Usecase {
	return &Interactor{
		svc:     svc,
		watcher: watcher,
		logger:  logger,
		subs:    map[int]func(slot string){},
	}
}

func (i *Interactor) GetSession(ctx context.Context) (dto.SessionOutput, error) {
	data, err := i.svc.Get(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(data), nil
}

func (i *Interactor) GetEffective(ctx context.Context) (dto.SessionOutput, error) {
	data, err := i.svc.Effective(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	return toSessionOutput(data), nil
}

func (i *Interactor) UpdateSession(ctx context.Context, input dto.UpdateSessionInput) (dto.SessionOutput, error) {
	data, err := i.svc.Update(ctx, toPatch(input))
	if err != nil {
		return dto.SessionOutput{}, err
	}
	i.notify(domain.SlotSession)
	return toSessionOutput(data), nil
}

func (i *Interactor) RescheduleMeeting(ctx context.Context, input dto.RescheduleInput) (dto.MeetingOutput, error) {
	moved, err := i.svc.Reschedule(ctx, input.From, input.To)
	if err != nil {
		return dto.MeetingOutput{}, err
	}
	i.notify(domain.SlotSession)
	return toMeetingOutput(moved), nil
}

func (i *Interactor) ClearSession(ctx context.Context) error {
	if err := i.svc.Clear(ctx); err != nil {
		return err
	}
	i.notify(domain.SlotSession)
	i.notify(domain.SlotOverrides)
	return nil
}

func (i *Interactor) GetOverrides(ctx context.Context) (dto.OverridesOutput, error) {
	o := i.svc.Overrides(ctx)
	return dto.OverridesOutput{Habits: o.Habits, Expenses: o.Expenses, Prices: o.Prices}, nil
}

func (i *Interactor) SetHabitOverride(ctx context.Context, name string, progress int) error {
	if err := i.svc.SetHabitOverride(ctx, name, progress); err != nil {
		return err
	}
	i.notify(domain.SlotOverrides)
	return nil
}

func (i *Interactor) SetExpenseOverride(ctx context.Context, category string, amount float64) error {
	if err := i.svc.SetExpenseOverride(ctx, category, amount); err != nil {
		return err
	}
	i.notify(domain.SlotOverrides)
	return nil
}

func (i *Interactor) SetPriceOverride(ctx context.Context, item string, price float64) error {
	if err := i.svc.SetPriceOverride(ctx, item, price); err != nil {
		return err
	}
	i.notify(domain.SlotOverrides)
	return nil
}

func (i *Interactor) ResetOverrides(ctx context.Context, scope string) error {
	if err := i.svc.ResetOverrides(ctx, scope); err != nil {
		return err
	}
	i.notify(domain.SlotOverrides)
	return nil
}

func (i *Interactor) Subscribe(fn func(slot string)) func() {
	i.startPump()
	i.mu.Lock()
	id := i.nextSubID
	i.nextSubID++
	i.subs[id] = fn
	i.mu.Unlock()
	return func() {
		i.mu.Lock()
		delete(i.subs, id)
		i.mu.Unlock()
	}
}

func (i *Interactor) notify(slot string) {
	i.mu.Lock()
	fns := make([]func(string), 0, len(i.subs))
	for _, fn := range i.subs {
		fns = append(fns, fn)
	}
	i.mu.Unlock()
	for _, fn := range fns {
		fn(slot)
	}
}

// startPump relays cross-process slot changes into the subscriber set. The
// pump lives for the process; Close on the watcher ends it.
func (i *Interactor) startPump() {
	if i.watcher == nil {
		return
	}
	i.pumpOnce.Do(func() {
		events, err := i.watcher.Watch(context.Background())
		if err != nil {
			i.logger.Warn("slot watcher unavailable", zap.Error(err))
			return
		}
		go func() {
			for slot := range events {
				i.notify(slot)
			}
		}()
	})
}

func toSessionOutput(d domain.Data) dto.SessionOutput {
	out := dto.SessionOutput{
		Meetings:      make([]dto.MeetingOutput, 0, len(d.Meetings)),
		Habits:        make([]dto.HabitOutput, 0, len(d.Habits)),
		Expenses:      make([]dto.ExpenseOutput, 0, len(d.Expenses)),
		Prices:        make([]dto.PriceOutput, 0, len(d.Prices)),
		TotalExpenses: domain.TotalExpenses(d.Expenses),
	}
	for _, m := range d.Meetings {
		out.Meetings = append(out.Meetings, toMeetingOutput(m))
	}
	for _, h := range d.Habits {
		out.Habits = append(out.Habits, dto.HabitOutput{ID: h.ID, Name: h.Name, Progress: h.Progress, Target: h.Target})
	}
	for _, e := range d.Expenses {
		out.Expenses = append(out.Expenses, dto.ExpenseOutput{ID: e.ID, Category: e.Category, Amount: e.Amount, Date: e.Date})
	}
	for _, p := range d.Prices {
		out.Prices = append(out.Prices, dto.PriceOutput{ID: p.ID, Name: p.Name, Prices: p.Prices, Cheapest: p.Cheapest})
	}
	return out
}

func toMeetingOutput(m domain.Meeting) dto.MeetingOutput {
	return dto.MeetingOutput{ID: m.ID, Time: m.Time, Title: m.Title, Participants: m.Participants}
}

func toPatch(input dto.UpdateSessionInput) domain.Patch {
	patch := domain.Patch{}
	if input.Meetings != nil {
		patch.Meetings = make([]domain.Meeting, 0, len(input.Meetings))
		for _, m := range input.Meetings {
			patch.Meetings = append(patch.Meetings, domain.Meeting{ID: m.ID, Time: m.Time, Title: m.Title, Participants: m.Participants})
		}
	}
	if input.Habits != nil {
		patch.Habits = make([]domain.Habit, 0, len(input.Habits))
		for _, h := range input.Habits {
			patch.Habits = append(patch.Habits, domain.Habit{ID: h.ID, Name: h.Name, Progress: h.Progress, Target: h.Target})
		}
	}
	if input.Expenses != nil {
		patch.Expenses = make([]domain.Expense, 0, len(input.Expenses))
		for _, e := range input.Expenses {
			patch.Expenses = append(patch.Expenses, domain.Expense{ID: e.ID, Category: e.Category, Amount: e.Amount, Date: e.Date})
		}
	}
	if input.Prices != nil {
		patch.Prices = make([]domain.PriceItem, 0, len(input.Prices))
		for _, p := range input.Prices {
			patch.Prices = append(patch.Prices, domain.PriceItem{ID: p.ID, Name: p.Name, Prices: p.Prices, Cheapest: p.Cheapest})
		}
	}
	return patch
}
