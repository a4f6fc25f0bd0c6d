package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"rovi/internal/modules/session/domain"
	sessionout "rovi/internal/modules/session/port/out"
	apperrors "rovi/internal/platform/errors"
)

// SessionService owns the baseline/override slots. Reads are self-healing: a
// missing or corrupt slot is replaced by the seeded generators rather than
// surfaced to the caller. Writes never fail the caller either; a failed save
// is logged and the in-memory value still flows back, so the worst outcome
// of a bad disk is values that do not stick.
type SessionService struct {
	sessions  sessionout.SessionStore
	overrides sessionout.OverrideStore
	logger    *zap.Logger
}

func NewSessionService(sessions sessionout.SessionStore, overrides sessionout.OverrideStore, logger *zap.Logger) *SessionService {
	return &SessionService{sessions: sessions, overrides: overrides, logger: logger}
}

func (s *SessionService) Get(ctx context.Context) (domain.Data, error) {
	data, ok, err := s.sessions.Load(ctx)
	if err != nil {
		s.logger.Warn("session load failed, regenerating", zap.Error(err))
		ok = false
	}
	if ok && data.Valid() {
		return data, nil
	}
	fresh := domain.NewData()
	s.Set(ctx, fresh)
	return fresh, nil
}

func (s *SessionService) Set(ctx context.Context, data domain.Data) {
	if err := s.sessions.Save(ctx, data); err != nil {
		s.logger.Error("session save failed", zap.Error(err))
	}
}

func (s *SessionService) Update(ctx context.Context, patch domain.Patch) (domain.Data, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return domain.Data{}, err
	}
	next := current.Apply(patch)
	s.Set(ctx, next)
	return next, nil
}

func (s *SessionService) Reschedule(ctx context.Context, from, to string) (domain.Meeting, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return domain.Meeting{}, err
	}
	meetings, moved, ok := domain.Reschedule(current.Meetings, from, to)
	if !ok {
		return domain.Meeting{}, fmt.Errorf("no meeting at %s: %w", from, apperrors.ErrNotFound)
	}
	if _, err := s.Update(ctx, domain.Patch{Meetings: meetings}); err != nil {
		return domain.Meeting{}, err
	}
	return moved, nil
}

func (s *SessionService) Overrides(ctx context.Context) domain.Overrides {
	o, ok, err := s.overrides.Load(ctx)
	if err != nil {
		s.logger.Warn("overrides load failed, treating as empty", zap.Error(err))
		return domain.EmptyOverrides()
	}
	if !ok {
		return domain.EmptyOverrides()
	}
	return o.Normalized()
}

func (s *SessionService) SetOverrides(ctx context.Context, o domain.Overrides) {
	if err := s.overrides.Save(ctx, o.Normalized()); err != nil {
		s.logger.Error("overrides save failed", zap.Error(err))
	}
}

func (s *SessionService) SetHabitOverride(ctx context.Context, name string, progress int) error {
	if name == "" {
		return fmt.Errorf("habit name is required: %w", apperrors.ErrInvalidInput)
	}
	o := s.Overrides(ctx)
	o.Habits[name] = progress
	s.SetOverrides(ctx, o)
	return nil
}

func (s *SessionService) SetExpenseOverride(ctx context.Context, category string, amount float64) error {
	if category == "" {
		return fmt.Errorf("expense category is required: %w", apperrors.ErrInvalidInput)
	}
	o := s.Overrides(ctx)
	o.Expenses[category] = amount
	s.SetOverrides(ctx, o)
	return nil
}

func (s *SessionService) SetPriceOverride(ctx context.Context, item string, price float64) error {
	if item == "" {
		return fmt.Errorf("price item is required: %w", apperrors.ErrInvalidInput)
	}
	o := s.Overrides(ctx)
	o.Prices[item] = price
	s.SetOverrides(ctx, o)
	return nil
}

// ResetOverrides drops one override scope, or all of them.
func (s *SessionService) ResetOverrides(ctx context.Context, scope string) error {
	o := s.Overrides(ctx)
	switch scope {
	case "habits":
		o.Habits = map[string]int{}
	case "expenses":
		o.Expenses = map[string]float64{}
	case "prices":
		o.Prices = map[string]float64{}
	case "all", "":
		o = domain.EmptyOverrides()
	default:
		return fmt.Errorf("scope %q: %w", scope, apperrors.ErrUnknownScope)
	}
	s.SetOverrides(ctx, o)
	return nil
}

// Effective merges overrides over the baseline at read time. The stored
// baseline is never rewritten by this path.
func (s *SessionService) Effective(ctx context.Context) (domain.Data, error) {
	data, err := s.Get(ctx)
	if err != nil {
		return domain.Data{}, err
	}
	return domain.Effective(data, s.Overrides(ctx)), nil
}

func (s *SessionService) Clear(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.overrides.Clear(ctx); err != nil {
		return fmt.Errorf("clear overrides: %w", err)
	}
	return nil
}
