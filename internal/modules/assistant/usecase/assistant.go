package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"rovi/internal/modules/assistant/domain"
	"rovi/internal/modules/assistant/dto"
	assistantin "rovi/internal/modules/assistant/port/in"
	assistantout "rovi/internal/modules/assistant/port/out"
	"rovi/internal/modules/assistant/service"
	sessiondomain "rovi/internal/modules/session/domain"
	sessiondto "rovi/internal/modules/session/dto"
	sessionin "rovi/internal/modules/session/port/in"
	"rovi/internal/platform/clock"
	apperrors "rovi/internal/platform/errors"
)

// Interactor routes each message through the command interpreter first and
// only forwards unmatched text to the generation service. History writes are
// best effort; a chat that cannot be journaled still answers.
type Interactor struct {
	interpreter  *service.Interpreter
	session      sessionin.Usecase
	generator    assistantout.ReplyGenerator
	history      assistantout.HistoryStore
	clock        clock.Clock
	logger       *zap.Logger
	historyTurns int
}

func NewInteractor(
	interpreter *service.Interpreter,
	session sessionin.Usecase,
	generator assistantout.ReplyGenerator,
	history assistantout.HistoryStore,
	clk clock.Clock,
	logger *zap.Logger,
	historyTurns int,
) assistantin.Usecase {
	return &Interactor{
		interpreter:  interpreter,
		session:      session,
		generator:    generator,
		history:      history,
		clock:        clk,
		logger:       logger,
		historyTurns: historyTurns,
	}
}

func (i *Interactor) Ask(ctx context.Context, input dto.AskInput) (dto.ReplyOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return dto.ReplyOutput{}, fmt.Errorf("message is required: %w", apperrors.ErrInvalidInput)
	}

	snapshot, err := i.session.GetEffective(ctx)
	if err != nil {
		return dto.ReplyOutput{}, err
	}
	data := toDomainData(snapshot)

	outcome := i.interpreter.Interpret(message, data)
	var out dto.ReplyOutput
	switch outcome.Kind {
	case service.Mutated:
		reply, err := i.execute(ctx, outcome)
		if err != nil {
			return dto.ReplyOutput{}, err
		}
		out = dto.ReplyOutput{Reply: reply, Matched: true, Mutated: true}
	case service.Replied:
		out = dto.ReplyOutput{Reply: outcome.Reply, Matched: true}
	default:
		out = dto.ReplyOutput{Reply: i.delegate(ctx, message, data)}
	}

	i.journal(ctx, domain.RoleUser, message)
	i.journal(ctx, domain.RoleAssistant, out.Reply)
	return out, nil
}

// execute applies the single mutation a matched rule requested. A reschedule
// can still miss when another process moved the meeting between snapshot and
// write; that degrades to the not-found reply rather than an error.
func (i *Interactor) execute(ctx context.Context, outcome service.Outcome) (string, error) {
	m := outcome.Mutation
	switch {
	case m.Reschedule != nil:
		_, err := i.session.RescheduleMeeting(ctx, sessiondto.RescheduleInput{From: m.Reschedule.From, To: m.Reschedule.To})
		if errors.Is(err, apperrors.ErrNotFound) {
			return "I couldn't find that meeting anymore. It may have just moved.", nil
		}
		if err != nil {
			return "", err
		}
	case m.Price != nil:
		if err := i.session.SetPriceOverride(ctx, m.Price.Name, m.Price.Value); err != nil {
			return "", err
		}
	case m.Habit != nil:
		if err := i.session.SetHabitOverride(ctx, m.Habit.Name, m.Habit.Progress); err != nil {
			return "", err
		}
	case m.Expense != nil:
		if err := i.session.SetExpenseOverride(ctx, m.Expense.Category, m.Expense.Amount); err != nil {
			return "", err
		}
	case m.ResetScope != "":
		if err := i.session.ResetOverrides(ctx, m.ResetScope); err != nil {
			return "", err
		}
	}
	return outcome.Reply, nil
}

// delegate forwards unmatched text to the generation service with the data
// snapshot and recent turns folded into the prompt. Failures produce the
// canned apology; the user re-triggers by resubmitting.
func (i *Interactor) delegate(ctx context.Context, message string, data sessiondomain.Data) string {
	history, err := i.history.Recent(ctx, i.historyTurns)
	if err != nil {
		i.logger.Warn("chat history unavailable", zap.Error(err))
		history = nil
	}
	reply, err := i.generator.Generate(ctx, service.BuildPrompt(message, data, history))
	if err != nil {
		i.logger.Error("text generation failed", zap.Error(err))
		return domain.Apology
	}
	return reply
}

func (i *Interactor) journal(ctx context.Context, role domain.Role, content string) {
	err := i.history.Append(ctx, domain.Turn{Role: role, Content: content, CreatedAt: i.clock.Now()})
	if err != nil {
		i.logger.Warn("chat journal write failed", zap.Error(err))
	}
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.TurnOutput, error) {
	if limit <= 0 {
		limit = i.historyTurns
	}
	turns, err := i.history.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TurnOutput, 0, len(turns))
	for _, turn := range turns {
		out = append(out, dto.TurnOutput{Role: string(turn.Role), Content: turn.Content, CreatedAt: turn.CreatedAt})
	}
	return out, nil
}

func (i *Interactor) ClearHistory(ctx context.Context) error {
	return i.history.Clear(ctx)
}

func toDomainData(s sessiondto.SessionOutput) sessiondomain.Data {
	data := sessiondomain.Data{
		Meetings: make([]sessiondomain.Meeting, 0, len(s.Meetings)),
		Habits:   make([]sessiondomain.Habit, 0, len(s.Habits)),
		Expenses: make([]sessiondomain.Expense, 0, len(s.Expenses)),
		Prices:   make([]sessiondomain.PriceItem, 0, len(s.Prices)),
	}
	for _, m := range s.Meetings {
		data.Meetings = append(data.Meetings, sessiondomain.Meeting{ID: m.ID, Time: m.Time, Title: m.Title, Participants: m.Participants})
	}
	for _, h := range s.Habits {
		data.Habits = append(data.Habits, sessiondomain.Habit{ID: h.ID, Name: h.Name, Progress: h.Progress, Target: h.Target})
	}
	for _, e := range s.Expenses {
		data.Expenses = append(data.Expenses, sessiondomain.Expense{ID: e.ID, Category: e.Category, Amount: e.Amount, Date: e.Date})
	}
	for _, p := range s.Prices {
		data.Prices = append(data.Prices, sessiondomain.PriceItem{ID: p.ID, Name: p.Name, Prices: p.Prices, Cheapest: p.Cheapest})
	}
	return data
}
