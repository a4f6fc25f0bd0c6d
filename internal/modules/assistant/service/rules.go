package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	sessiondomain "rovi/internal/modules/session/domain"
	"rovi/internal/platform/timefmt"
)

// OutcomeKind tags what a rule decided. Matched rules either mutate state or
// answer read-only; unmatched input falls through to the text-generation
// service.
type OutcomeKind int

const (
	Unmatched OutcomeKind = iota
	Replied
	Mutated
)

// Mutation names the single store write a matched command wants. Exactly one
// field is set when Outcome.Kind is Mutated.
type Mutation struct {
	Reschedule *RescheduleOp
	Price      *PriceOp
	Habit      *HabitOp
	Expense    *ExpenseOp
	ResetScope string
}

type RescheduleOp struct {
	From string // 24-hour "HH:MM"
	To   string
}

type PriceOp struct {
	Name  string
	Value float64
}

type HabitOp struct {
	Name     string
	Progress int
}

type ExpenseOp struct {
	Category string
	Amount   float64
}

type Outcome struct {
	Kind     OutcomeKind
	Reply    string
	Mutation Mutation
}

type rule struct {
	pattern *regexp.Regexp
	apply   func(m []string, data sessiondomain.Data) Outcome
}

// Interpreter recognizes a fixed set of imperative intents before anything
// reaches the text-generation service, so state-changing commands always
// produce exact, predictable mutations and confirmations. Rules are
// evaluated top to bottom; the first pattern that matches wins.
type Interpreter struct {
	rules []rule
}

func NewInterpreter() *Interpreter {
	return &Interpreter{rules: []rule{
		{pattern: reschedulePattern, apply: applyReschedule},
		{pattern: timeQueryPattern, apply: applyTimeQuery},
		{pattern: setPricePattern, apply: applySetPrice},
		{pattern: setHabitPattern, apply: applySetHabit},
		{pattern: setExpensePattern, apply: applySetExpense},
		{pattern: resetPattern, apply: applyReset},
	}}
}

// Interpret classifies one message against the effective session snapshot.
// It never touches storage itself; the caller executes the mutation.
func (i *Interpreter) Interpret(text string, data sessiondomain.Data) Outcome {
	for _, r := range i.rules {
		if m := r.pattern.FindStringSubmatch(text); m != nil {
			return r.apply(m, data)
		}
	}
	return Outcome{Kind: Unmatched}
}

var (
	reschedulePattern = regexp.MustCompile(`(?i)\b(?:change|move|reschedule)\b.*?\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)?\s+meeting\s+to\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	timeQueryPattern  = regexp.MustCompile(`(?i)\b(?:what about|do i have\b.*?\bat)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)
	setPricePattern   = regexp.MustCompile(`(?i)\b(?:set|update)\s+price\s+of\s+(.+?)\s+to\s+\$?(\d+(?:\.\d+)?)`)
	setHabitPattern   = regexp.MustCompile(`(?i)\b(?:set|update)\s+habit\s+(.+?)\s+to\s+(\d+)\s*%?`)
	setExpensePattern = regexp.MustCompile(`(?i)\b(?:set|update)\s+expense\s+(.+?)\s+to\s+\$?(\d+(?:\.\d+)?)`)
	resetPattern      = regexp.MustCompile(`(?i)\breset\s+(?:my\s+|the\s+)?(prices|habits|expenses|all)\b`)
)

func parseClock(hour, minute, meridiem string) (string, error) {
	h, err := strconv.Atoi(hour)
	if err != nil {
		return "", err
	}
	m := 0
	if minute != "" {
		if m, err = strconv.Atoi(minute); err != nil {
			return "", err
		}
	}
	return timefmt.To24Hour(h, m, strings.ToLower(meridiem))
}

func applyReschedule(m []string, data sessiondomain.Data) Outcome {
	from, err := parseClock(m[1], m[2], m[3])
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	to, err := parseClock(m[4], m[5], m[6])
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	_, moved, ok := sessiondomain.Reschedule(data.Meetings, from, to)
	if !ok {
		return Outcome{
			Kind:  Replied,
			Reply: fmt.Sprintf("I couldn't find a meeting at %s to reschedule.", timefmt.Format12(from)),
		}
	}
	return Outcome{
		Kind: Mutated,
		Reply: fmt.Sprintf("Done! I've moved your \"%s\" meeting from %s to %s.",
			moved.Title, timefmt.Format12(from), timefmt.Format12(to)),
		Mutation: Mutation{Reschedule: &RescheduleOp{From: from, To: to}},
	}
}

func applyTimeQuery(m []string, data sessiondomain.Data) Outcome {
	at, err := parseClock(m[1], m[2], m[3])
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	var lines []string
	for _, meeting := range data.Meetings {
		if meeting.Time != at {
			continue
		}
		lines = append(lines, fmt.Sprintf("You have \"%s\" scheduled at %s with %s.",
			meeting.Title, timefmt.Format12(meeting.Time), strings.Join(meeting.Participants, ", ")))
	}
	if len(lines) == 0 {
		return Outcome{Kind: Replied, Reply: fmt.Sprintf("You have no meetings at %s.", timefmt.Format12(at))}
	}
	return Outcome{Kind: Replied, Reply: strings.Join(lines, "\n")}
}

func applySetPrice(m []string, _ sessiondomain.Data) Outcome {
	name := strings.TrimSpace(m[1])
	value, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	return Outcome{
		Kind:     Mutated,
		Reply:    fmt.Sprintf("Done! I've set the price of %s to $%.2f.", name, value),
		Mutation: Mutation{Price: &PriceOp{Name: name, Value: value}},
	}
}

func applySetHabit(m []string, _ sessiondomain.Data) Outcome {
	name := strings.TrimSpace(m[1])
	progress, err := strconv.Atoi(m[2])
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	return Outcome{
		Kind:     Mutated,
		Reply:    fmt.Sprintf("Done! I've set your \"%s\" habit to %d%%.", name, progress),
		Mutation: Mutation{Habit: &HabitOp{Name: name, Progress: progress}},
	}
}

func applySetExpense(m []string, _ sessiondomain.Data) Outcome {
	raw := strings.TrimSpace(m[1])
	amount, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return Outcome{Kind: Unmatched}
	}
	category, resolved := ResolveCategory(raw)
	reply := fmt.Sprintf("Done! I've set your %s spending to $%.2f.", category, amount)
	if resolved {
		reply = fmt.Sprintf("Done! I've set your %s spending (from %q) to $%.2f.", category, raw, amount)
	}
	return Outcome{
		Kind:     Mutated,
		Reply:    reply,
		Mutation: Mutation{Expense: &ExpenseOp{Category: category, Amount: amount}},
	}
}

func applyReset(m []string, _ sessiondomain.Data) Outcome {
	scope := strings.ToLower(m[1])
	reply := fmt.Sprintf("Done! I've reset your %s overrides.", scope)
	if scope == "all" {
		reply = "Done! I've reset all your overrides."
	}
	return Outcome{
		Kind:     Mutated,
		Reply:    reply,
		Mutation: Mutation{ResetScope: scope},
	}
}
