package service

import (
	"strings"
	"testing"

	sessiondomain "rovi/internal/modules/session/domain"
)

func TestInterpretReschedule(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("reschedule 9am meeting to 10:30am", sessiondomain.NewData())
	if out.Kind != Mutated {
		t.Fatalf("expected mutation, got %+v", out)
	}
	op := out.Mutation.Reschedule
	if op == nil || op.From != "09:00" || op.To != "10:30" {
		t.Fatalf("unexpected reschedule op: %+v", op)
	}
	if !strings.Contains(out.Reply, "9:00 AM") || !strings.Contains(out.Reply, "10:30 AM") {
		t.Fatalf("confirmation must name both 12-hour times: %q", out.Reply)
	}
}

func TestInterpretRescheduleNoMeetingDoesNotMutate(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("move my 7am meeting to 8am", sessiondomain.NewData())
	if out.Kind != Replied {
		t.Fatalf("expected read-only reply, got %+v", out)
	}
	if !strings.Contains(out.Reply, "7:00 AM") {
		t.Fatalf("reply must name the missing time: %q", out.Reply)
	}
}

func TestInterpretTimeQueryListsMatches(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("what about 11:30am?", sessiondomain.NewData())
	if out.Kind != Replied {
		t.Fatalf("time query must never mutate: %+v", out)
	}
	if !strings.Contains(out.Reply, "Client Presentation") || !strings.Contains(out.Reply, "11:30 AM") {
		t.Fatalf("unexpected reply: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "Emma, David") {
		t.Fatalf("participants must be comma-joined: %q", out.Reply)
	}

	out = NewInterpreter().Interpret("do I have anything at 6pm?", sessiondomain.NewData())
	if out.Kind != Replied || !strings.Contains(out.Reply, "no meetings at 6:00 PM") {
		t.Fatalf("unexpected empty-slot reply: %+v", out)
	}
}

func TestInterpretSetPriceKeepsNameVerbatim(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("set price of Eggs to $3.50", sessiondomain.NewData())
	if out.Kind != Mutated {
		t.Fatalf("expected mutation, got %+v", out)
	}
	op := out.Mutation.Price
	if op == nil || op.Name != "Eggs" || op.Value != 3.5 {
		t.Fatalf("unexpected price op: %+v", op)
	}
	if !strings.Contains(out.Reply, "$3.50") {
		t.Fatalf("confirmation must format to two decimals: %q", out.Reply)
	}
}

func TestInterpretSetHabitClamps(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("set habit Meditation to 250%", sessiondomain.NewData())
	if out.Kind != Mutated {
		t.Fatalf("expected mutation, got %+v", out)
	}
	op := out.Mutation.Habit
	if op == nil || op.Name != "Meditation" || op.Progress != 100 {
		t.Fatalf("habit value must clamp to 100: %+v", op)
	}
}

func TestInterpretSetExpenseResolvesAlias(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("set expense groceries to 200", sessiondomain.NewData())
	if out.Kind != Mutated {
		t.Fatalf("expected mutation, got %+v", out)
	}
	op := out.Mutation.Expense
	if op == nil || op.Category != "Food" || op.Amount != 200 {
		t.Fatalf("alias must resolve to Food: %+v", op)
	}
	if !strings.Contains(out.Reply, "groceries") {
		t.Fatalf("confirmation must note the original token: %q", out.Reply)
	}
}

func TestInterpretReset(t *testing.T) {
	t.Parallel()
	out := NewInterpreter().Interpret("please reset my habits", sessiondomain.NewData())
	if out.Kind != Mutated || out.Mutation.ResetScope != "habits" {
		t.Fatalf("unexpected reset outcome: %+v", out)
	}
	out = NewInterpreter().Interpret("reset all", sessiondomain.NewData())
	if out.Kind != Mutated || out.Mutation.ResetScope != "all" {
		t.Fatalf("unexpected reset-all outcome: %+v", out)
	}
}

func TestInterpretUnmatchedFallsThrough(t *testing.T) {
	t.Parallel()
	for _, text := range []string{
		"how is the weather today?",
		"tell me a joke",
		"what should I cook tonight",
	} {
		if out := NewInterpreter().Interpret(text, sessiondomain.NewData()); out.Kind != Unmatched {
			t.Fatalf("%q must fall through, got %+v", text, out)
		}
	}
}

func TestResolveCategory(t *testing.T) {
	t.Parallel()
	cases := []struct {
		raw     string
		want    string
		rewrote bool
	}{
		{"Food", "Food", false},
		{"food", "Food", false},
		{"groceries", "Food", true},
		{"transportation", "Transport", true},
		{"ent", "Entertainment", true},
		{"shop", "Shopping", true},
		{"ill", "Bills", true},
		{"yachts", "yachts", false},
	}
	for _, tc := range cases {
		got, rewrote := ResolveCategory(tc.raw)
		if got != tc.want || rewrote != tc.rewrote {
			t.Fatalf("ResolveCategory(%q) = %q,%v want %q,%v", tc.raw, got, rewrote, tc.want, tc.rewrote)
		}
	}
}

func TestBuildPromptCarriesSnapshotAndHistory(t *testing.T) {
	t.Parallel()
	prompt := BuildPrompt("how much did I spend on food?", sessiondomain.NewData(), nil)
	for _, want := range []string{"Team Standup", "9:00 AM", "Morning Exercise: 53/100", "$344.00", "total $1830.00", "Milk (1L): $3.49"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "User: how much did I spend on food?") {
		t.Fatalf("prompt missing question:\n%s", prompt)
	}
}
