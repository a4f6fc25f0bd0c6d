package domain_test

import (
	"testing"

	"rovi/internal/modules/session/domain"
)

func TestEffectiveMergesWithoutMutatingBaseline(t *testing.T) {
	t.Parallel()
	base := domain.NewData()
	o := domain.EmptyOverrides()
	o.Habits["Morning Exercise"] = 90
	o.Expenses["Food"] = 200
	o.Prices["Eggs (12)"] = 3.5

	merged := domain.Effective(base, o)

	if merged.Habits[0].Progress != 90 {
		t.Fatalf("habit override not applied: %+v", merged.Habits[0])
	}
	if merged.Expenses[0].Amount != 200 {
		t.Fatalf("expense override not applied: %+v", merged.Expenses[0])
	}
	var eggs domain.PriceItem
	for _, p := range merged.Prices {
		if p.Name == "Eggs (12)" {
			eggs = p
		}
	}
	if eggs.Cheapest != 3.5 {
		t.Fatalf("price override not applied: %+v", eggs)
	}
	if len(eggs.Prices) != 3 || eggs.Prices[0] != 4.99 {
		t.Fatalf("candidate list must stay as generated: %v", eggs.Prices)
	}

	if base.Habits[0].Progress != 53 || base.Expenses[0].Amount != 344 {
		t.Fatalf("baseline mutated: %+v %+v", base.Habits[0], base.Expenses[0])
	}
}

func TestEffectiveHabitsClampsToTarget(t *testing.T) {
	t.Parallel()
	habits := []domain.Habit{{ID: 1, Name: "Meditation", Progress: 10, Target: 100}}
	o := domain.EmptyOverrides()

	o.Habits["Meditation"] = 250
	if got := domain.EffectiveHabits(habits, o)[0].Progress; got != 100 {
		t.Fatalf("over target: got %d, want 100", got)
	}
	o.Habits["Meditation"] = -5
	if got := domain.EffectiveHabits(habits, o)[0].Progress; got != 0 {
		t.Fatalf("below zero: got %d, want 0", got)
	}
}

func TestEffectiveIgnoresUnknownKeys(t *testing.T) {
	t.Parallel()
	base := domain.NewData()
	o := domain.EmptyOverrides()
	o.Habits["Juggling"] = 50
	o.Expenses["Yachts"] = 9999
	o.Prices["Caviar"] = 1

	merged := domain.Effective(base, o)
	for i := range base.Habits {
		if merged.Habits[i].Progress != base.Habits[i].Progress {
			t.Fatalf("unknown habit key changed baseline")
		}
	}
	if domain.TotalExpenses(merged.Expenses) != domain.TotalExpenses(base.Expenses) {
		t.Fatalf("unknown expense key changed totals")
	}
}

func TestEffectiveToleratesNilOverrideMaps(t *testing.T) {
	t.Parallel()
	base := domain.NewData()
	merged := domain.Effective(base, domain.Overrides{})
	if merged.Habits[0].Progress != base.Habits[0].Progress {
		t.Fatalf("nil maps must behave as empty")
	}
}

func TestTotalExpenses(t *testing.T) {
	t.Parallel()
	if got := domain.TotalExpenses(domain.SeededExpenses()); got != 1830 {
		t.Fatalf("seeded total: got %.0f, want 1830", got)
	}
	if got := domain.TotalExpenses(nil); got != 0 {
		t.Fatalf("empty total: got %.0f", got)
	}
}
