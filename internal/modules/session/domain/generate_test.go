package domain_test

import (
	"testing"

	"rovi/internal/modules/session/domain"
)

func TestSeededExpensesAreReproducible(t *testing.T) {
	t.Parallel()
	want := []float64{344, 355, 366, 377, 388}
	got := domain.SeededExpenses()
	if len(got) != len(want) {
		t.Fatalf("expected %d expenses, got %d", len(want), len(got))
	}
	for i, e := range got {
		if e.Amount != want[i] {
			t.Fatalf("expense %q: got %.0f, want %.0f", e.Category, e.Amount, want[i])
		}
	}
	if got[0].Category != "Food" || got[0].Date != "2024-01-01" {
		t.Fatalf("unexpected first expense: %+v", got[0])
	}
	again := domain.SeededExpenses()
	for i := range got {
		if got[i] != again[i] && got[i].Amount != again[i].Amount {
			t.Fatalf("generator not deterministic at %d", i)
		}
	}
}

func TestSeededHabitsAreReproducible(t *testing.T) {
	t.Parallel()
	want := []int{53, 60, 67, 74, 81}
	got := domain.SeededHabits()
	if len(got) != len(want) {
		t.Fatalf("expected %d habits, got %d", len(want), len(got))
	}
	for i, h := range got {
		if h.Progress != want[i] {
			t.Fatalf("habit %q: got %d, want %d", h.Name, h.Progress, want[i])
		}
		if h.Target != 100 {
			t.Fatalf("habit %q: target %d", h.Name, h.Target)
		}
	}
	if got[0].Name != "Morning Exercise" || got[0].Progress != 53 {
		t.Fatalf("unexpected first habit: %+v", got[0])
	}
}

func TestPricesSortedWithCheapestMinimum(t *testing.T) {
	t.Parallel()
	items := domain.Prices()
	if len(items) != 7 {
		t.Fatalf("expected 7 price items, got %d", len(items))
	}
	for _, item := range items {
		for i := 1; i < len(item.Prices); i++ {
			if item.Prices[i-1] > item.Prices[i] {
				t.Fatalf("%q prices not ascending: %v", item.Name, item.Prices)
			}
		}
		if item.Cheapest != item.Prices[0] {
			t.Fatalf("%q cheapest %.2f != min %.2f", item.Name, item.Cheapest, item.Prices[0])
		}
	}
}

func TestNewDataIsValid(t *testing.T) {
	t.Parallel()
	d := domain.NewData()
	if !d.Valid() {
		t.Fatalf("fresh session must be valid")
	}
	if len(d.Meetings) != 3 {
		t.Fatalf("expected 3 meetings, got %d", len(d.Meetings))
	}
	if d.Meetings[0].Title != "Team Standup" || d.Meetings[0].Time != "09:00" {
		t.Fatalf("unexpected first meeting: %+v", d.Meetings[0])
	}
}

func TestValidRejectsMissingCollections(t *testing.T) {
	t.Parallel()
	d := domain.NewData()
	d.Prices = nil
	if d.Valid() {
		t.Fatalf("session missing prices must be invalid")
	}
	if (domain.Data{}).Valid() {
		t.Fatalf("zero session must be invalid")
	}
}
