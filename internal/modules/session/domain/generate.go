package domain

import (
	"fmt"
	"math/rand"
	"sort"
)

const (
	expenseSeed = 42
	habitSeed   = 123
)

// Meetings returns the fixed meeting schedule. Identical across calls.
func Meetings() []Meeting {
	return []Meeting{
		{ID: 1, Time: "09:00", Title: "Team Standup", Participants: []string{"John", "Sarah", "Mike"}},
		{ID: 2, Time: "11:30", Title: "Client Presentation", Participants: []string{"Emma", "David"}},
		{ID: 3, Time: "14:00", Title: "Design Review", Participants: []string{"Lisa", "Tom", "Alex"}},
	}
}

// SeededExpenses derives one expense per category from a fixed seed formula
// so a fresh session is reproducible: seed = 42 + i*73, amount =
// (seed*7) mod 500 + 50, dated consecutively from 2024-01-01.
func SeededExpenses() []Expense {
	out := make([]Expense, len(Categories))
	for i, category := range Categories {
		seed := expenseSeed + i*73
		out[i] = Expense{
			ID:       i + 1,
			Category: category,
			Amount:   float64(seed*7%500 + 50),
			Date:     fmt.Sprintf("2024-01-%02d", i+1),
		}
	}
	return out
}

// SeededHabits derives progress per habit from seed = 123 + i*37,
// progress = (seed*11) mod 100, target 100.
func SeededHabits() []Habit {
	out := make([]Habit, len(HabitNames))
	for i, name := range HabitNames {
		seed := habitSeed + i*37
		out[i] = Habit{ID: i + 1, Name: name, Progress: seed * 11 % 100, Target: 100}
	}
	return out
}

// Prices returns the fixed price catalog with each item's candidates sorted
// ascending and cheapest set to the minimum.
func Prices() []PriceItem {
	items := []PriceItem{
		{ID: 1, Name: "Milk (1L)", Prices: []float64{3.49, 3.79, 4.99}},
		{ID: 2, Name: "Bread", Prices: []float64{2.99, 3.29, 4.49}},
		{ID: 3, Name: "Eggs (12)", Prices: []float64{4.99, 5.49, 6.99}},
		{ID: 4, Name: "Chicken (1kg)", Prices: []float64{8.99, 9.99, 12.99}},
		{ID: 5, Name: "Rice (2kg)", Prices: []float64{5.49, 6.29, 7.99}},
		{ID: 6, Name: "Bananas (1kg)", Prices: []float64{2.49, 2.79, 3.49}},
		{ID: 7, Name: "Oranges (1kg)", Prices: []float64{3.99, 4.49, 5.99}},
	}
	for i := range items {
		sort.Float64s(items[i].Prices)
		items[i].Cheapest = items[i].Prices[0]
	}
	return items
}

// NewData assembles a fresh seeded session. This is the only generator the
// persistence layer may use; the random variants below are for widgets that
// do not persist.
func NewData() Data {
	return Data{
		Meetings: Meetings(),
		Habits:   SeededHabits(),
		Expenses: SeededExpenses(),
		Prices:   Prices(),
	}
}

// RandomExpenses draws amounts uniformly from [50, 549]. Not reproducible;
// must never feed session initialization.
func RandomExpenses() []Expense {
	out := SeededExpenses()
	for i := range out {
		out[i].Amount = float64(rand.Intn(500) + 50)
	}
	return out
}

// RandomHabits draws progress uniformly from [0, 99].
func RandomHabits() []Habit {
	out := SeededHabits()
	for i := range out {
		out[i].Progress = rand.Intn(100)
	}
	return out
}
