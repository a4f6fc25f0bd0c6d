package domain

// EffectiveHabits applies habit progress overrides over the baseline. An
// overridden value is clamped to [0, target]; baseline entries without an
// override pass through untouched.
func EffectiveHabits(habits []Habit, o Overrides) []Habit {
	out := append([]Habit(nil), habits...)
	for i, h := range out {
		v, ok := o.Habits[h.Name]
		if !ok {
			continue
		}
		if v < 0 {
			v = 0
		}
		if v > h.Target {
			v = h.Target
		}
		out[i].Progress = v
	}
	return out
}

// EffectiveExpenses applies per-category amount overrides over the baseline.
func EffectiveExpenses(expenses []Expense, o Overrides) []Expense {
	out := append([]Expense(nil), expenses...)
	for i, e := range out {
		if v, ok := o.Expenses[e.Category]; ok {
			out[i].Amount = v
		}
	}
	return out
}

// EffectivePrices applies cheapest-price overrides over the baseline. Only
// the cheapest figure changes; the candidate list stays as generated.
func EffectivePrices(prices []PriceItem, o Overrides) []PriceItem {
	out := make([]PriceItem, len(prices))
	copy(out, prices)
	for i, p := range out {
		if v, ok := o.Prices[p.Name]; ok {
			out[i].Cheapest = v
		}
	}
	return out
}

// Effective returns the session with all overrides merged in. The stored
// baseline is never mutated; overrides win only at read time.
func Effective(d Data, o Overrides) Data {
	o = o.Normalized()
	out := d.Clone()
	out.Habits = EffectiveHabits(out.Habits, o)
	out.Expenses = EffectiveExpenses(out.Expenses, o)
	out.Prices = EffectivePrices(out.Prices, o)
	return out
}

// TotalExpenses sums the amounts of the given expenses.
func TotalExpenses(expenses []Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}
