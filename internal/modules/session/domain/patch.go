package domain

// Patch carries a shallow session update. A nil slice leaves the stored
// collection untouched; a non-nil slice replaces it wholesale.
type Patch struct {
	Meetings []Meeting
	Habits   []Habit
	Expenses []Expense
	Prices   []PriceItem
}

// Apply merges the patch over the session field by field.
func (d Data) Apply(p Patch) Data {
	out := d.Clone()
	if p.Meetings != nil {
		out.Meetings = p.Meetings
	}
	if p.Habits != nil {
		out.Habits = p.Habits
	}
	if p.Expenses != nil {
		out.Expenses = p.Expenses
	}
	if p.Prices != nil {
		out.Prices = p.Prices
	}
	return out
}

// Reschedule moves the first meeting scheduled at from (24-hour "HH:MM") to
// the new time. Later meetings at the same time are left alone. The boolean
// reports whether any meeting matched.
func Reschedule(meetings []Meeting, from, to string) ([]Meeting, Meeting, bool) {
	out := append([]Meeting(nil), meetings...)
	for i, m := range out {
		if m.Time == from {
			out[i].Time = to
			return out, out[i], true
		}
	}
	return out, Meeting{}, false
}
