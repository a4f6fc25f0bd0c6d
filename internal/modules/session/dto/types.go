package dto

type MeetingOutput struct {
	ID           int
	Time         string
	Title        string
	Participants []string
}

type HabitOutput struct {
	ID       int
	Name     string
	Progress int
	Target   int
}

type ExpenseOutput struct {
	ID       int
	Category string
	Amount   float64
	Date     string
}

type PriceOutput struct {
	ID       int
	Name     string
	Prices   []float64
	Cheapest float64
}

type SessionOutput struct {
	Meetings      []MeetingOutput
	Habits        []HabitOutput
	Expenses      []ExpenseOutput
	Prices        []PriceOutput
	TotalExpenses float64
}

type OverridesOutput struct {
	Habits   map[string]int
	Expenses map[string]float64
	Prices   map[string]float64
}

type UpdateSessionInput struct {
	Meetings []MeetingOutput
	Habits   []HabitOutput
	Expenses []ExpenseOutput
	Prices   []PriceOutput
}

type RescheduleInput struct {
	From string // 24-hour "HH:MM"
	To   string
}
