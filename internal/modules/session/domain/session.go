package domain

// Slot names for the persisted key/value storage. Readers in other processes
// key their change notifications off these names.
const (
	SlotSession   = "rovi_session_data"
	SlotOverrides = "rovi_overrides"
)

// Categories is the closed set of expense categories.
var Categories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment"}

// HabitNames is the fixed set of tracked habits.
var HabitNames = []string{
	"Morning Exercise",
	"Read 30 minutes",
	"Drink 8 glasses water",
	"Meditation",
	"No phone before bed",
}

type Meeting struct {
	ID           int      `json:"id"`
	Time         string   `json:"time"` // 24-hour "HH:MM"
	Title        string   `json:"title"`
	Participants []string `json:"participants"`
}

type Habit struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Progress int    `json:"progress"` // percent of target
	Target   int    `json:"target"`
}

type Expense struct {
	ID       int     `json:"id"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Date     string  `json:"date"` // "YYYY-MM-DD"
}

type PriceItem struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Prices   []float64 `json:"prices"` // ascending
	Cheapest float64   `json:"cheapest"`
}

// Data is the persisted session bundle. It is the unit of baseline
// persistence: created on first access, survives restarts, never expires.
type Data struct {
	Meetings []Meeting   `json:"meetings"`
	Habits   []Habit     `json:"habits"`
	Expenses []Expense   `json:"expenses"`
	Prices   []PriceItem `json:"prices"`
}

// Valid reports whether a stored session is structurally trustworthy: all
// four collections must be present. A session failing this check is
// regenerated from the seeded generators.
func (d Data) Valid() bool {
	return d.Meetings != nil && d.Habits != nil && d.Expenses != nil && d.Prices != nil
}

// Overrides are sparse per-field corrections merged over the baseline at read
// time. Absence of a key means "use baseline".
type Overrides struct {
	Habits   map[string]int     `json:"habits"`   // habit name -> progress
	Expenses map[string]float64 `json:"expenses"` // category -> amount
	Prices   map[string]float64 `json:"prices"`   // item name -> cheapest
}

// EmptyOverrides returns the zero value with all maps allocated.
func EmptyOverrides() Overrides {
	return Overrides{
		Habits:   map[string]int{},
		Expenses: map[string]float64{},
		Prices:   map[string]float64{},
	}
}

// Normalized allocates any nil map so callers can index freely.
func (o Overrides) Normalized() Overrides {
	if o.Habits == nil {
		o.Habits = map[string]int{}
	}
	if o.Expenses == nil {
		o.Expenses = map[string]float64{}
	}
	if o.Prices == nil {
		o.Prices = map[string]float64{}
	}
	return o
}

// Clone returns a deep copy so mutations never alias the stored value.
func (d Data) Clone() Data {
	out := Data{
		Meetings: make([]Meeting, len(d.Meetings)),
		Habits:   append([]Habit(nil), d.Habits...),
		Expenses: append([]Expense(nil), d.Expenses...),
		Prices:   make([]PriceItem, len(d.Prices)),
	}
	for i, m := range d.Meetings {
		m.Participants = append([]string(nil), m.Participants...)
		out.Meetings[i] = m
	}
	for i, p := range d.Prices {
		p.Prices = append([]float64(nil), p.Prices...)
		out.Prices[i] = p
	}
	return out
}

// Clone deep-copies the override maps.
func (o Overrides) Clone() Overrides {
	out := EmptyOverrides()
	for k, v := range o.Habits {
		out.Habits[k] = v
	}
	for k, v := range o.Expenses {
		out.Expenses[k] = v
	}
	for k, v := range o.Prices {
		out.Prices[k] = v
	}
	return out
}
