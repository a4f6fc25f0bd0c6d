package service

import (
	"fmt"
	"strings"

	sessiondto "rovi/internal/modules/session/dto"
	"rovi/internal/platform/timefmt"
)

// QuotePrompt asks for the exact shape ParseQuote expects.
const QuotePrompt = "Give me one short motivational quote followed by its author, " +
	"formatted exactly as: \"quote\" — Author. No other text."

// BuildSummary condenses the effective dashboard into a few lines. Purely
// derived from the snapshot so the same data always reads the same.
func BuildSummary(s sessiondto.SessionOutput) string {
	var b strings.Builder

	switch len(s.Meetings) {
	case 0:
		b.WriteString("No meetings today.")
	case 1:
		fmt.Fprintf(&b, "One meeting today: %s at %s.", s.Meetings[0].Title, timefmt.Format12(s.Meetings[0].Time))
	default:
		fmt.Fprintf(&b, "%d meetings today, starting with %s at %s.",
			len(s.Meetings), s.Meetings[0].Title, timefmt.Format12(s.Meetings[0].Time))
	}

	if len(s.Habits) > 0 {
		total := 0
		for _, h := range s.Habits {
			total += h.Progress
		}
		fmt.Fprintf(&b, " Habit progress averages %d%%.", total/len(s.Habits))
	}

	fmt.Fprintf(&b, " Spending so far: $%.2f.", s.TotalExpenses)

	if best, ok := bestDeal(s.Prices); ok {
		fmt.Fprintf(&b, " Best deal: %s at $%.2f.", best.Name, best.Cheapest)
	}
	return b.String()
}

func bestDeal(prices []sessiondto.PriceOutput) (sessiondto.PriceOutput, bool) {
	if len(prices) == 0 {
		return sessiondto.PriceOutput{}, false
	}
	best := prices[0]
	for _, p := range prices[1:] {
		if p.Cheapest < best.Cheapest {
			best = p
		}
	}
	return best, true
}
