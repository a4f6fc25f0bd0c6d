package service

import (
	"fmt"
	"strings"

	"rovi/internal/modules/assistant/domain"
	sessiondomain "rovi/internal/modules/session/domain"
	"rovi/internal/platform/timefmt"
)

// BuildPrompt augments a free-text question with the current effective data
// snapshot and the recent conversation, so the model can answer questions
// about the dashboard without any tool plumbing.
func BuildPrompt(message string, data sessiondomain.Data, history []domain.Turn) string {
	var b strings.Builder
	b.WriteString("You are Rovi, the user's personal dashboard assistant. ")
	b.WriteString("Answer briefly and concretely using the data below.\n\n")

	b.WriteString("Today's meetings:\n")
	for _, m := range data.Meetings {
		fmt.Fprintf(&b, "- %s at %s with %s\n", m.Title, timefmt.Format12(m.Time), strings.Join(m.Participants, ", "))
	}

	b.WriteString("\nHabit progress:\n")
	for _, h := range data.Habits {
		fmt.Fprintf(&b, "- %s: %d/%d\n", h.Name, h.Progress, h.Target)
	}

	fmt.Fprintf(&b, "\nExpenses (total $%.2f):\n", sessiondomain.TotalExpenses(data.Expenses))
	for _, e := range data.Expenses {
		fmt.Fprintf(&b, "- %s: $%.2f on %s\n", e.Category, e.Amount, e.Date)
	}

	b.WriteString("\nBest grocery prices:\n")
	for _, p := range data.Prices {
		fmt.Fprintf(&b, "- %s: $%.2f\n", p.Name, p.Cheapest)
	}

	if len(history) > 0 {
		b.WriteString("\nRecent conversation:\n")
		for _, turn := range history {
			label := "User"
			if turn.Role == domain.RoleAssistant {
				label = "Assistant"
			}
			fmt.Fprintf(&b, "%s: %s\n", label, turn.Content)
		}
	}

	fmt.Fprintf(&b, "\nUser: %s\n", message)
	return b.String()
}
