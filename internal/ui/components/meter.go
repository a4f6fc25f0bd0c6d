package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rovi/internal/ui/theme"
)

var (
	meterFill  = lipgloss.NewStyle().Foreground(theme.Gold)
	meterEmpty = lipgloss.NewStyle().Foreground(theme.Surface1)
	meterFull  = lipgloss.NewStyle().Foreground(theme.Green)
)

// Meter renders a labeled progress bar, e.g. "Meditation  ████░░░░ 53%".
func Meter(label string, value, target, width int) string {
	if target <= 0 {
		target = 100
	}
	if value < 0 {
		value = 0
	}
	if value > target {
		value = target
	}
	if width < 4 {
		width = 4
	}

	filled := value * width / target
	fill := meterFill
	if value >= target {
		fill = meterFull
	}
	bar := fill.Render(strings.Repeat("█", filled)) +
		meterEmpty.Render(strings.Repeat("░", width-filled))
	return fmt.Sprintf("%s %s %d%%", label, bar, value*100/target)
}
