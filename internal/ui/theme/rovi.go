package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#0C090A")
	Mantle   = lipgloss.Color("#161110")
	Surface0 = lipgloss.Color("#2A2320")
	Surface1 = lipgloss.Color("#3E342E")
	Text     = lipgloss.Color("#EDE6DB")
	Subtext0 = lipgloss.Color("#A89F91")
	Gold     = lipgloss.Color("#F2C14E")
	Amber    = lipgloss.Color("#E8A33D")
	Green    = lipgloss.Color("#9BC47B")
	Red      = lipgloss.Color("#D16C5C")
	Sky      = lipgloss.Color("#7FB4C9")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Gold)

	Title = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Amber).Bold(true)
)
