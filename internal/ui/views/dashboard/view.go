package dashboard

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	briefingdto "rovi/internal/modules/briefing/dto"
	sessiondto "rovi/internal/modules/session/dto"
	"rovi/internal/platform/timefmt"
	"rovi/internal/ui/components"
	"rovi/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type SessionPort interface {
	GetEffective(ctx context.Context) (sessiondto.SessionOutput, error)
}

type BriefingPort interface {
	QuoteOfTheDay(ctx context.Context) (briefingdto.QuoteOutput, error)
	DailySummary(ctx context.Context) (briefingdto.SummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SnapshotLoadedMsg struct {
	Snapshot sessiondto.SessionOutput
	Err      error
}

type BriefingLoadedMsg struct {
	Quote   briefingdto.QuoteOutput
	Summary briefingdto.SummaryOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	session  SessionPort
	briefing BriefingPort
	snapshot sessiondto.SessionOutput
	quote    briefingdto.QuoteOutput
	summary  briefingdto.SummaryOutput
	loadErr  string
	width    int
	height   int
}

func New(session SessionPort, briefing BriefingPort) Model {
	return Model{session: session, briefing: briefing}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Reload(), m.loadBriefingCmd())
}

// Reload re-reads the effective session. The app level calls this whenever a
// slot change notification arrives, from this process or another.
func (m Model) Reload() tea.Cmd {
	return func() tea.Msg {
		snapshot, err := m.session.GetEffective(context.Background())
		return SnapshotLoadedMsg{Snapshot: snapshot, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case SnapshotLoadedMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err.Error()
		} else {
			m.loadErr = ""
			m.snapshot = msg.Snapshot
		}

	case BriefingLoadedMsg:
		if msg.Err == nil {
			m.quote = msg.Quote
			m.summary = msg.Summary
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loadErr != "" {
		return theme.Hot.Render("dashboard: " + m.loadErr)
	}

	paneW := m.width/2 - 2
	if paneW < 20 {
		paneW = 20
	}
	pane := theme.Pane.Width(paneW)

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		pane.Render(m.renderMeetings()),
		pane.Render(m.renderHabits(paneW)),
	)
	middle := lipgloss.JoinHorizontal(lipgloss.Top,
		pane.Render(m.renderExpenses()),
		pane.Render(m.renderPrices()),
	)
	bottom := theme.Pane.Width(m.width - 2).Render(m.renderBriefing())

	return lipgloss.JoinVertical(lipgloss.Left, top, middle, bottom)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderMeetings() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today's Meetings") + "\n\n")
	if len(m.snapshot.Meetings) == 0 {
		sb.WriteString(theme.Muted.Render("Nothing scheduled."))
		return sb.String()
	}
	for _, meeting := range m.snapshot.Meetings {
		sb.WriteString(theme.Hot.Render(timefmt.Format12(meeting.Time)) + "  " + meeting.Title + "\n")
		if len(meeting.Participants) > 0 {
			sb.WriteString(theme.Muted.Render("        "+strings.Join(meeting.Participants, ", ")) + "\n")
		}
	}
	return sb.String()
}

func (m Model) renderHabits(paneW int) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Habits") + "\n\n")
	nameW := 0
	for _, habit := range m.snapshot.Habits {
		if len(habit.Name) > nameW {
			nameW = len(habit.Name)
		}
	}
	barW := paneW - nameW - 10
	if barW < 5 {
		barW = 5
	}
	for _, habit := range m.snapshot.Habits {
		label := fmt.Sprintf("%-*s", nameW, habit.Name)
		sb.WriteString(components.Meter(label, habit.Progress, habit.Target, barW) + "\n")
	}
	return sb.String()
}

func (m Model) renderExpenses() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Expenses") + "\n\n")
	for _, expense := range m.snapshot.Expenses {
		sb.WriteString(fmt.Sprintf("%-14s %s\n", expense.Category, theme.Hot.Render(fmt.Sprintf("$%.2f", expense.Amount))))
	}
	sb.WriteString("\n" + theme.Muted.Render("total ") + theme.Title.Render(fmt.Sprintf("$%.2f", m.snapshot.TotalExpenses)))
	return sb.String()
}

func (m Model) renderPrices() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Price Watch") + "\n\n")
	for _, item := range m.snapshot.Prices {
		sb.WriteString(fmt.Sprintf("%-14s %s\n", item.Name, theme.Hot.Render(fmt.Sprintf("$%.2f", item.Cheapest))))
	}
	return sb.String()
}

func (m Model) renderBriefing() string {
	var sb strings.Builder
	if m.quote.Text != "" {
		sb.WriteString(theme.Title.Render("“"+m.quote.Text+"”") + theme.Muted.Render("  — "+m.quote.Author) + "\n")
	}
	if m.summary.Text != "" {
		sb.WriteString(theme.Muted.Render(m.summary.Text))
	}
	if sb.Len() == 0 {
		sb.WriteString(theme.Muted.Render("Loading briefing…"))
	}
	return sb.String()
}

func (m Model) loadBriefingCmd() tea.Cmd {
	return func() tea.Msg {
		quote, err := m.briefing.QuoteOfTheDay(context.Background())
		if err != nil {
			return BriefingLoadedMsg{Err: err}
		}
		summary, err := m.briefing.DailySummary(context.Background())
		if err != nil {
			return BriefingLoadedMsg{Err: err}
		}
		return BriefingLoadedMsg{Quote: quote, Summary: summary}
	}
}
