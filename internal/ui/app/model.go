package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	weatherdto "rovi/internal/modules/weather/dto"
	"rovi/internal/ui/theme"
	chatview "rovi/internal/ui/views/chat"
	dashboardview "rovi/internal/ui/views/dashboard"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.
// Sub-view ports are defined in their own packages.

type weatherPort interface {
	Current(ctx context.Context, city string) (weatherdto.WeatherOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabDashboard tabID = iota
	tabChat
	tabCount
)

var tabLabels = [tabCount]string{"Dashboard", "Chat"}

// ─── async messages ───────────────────────────────────────────────────────────

type clockTickMsg time.Time

type weatherLoadedMsg struct {
	report weatherdto.WeatherOutput
	err    error
}

type slotChangedMsg struct{ slot string }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab  key.Binding
	Help key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Tab}, {k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the header clock
// and weather, and relays slot-change notifications into the dashboard. All
// business logic is behind port interfaces; rendering is in the sub-views.
type Model struct {
	weather weatherPort
	city    string
	zone    *time.Location
	changes <-chan string

	dashView dashboardview.Model
	chatView chatview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	now       time.Time
	report    weatherdto.WeatherOutput
	status    string
	width     int
	height    int
}

func NewModel(
	session dashboardview.SessionPort,
	assistant chatview.AssistantPort,
	weather weatherPort,
	briefing dashboardview.BriefingPort,
	city string,
	zone *time.Location,
	changes <-chan string,
) Model {
	if zone == nil {
		zone = time.UTC
	}
	return Model{
		weather:   weather,
		city:      city,
		zone:      zone,
		changes:   changes,
		dashView:  dashboardview.New(session, briefing),
		chatView:  chatview.New(assistant),
		activeTab: tabDashboard,
		keys:      defaultKeys(),
		help:      help.New(),
		now:       time.Now(),
		status:    "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashView.Init(),
		m.chatView.Init(),
		m.loadWeatherCmd(),
		clockCmd(),
		waitForChange(m.changes),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		m.propagateSize()

	case clockTickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, clockCmd())
		// Refresh the reading every ten minutes, on the minute tick.
		if m.now.Minute()%10 == 0 && m.now.Second() == 0 {
			cmds = append(cmds, m.loadWeatherCmd())
		}

	case weatherLoadedMsg:
		if msg.err != nil {
			m.status = "weather: " + msg.err.Error()
		} else {
			m.report = msg.report
			if zone, err := time.LoadLocation(msg.report.Timezone); err == nil {
				m.zone = zone
			}
		}

	case slotChangedMsg:
		m.status = "updated: " + msg.slot
		cmds = append(cmds, m.dashView.Reload(), waitForChange(m.changes))

	case chatview.ReplyMsg:
		if msg.Err == nil && msg.Reply.Mutated {
			cmds = append(cmds, m.dashView.Reload())
		}

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// The chat input owns plain letters while focused.
			if !(m.activeTab == tabChat && m.chatView.Typing()) {
				return m, tea.Quit
			}
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			if !(m.activeTab == tabChat && m.chatView.Typing()) {
				m.showHelp = !m.showHelp
				return m, nil
			}
		}
	}

	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabDashboard:
		m.dashView, tabCmd = m.dashView.Update(msg)
	case tabChat:
		m.chatView, tabCmd = m.chatView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.activeTab == tabDashboard:
		content = m.dashView.View()
	default:
		content = m.chatView.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	left := "rovi  " + strings.Join(parts, theme.Muted.Render(" │ "))

	clock := theme.Title.Render(m.now.In(m.zone).Format("3:04:05 PM"))
	right := clock
	if m.report.City != "" {
		right = fmt.Sprintf("%s  %s %s", clock,
			theme.Hot.Render(fmt.Sprintf("%s %d°C", m.report.City, m.report.Temperature)),
			theme.Muted.Render(m.report.Description))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("?:help  tab:switch  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.dashView, _ = m.dashView.Update(sz)
	m.chatView, _ = m.chatView.Update(sz)
}

// ─── async commands ───────────────────────────────────────────────────────────

func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m Model) loadWeatherCmd() tea.Cmd {
	return func() tea.Msg {
		report, err := m.weather.Current(context.Background(), m.city)
		return weatherLoadedMsg{report: report, err: err}
	}
}

// waitForChange blocks on the slot-change channel and re-arms itself after
// every delivery.
func waitForChange(changes <-chan string) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		slot, ok := <-changes
		if !ok {
			return nil
		}
		return slotChangedMsg{slot: slot}
	}
}
