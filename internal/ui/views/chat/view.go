package chat

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistantdto "rovi/internal/modules/assistant/dto"
	"rovi/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AssistantPort interface {
	Ask(ctx context.Context, input assistantdto.AskInput) (assistantdto.ReplyOutput, error)
	History(ctx context.Context, limit int) ([]assistantdto.TurnOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type HistoryLoadedMsg struct {
	Turns []assistantdto.TurnOutput
	Err   error
}

// ReplyMsg bubbles to the app level too, so the dashboard can refresh after
// a mutating command.
type ReplyMsg struct {
	Reply assistantdto.ReplyOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type line struct {
	fromUser bool
	text     string
}

type Model struct {
	port     AssistantPort
	input    textinput.Model
	history  viewport.Model
	spinner  spinner.Model
	lines    []line
	thinking bool
	width    int
	height   int
}

func New(port AssistantPort) Model {
	ti := textinput.New()
	ti.Placeholder = "ask Rovi anything, or try: set expense groceries to 200"
	ti.CharLimit = 512
	ti.Prompt = "› "

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Gold)

	return Model{port: port, input: ti, history: vp, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadHistoryCmd(), m.input.Focus(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case HistoryLoadedMsg:
		if msg.Err == nil {
			m.lines = m.lines[:0]
			for _, turn := range msg.Turns {
				m.lines = append(m.lines, line{fromUser: turn.Role == "user", text: turn.Content})
			}
			m.refreshTranscript()
		}

	case ReplyMsg:
		m.thinking = false
		if msg.Err != nil {
			m.lines = append(m.lines, line{text: "error: " + msg.Err.Error()})
		} else {
			m.lines = append(m.lines, line{text: msg.Reply.Reply})
		}
		m.refreshTranscript()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "enter" && !m.thinking {
			text := strings.TrimSpace(m.input.Value())
			if text != "" {
				m.input.SetValue("")
				m.lines = append(m.lines, line{fromUser: true, text: text})
				m.thinking = true
				m.refreshTranscript()
				cmds = append(cmds, m.askCmd(text))
			}
		}
	}

	var iCmd tea.Cmd
	m.input, iCmd = m.input.Update(msg)
	cmds = append(cmds, iCmd)

	var vCmd tea.Cmd
	m.history, vCmd = m.history.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	inputLine := m.input.View()
	if m.thinking {
		inputLine = m.spinner.View() + " thinking…"
	}
	inputPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Gold).
		Width(m.width - 2).
		Padding(0, 1).
		Render(inputLine)
	return lipgloss.JoinVertical(lipgloss.Left, m.history.View(), inputPane)
}

// Typing reports whether the input has focus, so the app level leaves keys
// like "q" alone while the user writes a message.
func (m Model) Typing() bool {
	return m.input.Focused()
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.history.Width = m.width
	m.history.Height = m.height - 3
	if m.history.Height < 1 {
		m.history.Height = 1
	}
	m.refreshTranscript()
}

func (m *Model) refreshTranscript() {
	wrap := lipgloss.NewStyle().Width(m.history.Width - 4)
	var sb strings.Builder
	for _, l := range m.lines {
		if l.fromUser {
			sb.WriteString(theme.Hot.Render("you ") + wrap.Render(l.text) + "\n\n")
		} else {
			sb.WriteString(theme.Title.Render("rovi ") + wrap.Render(l.text) + "\n\n")
		}
	}
	if sb.Len() == 0 {
		sb.WriteString(theme.Muted.Render("No messages yet. Ask about your day, or type a command."))
	}
	m.history.SetContent(sb.String())
	m.history.GotoBottom()
}

func (m Model) loadHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		turns, err := m.port.History(context.Background(), 50)
		return HistoryLoadedMsg{Turns: turns, Err: err}
	}
}

func (m Model) askCmd(text string) tea.Cmd {
	return func() tea.Msg {
		reply, err := m.port.Ask(context.Background(), assistantdto.AskInput{Message: text})
		return ReplyMsg{Reply: reply, Err: err}
	}
}
