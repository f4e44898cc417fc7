package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// shellHistory caps the transcript kept for redraws.
const shellHistory = 500

var (
	shellPromptStyle = lipgloss.NewStyle().Foreground(colorCyan)
	shellEchoStyle   = lipgloss.NewStyle().Foreground(colorGray)
	shellHelpStyle   = lipgloss.NewStyle().Foreground(colorDim)
)

// shellModel is the bubbletea model for the full-screen shell. It feeds each
// submitted line to a session and keeps the transcript above the prompt.
type shellModel struct {
	ctx    context.Context
	sess   *session
	input  textinput.Model
	lines  []string
	height int
}

func newShellModel(ctx context.Context, sess *session) shellModel {
	ti := textinput.New()
	ti.Placeholder = "h for help"
	ti.Prompt = sess.prompt()
	ti.PromptStyle = shellPromptStyle
	ti.Focus()

	return shellModel{
		ctx:    ctx,
		sess:   sess,
		input:  ti,
		lines:  strings.Split(menuText, "\n"),
		height: 20,
	}
}

func (m shellModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-4, 5)
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m shellModel) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.lines = append(m.lines, shellEchoStyle.Render(m.input.Prompt+line))

	var out bytes.Buffer
	m.sess.feed(m.ctx, line, &out)
	if out.Len() > 0 {
		m.lines = append(m.lines, strings.Split(strings.TrimRight(out.String(), "\n"), "\n")...)
	}
	if n := len(m.lines); n > shellHistory {
		m.lines = m.lines[n-shellHistory:]
	}

	m.input.SetValue("")
	m.input.Prompt = m.sess.prompt()
	if m.sess.done {
		return m, tea.Quit
	}
	return m, nil
}

func (m shellModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("linkrank shell"))
	b.WriteString("\n")

	start := max(len(m.lines)-m.height, 0)
	for _, l := range m.lines[start:] {
		b.WriteString(l)
		b.WriteString("\n")
	}

	if m.sess.done {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(shellHelpStyle.Render("enter: submit  esc: quit"))
	return b.String()
}
