package main

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/npillmayer/pwmeter/dom/style"
	"github.com/npillmayer/pwmeter/meter"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newTUICmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Enter a password interactively and watch its strength",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return errors.New("tui needs an interactive terminal")
			}
			s, err := startSession(flags.cfg)
			if err != nil {
				return err
			}
			defer s.stop()
			final, err := tea.NewProgram(newTUIModel(s, flags.cfg.Title)).Run()
			if err != nil {
				return err
			}
			if m, ok := final.(tuiModel); ok && m.err != nil {
				return m.err
			}
			return nil
		},
	}
}

const barWidth = 32

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Width(10)
	emptyStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	hintStyle  = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// tuiModel is the bubbletea model of the interactive password meter. Every
// change of the input is typed into the session, the shown strength is
// read back from the session's document.
type tuiModel struct {
	title   string
	input   textinput.Model
	session *session
	level   int
	err     error
}

func newTUIModel(s *session, title string) tuiModel {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = "type a password"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.Width = barWidth
	in.Focus()
	return tuiModel{title: title, input: in, session: s, level: shownLevel(s.driver)}
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc, tea.KeyEnter:
			return m, tea.Quit
		}
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != before {
		if err := m.session.Type(value); err != nil {
			m.err = err
			return m, tea.Quit
		}
		m.level = shownLevel(m.session.driver)
	}
	return m, cmd
}

func (m tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Password") + m.input.View() + "\n")
	b.WriteString(labelStyle.Render("Strength") + meter.Label(m.level) + "\n")
	b.WriteString(labelStyle.Render("") + strengthBar(m.level, barWidth) + "\n")
	b.WriteString(hintStyle.Render("enter or esc to quit"))
	b.WriteString("\n")
	return b.String()
}

// strengthBar renders a bar filled proportionally to level, in the
// meter's colour for level.
func strengthBar(level int, width int) string {
	filled := width * min(max(level, 0), meter.MaxLevel) / meter.MaxLevel
	c := meter.RGBA(level)
	if c == nil || style.IsTransparent(c) {
		filled = 0
	}
	bar := emptyStyle.Render(strings.Repeat(" ", width-filled))
	if filled == 0 {
		return bar
	}
	fill := lipgloss.NewStyle().Background(lipgloss.Color(style.ColorString(c)))
	return fill.Render(strings.Repeat(" ", filled)) + bar
}
