package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var confirmQuestionStyle = lipgloss.NewStyle().Bold(true)

// confirmModel is a minimal yes/no prompt.
type confirmModel struct {
	question string
	answer   bool
	done     bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "y", "Y", "enter":
			m.answer = true
			m.done = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.answer = false
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	var b strings.Builder
	b.WriteString(confirmQuestionStyle.Render(m.question))
	b.WriteString("\n\n")
	b.WriteString(wizardDimStyle.Render("[y/Enter] Yes  [n/Esc] No"))
	b.WriteString("\n")
	return b.String()
}

// Confirm asks the operator a yes/no question. Enter and y answer yes;
// n, q and Esc answer no.
func Confirm(question string) (bool, error) {
	p := tea.NewProgram(confirmModel{question: question})

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	return finalModel.(confirmModel).answer, nil
}
