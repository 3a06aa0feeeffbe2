package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type lineModel struct {
	label   string
	input   textinput.Model
	done    bool
	aborted bool
}

func newLineModel(label string) lineModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 60
	ti.Focus()
	return lineModel{label: label, input: ti}
}

func (m lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, isKey := msg.(tea.KeyMsg); isKey {
		switch key.String() {
		case "enter":
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m lineModel) View() string {
	if m.done {
		return labelStyle.Render(m.label) + " " + answerStyle.Render(m.input.Value()) + "\n"
	}
	if m.aborted {
		return ""
	}
	return labelStyle.Render(m.label) + "\n" + m.input.View() + "\n"
}

func (m lineModel) Value() string {
	return m.input.Value()
}
