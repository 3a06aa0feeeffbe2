package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type confirmModel struct {
	label   string
	answer  bool
	done    bool
	aborted bool
}

func newConfirmModel(label string, def bool) confirmModel {
	return confirmModel{label: label, answer: def}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch strings.ToLower(key.String()) {
	case "y":
		m.answer, m.done = true, true
		return m, tea.Quit
	case "n":
		m.answer, m.done = false, true
		return m, tea.Quit
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		ans := "no"
		if m.answer {
			ans = "yes"
		}
		return labelStyle.Render(m.label) + " " + answerStyle.Render(ans) + "\n"
	}
	hint := "[y/N]"
	if m.answer {
		hint = "[Y/n]"
	}
	return labelStyle.Render(m.label) + " " + helpStyle.Render(hint) + "\n"
}
