package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type multiSelectModel struct {
	label   string
	items   []string
	checked []bool
	cursor  int
	done    bool
	aborted bool
}

func newMultiSelectModel(label string, items []string) multiSelectModel {
	return multiSelectModel{
		label:   label,
		items:   items,
		checked: make([]bool, len(items)),
	}
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case " ", "x":
		if len(m.items) > 0 {
			m.checked[m.cursor] = !m.checked[m.cursor]
		}
	case "a":
		all := !m.allChecked()
		for i := range m.checked {
			m.checked[i] = all
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) allChecked() bool {
	for _, c := range m.checked {
		if !c {
			return false
		}
	}
	return true
}

// Selected returns the checked indices in ascending order.
func (m multiSelectModel) Selected() []int {
	var out []int
	for i, c := range m.checked {
		if c {
			out = append(out, i)
		}
	}
	return out
}

func (m multiSelectModel) View() string {
	var b strings.Builder

	if m.done {
		var picked []string
		for _, i := range m.Selected() {
			picked = append(picked, m.items[i])
		}
		b.WriteString(labelStyle.Render(m.label))
		b.WriteString(" ")
		b.WriteString(answerStyle.Render(strings.Join(picked, ", ")))
		b.WriteString("\n")
		return b.String()
	}
	if m.aborted {
		return ""
	}

	b.WriteString(labelStyle.Render(m.label))
	b.WriteString("\n")
	for i, item := range m.items {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		box := "[ ]"
		if m.checked[i] {
			box = checkedStyle.Render("[x]")
		}
		b.WriteString(pointer + box + " " + item + "\n")
	}
	b.WriteString(helpStyle.Render("space toggle · a all · enter confirm · esc cancel"))
	b.WriteString("\n")
	return b.String()
}
