package prompt

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Terminal implements Prompter on an interactive terminal.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// NewTerminal prompts on stdin, rendering to stderr so stdout stays clean
// for tool output.
func NewTerminal() *Terminal {
	return &Terminal{In: os.Stdin, Out: os.Stderr}
}

func (t *Terminal) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(t.In),
		tea.WithOutput(t.Out),
	)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}
	return final, nil
}

// Line implements LineInput.
func (t *Terminal) Line(ctx context.Context, label string) (string, error) {
	final, err := t.run(ctx, newLineModel(label))
	if err != nil {
		return "", err
	}
	m := final.(lineModel)
	if m.aborted {
		return "", ErrAborted
	}
	return m.Value(), nil
}

// Select implements MultiSelect.
func (t *Terminal) Select(ctx context.Context, label string, items []string) ([]int, error) {
	final, err := t.run(ctx, newMultiSelectModel(label, items))
	if err != nil {
		return nil, err
	}
	m := final.(multiSelectModel)
	if m.aborted {
		return nil, ErrAborted
	}
	return m.Selected(), nil
}

// Confirm implements Confirm.
func (t *Terminal) Confirm(ctx context.Context, label string, def bool) (bool, error) {
	final, err := t.run(ctx, newConfirmModel(label, def))
	if err != nil {
		return false, err
	}
	m := final.(confirmModel)
	if m.aborted {
		return false, ErrAborted
	}
	return m.answer, nil
}
