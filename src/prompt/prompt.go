// Package prompt asks the user for input.
//
// The orchestrator depends only on the capability interfaces so tests can
// script responses; Terminal renders them as small Bubble Tea programs.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user cancels a prompt (ctrl+c or esc).
var ErrAborted = errors.New("prompt aborted")

// LineInput reads one line of free text.
type LineInput interface {
	Line(ctx context.Context, label string) (string, error)
}

// MultiSelect lets the user check any subset of items. It returns the
// indices of checked items in ascending order; an empty result is valid.
type MultiSelect interface {
	Select(ctx context.Context, label string, items []string) ([]int, error)
}

// Confirm asks a yes/no question.
type Confirm interface {
	Confirm(ctx context.Context, label string, def bool) (bool, error)
}

// Prompter bundles all capabilities.
type Prompter interface {
	LineInput
	MultiSelect
	Confirm
}
