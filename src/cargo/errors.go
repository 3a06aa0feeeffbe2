package cargo

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrToolFailed matches every *ToolError.
	ErrToolFailed = errors.New("external tool failed")
	// ErrToolUnavailable is reported when the audit helper is not installed.
	ErrToolUnavailable = errors.New("tool unavailable")
)

// ToolError describes a mutating invocation that did not succeed.
type ToolError struct {
	Action   string // "add", "remove", "update"
	Target   string // dependency name; empty for bulk update
	ExitCode int
	Stderr   string // captured child stderr, verbatim
	Err      error  // start failure, if the child never ran
}

func (e *ToolError) Error() string {
	var b strings.Builder
	b.WriteString("failed to ")
	b.WriteString(e.Action)
	if e.Target != "" {
		fmt.Fprintf(&b, " dependency %s", e.Target)
	} else {
		b.WriteString(" dependencies")
	}
	switch {
	case e.Err != nil:
		fmt.Fprintf(&b, ": %v", e.Err)
	case strings.TrimSpace(e.Stderr) != "":
		fmt.Fprintf(&b, ": %s", strings.TrimRight(e.Stderr, "\r\n"))
	default:
		fmt.Fprintf(&b, ": exit status %d", e.ExitCode)
	}
	return b.String()
}

func (e *ToolError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrToolFailed) true for any ToolError.
func (e *ToolError) Is(target error) bool { return target == ErrToolFailed }
