package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Colors for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)

// Action is a per-item mutating operation reported by the Reporter.
type Action int

const (
	Add Action = iota
	Remove
	Update
)

type actionWords struct {
	progress string // "Adding dependency:"
	done     string // "Successfully added:"
	color    string
}

var words = map[Action]actionWords{
	Add:    {progress: "Adding dependency:", done: "Successfully added:", color: colorGreen},
	Remove: {progress: "Removing dependency:", done: "Successfully removed:", color: colorYellow},
	Update: {progress: "Updating dependency:", done: "Successfully updated:", color: colorBlue},
}

// Reporter writes line-oriented progress and outcome messages.
type Reporter struct {
	Writer    io.Writer // progress, info, tool text
	ErrWriter io.Writer // failures
	Color     bool
}

// NewReporter creates a reporter on stdout/stderr.
func NewReporter(color bool) *Reporter {
	return &Reporter{Writer: os.Stdout, ErrWriter: os.Stderr, Color: color}
}

// Start reports that an item is about to be processed.
func (r *Reporter) Start(a Action, name string) {
	w := words[a]
	fmt.Fprintf(r.Writer, "%s %s\n", r.colorize(w.progress, w.color), name)
}

// Done reports that an item succeeded.
func (r *Reporter) Done(a Action, name string) {
	w := words[a]
	fmt.Fprintf(r.Writer, "%s %s\n", r.colorize(w.done, colorGreen), name)
}

// Progress writes a colored status line without an item, e.g. for bulk runs.
func (r *Reporter) Progress(format string, args ...any) {
	fmt.Fprintln(r.Writer, r.colorize(fmt.Sprintf(format, args...), colorBlue))
}

// Success writes a green status line.
func (r *Reporter) Success(format string, args ...any) {
	fmt.Fprintln(r.Writer, r.colorize(fmt.Sprintf(format, args...), colorGreen))
}

// Info writes an uncolored informational line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.Writer, format+"\n", args...)
}

// Warn writes a yellow warning line.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintln(r.Writer, r.colorize(fmt.Sprintf(format, args...), colorYellow))
}

// Heading writes a blank line followed by a block title.
func (r *Reporter) Heading(title string) {
	fmt.Fprintf(r.Writer, "\n%s\n", r.colorize(title, colorBlue))
}

// Raw writes tool-produced text verbatim, ensuring a trailing newline.
func (r *Reporter) Raw(text string) {
	if text == "" {
		return
	}
	fmt.Fprint(r.Writer, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(r.Writer)
	}
}

// Failure writes a red error line to ErrWriter.
func (r *Reporter) Failure(err error) {
	fmt.Fprintf(r.ErrWriter, "%s %v\n", r.colorize("error:", colorRed+colorBold), err)
}

func (r *Reporter) colorize(text, color string) string {
	if !r.Color {
		return text
	}
	return color + text + colorReset
}

func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// UseColor resolves a color mode ("auto", "always", "never").
// Auto respects NO_COLOR, TERM=dumb, and terminal detection.
func UseColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTerminal()
}
