package output

import (
	"fmt"
	"io"
	"strings"
)

const sectionWidth = 61 // inner width between │ and line end

// Section renders a box-drawing framed summary block.
type Section struct {
	w     io.Writer
	name  string
	color bool
}

// NewSection creates a section and writes its header.
func NewSection(w io.Writer, name string, color bool) *Section {
	s := &Section{w: w, name: name, color: color}
	s.writeHeader()
	return s
}

// Section opens a framed block on the reporter's writer.
func (r *Reporter) Section(name string) *Section {
	return NewSection(r.Writer, name, r.Color)
}

// Row writes a content line inside the section frame.
func (s *Section) Row(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprintf(s.w, "    │ %s\n", line)
}

// KV writes an aligned key/value row.
func (s *Section) KV(key, value string) {
	s.Row("%-16s%s", key, value)
}

// Status writes a key/value row followed by a status icon.
func (s *Section) Status(key, value, status string) {
	s.Row("%-16s%s %s", key, value, StatusIcon(status, s.color))
}

// Separator writes a mid-section divider.
func (s *Section) Separator() {
	fmt.Fprintf(s.w, "    ├%s\n", strings.Repeat("─", sectionWidth))
}

// Close writes the section footer.
func (s *Section) Close() {
	fmt.Fprintf(s.w, "    └%s\n", strings.Repeat("─", sectionWidth))
}

// writeHeader renders: ── Name ─────────────────────────────
func (s *Section) writeHeader() {
	label := fmt.Sprintf("── %s ", s.name)

	fill := sectionWidth + 4 - len([]rune(label))
	if fill < 1 {
		fill = 1
	}

	if s.color {
		// dim cyan for header
		fmt.Fprintf(s.w, "\n    \033[2;36m%s%s\033[0m\n", label, strings.Repeat("─", fill))
	} else {
		fmt.Fprintf(s.w, "\n    %s%s\n", label, strings.Repeat("─", fill))
	}
}

// StatusIcon returns a status icon, colored when color is set.
// Known statuses are "success", "failed" and "warning"; anything else is skipped.
func StatusIcon(status string, color bool) string {
	icon, code := "⊘", "\033[33m"
	switch status {
	case "success":
		icon, code = "✓", "\033[32m"
	case "failed":
		icon, code = "✗", "\033[31m"
	case "warning":
		icon, code = "!", "\033[33m"
	}
	if !color {
		return icon
	}
	return code + icon + colorReset
}

// Dimmed returns dimmed text if color is enabled.
func Dimmed(text string, color bool) string {
	if !color {
		return text
	}
	return colorGray + text + colorReset
}
