package dependency

import (
	"strings"

	"github.com/sofmeright/cratehand/src/cargo"
)

// Spec is one dependency to add.
type Spec struct {
	Name     string
	Version  string   // passed through to cargo uninterpreted
	Features []string // no embedded commas
	Dev      bool
}

func (s Spec) addOptions() cargo.AddOptions {
	return cargo.AddOptions{
		Name:     s.Name,
		Dev:      s.Dev,
		Features: s.Features,
		Version:  s.Version,
	}
}

// SplitList splits a comma-separated list, trimming each token and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}
