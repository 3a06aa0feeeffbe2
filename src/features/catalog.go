// Package features suggests optional feature flags for well-known crates.
package features

import (
	"context"
	"fmt"
	"slices"

	"github.com/sofmeright/cratehand/src/prompt"
)

// Catalog maps crate names to curated feature lists. It is immutable once
// built; lookups hand out copies.
type Catalog struct {
	entries map[string][]string
}

// NewCatalog builds a catalog from entries, copying every list.
func NewCatalog(entries map[string][]string) *Catalog {
	c := &Catalog{entries: make(map[string][]string, len(entries))}
	for name, feats := range entries {
		c.entries[name] = slices.Clone(feats)
	}
	return c
}

var builtin = NewCatalog(map[string][]string{
	"tokio":   {"full", "rt", "rt-multi-thread", "macros", "io-util", "time"},
	"serde":   {"derive"},
	"reqwest": {"json", "blocking", "rustls-tls", "cookies", "gzip"},
	"axum":    {"headers", "http2", "macros", "multipart", "ws"},
	"diesel":  {"postgres", "mysql", "sqlite", "r2d2", "chrono"},
	"sqlx":    {"runtime-tokio-rustls", "postgres", "mysql", "sqlite", "macros"},
	"clap":    {"derive", "cargo", "env", "wrap_help"},
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return builtin
}

// Lookup returns the candidate features for an exact crate name.
func (c *Catalog) Lookup(name string) ([]string, bool) {
	feats, ok := c.entries[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(feats), true
}

// Names returns the catalogued crate names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Suggest offers the catalogued features of name through sel and returns the
// chosen subset in catalog order. Unknown names return nil without prompting.
func Suggest(ctx context.Context, c *Catalog, sel prompt.MultiSelect, name string) ([]string, error) {
	candidates, ok := c.Lookup(name)
	if !ok {
		return nil, nil
	}

	picked, err := sel.Select(ctx, fmt.Sprintf("Suggested features for %s:", name), candidates)
	if err != nil {
		return nil, fmt.Errorf("selecting features for %s: %w", name, err)
	}

	var chosen []string
	for _, i := range picked {
		if i < 0 || i >= len(candidates) {
			return nil, fmt.Errorf("selecting features for %s: index %d out of range", name, i)
		}
		chosen = append(chosen, candidates[i])
	}
	return chosen, nil
}
