// Package manifest enumerates the dependency tables of a Cargo manifest.
//
// The manifest is never written back: cargo is its only writer. Names are
// reported in document order so selection prompts list them the way the
// author laid them out.
package manifest

import (
	"errors"
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
)

var (
	// ErrUnreadable is returned when the manifest cannot be read from disk.
	ErrUnreadable = errors.New("failed to read manifest")
	// ErrMalformed is returned when the manifest is not valid TOML.
	ErrMalformed = errors.New("failed to parse manifest")
)

// Category is one of the top-level dependency tables.
type Category int

const (
	Regular Category = iota
	Dev
	Build
)

// Table returns the TOML table name of the category.
func (c Category) Table() string {
	switch c {
	case Dev:
		return "dev-dependencies"
	case Build:
		return "build-dependencies"
	default:
		return "dependencies"
	}
}

func categoryOf(table string) (Category, bool) {
	switch table {
	case "dependencies":
		return Regular, true
	case "dev-dependencies":
		return Dev, true
	case "build-dependencies":
		return Build, true
	}
	return 0, false
}

// Snapshot holds the dependency names declared in each category.
type Snapshot struct {
	Regular []string
	Dev     []string
	Build   []string
}

// Names returns regular, then dev, then build names. A name declared in more
// than one category is listed once per category.
func (s Snapshot) Names() []string {
	names := make([]string, 0, s.Len())
	names = append(names, s.Regular...)
	names = append(names, s.Dev...)
	names = append(names, s.Build...)
	return names
}

// Len returns the total number of entries across categories.
func (s Snapshot) Len() int {
	return len(s.Regular) + len(s.Dev) + len(s.Build)
}

// In returns the names of one category.
func (s Snapshot) In(c Category) []string {
	switch c {
	case Dev:
		return s.Dev
	case Build:
		return s.Build
	default:
		return s.Regular
	}
}

// Read loads and parses the manifest at path.
func Read(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w %s: %w", ErrUnreadable, path, err)
	}
	snap, err := Parse(data)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%s: %w", path, err)
	}
	return snap, nil
}

// Parse extracts dependency names from manifest text.
func Parse(data []byte) (Snapshot, error) {
	// Full decode catches semantic errors (duplicate keys, table redefinition)
	// that the streaming parser below does not.
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	c := newCollector()

	var p unstable.Parser
	p.Reset(data)

	atRoot := true
	current, inTable := Category(0), false

	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.Table:
			atRoot, inTable = false, false
			keys := keyParts(expr.Key())
			if len(keys) == 0 {
				continue
			}
			cat, ok := categoryOf(keys[0])
			if !ok {
				continue
			}
			if len(keys) == 1 {
				current, inTable = cat, true
			} else {
				// [dependencies.serde]
				c.add(cat, keys[1])
			}

		case unstable.ArrayTable:
			atRoot, inTable = false, false

		case unstable.KeyValue:
			keys := keyParts(expr.Key())
			if inTable {
				c.add(current, keys[0])
				continue
			}
			if !atRoot {
				continue
			}
			cat, ok := categoryOf(keys[0])
			if !ok {
				continue
			}
			if len(keys) > 1 {
				// dependencies.serde = "1"
				c.add(cat, keys[1])
				continue
			}
			if v := expr.Value(); v.Kind == unstable.InlineTable {
				it := v.Children()
				for it.Next() {
					kv := it.Node()
					if kv.Kind != unstable.KeyValue {
						continue
					}
					if inner := keyParts(kv.Key()); len(inner) > 0 {
						c.add(cat, inner[0])
					}
				}
			}
		}
	}
	if err := p.Error(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return c.snapshot(), nil
}

func keyParts(it unstable.Iterator) []string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return parts
}

// collector keeps first-seen order per category.
type collector struct {
	names [3][]string
	seen  [3]map[string]bool
}

func newCollector() *collector {
	c := &collector{}
	for i := range c.seen {
		c.seen[i] = make(map[string]bool)
	}
	return c
}

func (c *collector) add(cat Category, name string) {
	if c.seen[cat][name] {
		return
	}
	c.seen[cat][name] = true
	c.names[cat] = append(c.names[cat], name)
}

func (c *collector) snapshot() Snapshot {
	return Snapshot{
		Regular: c.names[Regular],
		Dev:     c.names[Dev],
		Build:   c.names[Build],
	}
}
