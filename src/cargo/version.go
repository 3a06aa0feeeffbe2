package cargo

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseToolchainVersion extracts the semantic version from a line such as
// "cargo 1.79.0 (ffa9cf99a 2024-06-03)" or "cargo 1.81.0-nightly (…)".
func ParseToolchainVersion(line string) (*semver.Version, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("unrecognized version line %q", line)
	}
	v, err := semver.NewVersion(fields[1])
	if err != nil {
		return nil, fmt.Errorf("parsing version %q: %w", fields[1], err)
	}
	return v, nil
}
