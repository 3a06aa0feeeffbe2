package dependency

import (
	"context"
	"fmt"

	"github.com/sofmeright/cratehand/src/manifest"
	"github.com/sofmeright/cratehand/src/project"
)

const (
	addPrompt    = "Enter dependencies to add (comma separated)"
	removePrompt = "Select dependencies to remove"
)

// addNames returns explicit names verbatim, or prompts once for a
// comma-separated list.
func (s *Service) addNames(ctx context.Context, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	line, err := s.Prompter.Line(ctx, addPrompt)
	if err != nil {
		return nil, fmt.Errorf("reading dependencies: %w", err)
	}

	names := SplitList(line)
	if len(names) == 0 {
		return nil, ErrNoDependenciesSpecified
	}
	return names, nil
}

// removeNames returns explicit names verbatim, or lets the user pick from the
// manifest. An empty pick is a valid, empty result.
func (s *Service) removeNames(ctx context.Context, root project.Root, explicit []string) ([]string, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}

	snap, err := manifest.Read(root.ManifestPath())
	if err != nil {
		return nil, err
	}

	candidates := snap.Names()
	if len(candidates) == 0 {
		return nil, ErrNoDependenciesFound
	}

	picked, err := s.Prompter.Select(ctx, removePrompt, candidates)
	if err != nil {
		return nil, fmt.Errorf("selecting dependencies: %w", err)
	}

	names := make([]string, 0, len(picked))
	for _, i := range picked {
		if i < 0 || i >= len(candidates) {
			return nil, fmt.Errorf("selecting dependencies: index %d out of range", i)
		}
		names = append(names, candidates[i])
	}
	return names, nil
}
