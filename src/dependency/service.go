// Package dependency orchestrates the add, remove, update and analyze
// lifecycle of a project's dependencies.
//
// Every command locates the project first, resolves its working set, then
// drives cargo one item at a time. Mutating batches stop at the first
// failure; cargo owns the manifest and lock file, so items never run
// concurrently.
package dependency

import (
	"context"
	"log/slog"

	"github.com/sofmeright/cratehand/src/cargo"
	"github.com/sofmeright/cratehand/src/features"
	"github.com/sofmeright/cratehand/src/output"
	"github.com/sofmeright/cratehand/src/project"
	"github.com/sofmeright/cratehand/src/prompt"
)

// Service runs dependency commands.
type Service struct {
	Runner   cargo.Runner
	Prompter prompt.Prompter
	Catalog  *features.Catalog
	Report   *output.Reporter
	Logger   *slog.Logger

	Manifest    string // manifest file name, e.g. "Cargo.toml"
	AuditHelper string // e.g. "cargo-audit"

	// WorktreeNotice warns before mutating a manifest with uncommitted changes.
	WorktreeNotice bool
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func (s *Service) catalog() *features.Catalog {
	if s.Catalog == nil {
		return features.Default()
	}
	return s.Catalog
}

// locate validates the project and returns a tool bound to it.
func (s *Service) locate(path string) (project.Root, *cargo.Tool, error) {
	root, err := project.Locate(path, s.Manifest)
	if err != nil {
		return project.Root{}, nil, err
	}
	s.logger().Debug("project located", "dir", root.Dir, "manifest", root.Manifest)
	return root, cargo.NewTool(s.Runner, root.Dir, s.AuditHelper), nil
}

func (s *Service) noticeWorktree(root project.Root) {
	if !s.WorktreeNotice {
		return
	}
	state, err := project.ManifestGitState(root)
	if err != nil {
		s.logger().Debug("worktree status unavailable", "error", err)
		return
	}
	switch state {
	case project.GitModified:
		s.Report.Warn("%s has uncommitted changes", root.Manifest)
	case project.GitUntracked:
		s.Report.Warn("%s is not tracked by git", root.Manifest)
	}
}

// Add adds each dependency in order, stopping at the first failure.
func (s *Service) Add(ctx context.Context, req AddRequest) error {
	root, tool, err := s.locate(req.Path)
	if err != nil {
		return err
	}
	s.noticeWorktree(root)

	names, err := s.addNames(ctx, req.Names)
	if err != nil {
		return err
	}

	var explicit []string
	if req.HasFeatures {
		explicit = SplitList(req.Features)
	}

	for _, name := range names {
		spec := Spec{Name: name, Version: req.Version, Dev: req.Dev}

		if req.HasFeatures {
			spec.Features = explicit
		} else {
			spec.Features, err = features.Suggest(ctx, s.catalog(), s.Prompter, name)
			if err != nil {
				return err
			}
		}

		s.Report.Start(output.Add, name)
		if err := tool.Add(ctx, spec.addOptions()); err != nil {
			return err
		}
		s.Report.Done(output.Add, name)
	}
	return nil
}

// Remove removes each dependency in order, stopping at the first failure.
// Without explicit names the user picks from the manifest.
func (s *Service) Remove(ctx context.Context, req RemoveRequest) error {
	root, tool, err := s.locate(req.Path)
	if err != nil {
		return err
	}
	s.noticeWorktree(root)

	names, err := s.removeNames(ctx, root, req.Names)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		s.Report.Info("No dependencies selected; nothing removed.")
		return nil
	}

	for _, name := range names {
		s.Report.Start(output.Remove, name)
		if err := tool.Remove(ctx, name); err != nil {
			return err
		}
		s.Report.Done(output.Remove, name)
	}
	return nil
}
