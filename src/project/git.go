package project

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitState describes the manifest's status in the enclosing git worktree.
type GitState int

const (
	GitUnknown   GitState = iota // no repository, or status unavailable
	GitClean                     // tracked, no changes
	GitModified                  // staged or unstaged changes
	GitUntracked                 // inside a worktree but never added
)

func (s GitState) String() string {
	switch s {
	case GitClean:
		return "clean"
	case GitModified:
		return "modified"
	case GitUntracked:
		return "untracked"
	default:
		return "unknown"
	}
}

// ManifestGitState reports the manifest's worktree status. A directory outside
// any repository yields GitUnknown with a nil error.
func ManifestGitState(root Root) (GitState, error) {
	abs, err := filepath.Abs(root.ManifestPath())
	if err != nil {
		return GitUnknown, err
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return GitUnknown, nil
		}
		return GitUnknown, fmt.Errorf("opening repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return GitUnknown, fmt.Errorf("opening worktree: %w", err)
	}

	rel, err := relativeTo(wt.Filesystem.Root(), abs)
	if err != nil {
		return GitUnknown, err
	}

	status, err := wt.Status()
	if err != nil {
		return GitUnknown, fmt.Errorf("worktree status: %w", err)
	}

	// Status only lists changed paths; Status.File would invent an entry.
	fs, ok := status[rel]
	if !ok {
		return GitClean, nil
	}
	if fs.Worktree == git.Untracked && fs.Staging == git.Untracked {
		return GitUntracked, nil
	}
	if fs.Worktree == git.Unmodified && fs.Staging == git.Unmodified {
		return GitClean, nil
	}
	return GitModified, nil
}

// relativeTo returns target relative to base in slash form, resolving
// symlinks on both sides so temp dirs like /tmp -> /private/tmp agree.
func relativeTo(base, target string) (string, error) {
	if b, err := filepath.EvalSymlinks(base); err == nil {
		base = b
	}
	if t, err := filepath.EvalSymlinks(target); err == nil {
		target = t
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
