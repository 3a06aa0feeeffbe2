package dependency

import (
	"context"

	"github.com/sofmeright/cratehand/src/output"
)

// Update updates the named dependencies one at a time, or everything in a
// single bulk invocation when no names are given.
func (s *Service) Update(ctx context.Context, req UpdateRequest) error {
	root, tool, err := s.locate(req.Path)
	if err != nil {
		return err
	}
	s.noticeWorktree(root)

	if len(req.Names) == 0 {
		s.Report.Progress("Updating all dependencies...")
		if err := tool.UpdateAll(ctx); err != nil {
			return err
		}
		s.Report.Success("Successfully updated all dependencies")
		return nil
	}

	for _, name := range req.Names {
		s.Report.Start(output.Update, name)
		if err := tool.Update(ctx, name); err != nil {
			return err
		}
		s.Report.Done(output.Update, name)
	}
	return nil
}
