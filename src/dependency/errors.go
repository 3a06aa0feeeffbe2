package dependency

import (
	"errors"

	"github.com/sofmeright/cratehand/src/cargo"
	"github.com/sofmeright/cratehand/src/manifest"
	"github.com/sofmeright/cratehand/src/project"
)

// Conditions surfaced by dependency commands; match with errors.Is.
var (
	ErrNotAProject             = project.ErrNotAProject
	ErrManifestUnreadable      = manifest.ErrUnreadable
	ErrManifestMalformed       = manifest.ErrMalformed
	ErrNoDependenciesSpecified = errors.New("no dependencies specified")
	ErrNoDependenciesFound     = errors.New("no dependencies found in the project")
	ErrExternalToolFailed      = cargo.ErrToolFailed
	ErrToolUnavailable         = cargo.ErrToolUnavailable
)
