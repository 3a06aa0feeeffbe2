// Package project locates and validates the project a command operates on.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotAProject is returned when a directory does not contain the manifest.
var ErrNotAProject = errors.New("not a project")

// Root is a directory confirmed to contain the manifest file.
type Root struct {
	Dir      string // as given by the caller (may be relative)
	Manifest string // manifest file name, e.g. "Cargo.toml"
}

// ManifestPath returns the path to the manifest inside the root.
func (r Root) ManifestPath() string {
	return filepath.Join(r.Dir, r.Manifest)
}

// Locate resolves dir (the current directory when empty) to a project root.
// The manifest must exist directly inside dir as a regular file.
func Locate(dir, manifest string) (Root, error) {
	if dir == "" {
		dir = "."
	}

	root := Root{Dir: dir, Manifest: manifest}
	fi, err := os.Stat(root.ManifestPath())
	if err != nil || !fi.Mode().IsRegular() {
		return Root{}, fmt.Errorf("%w: no %s found in %s. Are you sure this is a Rust project?", ErrNotAProject, manifest, dir)
	}
	return root, nil
}
