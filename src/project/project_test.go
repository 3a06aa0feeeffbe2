package project

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(content), 0o644))
}

func TestLocate(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	root, err := Locate(dir, "Cargo.toml")
	require.NoError(t, err)
	assert.Equal(t, dir, root.Dir)
	assert.Equal(t, filepath.Join(dir, "Cargo.toml"), root.ManifestPath())
}

func TestLocateDefaultsToCurrentDirectory(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")
	t.Chdir(dir)

	root, err := Locate("", "Cargo.toml")
	require.NoError(t, err)
	assert.Equal(t, ".", root.Dir)
}

func TestLocateMissingManifest(t *testing.T) {
	dir := t.TempDir()

	_, err := Locate(dir, "Cargo.toml")
	require.ErrorIs(t, err, ErrNotAProject)
	assert.Contains(t, err.Error(), dir)
}

func TestLocateRejectsManifestDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Cargo.toml"), 0o755))

	_, err := Locate(dir, "Cargo.toml")
	require.ErrorIs(t, err, ErrNotAProject)
}

func TestManifestGitStateOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "")

	state, err := ManifestGitState(Root{Dir: dir, Manifest: "Cargo.toml"})
	require.NoError(t, err)
	assert.Equal(t, GitUnknown, state)
}

func TestManifestGitStateTransitions(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	writeManifest(t, dir, "[dependencies]\n")

	root := Root{Dir: dir, Manifest: "Cargo.toml"}

	state, err := ManifestGitState(root)
	require.NoError(t, err)
	assert.Equal(t, GitUntracked, state)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("Cargo.toml")
	require.NoError(t, err)
	_, err = wt.Commit("init", &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	state, err = ManifestGitState(root)
	require.NoError(t, err)
	assert.Equal(t, GitClean, state)

	writeManifest(t, dir, "[dependencies]\nserde = \"1\"\n")

	state, err = ManifestGitState(root)
	require.NoError(t, err)
	assert.Equal(t, GitModified, state)
}
