package dependency

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofmeright/cratehand/src/cargo"
	"github.com/sofmeright/cratehand/src/output"
	"github.com/sofmeright/cratehand/src/prompt"
)

// fakeRunner records invocations and fails any whose args match failOn.
type fakeRunner struct {
	calls   [][]string
	failOn  map[string]cargo.Result // key: strings.Join(args, " ")
	startOn map[string]error
	stdout  map[string]string
}

func (f *fakeRunner) Run(_ context.Context, inv cargo.Invocation) (cargo.Result, error) {
	f.calls = append(f.calls, inv.Args)
	key := strings.Join(inv.Args, " ")
	if err, ok := f.startOn[key]; ok {
		return cargo.Result{}, err
	}
	if res, ok := f.failOn[key]; ok {
		return res, nil
	}
	return cargo.Result{Stdout: f.stdout[key]}, nil
}

// scriptedPrompter answers prompts from canned responses and counts calls.
type scriptedPrompter struct {
	line     string
	lineErr  error
	picks    map[string][]int // label -> indices
	confirm  bool
	labels   []string
	selected [][]string
}

func (p *scriptedPrompter) Line(_ context.Context, label string) (string, error) {
	p.labels = append(p.labels, label)
	return p.line, p.lineErr
}

func (p *scriptedPrompter) Select(_ context.Context, label string, items []string) ([]int, error) {
	p.labels = append(p.labels, label)
	p.selected = append(p.selected, items)
	return p.picks[label], nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, label string, _ bool) (bool, error) {
	p.labels = append(p.labels, label)
	return p.confirm, nil
}

var _ prompt.Prompter = (*scriptedPrompter)(nil)

type harness struct {
	svc    *Service
	runner *fakeRunner
	prompt *scriptedPrompter
	out    *bytes.Buffer
	dir    string
}

func newHarness(t *testing.T, manifest string) *harness {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o644))

	h := &harness{
		runner: &fakeRunner{failOn: map[string]cargo.Result{}, startOn: map[string]error{}, stdout: map[string]string{}},
		prompt: &scriptedPrompter{picks: map[string][]int{}},
		out:    &bytes.Buffer{},
		dir:    dir,
	}
	h.svc = &Service{
		Runner:      h.runner,
		Prompter:    h.prompt,
		Report:      &output.Reporter{Writer: h.out, ErrWriter: h.out},
		Manifest:    "Cargo.toml",
		AuditHelper: "cargo-audit",
	}
	return h
}

const basicManifest = "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n"

func TestCommandsRejectNonProject(t *testing.T) {
	h := newHarness(t, basicManifest)
	empty := t.TempDir()
	ctx := context.Background()

	assert.ErrorIs(t, h.svc.Add(ctx, AddRequest{Path: empty, Names: []string{"serde"}}), ErrNotAProject)
	assert.ErrorIs(t, h.svc.Remove(ctx, RemoveRequest{Path: empty}), ErrNotAProject)
	assert.ErrorIs(t, h.svc.Update(ctx, UpdateRequest{Path: empty}), ErrNotAProject)
	_, err := h.svc.Analyze(ctx, AnalyzeRequest{Path: empty})
	assert.ErrorIs(t, err, ErrNotAProject)

	assert.Empty(t, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
}

func TestAddExplicitFeaturesSkipsPrompt(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Add(context.Background(), AddRequest{
		Path:        h.dir,
		Names:       []string{"serde"},
		Features:    "derive",
		HasFeatures: true,
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "serde", "--features", "derive"}}, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
	assert.Contains(t, h.out.String(), "Successfully added: serde")
}

func TestAddSuggestedFeatures(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.prompt.picks["Suggested features for tokio:"] = []int{1, 3}

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"tokio"}})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "tokio", "--features", "rt,macros"}}, h.runner.calls)
	assert.Equal(t, []string{"full", "rt", "rt-multi-thread", "macros", "io-util", "time"}, h.prompt.selected[0])
}

func TestAddUnknownCrateHasNoFeatures(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"anyhow"}, Dev: true, Version: "1.0"})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "anyhow", "--dev", "--version", "1.0"}}, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
}

func TestAddEmptySuggestionHasNoFeatures(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"serde"}})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "serde"}}, h.runner.calls)
	assert.Equal(t, []string{"Suggested features for serde:"}, h.prompt.labels)
}

func TestAddExplicitEmptyFeaturesBypassSuggestion(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"tokio"}, HasFeatures: true})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "tokio"}}, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
}

func TestAddExplicitNamesInOrder(t *testing.T) {
	h := newHarness(t, basicManifest)

	names := []string{"serde", "anyhow", "log"}
	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: names, Features: "std", HasFeatures: true})
	require.NoError(t, err)

	require.Len(t, h.runner.calls, 3)
	for i, name := range names {
		assert.Equal(t, []string{"add", name, "--features", "std"}, h.runner.calls[i])
	}
}

func TestAddPromptsForNames(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.prompt.line = " anyhow , ,log,"

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"add", "anyhow"}, {"add", "log"}}, h.runner.calls)
	assert.Equal(t, "Enter dependencies to add (comma separated)", h.prompt.labels[0])
}

func TestAddPromptYieldsNothing(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.prompt.line = " , "

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir})
	assert.ErrorIs(t, err, ErrNoDependenciesSpecified)
	assert.Empty(t, h.runner.calls)
}

func TestAddPromptError(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.prompt.lineErr = prompt.ErrAborted

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir})
	assert.ErrorIs(t, err, prompt.ErrAborted)
	assert.Empty(t, h.runner.calls)
}

func TestAddBatchStopsAtFirstFailure(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.runner.failOn["add b"] = cargo.Result{ExitCode: 101, Stderr: "error: crate b not found\n"}

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"a", "b", "c"}})
	require.ErrorIs(t, err, ErrExternalToolFailed)
	assert.Contains(t, err.Error(), "crate b not found")

	assert.Equal(t, [][]string{{"add", "a"}, {"add", "b"}}, h.runner.calls)
	assert.Contains(t, h.out.String(), "Successfully added: a")
	assert.NotContains(t, h.out.String(), "Successfully added: b")
	assert.NotContains(t, h.out.String(), "Adding dependency: c")
}

func TestAddStartFailureIsToolFailure(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.runner.startOn["add serde"] = errors.New("exec: \"cargo\": executable file not found in $PATH")

	err := h.svc.Add(context.Background(), AddRequest{Path: h.dir, Names: []string{"serde"}, HasFeatures: true})
	assert.ErrorIs(t, err, ErrExternalToolFailed)
}

func TestRemoveExplicitNames(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir, Names: []string{"serde", "log"}})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"remove", "serde"}, {"remove", "log"}}, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
}

func TestRemoveBatchStopsAtFirstFailure(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.runner.failOn["remove b"] = cargo.Result{ExitCode: 1, Stderr: "error: the dependency `b` could not be found"}

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir, Names: []string{"a", "b", "c"}})
	require.ErrorIs(t, err, ErrExternalToolFailed)
	assert.Len(t, h.runner.calls, 2)
}

func TestRemoveSelectsFromManifest(t *testing.T) {
	h := newHarness(t, `dependencies = { a = "1", b = "2" }
dev-dependencies = { c = "1" }
`)
	h.prompt.picks["Select dependencies to remove"] = []int{0, 2}

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, h.prompt.selected[0])
	assert.Equal(t, [][]string{{"remove", "a"}, {"remove", "c"}}, h.runner.calls)
}

func TestRemoveEmptySelectionIsNoop(t *testing.T) {
	h := newHarness(t, "[dependencies]\nserde = \"1\"\n")

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir})
	require.NoError(t, err)

	assert.Empty(t, h.runner.calls)
	assert.Contains(t, h.out.String(), "nothing removed")
}

func TestRemoveEmptyManifest(t *testing.T) {
	h := newHarness(t, basicManifest+"[dependencies]\n")

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir})
	assert.ErrorIs(t, err, ErrNoDependenciesFound)
	assert.Empty(t, h.runner.calls)
	assert.Empty(t, h.prompt.labels)
}

func TestRemoveMalformedManifest(t *testing.T) {
	h := newHarness(t, "[dependencies\n")

	err := h.svc.Remove(context.Background(), RemoveRequest{Path: h.dir})
	assert.ErrorIs(t, err, ErrManifestMalformed)
	assert.Empty(t, h.runner.calls)
}

func TestUpdateAllIsSingleBulkInvocation(t *testing.T) {
	h := newHarness(t, "[dependencies]\nserde = \"1\"\nlog = \"0.4\"\n")

	err := h.svc.Update(context.Background(), UpdateRequest{Path: h.dir})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"update"}}, h.runner.calls)
	assert.Contains(t, h.out.String(), "Successfully updated all dependencies")
}

func TestUpdateExplicitNames(t *testing.T) {
	h := newHarness(t, basicManifest)

	err := h.svc.Update(context.Background(), UpdateRequest{Path: h.dir, Names: []string{"serde", "log"}})
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"update", "serde"}, {"update", "log"}}, h.runner.calls)
}

func TestUpdateBatchStopsAtFirstFailure(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.runner.failOn["update b"] = cargo.Result{ExitCode: 101, Stderr: "error: package ID specification `b` did not match any packages"}

	err := h.svc.Update(context.Background(), UpdateRequest{Path: h.dir, Names: []string{"a", "b", "c"}})
	require.ErrorIs(t, err, ErrExternalToolFailed)
	assert.Equal(t, [][]string{{"update", "a"}, {"update", "b"}}, h.runner.calls)
}

func TestUpdateAllFailure(t *testing.T) {
	h := newHarness(t, basicManifest)
	h.runner.failOn["update"] = cargo.Result{ExitCode: 101, Stderr: "error: failed to load source"}

	err := h.svc.Update(context.Background(), UpdateRequest{Path: h.dir})
	require.ErrorIs(t, err, ErrExternalToolFailed)
	assert.Equal(t, "failed to update dependencies: error: failed to load source", err.Error())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitList(" a, ,b ,"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , "))
}
