package cargo

import (
	"context"
	"fmt"
	"strings"
)

// AddOptions are the flags of one "cargo add" invocation.
type AddOptions struct {
	Name     string
	Dev      bool
	Features []string
	Version  string
}

// AddArgs builds: add <name> [--dev] [--features <csv>] [--version <v>].
// --features is omitted when Features is empty.
func AddArgs(opts AddOptions) []string {
	args := []string{"add", opts.Name}
	if opts.Dev {
		args = append(args, "--dev")
	}
	if len(opts.Features) > 0 {
		args = append(args, "--features", strings.Join(opts.Features, ","))
	}
	if opts.Version != "" {
		args = append(args, "--version", opts.Version)
	}
	return args
}

// Tool issues cargo commands against one project directory.
type Tool struct {
	runner Runner
	dir    string
	helper string
}

// NewTool returns a Tool running in dir. helper is the audit subcommand crate
// offered for installation (normally "cargo-audit").
func NewTool(r Runner, dir, helper string) *Tool {
	return &Tool{runner: r, dir: dir, helper: helper}
}

// Helper returns the audit helper crate name.
func (t *Tool) Helper() string {
	return t.helper
}

// Add runs cargo add.
func (t *Tool) Add(ctx context.Context, opts AddOptions) error {
	return t.mutate(ctx, "add", opts.Name, AddArgs(opts))
}

// Remove runs cargo remove <name>.
func (t *Tool) Remove(ctx context.Context, name string) error {
	return t.mutate(ctx, "remove", name, []string{"remove", name})
}

// Update runs cargo update <name>.
func (t *Tool) Update(ctx context.Context, name string) error {
	return t.mutate(ctx, "update", name, []string{"update", name})
}

// UpdateAll runs a bare cargo update.
func (t *Tool) UpdateAll(ctx context.Context) error {
	return t.mutate(ctx, "update", "", []string{"update"})
}

func (t *Tool) mutate(ctx context.Context, action, target string, args []string) error {
	res, err := t.runner.Run(ctx, Invocation{Args: args, Dir: t.dir, Mode: Capture})
	if err != nil {
		return &ToolError{Action: action, Target: target, ExitCode: -1, Err: err}
	}
	if !res.Success() {
		return &ToolError{Action: action, Target: target, ExitCode: res.ExitCode, Stderr: res.Stderr}
	}
	return nil
}

// Tree runs cargo tree and returns its captured output.
func (t *Tool) Tree(ctx context.Context) (Result, error) {
	res, err := t.runner.Run(ctx, Invocation{Args: []string{"tree"}, Dir: t.dir, Mode: Capture})
	if err != nil {
		return res, fmt.Errorf("running cargo tree: %w", err)
	}
	return res, nil
}

// AuditAvailable probes "cargo audit --version" with output suppressed.
// Any failure, including a missing cargo, reads as unavailable.
func (t *Tool) AuditAvailable(ctx context.Context) bool {
	res, err := t.runner.Run(ctx, Invocation{Args: []string{"audit", "--version"}, Dir: t.dir, Mode: Discard})
	return err == nil && res.Success()
}

// InstallAuditHelper streams "cargo install <helper>" to the terminal.
func (t *Tool) InstallAuditHelper(ctx context.Context) error {
	res, err := t.runner.Run(ctx, Invocation{Args: []string{"install", t.helper}, Dir: t.dir, Mode: Stream})
	if err != nil {
		return fmt.Errorf("installing %s: %w", t.helper, err)
	}
	if !res.Success() {
		return fmt.Errorf("installing %s: exit status %d", t.helper, res.ExitCode)
	}
	return nil
}

// Audit streams "cargo audit" to the terminal. A non-zero exit is reported
// in the Result, not as an error.
func (t *Tool) Audit(ctx context.Context) (Result, error) {
	res, err := t.runner.Run(ctx, Invocation{Args: []string{"audit"}, Dir: t.dir, Mode: Stream})
	if err != nil {
		return res, fmt.Errorf("running cargo audit: %w", err)
	}
	return res, nil
}

// Version runs "cargo --version" and returns its first output line.
func (t *Tool) Version(ctx context.Context) (string, error) {
	res, err := t.runner.Run(ctx, Invocation{Args: []string{"--version"}, Dir: t.dir, Mode: Capture})
	if err != nil {
		return "", fmt.Errorf("running cargo --version: %w", err)
	}
	if !res.Success() {
		return "", fmt.Errorf("cargo --version: exit status %d", res.ExitCode)
	}
	line, _, _ := strings.Cut(strings.TrimSpace(res.Stdout), "\n")
	return line, nil
}
