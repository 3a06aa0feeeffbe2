// Package cargo invokes the external package-management tool.
//
// Every call goes through a Runner so argument sequencing and failure
// handling can be exercised without cargo installed.
package cargo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
)

// Mode selects how a child's output streams are wired.
type Mode int

const (
	// Capture buffers stdout and stderr into the Result.
	Capture Mode = iota
	// Stream connects the child directly to the user's terminal.
	Stream
	// Discard drops all output; only the exit status matters.
	Discard
)

func (m Mode) String() string {
	switch m {
	case Stream:
		return "stream"
	case Discard:
		return "discard"
	default:
		return "capture"
	}
}

// Invocation describes one child process.
type Invocation struct {
	Args []string
	Dir  string
	Mode Mode
}

// Result is the outcome of a child process that ran to completion.
type Result struct {
	ExitCode int
	Stdout   string // empty unless Mode is Capture
	Stderr   string // empty unless Mode is Capture
}

// Success reports whether the child exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes invocations. A non-nil error means the child could not be
// run at all; a non-zero exit is reported through Result.
type Runner interface {
	Run(ctx context.Context, inv Invocation) (Result, error)
}

// ExecRunner runs Binary as a real child process and blocks until it exits.
type ExecRunner struct {
	Binary string
	Stdout io.Writer // Stream target (default os.Stdout)
	Stderr io.Writer // Stream target (default os.Stderr)
	Logger *slog.Logger
}

// NewExecRunner returns a runner for binary wired to the process's stdio.
func NewExecRunner(binary string, logger *slog.Logger) *ExecRunner {
	return &ExecRunner{
		Binary: binary,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	}
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) (Result, error) {
	if r.Logger != nil {
		r.Logger.Debug("running", "binary", r.Binary, "args", inv.Args, "dir", inv.Dir, "mode", inv.Mode.String())
	}

	cmd := exec.CommandContext(ctx, r.Binary, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Env = os.Environ() // inherit CARGO_HOME, registry tokens, proxies

	var stdout, stderr bytes.Buffer
	switch inv.Mode {
	case Capture:
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	case Stream:
		cmd.Stdin = os.Stdin
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	case Discard:
		// nil writers discard
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode() // -1 when killed by a signal
	default:
		return res, fmt.Errorf("running %s: %w", r.Binary, err)
	}

	if r.Logger != nil {
		r.Logger.Debug("finished", "binary", r.Binary, "args", inv.Args, "exit", res.ExitCode)
	}
	return res, nil
}
