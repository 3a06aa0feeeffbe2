package dependency

import (
	"context"
	"fmt"

	"github.com/sofmeright/cratehand/src/cargo"
	"github.com/sofmeright/cratehand/src/manifest"
	"github.com/sofmeright/cratehand/src/output"
)

// AuditStatus summarizes the security audit step of analyze.
type AuditStatus string

const (
	AuditClean         AuditStatus = "clean"          // audit ran, exit 0
	AuditWarned        AuditStatus = "warned"         // audit ran, reported findings
	AuditFailed        AuditStatus = "failed"         // audit could not be started
	AuditSkipped       AuditStatus = "skipped"        // helper absent, install declined
	AuditInstallFailed AuditStatus = "install failed" // helper absent, install failed
	AuditUnavailable   AuditStatus = "unavailable"    // installed but still not runnable
)

// Analysis is the outcome of an analyze run.
type Analysis struct {
	Manifest      string
	Snapshot      manifest.Snapshot
	ManifestErr   error
	Toolchain     string // cargo version, or the raw --version line
	TreeOK        bool
	HelperPresent bool // audit helper found by the first probe
	Installed     bool // helper installed during this run
	Audit         AuditStatus
}

// Analyze prints the dependency tree and a security audit. Every step is
// best-effort: tool failures become warnings and only a missing project,
// a prompt error or cancellation fail the command.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (*Analysis, error) {
	root, tool, err := s.locate(req.Path)
	if err != nil {
		return nil, err
	}

	a := &Analysis{Manifest: root.ManifestPath()}
	helper := tool.Helper()

	s.Report.Progress("Analyzing dependencies...")

	a.HelperPresent = tool.AuditAvailable(ctx)
	installAttempted := false
	if !a.HelperPresent {
		s.Report.Warn("%s is not installed. It's recommended for security analysis.", helper)
		s.logger().Debug("audit probe failed", "helper", helper, "error", ErrToolUnavailable)

		install, err := s.Prompter.Confirm(ctx, fmt.Sprintf("Would you like to install %s?", helper), false)
		if err != nil {
			return nil, fmt.Errorf("confirming install: %w", err)
		}
		if install {
			installAttempted = true
			s.Report.Progress("Installing %s...", helper)
			if err := tool.InstallAuditHelper(ctx); err != nil {
				s.logger().Debug("install failed", "error", err)
				s.Report.Warn("Failed to install %s: Check your internet connection and try again", helper)
			} else {
				a.Installed = true
				s.Report.Success("Successfully installed %s", helper)
			}
		} else {
			s.Report.Info("Skipping %s installation.", helper)
		}
	}

	s.Report.Heading("Dependency tree:")
	tree, err := tool.Tree(ctx)
	switch {
	case err != nil:
		s.Report.Warn("Could not run cargo tree: %v", err)
	case !tree.Success():
		s.Report.Raw(tree.Stdout)
		s.Report.Warn("cargo tree exited with status %d", tree.ExitCode)
		s.Report.Raw(tree.Stderr)
	default:
		a.TreeOK = true
		s.Report.Raw(tree.Stdout)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch {
	case a.HelperPresent || tool.AuditAvailable(ctx):
		a.Audit = s.runAudit(ctx, tool)
	case installAttempted && !a.Installed:
		a.Audit = AuditInstallFailed
	case a.Installed:
		a.Audit = AuditUnavailable
	default:
		a.Audit = AuditSkipped
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.Toolchain = s.toolchain(ctx, tool)
	a.Snapshot, a.ManifestErr = manifest.Read(root.ManifestPath())
	if a.ManifestErr != nil {
		s.logger().Debug("manifest summary unavailable", "error", a.ManifestErr)
	}

	s.summarize(a)
	return a, nil
}

func (s *Service) runAudit(ctx context.Context, tool *cargo.Tool) AuditStatus {
	s.Report.Heading("Security audit:")
	res, err := tool.Audit(ctx)
	if err != nil {
		s.Report.Warn("Could not run cargo audit: %v", err)
		return AuditFailed
	}
	if !res.Success() {
		s.Report.Warn("Security vulnerabilities found in your dependencies. Please review and update.")
		return AuditWarned
	}
	return AuditClean
}

func (s *Service) toolchain(ctx context.Context, tool *cargo.Tool) string {
	line, err := tool.Version(ctx)
	if err != nil {
		s.logger().Debug("toolchain probe failed", "error", err)
		return "unknown"
	}
	v, err := cargo.ParseToolchainVersion(line)
	if err != nil {
		return line
	}
	return v.String()
}

func (s *Service) summarize(a *Analysis) {
	sec := s.Report.Section("Analyze")
	sec.KV("manifest", output.Dimmed(a.Manifest, s.Report.Color))
	if a.ManifestErr != nil {
		sec.Status("dependencies", "unreadable", "failed")
	} else {
		for _, c := range []manifest.Category{manifest.Regular, manifest.Dev, manifest.Build} {
			sec.KV(c.Table(), fmt.Sprintf("%d", len(a.Snapshot.In(c))))
		}
	}
	sec.Separator()
	sec.KV("cargo", a.Toolchain)

	treeStatus := "success"
	if !a.TreeOK {
		treeStatus = "warning"
	}
	sec.Status("tree", "", treeStatus)

	helper := string(a.Audit)
	if a.Installed {
		helper += " (installed now)"
	}
	sec.Status("audit", helper, auditIcon(a.Audit))
	sec.Close()
}

func auditIcon(st AuditStatus) string {
	switch st {
	case AuditClean:
		return "success"
	case AuditWarned:
		return "warning"
	case AuditFailed, AuditInstallFailed, AuditUnavailable:
		return "failed"
	default:
		return "skipped"
	}
}
