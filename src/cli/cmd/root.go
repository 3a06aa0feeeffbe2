package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/sofmeright/cratehand/src/cargo"
	"github.com/sofmeright/cratehand/src/config"
	"github.com/sofmeright/cratehand/src/dependency"
	"github.com/sofmeright/cratehand/src/features"
	"github.com/sofmeright/cratehand/src/output"
	"github.com/sofmeright/cratehand/src/prompt"
)

var (
	cfgFile string
	verbose bool
	noColor bool
	cfg     *config.Config
	logger  = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "cratehand",
	Short: "Cargo dependency lifecycle CLI",
	Long:  "cratehand adds, removes, updates and audits the dependencies of a Rust project.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verbose)

		// Skip config loading for commands that don't need it.
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if noColor {
			cfg.Output.Color = config.ColorNever
		}
		logger.Debug("config loaded", "binary", cfg.Tool.Binary, "manifest", cfg.Tool.Manifest, "color", cfg.Output.Color)
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .cratehand.yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func colorMode() string {
	if noColor {
		return config.ColorNever
	}
	if cfg == nil {
		return config.ColorAuto
	}
	return cfg.Output.Color
}

// newService wires the dependency service to the real toolchain and terminal.
func newService() *dependency.Service {
	return &dependency.Service{
		Runner:         cargo.NewExecRunner(cfg.Tool.Binary, logger),
		Prompter:       prompt.NewTerminal(),
		Catalog:        features.Default(),
		Report:         output.NewReporter(output.UseColor(colorMode())),
		Logger:         logger,
		Manifest:       cfg.Tool.Manifest,
		AuditHelper:    cfg.Audit.Helper,
		WorktreeNotice: true,
	}
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		output.NewReporter(output.UseColor(colorMode())).Failure(err)
		return err
	}
	return nil
}
