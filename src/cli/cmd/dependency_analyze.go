package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/cratehand/src/dependency"
)

var dependencyAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Show the dependency tree and run a security audit",
	Long: `Print the dependency tree and audit it with cargo audit.

If the audit helper is missing you are offered to install it. Tool failures
are reported as warnings; only a missing project fails the command.`,
	Args: cobra.NoArgs,
	RunE: runDependencyAnalyze,
}

func init() {
	dependencyCmd.AddCommand(dependencyAnalyzeCmd)
}

func runDependencyAnalyze(cmd *cobra.Command, args []string) error {
	_, err := newService().Analyze(cmd.Context(), dependency.AnalyzeRequest{Path: depPath})
	return err
}
