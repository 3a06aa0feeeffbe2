package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/cratehand/src/dependency"
)

var dependencyUpdateCmd = &cobra.Command{
	Use:   "update [names...]",
	Short: "Update dependencies",
	Long: `Update dependencies in the lock file with cargo update.

Without names every dependency is updated in a single run.`,
	RunE: runDependencyUpdate,
}

func init() {
	dependencyCmd.AddCommand(dependencyUpdateCmd)
}

func runDependencyUpdate(cmd *cobra.Command, args []string) error {
	return newService().Update(cmd.Context(), dependency.UpdateRequest{
		Path:  depPath,
		Names: args,
	})
}
