package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/cratehand/src/dependency"
)

var dependencyRemoveCmd = &cobra.Command{
	Use:   "remove [names...]",
	Short: "Remove dependencies",
	Long: `Remove one or more dependencies with cargo remove.

Without names you pick from the dependencies declared in the manifest.`,
	RunE: runDependencyRemove,
}

func init() {
	dependencyCmd.AddCommand(dependencyRemoveCmd)
}

func runDependencyRemove(cmd *cobra.Command, args []string) error {
	return newService().Remove(cmd.Context(), dependency.RemoveRequest{
		Path:  depPath,
		Names: args,
	})
}
