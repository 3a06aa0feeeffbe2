package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sofmeright/cratehand/src/dependency"
)

var (
	addDev      bool
	addFeatures string
	addVersion  string
)

var dependencyAddCmd = &cobra.Command{
	Use:   "add [names...]",
	Short: "Add dependencies",
	Long: `Add one or more dependencies with cargo add.

Without names you are prompted for a comma separated list. Without --features,
well-known crates offer a list of suggested features to pick from.`,
	RunE: runDependencyAdd,
}

func init() {
	dependencyAddCmd.Flags().BoolVarP(&addDev, "dev", "d", false, "add as development dependencies")
	dependencyAddCmd.Flags().StringVarP(&addFeatures, "features", "f", "", "comma separated features to enable")
	dependencyAddCmd.Flags().StringVar(&addVersion, "version", "", "version requirement")

	dependencyCmd.AddCommand(dependencyAddCmd)
}

func runDependencyAdd(cmd *cobra.Command, args []string) error {
	return newService().Add(cmd.Context(), dependency.AddRequest{
		Path:        depPath,
		Names:       args,
		Dev:         addDev,
		Features:    addFeatures,
		HasFeatures: cmd.Flags().Changed("features"),
		Version:     addVersion,
	})
}
