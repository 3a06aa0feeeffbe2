package cmd

import (
	"github.com/spf13/cobra"
)

var depPath string

var dependencyCmd = &cobra.Command{
	Use:     "dependency",
	Aliases: []string{"deps"},
	Short:   "Dependency management commands",
	Long:    "Add, remove, update, and audit the dependencies of a Cargo project.",
}

func init() {
	dependencyCmd.PersistentFlags().StringVarP(&depPath, "path", "p", ".", "project directory")

	rootCmd.AddCommand(dependencyCmd)
}
