package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version is the CLI's own version string, set by build flags.
	Version = "0.1.0-dev"
)

var rootCmd = &cobra.Command{
	Use:   "spin",
	Short: "Spin interpreter",
	Long: `spin is a tree-walking interpreter for the Spin language: a
small imperative language with bra/ket quantum notation built into its
expression grammar alongside the usual scalars, arrays, and classes.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate("{{with .Name}}{{printf \"%s \" .}}{{end}}{{printf \"version %s\" .Version}}\n")
}
