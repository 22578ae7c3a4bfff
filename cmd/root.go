package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kennyg/scribe/internal/ui"
)

var (
	// Version is set at build time
	Version = "dev"

	// rootDir is the skills root every command discovers descriptors under.
	// It is an explicit flag, never derived from the binary's own location.
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Skill Document Generator",
	Long: ui.Logo() + `
  Validate skill descriptors, render their definition and rule
  documents, and install them into your assistant's configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "skills", "Root directory to discover skill descriptors under")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scribe %s\n", Version)
	},
}

// exitWithError prints an error and exits with the usage error code
func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, ui.Render(ui.Error, "Error: "+msg))
	os.Exit(1)
}
