package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aimsgen",
	Short: "A CLI and TUI for generating student course workspaces",
	Long: `aimsgen turns lists of students and courses into an organized workspace:
one folder per student, one subfolder per course, each with a README,
ready to review as a tree or share as a zip archive.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
