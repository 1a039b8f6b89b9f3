package cmd

import (
	"fmt"

	"github.com/Mutie886/aims-directory-generator/pkg/config"
	"github.com/Mutie886/aims-directory-generator/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage aimsgen configuration",
	Long:  "View or edit your local configuration settings (default workspace name, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setWorkspace, _ := cmd.Flags().GetString("set-workspace")
		setColor, _ := cmd.Flags().GetString("set-color")

		if setWorkspace != "" || setColor != "" {
			if setWorkspace != "" {
				cfg.DefaultWorkspace = setWorkspace
			}
			if setColor != "" {
				cfg.AccentColor = setColor
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Printf("✅ Configuration saved (workspace: %s)\n", cfg.WorkspaceName())
			return nil
		}

		// If no flags are given, launch the interactive settings flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringP("set-workspace", "w", "", "Set the default workspace folder name")
	configCmd.Flags().String("set-color", "", "Set the accent color (lipgloss color or hex)")
}
