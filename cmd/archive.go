package cmd

import (
	"fmt"
	"os"

	"github.com/Mutie886/aims-directory-generator/pkg/archive"
	"github.com/Mutie886/aims-directory-generator/pkg/config"

	"github.com/spf13/cobra"
)

var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Pack an existing workspace into a zip archive",
	Long:  `Create a downloadable zip of the workspace directory with paths relative to its root. The workspace itself is left untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetString("root")
		output, _ := cmd.Flags().GetString("output")

		if root == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			root = cfg.WorkspaceName()
		}

		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return fmt.Errorf("workspace %s does not exist, run generate first", root)
		}

		if output == "" {
			name, err := archive.Pack(root)
			if err != nil {
				return fmt.Errorf("failed to create archive: %w", err)
			}
			fmt.Printf("Created %s\n", name)
			return nil
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := archive.WriteTo(root, file); err != nil {
			return fmt.Errorf("failed to create archive: %w", err)
		}
		fmt.Printf("Created %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringP("root", "r", "", "Workspace folder to pack (default from config)")
	archiveCmd.Flags().StringP("output", "o", "", "Archive file path (default '{root}.zip')")
}
