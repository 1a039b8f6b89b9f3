package cmd

import (
	"fmt"

	"github.com/Mutie886/aims-directory-generator/pkg/config"
	"github.com/Mutie886/aims-directory-generator/pkg/workspace"

	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the generated workspace as a directory tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, _ := cmd.Flags().GetString("root")

		if root == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			root = cfg.WorkspaceName()
		}

		fmt.Println(workspace.RenderTree(root))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)

	treeCmd.Flags().StringP("root", "r", "", "Workspace folder to render (default from config)")
}
