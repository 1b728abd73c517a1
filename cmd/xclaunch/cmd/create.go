package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
	"xclaunch/internal/config"
)

var (
	createCategoryParent string
	createGroupCategory  string
	createGroupShortcut  string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new category or group folder",
}

var createCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "Create a category folder",
	Long: `Create a new folder and register it as a category. The folder goes in
--parent, or in categories.parent from the config file (~/Developer).

Examples:
  xclaunch create category Apps
  xclaunch create category Clients --parent ~/Work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := cfg.Categories.Parent
		if createCategoryParent != "" {
			parent = config.ExpandHome(createCategoryParent)
		}
		res, err := commands.NewCreateCategoryCommand(GetEnv(), args[0], parent).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

var createGroupCmd = &cobra.Command{
	Use:   "group <name>",
	Short: "Create a group folder inside a category",
	Long: `Create a new folder inside a category's folder and register it as a group.

Examples:
  xclaunch create group Weather --category Apps --shortcut w`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewCreateGroupCommand(GetEnv(), args[0], createGroupCategory, createGroupShortcut).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createCategoryCmd, createGroupCmd)

	createCategoryCmd.Flags().StringVarP(&createCategoryParent, "parent", "p", "", "directory for the new folder")

	createGroupCmd.Flags().StringVarP(&createGroupCategory, "category", "c", "", "category name (prompted when omitted)")
	createGroupCmd.Flags().StringVarP(&createGroupShortcut, "shortcut", "s", "", "group shortcut")
}
