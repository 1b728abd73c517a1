package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Unregister a category, group, project or link",
	Long: `Unregister entities. Removing a category or group removes everything
below it. Folders are never deleted; use evict to free disk space.`,
}

var removeCategoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "Unregister a category with its groups and projects",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewRemoveCategoryCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background()))
	},
}

var removeGroupCmd = &cobra.Command{
	Use:   "group [name|shortcut]",
	Short: "Unregister a group with its projects",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewRemoveGroupCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background()))
	},
}

var removeProjectCmd = &cobra.Command{
	Use:   "project [name|shortcut]",
	Short: "Unregister a project",
	Long: `Unregister a project. When it is its group's main project another
project of the group has to take over the group shortcut.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewRemoveProjectCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background()))
	},
}

var removeLinkCmd = &cobra.Command{
	Use:   "link [project]",
	Short: "Remove one of a project's links",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewRemoveLinkCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background()))
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.AddCommand(removeCategoryCmd, removeGroupCmd, removeProjectCmd, removeLinkCmd)
}

func printResult(res *commands.Result, err error) error {
	if err != nil {
		return err
	}
	fmt.Println(res.Message)
	return nil
}
