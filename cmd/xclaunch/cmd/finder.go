package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
	"xclaunch/internal/domain"
)

var finderCopy bool

var finderCmd = &cobra.Command{
	Use:   "finder",
	Short: "Reveal a category, group or project folder in Finder",
	Long: `Reveal a folder in Finder, or copy its path with --copy. Without a
name the registry tree is shown to pick from.

Examples:
  xclaunch finder project w
  xclaunch finder group --copy`,
}

func finderRun(kind domain.NodeKind) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewFinderCommand(GetEnv(), kind, argOrEmpty(args), finderCopy).Execute(context.Background()))
	}
}

var finderCategoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "Reveal a category folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  finderRun(domain.NodeCategory),
}

var finderGroupCmd = &cobra.Command{
	Use:   "group [name|shortcut]",
	Short: "Reveal a group folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  finderRun(domain.NodeGroup),
}

var finderProjectCmd = &cobra.Command{
	Use:   "project [name|shortcut]",
	Short: "Reveal a project folder",
	Args:  cobra.MaximumNArgs(1),
	RunE:  finderRun(domain.NodeProject),
}

func init() {
	rootCmd.AddCommand(finderCmd)
	finderCmd.AddCommand(finderCategoryCmd, finderGroupCmd, finderProjectCmd)
	finderCmd.PersistentFlags().BoolVarP(&finderCopy, "copy", "c", false, "copy the path instead of revealing it")
}
