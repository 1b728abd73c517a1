package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
)

var (
	openRemote bool
	openLink   bool
	openGroup  bool
)

var openCmd = &cobra.Command{
	Use:   "open [name|shortcut]",
	Short: "Open a project in Xcode, its remote or one of its links",
	Long: `Open a project file in the IDE and run the launch script, if one is set.
A project whose folder was evicted is cloned again from its remote first.

With --group the argument names a group (by shortcut or name) and the project
is picked among that group's projects.

Examples:
  xclaunch open w
  xclaunch open WeatherKit --remote
  xclaunch open w --group
  xclaunch open --link`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if openRemote && openLink {
			return fmt.Errorf("--remote and --link cannot be combined")
		}

		mode := commands.OpenInIDE
		switch {
		case openRemote:
			mode = commands.OpenRemote
		case openLink:
			mode = commands.OpenLink
		}

		res, err := commands.NewOpenCommand(GetEnv(), argOrEmpty(args), mode, openGroup).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().BoolVarP(&openRemote, "remote", "r", false, "open the git remote in the browser")
	openCmd.Flags().BoolVarP(&openLink, "link", "l", false, "open one of the project's links")
	openCmd.Flags().BoolVarP(&openGroup, "group", "g", false, "resolve the argument as a group and pick one of its projects")
}
