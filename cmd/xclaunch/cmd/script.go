package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
)

var scriptCmd = &cobra.Command{
	Use:   "script",
	Short: "Manage the AppleScript run after opening a project",
}

var scriptShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the launch script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := commands.NewShowScriptCommand(GetEnv()).Execute(context.Background())
		if err != nil {
			return err
		}
		if script == "" {
			fmt.Println("No launch script set")
			return nil
		}
		fmt.Println(script)
		return nil
	},
}

var scriptSetCmd = &cobra.Command{
	Use:   "set <script>",
	Short: "Store the launch script",
	Long: `Store an AppleScript snippet that runs through osascript every time a
project is opened in the IDE.

Example:
  xclaunch script set 'tell application "Simulator" to activate'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewSetScriptCommand(GetEnv(), strings.Join(args, " ")).Execute(context.Background()))
	},
}

var scriptDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Clear the launch script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(commands.NewDeleteScriptCommand(GetEnv()).Execute(context.Background()))
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	scriptCmd.AddCommand(scriptShowCmd, scriptSetCmd, scriptDeleteCmd)
}
