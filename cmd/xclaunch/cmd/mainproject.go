package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
)

var setMainShortcut string

var setMainProjectCmd = &cobra.Command{
	Use:   "set-main-project [name|shortcut]",
	Short: "Make a project the main project of its group",
	Long: `Make a project its group's main project. The group and the project
then share one shortcut; the previous main project loses it.

When both already have a different shortcut you are asked which one to keep.

Examples:
  xclaunch set-main-project WeatherKit
  xclaunch set-main-project WeatherKit --shortcut wk`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewSetMainProjectCommand(GetEnv(), argOrEmpty(args), setMainShortcut).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setMainProjectCmd)
	setMainProjectCmd.Flags().StringVarP(&setMainShortcut, "shortcut", "s", "", "shortcut shared by the group and the project")
}
