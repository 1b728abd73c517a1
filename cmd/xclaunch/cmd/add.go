package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
	"xclaunch/internal/config"
)

var (
	addCategoryName    string
	addCategoryParent  string
	addGroupCategory   string
	addGroupShortcut   string
	addProjectGroup    string
	addProjectShortcut string
	addProjectMain     bool
	addLinkName        string
	addLinkURL         string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Register an existing folder or a link",
	Long: `Register an existing folder as a category, group or project, or attach
a link to a project.

Folders that do not sit under their parent's folder are moved there.`,
}

var addCategoryCmd = &cobra.Command{
	Use:   "category <folder>",
	Short: "Register a folder as a category",
	Long: `Register an existing folder as a category. The name defaults to the
folder name. With --parent the folder is moved into that directory first.

Examples:
  xclaunch add category ~/Developer/Apps
  xclaunch add category ./clients --name Clients --parent ~/Developer`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := addCategoryParent
		if parent != "" {
			parent = config.ExpandHome(parent)
		}
		res, err := commands.NewAddCategoryCommand(GetEnv(), config.ExpandHome(args[0]), addCategoryName, parent).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

var addGroupCmd = &cobra.Command{
	Use:   "group <folder>",
	Short: "Register a folder as a group of a category",
	Long: `Register an existing folder as a group. The group is named after the
folder, which is moved into the category's folder when it lives elsewhere.

Examples:
  xclaunch add group ~/Downloads/Weather --category Apps --shortcut w
  xclaunch add group ./Weather`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewAddGroupCommand(GetEnv(), config.ExpandHome(args[0]), addGroupCategory, addGroupShortcut).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

var addProjectCmd = &cobra.Command{
	Use:   "project <folder>",
	Short: "Register an Xcode project or Swift package",
	Long: `Register a folder holding a Package.swift or an .xcodeproj as a project
of a group. The folder is moved into the group's folder when needed and its
git remote is recorded when one is configured.

With --main the project becomes the group's main project and shares its
shortcut.

Examples:
  xclaunch add project ./WeatherApp --group Weather --main
  xclaunch add project ~/src/WeatherKit --group w --shortcut wk`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewAddProjectCommand(GetEnv(), config.ExpandHome(args[0]), addProjectGroup, addProjectShortcut, addProjectMain).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

var addLinkCmd = &cobra.Command{
	Use:   "link [project]",
	Short: "Attach a named URL to a project",
	Long: `Attach a named URL (issue tracker, designs, CI...) to a project.
Names entered once are offered again for later links.

Examples:
  xclaunch add link WeatherApp
  xclaunch add link w --name Jira --url https://jira.example.com/WEA`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := commands.NewAddLinkCommand(GetEnv(), argOrEmpty(args), addLinkName, addLinkURL).
			Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Println(res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addCategoryCmd, addGroupCmd, addProjectCmd, addLinkCmd)

	addCategoryCmd.Flags().StringVarP(&addCategoryName, "name", "n", "", "category name (default: folder name)")
	addCategoryCmd.Flags().StringVarP(&addCategoryParent, "parent", "p", "", "move the folder into this directory")

	addGroupCmd.Flags().StringVarP(&addGroupCategory, "category", "c", "", "category name (prompted when omitted)")
	addGroupCmd.Flags().StringVarP(&addGroupShortcut, "shortcut", "s", "", "group shortcut")

	addProjectCmd.Flags().StringVarP(&addProjectGroup, "group", "g", "", "group name or shortcut (prompted when omitted)")
	addProjectCmd.Flags().StringVarP(&addProjectShortcut, "shortcut", "s", "", "project shortcut")
	addProjectCmd.Flags().BoolVarP(&addProjectMain, "main", "m", false, "make it the group's main project")

	addLinkCmd.Flags().StringVarP(&addLinkName, "name", "n", "", "link name (prompted when omitted)")
	addLinkCmd.Flags().StringVarP(&addLinkURL, "url", "u", "", "link URL (prompted when omitted)")
}

func argOrEmpty(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
