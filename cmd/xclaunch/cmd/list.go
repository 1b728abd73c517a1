package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"xclaunch/internal/application/commands"
	"xclaunch/internal/domain"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show registered categories, groups and projects",
	Long: `Show the whole registry as a tree, or one level of it.

Examples:
  xclaunch list
  xclaunch list category
  xclaunch list group Apps
  xclaunch list project w`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := commands.NewListTreeCommand(GetEnv()).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(root.Children) == 0 {
			fmt.Println("Nothing registered yet")
			return nil
		}
		for _, child := range root.Children {
			printTree(child, 0)
		}
		return nil
	},
}

var listCategoryCmd = &cobra.Command{
	Use:   "category",
	Short: "List categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		categories, err := commands.NewListCategoriesCommand(GetEnv()).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, c := range categories {
			fmt.Printf("%s\t%s\n", c.Name, c.Path)
		}
		return nil
	},
}

var listGroupCmd = &cobra.Command{
	Use:   "group [category]",
	Short: "List groups, optionally of one category",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		groups, err := commands.NewListGroupsCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%s\t%s\t%s\n", g.Name, orDash(g.Shortcut), g.CategoryName)
		}
		return nil
	},
}

var listProjectCmd = &cobra.Command{
	Use:   "project [group]",
	Short: "List projects, optionally of one group",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := commands.NewListProjectsCommand(GetEnv(), argOrEmpty(args)).Execute(context.Background())
		if err != nil {
			return err
		}
		for _, p := range projects {
			marker := ""
			if p.IsMain() {
				marker = "\tmain"
			}
			fmt.Printf("%s\t%s\t%s\t%s%s\n", p.Name, orDash(p.Shortcut), p.Type, p.GroupName, marker)
		}
		return nil
	},
}

func printTree(node *domain.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	if node.Detail != "" {
		fmt.Printf("%s%s (%s)\n", indent, node.Name, node.Detail)
	} else {
		fmt.Printf("%s%s\n", indent, node.Name)
	}

	for _, child := range node.Children {
		printTree(child, depth+1)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listCategoryCmd, listGroupCmd, listProjectCmd)
}
