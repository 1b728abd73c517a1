package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// RegisterReadTools adds all read-only registry tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, loader ports.HierarchyLoader) {
	s.AddTool(treeTool(), treeHandler(loader))
	s.AddTool(listCategoriesTool(), listCategoriesHandler(loader))
	s.AddTool(listGroupsTool(), listGroupsHandler(loader))
	s.AddTool(listProjectsTool(), listProjectsHandler(loader))
	s.AddTool(findProjectTool(), findProjectHandler(loader))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display all registered categories, groups and projects as a tree."),
	)
}

func treeHandler(loader ports.HierarchyLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, groups, projects, err := loadAll(ctx, loader)
		if err != nil {
			return toolError(err)
		}
		root := domain.BuildTree(categories, groups, projects, domain.NodeProject)
		if len(root.Children) == 0 {
			return mcp.NewToolResultText("Nothing registered."), nil
		}

		var sb strings.Builder
		renderTree(&sb, root, "")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderTree(sb *strings.Builder, node *domain.TreeNode, prefix string) {
	if node.Kind != domain.NodeRoot {
		if node.Detail != "" {
			fmt.Fprintf(sb, "%s%s (%s)\n", prefix, node.Name, node.Detail)
		} else {
			fmt.Fprintf(sb, "%s%s\n", prefix, node.Name)
		}
		prefix += "  "
	}
	for _, child := range node.Children {
		renderTree(sb, child, prefix)
	}
}

// --- list_categories ---

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List all categories with their folder paths."),
	)
}

func listCategoriesHandler(loader ports.HierarchyLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categories, err := loader.LoadCategories(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(categories, formatCategory)
	}
}

// --- list_groups ---

func listGroupsTool() mcp.Tool {
	return mcp.NewTool("list_groups",
		mcp.WithDescription("List groups with their shortcut and category. Optionally limited to one category."),
		mcp.WithString("category",
			mcp.Description("Category name. Omit to list all groups."),
		),
	)
}

func listGroupsHandler(loader ports.HierarchyLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		groups, err := loader.LoadGroups(ctx)
		if err != nil {
			return toolError(err)
		}

		if name := req.GetString("category", ""); name != "" {
			categories, err := loader.LoadCategories(ctx)
			if err != nil {
				return toolError(err)
			}
			category, ok := application.Match(name, categories, func(c domain.Category) string { return c.Name }, nil)
			if !ok {
				return toolError(fmt.Errorf("%w: %s", application.ErrMissingCategory, name))
			}
			groups = domain.GroupsInCategory(groups, category.ID)
		}

		return formatEntities(groups, formatGroup)
	}
}

// --- list_projects ---

func listProjectsTool() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription("List projects with shortcut, type and group. Optionally limited to one group."),
		mcp.WithString("group",
			mcp.Description("Group name or shortcut. Omit to list all projects."),
		),
	)
}

func listProjectsHandler(loader ports.HierarchyLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		projects, err := loader.LoadProjects(ctx)
		if err != nil {
			return toolError(err)
		}

		if identifier := req.GetString("group", ""); identifier != "" {
			groups, err := loader.LoadGroups(ctx)
			if err != nil {
				return toolError(err)
			}
			group, ok := application.Match(identifier, groups,
				func(g domain.Group) string { return g.Name },
				func(g domain.Group) string { return g.Shortcut })
			if !ok {
				return toolError(fmt.Errorf("%w: %s", application.ErrMissingGroup, identifier))
			}
			projects = domain.ProjectsInGroup(projects, group.ID)
		}

		return formatEntities(projects, formatProject)
	}
}

// --- find_project ---

func findProjectTool() mcp.Tool {
	return mcp.NewTool("find_project",
		mcp.WithDescription("Look up a project by name or shortcut and show its folder, the file Xcode opens, its remote and links."),
		mcp.WithString("identifier",
			mcp.Description("Project name or shortcut (case-insensitive)"),
			mcp.Required(),
		),
	)
}

func findProjectHandler(loader ports.HierarchyLoader) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		identifier := req.GetString("identifier", "")
		if identifier == "" {
			return toolError(fmt.Errorf("identifier is required"))
		}

		projects, err := loader.LoadProjects(ctx)
		if err != nil {
			return toolError(err)
		}
		p, ok := application.Match(identifier, projects,
			func(p domain.Project) string { return p.Name },
			func(p domain.Project) string { return p.Shortcut })
		if !ok {
			return toolError(fmt.Errorf("%w: %s", application.ErrMissingProject, identifier))
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "name: %s\n", p.Name)
		fmt.Fprintf(&sb, "type: %s\n", p.Type)
		fmt.Fprintf(&sb, "group: %s\n", p.GroupName)
		if p.HasShortcut() {
			fmt.Fprintf(&sb, "shortcut: %s\n", p.Shortcut)
		}
		fmt.Fprintf(&sb, "main: %t\n", p.IsMain())
		fmt.Fprintf(&sb, "folder: %s\n", p.FolderPath())
		fmt.Fprintf(&sb, "file: %s\n", p.FilePath())
		if p.Remote != nil {
			fmt.Fprintf(&sb, "remote: %s\n", p.Remote.URLString)
		}
		for _, l := range p.Links {
			fmt.Fprintf(&sb, "link %s: %s\n", l.Name, l.URLString)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func loadAll(ctx context.Context, loader ports.HierarchyLoader) ([]domain.Category, []domain.Group, []domain.Project, error) {
	categories, err := loader.LoadCategories(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	groups, err := loader.LoadGroups(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	projects, err := loader.LoadProjects(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return categories, groups, projects, nil
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatCategory(c domain.Category) string {
	return fmt.Sprintf("%s  %s", c.Name, c.Path)
}

func formatGroup(g domain.Group) string {
	return fmt.Sprintf("%s  %s  %s", g.Name, dash(g.Shortcut), g.CategoryName)
}

func formatProject(p domain.Project) string {
	line := fmt.Sprintf("%s  %s  %s  %s", p.Name, dash(p.Shortcut), p.Type, p.GroupName)
	if p.IsMain() {
		line += "  main"
	}
	return line
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
