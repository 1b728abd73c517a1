package commands

import (
	"context"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

// ListTreeCommand returns the whole hierarchy, fully expanded
type ListTreeCommand struct {
	env *application.Env
}

// NewListTreeCommand creates a new ListTreeCommand
func NewListTreeCommand(env *application.Env) *ListTreeCommand {
	return &ListTreeCommand{env: env}
}

// Execute runs the list tree command
func (c *ListTreeCommand) Execute(ctx context.Context) (*domain.TreeNode, error) {
	categories, err := c.env.Store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := c.env.Store.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := c.env.Store.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}

	root := domain.BuildTree(categories, groups, projects, domain.NodeProject)
	root.ExpandAll()
	return root, nil
}

// ListCategoriesCommand lists all categories
type ListCategoriesCommand struct {
	env *application.Env
}

// NewListCategoriesCommand creates a new ListCategoriesCommand
func NewListCategoriesCommand(env *application.Env) *ListCategoriesCommand {
	return &ListCategoriesCommand{env: env}
}

// Execute runs the list categories command
func (c *ListCategoriesCommand) Execute(ctx context.Context) ([]domain.Category, error) {
	return c.env.Store.LoadCategories(ctx)
}

// ListGroupsCommand lists all groups, or the groups of one category
type ListGroupsCommand struct {
	env      *application.Env
	Category string
}

// NewListGroupsCommand creates a new ListGroupsCommand
func NewListGroupsCommand(env *application.Env, category string) *ListGroupsCommand {
	return &ListGroupsCommand{env: env, Category: category}
}

// Execute runs the list groups command
func (c *ListGroupsCommand) Execute(ctx context.Context) ([]domain.Group, error) {
	groups, err := c.env.Store.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}
	if c.Category == "" {
		return groups, nil
	}

	category, err := c.env.Resolver().Category(ctx, c.Category)
	if err != nil {
		return nil, err
	}
	return domain.GroupsInCategory(groups, category.ID), nil
}

// ListProjectsCommand lists all projects, or the projects of one group
type ListProjectsCommand struct {
	env   *application.Env
	Group string
}

// NewListProjectsCommand creates a new ListProjectsCommand
func NewListProjectsCommand(env *application.Env, group string) *ListProjectsCommand {
	return &ListProjectsCommand{env: env, Group: group}
}

// Execute runs the list projects command
func (c *ListProjectsCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	projects, err := c.env.Store.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	if c.Group == "" {
		return projects, nil
	}

	group, err := c.env.Resolver().Group(ctx, c.Group)
	if err != nil {
		return nil, err
	}
	return domain.ProjectsInGroup(projects, group.ID), nil
}
