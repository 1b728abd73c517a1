package application

import (
	"context"
	"errors"
	"strings"

	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// Match finds the candidate whose name equals identifier, case-insensitively.
// Names are tried across all candidates before any shortcut. shortcut may be
// nil for entities without one.
func Match[T any](identifier string, candidates []T, name, shortcut func(T) string) (T, bool) {
	var zero T
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return zero, false
	}

	for _, c := range candidates {
		if strings.EqualFold(name(c), identifier) {
			return c, true
		}
	}

	if shortcut == nil {
		return zero, false
	}
	for _, c := range candidates {
		if s := shortcut(c); s != "" && strings.EqualFold(s, identifier) {
			return c, true
		}
	}

	return zero, false
}

// Pick asks the user to choose one of candidates. ok is false when there is
// nothing to choose from or the user backs out.
func Pick[T any](prompt ports.Prompter, title string, candidates []T, label func(T) string) (choice T, ok bool, err error) {
	if len(candidates) == 0 {
		return choice, false, nil
	}

	options := make([]string, len(candidates))
	for i, c := range candidates {
		options[i] = label(c)
	}

	idx, err := prompt.Select(title, options)
	if errors.Is(err, ports.ErrPromptAborted) {
		return choice, false, nil
	}
	if err != nil {
		return choice, false, err
	}
	if idx < 0 || idx >= len(candidates) {
		return choice, false, nil
	}

	return candidates[idx], true, nil
}

// ProjectFilter narrows the projects offered for selection
type ProjectFilter func(domain.Project) bool

// Resolver turns a user-supplied name or shortcut into an entity, falling back
// to interactive selection when the identifier is absent or unmatched
type Resolver struct {
	loader ports.HierarchyLoader
	prompt ports.Prompter
	tree   ports.TreeNavigator
}

// NewResolver creates a new Resolver
func NewResolver(loader ports.HierarchyLoader, prompt ports.Prompter, tree ports.TreeNavigator) *Resolver {
	return &Resolver{loader: loader, prompt: prompt, tree: tree}
}

// Category resolves identifier against category names
func (r *Resolver) Category(ctx context.Context, identifier string) (domain.Category, error) {
	categories, err := r.loader.LoadCategories(ctx)
	if err != nil {
		return domain.Category{}, err
	}

	if c, ok := Match(identifier, categories, categoryName, nil); ok {
		return c, nil
	}

	c, ok, err := Pick(r.prompt, "Select a category", categories, categoryName)
	if err != nil {
		return domain.Category{}, err
	}
	if !ok {
		return domain.Category{}, missing(ErrMissingCategory, identifier)
	}
	return c, nil
}

// Group resolves identifier against group names, then group shortcuts
func (r *Resolver) Group(ctx context.Context, identifier string) (domain.Group, error) {
	categories, groups, err := r.loadGroups(ctx)
	if err != nil {
		return domain.Group{}, err
	}

	if g, ok := Match(identifier, groups, groupName, groupShortcut); ok {
		return g, nil
	}

	root := domain.BuildTree(categories, groups, nil, domain.NodeGroup)
	id, ok, err := r.navigate("Select a group", root, domain.NodeGroup)
	if err != nil {
		return domain.Group{}, err
	}
	for _, g := range groups {
		if ok && g.ID == id {
			return g, nil
		}
	}
	return domain.Group{}, missing(ErrMissingGroup, identifier)
}

// Project resolves identifier against project names, then project shortcuts.
// When filter is set, only matching projects are offered for selection.
func (r *Resolver) Project(ctx context.Context, identifier string, filter ProjectFilter) (domain.Project, error) {
	categories, groups, err := r.loadGroups(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	projects, err := r.loader.LoadProjects(ctx)
	if err != nil {
		return domain.Project{}, err
	}

	if p, ok := Match(identifier, projects, projectName, projectShortcut); ok {
		return p, nil
	}

	offered := projects
	if filter != nil {
		offered = nil
		for _, p := range projects {
			if filter(p) {
				offered = append(offered, p)
			}
		}
	}

	if len(offered) > 0 {
		root := domain.BuildTree(categories, groups, offered, domain.NodeProject)
		id, ok, err := r.navigate("Select a project", root, domain.NodeProject)
		if err != nil {
			return domain.Project{}, err
		}
		if p, found := findProject(offered, id); ok && found {
			return p, nil
		}
	}

	return domain.Project{}, missing(ErrMissingProject, identifier)
}

// GroupProject resolves identifier to a group, by shortcut or name, and then
// asks which of that group's projects to use. Unlike Project it never jumps
// straight to the main project.
func (r *Resolver) GroupProject(ctx context.Context, identifier string) (domain.Project, error) {
	group, err := r.groupByShortcut(ctx, identifier)
	if err != nil {
		return domain.Project{}, err
	}

	projects, err := r.loader.LoadProjects(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	members := domain.ProjectsInGroup(projects, group.ID)

	p, ok, err := Pick(r.prompt, "Select a project of "+group.Name, members, projectLabel)
	if err != nil {
		return domain.Project{}, err
	}
	if !ok {
		return domain.Project{}, missing(ErrMissingProject, group.Name)
	}
	return p, nil
}

// Link asks which of the project's links to use
func (r *Resolver) Link(project domain.Project) (domain.ProjectLink, error) {
	link, ok, err := Pick(r.prompt, "Select a link of "+project.Name, project.Links, func(l domain.ProjectLink) string {
		return l.Name + "  " + l.URLString
	})
	if err != nil {
		return domain.ProjectLink{}, err
	}
	if !ok {
		return domain.ProjectLink{}, missing(ErrMissingProjectLink, project.Name)
	}
	return link, nil
}

// groupByShortcut prefers shortcuts over names, since a group shortcut is
// what this mode is invoked with
func (r *Resolver) groupByShortcut(ctx context.Context, identifier string) (domain.Group, error) {
	_, groups, err := r.loadGroups(ctx)
	if err != nil {
		return domain.Group{}, err
	}
	if g, ok := Match(identifier, groups, groupShortcut, groupName); ok {
		return g, nil
	}
	return r.Group(ctx, identifier)
}

func (r *Resolver) loadGroups(ctx context.Context) ([]domain.Category, []domain.Group, error) {
	categories, err := r.loader.LoadCategories(ctx)
	if err != nil {
		return nil, nil, err
	}
	groups, err := r.loader.LoadGroups(ctx)
	if err != nil {
		return nil, nil, err
	}
	return categories, groups, nil
}

func (r *Resolver) navigate(title string, root *domain.TreeNode, kind domain.NodeKind) (string, bool, error) {
	if len(root.Children) == 0 {
		return "", false, nil
	}

	node, err := r.tree.Navigate(title, root, kind)
	if errors.Is(err, ports.ErrPromptAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if node == nil || node.Kind != kind {
		return "", false, nil
	}
	return node.ID, true, nil
}

func categoryName(c domain.Category) string { return c.Name }

func groupName(g domain.Group) string { return g.Name }

func groupShortcut(g domain.Group) string { return g.Shortcut }

func projectName(p domain.Project) string { return p.Name }

func projectShortcut(p domain.Project) string { return p.Shortcut }

func projectLabel(p domain.Project) string {
	if p.HasShortcut() {
		return p.Name + " (" + p.Shortcut + ")"
	}
	return p.Name
}
