package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// Result is what a command reports back to the user
type Result struct {
	Message string

	// Cancelled is set when the user declined a confirmation or backed out
	// of a text prompt. Nothing was changed.
	Cancelled bool
}

func cancelled() *Result {
	return &Result{Message: "Cancelled", Cancelled: true}
}

// confirm asks a yes/no question; backing out counts as no
func confirm(p ports.Prompter, question string) (bool, error) {
	ok, err := p.Confirm(question)
	if errors.Is(err, ports.ErrPromptAborted) {
		return false, nil
	}
	return ok, err
}

// input asks for free text; ok is false when the user backs out
func input(p ports.Prompter, title, placeholder string) (answer string, ok bool, err error) {
	answer, err = p.Input(title, placeholder)
	if errors.Is(err, ports.ErrPromptAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(answer), true, nil
}

// groupOf loads the group a project belongs to
func groupOf(ctx context.Context, store ports.HierarchyLoader, project domain.Project) (domain.Group, error) {
	groups, err := store.LoadGroups(ctx)
	if err != nil {
		return domain.Group{}, err
	}
	for _, g := range groups {
		if g.ID == project.GroupID {
			return g, nil
		}
	}
	return domain.Group{}, fmt.Errorf("%w: group of %s", application.ErrMissingGroup, project.Name)
}

// membersOf loads the projects of a group
func membersOf(ctx context.Context, store ports.HierarchyLoader, group domain.Group) ([]domain.Project, error) {
	projects, err := store.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	return domain.ProjectsInGroup(projects, group.ID), nil
}

func projectLabel(p domain.Project) string {
	if p.HasShortcut() {
		return p.Name + " (" + p.Shortcut + ")"
	}
	return p.Name
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
