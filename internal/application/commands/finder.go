package commands

import (
	"context"
	"fmt"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

// FinderCommand reveals the folder of a category, group or project, or copies
// its path to the clipboard
type FinderCommand struct {
	env *application.Env

	Kind       domain.NodeKind
	Identifier string
	Copy       bool
}

// NewFinderCommand creates a new FinderCommand
func NewFinderCommand(env *application.Env, kind domain.NodeKind, identifier string, copyPath bool) *FinderCommand {
	return &FinderCommand{env: env, Kind: kind, Identifier: identifier, Copy: copyPath}
}

// Validate checks the command's arguments
func (c *FinderCommand) Validate() error {
	switch c.Kind {
	case domain.NodeCategory, domain.NodeGroup, domain.NodeProject:
		return nil
	default:
		return &application.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("cannot reveal a %s", c.Kind),
		}
	}
}

// Execute runs the finder command
func (c *FinderCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name, path, err := c.resolve(ctx)
	if err != nil {
		return nil, err
	}

	if c.Copy {
		if err := c.env.Clipboard.WriteAll(path); err != nil {
			return nil, fmt.Errorf("failed to copy path: %w", err)
		}
		return &Result{Message: fmt.Sprintf("Copied %s", path)}, nil
	}

	if !c.env.FS.IsDir(path) {
		return nil, fmt.Errorf("%w: %s", application.ErrFolderMissing, path)
	}
	if err := c.env.Launcher().Reveal(ctx, path); err != nil {
		return nil, err
	}
	return &Result{Message: fmt.Sprintf("Revealed %s", name)}, nil
}

func (c *FinderCommand) resolve(ctx context.Context) (name, path string, err error) {
	resolver := c.env.Resolver()

	switch c.Kind {
	case domain.NodeCategory:
		category, err := resolver.Category(ctx, c.Identifier)
		return category.Name, category.Path, err
	case domain.NodeGroup:
		group, err := resolver.Group(ctx, c.Identifier)
		return group.Name, group.Path(), err
	default:
		project, err := resolver.Project(ctx, c.Identifier, nil)
		return project.Name, project.FolderPath(), err
	}
}
