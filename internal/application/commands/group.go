package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

// GroupResult contains the result of adding or creating a group
type GroupResult struct {
	Group   domain.Group
	Message string
}

// AddGroupCommand imports an existing folder as a group of a category,
// moving it under the category's folder when it lives elsewhere
type AddGroupCommand struct {
	env *application.Env

	Folder   string
	Category string
	Shortcut string
}

// NewAddGroupCommand creates a new AddGroupCommand
func NewAddGroupCommand(env *application.Env, folder, category, shortcut string) *AddGroupCommand {
	return &AddGroupCommand{env: env, Folder: folder, Category: category, Shortcut: shortcut}
}

// Validate checks the command's arguments
func (c *AddGroupCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.Folder)
}

// Execute runs the add group command
func (c *AddGroupCommand) Execute(ctx context.Context) (*GroupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folders := c.env.Folders()
	folder, err := folders.ResolveFolder(c.Folder)
	if err != nil {
		return nil, err
	}

	category, err := c.env.Resolver().Category(ctx, c.Category)
	if err != nil {
		return nil, err
	}

	name, shortcut, err := validateGroup(ctx, c.env, filepath.Base(folder), c.Shortcut)
	if err != nil {
		return nil, err
	}

	dest, err := folders.MoveIfNecessary(application.KindGroup, folder, category.Path)
	if err != nil {
		return nil, err
	}

	group := domain.Group{Name: name, Shortcut: shortcut}
	if err := c.env.Store.SaveGroup(ctx, &group, category); err != nil {
		if restoreErr := folders.Restore(dest, folder); restoreErr != nil {
			c.env.Logger().Error("folder left in place", zap.String("path", dest), zap.Error(restoreErr))
		}
		return nil, err
	}

	return &GroupResult{
		Group:   group,
		Message: fmt.Sprintf("Added group %s to %s", group.Name, category.Name),
	}, nil
}

// CreateGroupCommand creates a new group folder inside a category
type CreateGroupCommand struct {
	env *application.Env

	Name     string
	Category string
	Shortcut string
}

// NewCreateGroupCommand creates a new CreateGroupCommand
func NewCreateGroupCommand(env *application.Env, name, category, shortcut string) *CreateGroupCommand {
	return &CreateGroupCommand{env: env, Name: name, Category: category, Shortcut: shortcut}
}

// Validate checks the command's arguments
func (c *CreateGroupCommand) Validate() error {
	return application.ValidateRequired("groupName", c.Name)
}

// Execute runs the create group command
func (c *CreateGroupCommand) Execute(ctx context.Context) (*GroupResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	category, err := c.env.Resolver().Category(ctx, c.Category)
	if err != nil {
		return nil, err
	}

	folders := c.env.Folders()
	if _, err := folders.Available(application.KindGroup, strings.TrimSpace(c.Name), category.Path); err != nil {
		return nil, err
	}

	name, shortcut, err := validateGroup(ctx, c.env, c.Name, c.Shortcut)
	if err != nil {
		return nil, err
	}

	path, err := folders.CreateOrImport(application.KindGroup, name, category.Path, application.FolderCreate)
	if err != nil {
		return nil, err
	}

	group := domain.Group{Name: name, Shortcut: shortcut}
	if err := c.env.Store.SaveGroup(ctx, &group, category); err != nil {
		if removeErr := folders.Remove(path); removeErr != nil {
			c.env.Logger().Error("folder left behind", zap.String("path", path), zap.Error(removeErr))
		}
		return nil, err
	}

	return &GroupResult{
		Group:   group,
		Message: fmt.Sprintf("Created group %s at %s", group.Name, group.Path()),
	}, nil
}

// RemoveGroupCommand unregisters a group with all its projects. Folders stay on disk.
type RemoveGroupCommand struct {
	env        *application.Env
	Identifier string
}

// NewRemoveGroupCommand creates a new RemoveGroupCommand
func NewRemoveGroupCommand(env *application.Env, identifier string) *RemoveGroupCommand {
	return &RemoveGroupCommand{env: env, Identifier: identifier}
}

// Execute runs the remove group command
func (c *RemoveGroupCommand) Execute(ctx context.Context) (*Result, error) {
	group, err := c.env.Resolver().Group(ctx, c.Identifier)
	if err != nil {
		return nil, err
	}

	members, err := membersOf(ctx, c.env.Store, group)
	if err != nil {
		return nil, err
	}

	question := fmt.Sprintf("Remove group %s with %s? Folders stay on disk.", group.Name, plural(len(members), "project"))
	ok, err := confirm(c.env.Prompt, question)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	if err := c.env.Store.DeleteGroup(ctx, group); err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("Removed group %s", group.Name)}, nil
}

func validateGroup(ctx context.Context, env *application.Env, candidateName, candidateShortcut string) (name, shortcut string, err error) {
	groups, err := env.Store.LoadGroups(ctx)
	if err != nil {
		return "", "", err
	}
	projects, err := env.Store.LoadProjects(ctx)
	if err != nil {
		return "", "", err
	}

	name, err = application.ValidateName(application.KindGroup, candidateName, domain.GroupNames(groups))
	if err != nil {
		return "", "", err
	}
	shortcut, err = application.ValidateShortcut(candidateShortcut, domain.GroupShortcuts(groups), domain.ProjectShortcuts(projects))
	if err != nil {
		return "", "", err
	}
	return name, shortcut, nil
}
