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

// CategoryResult contains the result of adding or creating a category
type CategoryResult struct {
	Category domain.Category
	Message  string
}

// AddCategoryCommand imports an existing folder as a category
type AddCategoryCommand struct {
	env *application.Env

	Folder string
	// Name defaults to the folder's name
	Name string
	// Parent, when set, is where the folder is moved to
	Parent string
}

// NewAddCategoryCommand creates a new AddCategoryCommand
func NewAddCategoryCommand(env *application.Env, folder, name, parent string) *AddCategoryCommand {
	return &AddCategoryCommand{env: env, Folder: folder, Name: name, Parent: parent}
}

// Validate checks the command's arguments
func (c *AddCategoryCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.Folder)
}

// Execute runs the add category command
func (c *AddCategoryCommand) Execute(ctx context.Context) (*CategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	folders := c.env.Folders()
	folder, err := folders.ResolveFolder(c.Folder)
	if err != nil {
		return nil, err
	}

	categories, err := c.env.Store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}

	candidate := c.Name
	if strings.TrimSpace(candidate) == "" {
		candidate = filepath.Base(folder)
	}
	name, err := application.ValidateName(application.KindCategory, candidate, domain.CategoryNames(categories))
	if err != nil {
		return nil, err
	}

	parent := filepath.Dir(folder)
	if c.Parent != "" {
		if parent, err = folders.ResolveFolder(c.Parent); err != nil {
			return nil, err
		}
	}

	dest, _, err := folders.Destination(application.KindCategory, folder, parent)
	if err != nil {
		return nil, err
	}
	if err := checkPath(categories, dest); err != nil {
		return nil, err
	}

	dest, err = folders.MoveIfNecessary(application.KindCategory, folder, parent)
	if err != nil {
		return nil, err
	}

	category := domain.Category{Name: name, Path: dest}
	if err := c.env.Store.SaveCategory(ctx, &category); err != nil {
		if restoreErr := folders.Restore(dest, folder); restoreErr != nil {
			c.env.Logger().Error("folder left in place", zap.String("path", dest), zap.Error(restoreErr))
		}
		return nil, err
	}

	return &CategoryResult{
		Category: category,
		Message:  fmt.Sprintf("Added category %s at %s", category.Name, category.Path),
	}, nil
}

// CreateCategoryCommand creates a new folder and registers it as a category
type CreateCategoryCommand struct {
	env *application.Env

	Name   string
	Parent string
}

// NewCreateCategoryCommand creates a new CreateCategoryCommand
func NewCreateCategoryCommand(env *application.Env, name, parent string) *CreateCategoryCommand {
	return &CreateCategoryCommand{env: env, Name: name, Parent: parent}
}

// Validate checks the command's arguments
func (c *CreateCategoryCommand) Validate() error {
	if err := application.ValidateRequired("categoryName", c.Name); err != nil {
		return err
	}
	return application.ValidateRequired("parentPath", c.Parent)
}

// Execute runs the create category command
func (c *CreateCategoryCommand) Execute(ctx context.Context) (*CategoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	parent, err := filepath.Abs(c.Parent)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", c.Parent, err)
	}

	folders := c.env.Folders()
	if _, err := folders.Available(application.KindCategory, strings.TrimSpace(c.Name), parent); err != nil {
		return nil, err
	}

	categories, err := c.env.Store.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	name, err := application.ValidateName(application.KindCategory, c.Name, domain.CategoryNames(categories))
	if err != nil {
		return nil, err
	}
	if err := checkPath(categories, filepath.Join(parent, name)); err != nil {
		return nil, err
	}

	path, err := folders.CreateOrImport(application.KindCategory, name, parent, application.FolderCreate)
	if err != nil {
		return nil, err
	}

	category := domain.Category{Name: name, Path: path}
	if err := c.env.Store.SaveCategory(ctx, &category); err != nil {
		if removeErr := folders.Remove(path); removeErr != nil {
			c.env.Logger().Error("folder left behind", zap.String("path", path), zap.Error(removeErr))
		}
		return nil, err
	}

	return &CategoryResult{
		Category: category,
		Message:  fmt.Sprintf("Created category %s at %s", category.Name, category.Path),
	}, nil
}

// RemoveCategoryCommand unregisters a category with all its groups and projects.
// Folders stay on disk.
type RemoveCategoryCommand struct {
	env        *application.Env
	Identifier string
}

// NewRemoveCategoryCommand creates a new RemoveCategoryCommand
func NewRemoveCategoryCommand(env *application.Env, identifier string) *RemoveCategoryCommand {
	return &RemoveCategoryCommand{env: env, Identifier: identifier}
}

// Execute runs the remove category command
func (c *RemoveCategoryCommand) Execute(ctx context.Context) (*Result, error) {
	category, err := c.env.Resolver().Category(ctx, c.Identifier)
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

	members := domain.GroupsInCategory(groups, category.ID)
	count := 0
	for _, g := range members {
		count += len(domain.ProjectsInGroup(projects, g.ID))
	}

	question := fmt.Sprintf("Remove category %s with %s and %s? Folders stay on disk.",
		category.Name, plural(len(members), "group"), plural(count, "project"))
	ok, err := confirm(c.env.Prompt, question)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	if err := c.env.Store.DeleteCategory(ctx, category); err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("Removed category %s", category.Name)}, nil
}

// checkPath fails when a category is already registered at path
func checkPath(categories []domain.Category, path string) error {
	for _, c := range categories {
		if strings.EqualFold(filepath.Clean(c.Path), filepath.Clean(path)) {
			return &application.PathTakenError{Path: path}
		}
	}
	return nil
}
