package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// ProjectResult contains the result of a project mutation
type ProjectResult struct {
	Project   domain.Project
	Message   string
	Cancelled bool
}

// AddProjectCommand registers a project folder in a group, moving the folder
// under the group's folder when it lives elsewhere
type AddProjectCommand struct {
	env *application.Env

	Folder   string
	Group    string
	Shortcut string
	// Main makes the project its group's main project
	Main bool
}

// NewAddProjectCommand creates a new AddProjectCommand
func NewAddProjectCommand(env *application.Env, folder, group, shortcut string, main bool) *AddProjectCommand {
	return &AddProjectCommand{env: env, Folder: folder, Group: group, Shortcut: shortcut, Main: main}
}

// Validate checks the command's arguments
func (c *AddProjectCommand) Validate() error {
	return application.ValidateRequired("folderPath", c.Folder)
}

// Execute runs the add project command
func (c *AddProjectCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	log := c.env.Logger()

	folders := c.env.Folders()
	folder, err := folders.ResolveFolder(c.Folder)
	if err != nil {
		return nil, err
	}

	projectType, err := application.ClassifyProject(c.env.FS, folder)
	if err != nil {
		return nil, err
	}

	group, err := c.env.Resolver().Group(ctx, c.Group)
	if err != nil {
		return nil, err
	}

	projects, err := c.env.Store.LoadProjects(ctx)
	if err != nil {
		return nil, err
	}
	name, err := application.ValidateName(application.KindProject, filepath.Base(folder), domain.ProjectNames(projects))
	if err != nil {
		return nil, err
	}

	// A group whose shortcut nobody holds hands it to the next project added
	main, candidate := c.Main, c.Shortcut
	if !main && candidate == "" && group.HasShortcut() && !hasMain(domain.ProjectsInGroup(projects, group.ID)) {
		main = true
	}
	if main && candidate == "" {
		candidate = group.Shortcut
	}

	project := domain.Project{Name: name, Type: projectType}
	var shortcut string
	if main {
		shortcut, err = c.env.MainProjects().ValidateMainShortcut(ctx, group, project, candidate)
	} else {
		shortcut, err = validateProjectShortcut(ctx, c.env, candidate)
	}
	if err != nil {
		return nil, err
	}
	if !main {
		project.Shortcut = shortcut
	}

	if url, err := c.env.Git.RemoteURL(folder); err == nil {
		project.Remote = &domain.ProjectLink{Name: domain.RemoteLinkName, URLString: url}
	} else {
		log.Debug("no remote detected", zap.String("folder", folder), zap.Error(err))
	}

	dest, err := folders.MoveIfNecessary(application.KindProject, folder, group.Path())
	if err != nil {
		return nil, err
	}

	err = c.env.Store.Transaction(ctx, func(tx ports.HierarchyStore) error {
		if err := tx.SaveProject(ctx, &project, group); err != nil {
			return err
		}
		if !main {
			return nil
		}
		_, project, err = application.NewMainProjects(tx, log).AssignMain(ctx, group, project, shortcut)
		return err
	})
	if err != nil {
		if restoreErr := folders.Restore(dest, folder); restoreErr != nil {
			log.Error("folder left in place", zap.String("path", dest), zap.Error(restoreErr))
		}
		return nil, err
	}

	message := fmt.Sprintf("Added %s %s to %s", project.Type, project.Name, group.Name)
	if main {
		message += fmt.Sprintf(" as main project (%s)", project.Shortcut)
	}
	return &ProjectResult{Project: project, Message: message}, nil
}

// RemoveProjectCommand unregisters a project. Removing a group's main project
// asks for a successor. The folder stays on disk.
type RemoveProjectCommand struct {
	env        *application.Env
	Identifier string
}

// NewRemoveProjectCommand creates a new RemoveProjectCommand
func NewRemoveProjectCommand(env *application.Env, identifier string) *RemoveProjectCommand {
	return &RemoveProjectCommand{env: env, Identifier: identifier}
}

// Execute runs the remove project command
func (c *RemoveProjectCommand) Execute(ctx context.Context) (*Result, error) {
	project, err := c.env.Resolver().Project(ctx, c.Identifier, nil)
	if err != nil {
		return nil, err
	}
	group, err := groupOf(ctx, c.env.Store, project)
	if err != nil {
		return nil, err
	}
	members, err := membersOf(ctx, c.env.Store, group)
	if err != nil {
		return nil, err
	}

	ok, err := confirm(c.env.Prompt, fmt.Sprintf("Remove project %s from %s? The folder stays on disk.", project.Name, group.Name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	var succession *application.Succession
	if application.ClassifyRemoval(project, members) == application.RemovalMain {
		succession, err = c.chooseSuccessor(group, project, members)
		if err != nil {
			return nil, err
		}
		if succession == nil {
			return cancelled(), nil
		}
	}

	if err := c.env.MainProjects().RemoveProject(ctx, group, project, succession); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Removed project %s", project.Name)
	if succession != nil {
		message += fmt.Sprintf("; %s is now the main project of %s", succession.Replacement.Name, group.Name)
	}
	return &Result{Message: message}, nil
}

// chooseSuccessor asks for the new main project and, when it has a shortcut of
// its own, which value the group keeps. A nil succession means the user backed
// out of the shortcut choice.
func (c *RemoveProjectCommand) chooseSuccessor(group domain.Group, target domain.Project, members []domain.Project) (*application.Succession, error) {
	replacement, ok, err := application.Pick(c.env.Prompt,
		fmt.Sprintf("%s is the main project of %s. Select its successor", target.Name, group.Name),
		application.Successors(target, members), projectLabel)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: no successor selected for %s", application.ErrMissingProject, target.Name)
	}

	succession := &application.Succession{Replacement: replacement}
	if !replacement.HasShortcut() {
		return succession, nil
	}

	options := []string{
		fmt.Sprintf("%s (group shortcut)", group.Shortcut),
		fmt.Sprintf("%s (%s's shortcut)", replacement.Shortcut, replacement.Name),
	}
	idx, err := c.env.Prompt.Select("Which shortcut should "+group.Name+" keep?", options)
	if errors.Is(err, ports.ErrPromptAborted) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	succession.KeepProjectShortcut = idx == 1
	return succession, nil
}

// SetMainProjectCommand makes a project its group's main project
type SetMainProjectCommand struct {
	env *application.Env

	Identifier string
	Shortcut   string
}

// NewSetMainProjectCommand creates a new SetMainProjectCommand
func NewSetMainProjectCommand(env *application.Env, identifier, shortcut string) *SetMainProjectCommand {
	return &SetMainProjectCommand{env: env, Identifier: identifier, Shortcut: shortcut}
}

// Execute runs the set main project command
func (c *SetMainProjectCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	notMain := func(p domain.Project) bool { return !p.IsMain() }
	project, err := c.env.Resolver().Project(ctx, c.Identifier, notMain)
	if err != nil {
		return nil, err
	}
	group, err := groupOf(ctx, c.env.Store, project)
	if err != nil {
		return nil, err
	}

	if project.IsMain() && c.Shortcut == "" {
		return &ProjectResult{
			Project: project,
			Message: fmt.Sprintf("%s is already the main project of %s", project.Name, group.Name),
		}, nil
	}

	candidate, ok, err := c.candidate(group, project)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ProjectResult{Project: project, Message: "Cancelled", Cancelled: true}, nil
	}

	mains := c.env.MainProjects()
	shortcut, err := mains.ValidateMainShortcut(ctx, group, project, candidate)
	if err != nil {
		return nil, err
	}
	group, project, err = mains.AssignMain(ctx, group, project, shortcut)
	if err != nil {
		return nil, err
	}

	return &ProjectResult{
		Project: project,
		Message: fmt.Sprintf("%s is now the main project of %s (%s)", project.Name, group.Name, group.Shortcut),
	}, nil
}

// candidate decides which shortcut the group and project will share
func (c *SetMainProjectCommand) candidate(group domain.Group, project domain.Project) (string, bool, error) {
	switch {
	case c.Shortcut != "":
		return c.Shortcut, true, nil
	case group.HasShortcut() && project.HasShortcut() && !strings.EqualFold(group.Shortcut, project.Shortcut):
		options := []string{
			fmt.Sprintf("%s (group shortcut)", group.Shortcut),
			fmt.Sprintf("%s (%s's shortcut)", project.Shortcut, project.Name),
		}
		idx, err := c.env.Prompt.Select("Which shortcut should "+group.Name+" and "+project.Name+" share?", options)
		if errors.Is(err, ports.ErrPromptAborted) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		if idx == 1 {
			return project.Shortcut, true, nil
		}
		return group.Shortcut, true, nil
	case group.HasShortcut():
		return group.Shortcut, true, nil
	case project.HasShortcut():
		return project.Shortcut, true, nil
	default:
		return input(c.env.Prompt, "Shortcut for "+group.Name+" and "+project.Name, "")
	}
}

// EvictProjectCommand deletes a project's folder from disk and keeps its
// registration, so it can be cloned again later
type EvictProjectCommand struct {
	env        *application.Env
	Identifier string
}

// NewEvictProjectCommand creates a new EvictProjectCommand
func NewEvictProjectCommand(env *application.Env, identifier string) *EvictProjectCommand {
	return &EvictProjectCommand{env: env, Identifier: identifier}
}

// Execute runs the evict command
func (c *EvictProjectCommand) Execute(ctx context.Context) (*Result, error) {
	onDisk := func(p domain.Project) bool { return c.env.FS.IsDir(p.FolderPath()) }
	project, err := c.env.Resolver().Project(ctx, c.Identifier, onDisk)
	if err != nil {
		return nil, err
	}

	folder := project.FolderPath()
	if !c.env.FS.IsDir(folder) {
		return nil, &application.ValidationError{
			Field:   "project",
			Message: fmt.Sprintf("%s is already evicted, %s does not exist", project.Name, folder),
		}
	}

	question := fmt.Sprintf("Delete %s from disk? %s stays registered.", folder, project.Name)
	if project.Remote == nil {
		question = fmt.Sprintf("Delete %s from disk? %s has no known remote and cannot be cloned again.", folder, project.Name)
	}
	ok, err := confirm(c.env.Prompt, question)
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	if err := c.env.Folders().Remove(folder); err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("Evicted %s", project.Name)}, nil
}

func hasMain(members []domain.Project) bool {
	for _, p := range members {
		if p.IsMain() {
			return true
		}
	}
	return false
}

func validateProjectShortcut(ctx context.Context, env *application.Env, candidate string) (string, error) {
	groups, err := env.Store.LoadGroups(ctx)
	if err != nil {
		return "", err
	}
	projects, err := env.Store.LoadProjects(ctx)
	if err != nil {
		return "", err
	}
	return application.ValidateShortcut(candidate, domain.GroupShortcuts(groups), domain.ProjectShortcuts(projects))
}
