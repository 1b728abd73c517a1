package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

// OpenMode selects what open does with the resolved project
type OpenMode int

const (
	// OpenInIDE opens the project file in the IDE and runs the launch script
	OpenInIDE OpenMode = iota
	// OpenRemote opens the project's remote repository in the browser
	OpenRemote
	// OpenLink opens one of the project's links in the browser
	OpenLink
)

// OpenCommand opens a project
type OpenCommand struct {
	env *application.Env

	Identifier string
	Mode       OpenMode
	// ByGroup resolves Identifier as a group and asks which of its projects to open
	ByGroup bool
}

// NewOpenCommand creates a new OpenCommand
func NewOpenCommand(env *application.Env, identifier string, mode OpenMode, byGroup bool) *OpenCommand {
	return &OpenCommand{env: env, Identifier: identifier, Mode: mode, ByGroup: byGroup}
}

// Execute runs the open command
func (c *OpenCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	project, err := c.resolve(ctx)
	if err != nil {
		return nil, err
	}

	launcher := c.env.Launcher()
	switch c.Mode {
	case OpenRemote:
		return c.openRemote(ctx, launcher, project)
	case OpenLink:
		link, err := c.env.Resolver().Link(project)
		if err != nil {
			return nil, err
		}
		if err := launcher.OpenURL(ctx, link.URLString); err != nil {
			return nil, err
		}
		return &ProjectResult{Project: project, Message: fmt.Sprintf("Opened %s of %s", link.Name, project.Name)}, nil
	default:
		return c.openInIDE(ctx, launcher, project)
	}
}

func (c *OpenCommand) resolve(ctx context.Context) (domain.Project, error) {
	if c.ByGroup {
		return c.env.Resolver().GroupProject(ctx, c.Identifier)
	}
	return c.env.Resolver().Project(ctx, c.Identifier, nil)
}

func (c *OpenCommand) openInIDE(ctx context.Context, launcher *application.Launcher, project domain.Project) (*ProjectResult, error) {
	folder := project.FolderPath()
	if !c.env.FS.IsDir(folder) {
		if project.Remote == nil {
			return nil, fmt.Errorf("%w: %s has been evicted and has no remote to clone", application.ErrFolderMissing, folder)
		}

		ok, err := confirm(c.env.Prompt, fmt.Sprintf("%s is not on disk. Clone %s?", project.Name, project.Remote.URLString))
		if err != nil {
			return nil, err
		}
		if !ok {
			return &ProjectResult{Project: project, Message: "Cancelled", Cancelled: true}, nil
		}
		if err := c.env.Git.Clone(ctx, project.Remote.URLString, folder); err != nil {
			return nil, err
		}
	}

	if err := launcher.OpenInIDE(ctx, project.FilePath()); err != nil {
		return nil, err
	}

	script, err := c.env.Settings.LaunchScript(ctx)
	if err != nil {
		return nil, err
	}
	if err := launcher.RunScript(ctx, script); err != nil {
		c.env.Logger().Warn("launch script failed", zap.Error(err))
	}

	return &ProjectResult{
		Project: project,
		Message: fmt.Sprintf("Opened %s in %s", project.Name, launcher.IDE()),
	}, nil
}

// openRemote opens the stored remote, discovering it from the folder's git
// configuration and storing it when none is known yet
func (c *OpenCommand) openRemote(ctx context.Context, launcher *application.Launcher, project domain.Project) (*ProjectResult, error) {
	if project.Remote == nil {
		url, err := c.env.Git.RemoteURL(project.FolderPath())
		if err != nil {
			return nil, err
		}

		group, err := groupOf(ctx, c.env.Store, project)
		if err != nil {
			return nil, err
		}
		project.Remote = &domain.ProjectLink{Name: domain.RemoteLinkName, URLString: url}
		if err := c.env.Store.SaveProject(ctx, &project, group); err != nil {
			return nil, err
		}
	}

	if err := launcher.OpenURL(ctx, domain.BrowserURL(project.Remote.URLString)); err != nil {
		return nil, err
	}
	return &ProjectResult{Project: project, Message: fmt.Sprintf("Opened remote of %s", project.Name)}, nil
}
