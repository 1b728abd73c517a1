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

// newLinkName is the selection entry that asks for a name not offered yet
const newLinkName = "New link name..."

// AddLinkCommand attaches a named URL to a project. Link names typed in are
// remembered and offered the next time.
type AddLinkCommand struct {
	env *application.Env

	Identifier string
	Name       string
	URL        string
}

// NewAddLinkCommand creates a new AddLinkCommand
func NewAddLinkCommand(env *application.Env, identifier, name, url string) *AddLinkCommand {
	return &AddLinkCommand{env: env, Identifier: identifier, Name: name, URL: url}
}

// Execute runs the add link command
func (c *AddLinkCommand) Execute(ctx context.Context) (*ProjectResult, error) {
	project, err := c.env.Resolver().Project(ctx, c.Identifier, nil)
	if err != nil {
		return nil, err
	}

	known, err := c.env.Settings.LinkNames(ctx)
	if err != nil {
		return nil, err
	}

	name, ok, err := c.linkName(known)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &ProjectResult{Project: project, Message: "Cancelled", Cancelled: true}, nil
	}
	if err := application.ValidateRequired("linkName", name); err != nil {
		return nil, err
	}
	for _, l := range project.Links {
		if domain.SameName(l.Name, name) {
			return nil, &application.ValidationError{
				Field:   "linkName",
				Message: fmt.Sprintf("%s already has a link named %s", project.Name, l.Name),
			}
		}
	}

	raw := c.URL
	if raw == "" {
		if raw, ok, err = input(c.env.Prompt, "URL for "+name, "https://"); err != nil {
			return nil, err
		}
		if !ok {
			return &ProjectResult{Project: project, Message: "Cancelled", Cancelled: true}, nil
		}
	}
	url, err := application.ValidateURL("url", raw)
	if err != nil {
		return nil, err
	}

	group, err := groupOf(ctx, c.env.Store, project)
	if err != nil {
		return nil, err
	}

	project.Links = append(project.Links, domain.ProjectLink{Name: name, URLString: url})
	if err := c.env.Store.SaveProject(ctx, &project, group); err != nil {
		return nil, err
	}

	if !containsFold(known, name) {
		if err := c.env.Settings.SetLinkNames(ctx, append(known, name)); err != nil {
			return nil, err
		}
	}

	return &ProjectResult{
		Project: project,
		Message: fmt.Sprintf("Added link %s to %s", name, project.Name),
	}, nil
}

func (c *AddLinkCommand) linkName(known []string) (string, bool, error) {
	if c.Name != "" {
		return strings.TrimSpace(c.Name), true, nil
	}
	if len(known) == 0 {
		return input(c.env.Prompt, "Link name", "Jira")
	}

	options := append(append([]string{}, known...), newLinkName)
	idx, err := c.env.Prompt.Select("Link name", options)
	if errors.Is(err, ports.ErrPromptAborted) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	if idx < len(known) {
		return known[idx], true, nil
	}
	return input(c.env.Prompt, "Link name", "")
}

// RemoveLinkCommand deletes one of a project's links
type RemoveLinkCommand struct {
	env        *application.Env
	Identifier string
}

// NewRemoveLinkCommand creates a new RemoveLinkCommand
func NewRemoveLinkCommand(env *application.Env, identifier string) *RemoveLinkCommand {
	return &RemoveLinkCommand{env: env, Identifier: identifier}
}

// Execute runs the remove link command
func (c *RemoveLinkCommand) Execute(ctx context.Context) (*Result, error) {
	withLinks := func(p domain.Project) bool { return len(p.Links) > 0 }
	resolver := c.env.Resolver()

	project, err := resolver.Project(ctx, c.Identifier, withLinks)
	if err != nil {
		return nil, err
	}
	link, err := resolver.Link(project)
	if err != nil {
		return nil, err
	}

	ok, err := confirm(c.env.Prompt, fmt.Sprintf("Remove link %s from %s?", link.Name, project.Name))
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	group, err := groupOf(ctx, c.env.Store, project)
	if err != nil {
		return nil, err
	}

	kept := project.Links[:0:0]
	for _, l := range project.Links {
		if l != link {
			kept = append(kept, l)
		}
	}
	project.Links = kept
	if err := c.env.Store.SaveProject(ctx, &project, group); err != nil {
		return nil, err
	}

	return &Result{Message: fmt.Sprintf("Removed link %s from %s", link.Name, project.Name)}, nil
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
