package commands

import (
	"context"

	"xclaunch/internal/application"
)

// ShowScriptCommand returns the stored launch script, empty when none is set
type ShowScriptCommand struct {
	env *application.Env
}

// NewShowScriptCommand creates a new ShowScriptCommand
func NewShowScriptCommand(env *application.Env) *ShowScriptCommand {
	return &ShowScriptCommand{env: env}
}

// Execute runs the show script command
func (c *ShowScriptCommand) Execute(ctx context.Context) (string, error) {
	return c.env.Settings.LaunchScript(ctx)
}

// SetScriptCommand stores the AppleScript run after a project opens in the IDE
type SetScriptCommand struct {
	env    *application.Env
	Script string
}

// NewSetScriptCommand creates a new SetScriptCommand
func NewSetScriptCommand(env *application.Env, script string) *SetScriptCommand {
	return &SetScriptCommand{env: env, Script: script}
}

// Validate checks the command's arguments
func (c *SetScriptCommand) Validate() error {
	return application.ValidateRequired("script", c.Script)
}

// Execute runs the set script command
func (c *SetScriptCommand) Execute(ctx context.Context) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.env.Settings.SetLaunchScript(ctx, c.Script); err != nil {
		return nil, err
	}
	return &Result{Message: "Launch script saved"}, nil
}

// DeleteScriptCommand clears the launch script
type DeleteScriptCommand struct {
	env *application.Env
}

// NewDeleteScriptCommand creates a new DeleteScriptCommand
func NewDeleteScriptCommand(env *application.Env) *DeleteScriptCommand {
	return &DeleteScriptCommand{env: env}
}

// Execute runs the delete script command
func (c *DeleteScriptCommand) Execute(ctx context.Context) (*Result, error) {
	script, err := c.env.Settings.LaunchScript(ctx)
	if err != nil {
		return nil, err
	}
	if script == "" {
		return &Result{Message: "No launch script set"}, nil
	}

	ok, err := confirm(c.env.Prompt, "Delete the launch script?")
	if err != nil {
		return nil, err
	}
	if !ok {
		return cancelled(), nil
	}

	if err := c.env.Settings.ClearLaunchScript(ctx); err != nil {
		return nil, err
	}
	return &Result{Message: "Launch script deleted"}, nil
}
