package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetScriptCommand_Validate(t *testing.T) {
	err := (&SetScriptCommand{Script: "  "}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "launch script is required")
}

func TestScriptCommands_Execute(t *testing.T) {
	ctx := context.Background()
	te := newTestEnv(t)

	script, err := NewShowScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, script)

	res, err := NewDeleteScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "No launch script set", res.Message)

	_, err = NewSetScriptCommand(te.Env, `tell application "Simulator" to activate`).Execute(ctx)
	require.NoError(t, err)

	script, err = NewShowScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, `tell application "Simulator" to activate`, script)

	te.prompt.Confirms = []bool{false, true}
	res, err = NewDeleteScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.True(t, res.Cancelled)

	res, err = NewDeleteScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Launch script deleted", res.Message)

	script, err = NewShowScriptCommand(te.Env).Execute(ctx)
	require.NoError(t, err)
	assert.Empty(t, script)
}
