package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettings_LaunchScript(t *testing.T) {
	s := NewSettings(newTestStore(t).db)
	ctx := context.Background()

	script, err := s.LaunchScript(ctx)
	require.NoError(t, err)
	assert.Empty(t, script)

	require.NoError(t, s.SetLaunchScript(ctx, `tell application "Simulator" to activate`))
	require.NoError(t, s.SetLaunchScript(ctx, `tell application "Terminal" to activate`))

	script, err = s.LaunchScript(ctx)
	require.NoError(t, err)
	assert.Equal(t, `tell application "Terminal" to activate`, script)

	require.NoError(t, s.ClearLaunchScript(ctx))
	script, err = s.LaunchScript(ctx)
	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestSettings_LinkNames(t *testing.T) {
	s := NewSettings(newTestStore(t).db)
	ctx := context.Background()

	names, err := s.LinkNames(ctx)
	require.NoError(t, err)
	assert.Nil(t, names)

	require.NoError(t, s.SetLinkNames(ctx, []string{"Jira", "Figma"}))
	names, err = s.LinkNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jira", "Figma"}, names)

	require.NoError(t, s.ClearLinkNames(ctx))
	names, err = s.LinkNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}
