package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xclaunch/internal/adapters/shell"
)

func TestLauncher(t *testing.T) {
	sh := &shell.Mock{}
	l := NewLauncher(sh, "", zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, DefaultIDE, l.IDE())

	require.NoError(t, l.OpenInIDE(ctx, "/dev/Apps/Weather/WeatherApp/WeatherApp.xcodeproj"))
	require.NoError(t, l.Reveal(ctx, "/dev/Apps/Weather"))
	require.NoError(t, l.OpenURL(ctx, "https://github.com/me/weather"))
	require.NoError(t, l.RunScript(ctx, `tell application "Xcode" to activate`))
	require.NoError(t, l.RunScript(ctx, "   "))

	assert.Equal(t, []string{
		"open -a Xcode /dev/Apps/Weather/WeatherApp/WeatherApp.xcodeproj",
		"open /dev/Apps/Weather",
		"open https://github.com/me/weather",
		`osascript -e tell application "Xcode" to activate`,
	}, sh.Commands)
}

func TestLauncher_CustomIDE(t *testing.T) {
	sh := &shell.Mock{}
	l := NewLauncher(sh, "Xcode-beta", zap.NewNop())

	require.NoError(t, l.OpenInIDE(context.Background(), "/p/Package.swift"))
	assert.Equal(t, []string{"open -a Xcode-beta /p/Package.swift"}, sh.Commands)
}

func TestLauncher_WrapsShellErrors(t *testing.T) {
	boom := errors.New("exit status 1")
	l := NewLauncher(&shell.Mock{Err: boom}, "", zap.NewNop())

	err := l.Reveal(context.Background(), "/dev")
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to run open")
}
