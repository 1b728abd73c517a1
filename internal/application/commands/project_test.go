package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

func TestAddProjectCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("moves folder into group and detects remote", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddDir("/tmp/Radar/Radar.xcodeproj")
		te.git.URLs["/tmp/Radar"] = "git@github.com:me/radar.git"

		res, err := NewAddProjectCommand(te.Env, "/tmp/Radar", "Weather", "r", false).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectTypeProject, res.Project.Type)
		assert.Equal(t, "r", res.Project.Shortcut)
		assert.True(t, te.fs.IsDir("/dev/Apps/Weather/Radar/Radar.xcodeproj"))

		stored := te.project(t, "Radar")
		require.NotNil(t, stored.Remote)
		assert.Equal(t, "git@github.com:me/radar.git", stored.Remote.URLString)
		assert.False(t, stored.IsMain())
	})

	t.Run("without remote", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddFile("/dev/Tools/CLI/Linter/Package.swift", nil)

		res, err := NewAddProjectCommand(te.Env, "/dev/Tools/CLI/Linter", "CLI", "", false).Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.ProjectTypePackage, res.Project.Type)
		assert.Nil(t, te.project(t, "Linter").Remote)
	})

	t.Run("main project takes over group shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddDir("/tmp/Radar/Radar.xcodeproj")

		res, err := NewAddProjectCommand(te.Env, "/tmp/Radar", "Weather", "", true).Execute(ctx)
		require.NoError(t, err)
		assert.Contains(t, res.Message, "as main project (w)")

		assert.True(t, te.project(t, "Radar").IsMain())
		assert.Empty(t, te.project(t, "WeatherApp").Shortcut)
		assert.Equal(t, "w", te.group(t, "Weather").Shortcut)
	})

	t.Run("main project with new shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddDir("/tmp/Radar/Radar.xcodeproj")

		_, err := NewAddProjectCommand(te.Env, "/tmp/Radar", "Weather", "ra", true).Execute(ctx)
		require.NoError(t, err)

		assert.Equal(t, "ra", te.group(t, "Weather").Shortcut)
		assert.True(t, te.project(t, "Radar").IsMain())
		assert.Empty(t, te.project(t, "WeatherApp").Shortcut)
	})

	t.Run("main project needs a shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddFile("/tmp/Linter/Package.swift", nil)

		_, err := NewAddProjectCommand(te.Env, "/tmp/Linter", "CLI", "", true).Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrInvalidInput), "got %v", err)
		assert.True(t, te.fs.IsDir("/tmp/Linter"))
	})

	t.Run("first project of a group with unheld shortcut becomes main", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		group := domain.Group{Name: "Notes", Shortcut: "n"}
		require.NoError(t, te.store.SaveGroup(ctx, &group, te.group(t, "Weather").Category()))
		te.fs.AddFile("/dev/Apps/Notes/NotesKit/Package.swift", nil)

		_, err := NewAddProjectCommand(te.Env, "/dev/Apps/Notes/NotesKit", "n", "", false).Execute(ctx)
		require.NoError(t, err)
		assert.True(t, te.project(t, "NotesKit").IsMain())
	})

	t.Run("no project in folder", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddFile("/tmp/Docs/readme.md", nil)

		_, err := NewAddProjectCommand(te.Env, "/tmp/Docs", "Weather", "", false).Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrNoProjectInFolder), "got %v", err)
	})

	t.Run("name taken", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddFile("/tmp/formatter/Package.swift", nil)

		_, err := NewAddProjectCommand(te.Env, "/tmp/formatter", "Weather", "", false).Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrNameTaken), "got %v", err)
		assert.True(t, te.fs.IsDir("/tmp/formatter"))
	})

	t.Run("shortcut held by a group", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.fs.AddFile("/tmp/Linter/Package.swift", nil)

		_, err := NewAddProjectCommand(te.Env, "/tmp/Linter", "CLI", "W", false).Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrShortcutTaken), "got %v", err)
	})
}

func TestRemoveProjectCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("regular project", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}

		_, err := NewRemoveProjectCommand(te.Env, "wk").Execute(ctx)
		require.NoError(t, err)
		_, _, p := te.counts(t)
		assert.Equal(t, 2, p)
		assert.True(t, te.project(t, "WeatherApp").IsMain())
		assert.True(t, te.fs.IsDir("/dev/Apps/Weather/WeatherKit"))
	})

	t.Run("main project hands over group shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}
		te.prompt.Selections = []string{"WeatherKit", "w"}

		res, err := NewRemoveProjectCommand(te.Env, "WeatherApp").Execute(ctx)
		require.NoError(t, err)
		assert.Contains(t, res.Message, "WeatherKit is now the main project of Weather")

		kit := te.project(t, "WeatherKit")
		assert.Equal(t, "w", kit.Shortcut)
		assert.True(t, kit.IsMain())
		assert.Equal(t, "w", te.group(t, "Weather").Shortcut)
	})

	t.Run("main project keeps successor shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}
		te.prompt.Selections = []string{"WeatherKit", "wk"}

		_, err := NewRemoveProjectCommand(te.Env, "WeatherApp").Execute(ctx)
		require.NoError(t, err)

		assert.Equal(t, "wk", te.group(t, "Weather").Shortcut)
		assert.True(t, te.project(t, "WeatherKit").IsMain())

		// "w" is released
		te.fs.AddDir("/tmp/Notes")
		_, err = NewAddGroupCommand(te.Env, "/tmp/Notes", "Apps", "w").Execute(ctx)
		assert.NoError(t, err)
	})

	t.Run("successor not selected", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}

		_, err := NewRemoveProjectCommand(te.Env, "WeatherApp").Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrMissingProject), "got %v", err)
		_, _, p := te.counts(t)
		assert.Equal(t, 3, p)
	})

	t.Run("sole project", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}

		_, err := NewRemoveProjectCommand(te.Env, "Formatter").Execute(ctx)
		require.NoError(t, err)
		_, g, p := te.counts(t)
		assert.Equal(t, 2, g)
		assert.Equal(t, 2, p)
	})

	t.Run("declined", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{false}

		res, err := NewRemoveProjectCommand(te.Env, "WeatherApp").Execute(ctx)
		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		_, _, p := te.counts(t)
		assert.Equal(t, 3, p)
	})
}

func TestSetMainProjectCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("choose project shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Selections = []string{"wk"}

		res, err := NewSetMainProjectCommand(te.Env, "WeatherKit", "").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "WeatherKit is now the main project of Weather (wk)", res.Message)

		assert.Equal(t, "wk", te.group(t, "Weather").Shortcut)
		assert.Empty(t, te.project(t, "WeatherApp").Shortcut)
	})

	t.Run("explicit shortcut", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)

		_, err := NewSetMainProjectCommand(te.Env, "WeatherKit", "x").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "x", te.group(t, "Weather").Shortcut)
		assert.Equal(t, "x", te.project(t, "WeatherKit").Shortcut)
	})

	t.Run("shortcut typed in", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Inputs = []string{"f"}

		_, err := NewSetMainProjectCommand(te.Env, "Formatter", "").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "f", te.group(t, "CLI").Shortcut)
		assert.True(t, te.project(t, "Formatter").IsMain())
	})

	t.Run("input aborted", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)

		res, err := NewSetMainProjectCommand(te.Env, "Formatter", "").Execute(ctx)
		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.Empty(t, te.group(t, "CLI").Shortcut)
	})

	t.Run("already main", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)

		res, err := NewSetMainProjectCommand(te.Env, "WeatherApp", "").Execute(ctx)
		require.NoError(t, err)
		assert.Contains(t, res.Message, "already the main project")
	})

	t.Run("shortcut taken elsewhere", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)

		_, err := NewSetMainProjectCommand(te.Env, "Formatter", "wk").Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrShortcutTaken), "got %v", err)
	})

	t.Run("selection excludes main projects", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Navigations = []string{"WeatherApp"}

		_, err := NewSetMainProjectCommand(te.Env, "", "").Execute(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no project "WeatherApp" in tree`)
	})
}

func TestEvictProjectCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes folder and keeps registration", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{true}

		res, err := NewEvictProjectCommand(te.Env, "WeatherApp").Execute(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Evicted WeatherApp", res.Message)
		assert.False(t, te.fs.Exists("/dev/Apps/Weather/WeatherApp"))
		assert.True(t, te.fs.IsDir("/dev/Apps/Weather"))
		te.project(t, "WeatherApp")
	})

	t.Run("warns when no remote is known", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		te.prompt.Confirms = []bool{false}

		res, err := NewEvictProjectCommand(te.Env, "Formatter").Execute(ctx)
		require.NoError(t, err)
		assert.True(t, res.Cancelled)
		assert.Contains(t, te.prompt.Asked[0], "cannot be cloned again")
		assert.True(t, te.fs.IsDir("/dev/Tools/CLI/Formatter"))
	})

	t.Run("already evicted", func(t *testing.T) {
		te := newTestEnv(t)
		te.seed(t)
		require.NoError(t, te.fs.RemoveAll("/dev/Apps/Weather/WeatherKit"))

		_, err := NewEvictProjectCommand(te.Env, "wk").Execute(ctx)
		assert.True(t, errors.Is(err, application.ErrInvalidInput), "got %v", err)
	})
}
