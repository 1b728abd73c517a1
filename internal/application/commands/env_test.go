package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xclaunch/internal/adapters/filesystem"
	"xclaunch/internal/adapters/gitremote"
	"xclaunch/internal/adapters/prompt"
	"xclaunch/internal/adapters/shell"
	"xclaunch/internal/adapters/sqlite"
	"xclaunch/internal/application"
	"xclaunch/internal/domain"
)

// testEnv wires an Env to a real sqlite store and in-memory collaborators
type testEnv struct {
	*application.Env

	store     *sqlite.Store
	settings  *sqlite.Settings
	fs        *filesystem.MockFileSystem
	prompt    *prompt.Mock
	shell     *shell.Mock
	git       *gitremote.Mock
	clipboard *shell.ClipboardMock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "xclaunch.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	te := &testEnv{
		store:     sqlite.NewStore(db, zap.NewNop()),
		settings:  sqlite.NewSettings(db),
		fs:        filesystem.NewMockFileSystem(),
		prompt:    prompt.NewMock(),
		shell:     &shell.Mock{},
		git:       gitremote.NewMock(),
		clipboard: &shell.ClipboardMock{},
	}
	te.Env = &application.Env{
		Store:     te.store,
		Settings:  te.settings,
		FS:        te.fs,
		Prompt:    te.prompt,
		Tree:      te.prompt,
		Shell:     te.shell,
		Git:       te.git,
		Clipboard: te.clipboard,
		Log:       zap.NewNop(),
	}
	return te
}

// seed registers, with matching folders:
//
//	Apps  (/dev/Apps)  > Weather (w) > WeatherApp (w, project), WeatherKit (wk, package)
//	Tools (/dev/Tools) > CLI         > Formatter (package)
func (te *testEnv) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	apps := domain.Category{Name: "Apps", Path: "/dev/Apps"}
	require.NoError(t, te.store.SaveCategory(ctx, &apps))
	tools := domain.Category{Name: "Tools", Path: "/dev/Tools"}
	require.NoError(t, te.store.SaveCategory(ctx, &tools))

	weather := domain.Group{Name: "Weather", Shortcut: "w"}
	require.NoError(t, te.store.SaveGroup(ctx, &weather, apps))
	cli := domain.Group{Name: "CLI"}
	require.NoError(t, te.store.SaveGroup(ctx, &cli, tools))

	app := domain.Project{
		Name:     "WeatherApp",
		Shortcut: "w",
		Type:     domain.ProjectTypeProject,
		Remote:   &domain.ProjectLink{Name: domain.RemoteLinkName, URLString: "git@github.com:me/weather.git"},
	}
	require.NoError(t, te.store.SaveProject(ctx, &app, weather))
	kit := domain.Project{
		Name:     "WeatherKit",
		Shortcut: "wk",
		Type:     domain.ProjectTypePackage,
		Links:    []domain.ProjectLink{{Name: "Docs", URLString: "https://docs.example.com/kit"}},
	}
	require.NoError(t, te.store.SaveProject(ctx, &kit, weather))
	formatter := domain.Project{Name: "Formatter", Type: domain.ProjectTypePackage}
	require.NoError(t, te.store.SaveProject(ctx, &formatter, cli))

	te.fs.AddDir("/dev/Apps/Weather/WeatherApp/WeatherApp.xcodeproj")
	te.fs.AddFile("/dev/Apps/Weather/WeatherKit/Package.swift", nil)
	te.fs.AddFile("/dev/Tools/CLI/Formatter/Package.swift", nil)
}

func (te *testEnv) project(t *testing.T, name string) domain.Project {
	t.Helper()
	projects, err := te.store.LoadProjects(context.Background())
	require.NoError(t, err)
	for _, p := range projects {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("project %s not found", name)
	return domain.Project{}
}

func (te *testEnv) group(t *testing.T, name string) domain.Group {
	t.Helper()
	groups, err := te.store.LoadGroups(context.Background())
	require.NoError(t, err)
	for _, g := range groups {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("group %s not found", name)
	return domain.Group{}
}

func (te *testEnv) counts(t *testing.T) (categories, groups, projects int) {
	t.Helper()
	ctx := context.Background()
	c, err := te.store.LoadCategories(ctx)
	require.NoError(t, err)
	g, err := te.store.LoadGroups(ctx)
	require.NoError(t, err)
	p, err := te.store.LoadProjects(ctx)
	require.NoError(t, err)
	return len(c), len(g), len(p)
}
