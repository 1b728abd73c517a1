package application

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"xclaunch/internal/adapters/sqlite"
	"xclaunch/internal/domain"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "xclaunch.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })

	return sqlite.NewStore(db, zap.NewNop())
}

type fixture struct {
	apps, tools                domain.Category
	weather, cli               domain.Group
	weatherApp, kit, formatter domain.Project
}

// seedHierarchy registers:
//
//	Apps  > Weather (w) > WeatherApp (w), WeatherKit (wk)
//	Tools > CLI         > Formatter
func seedHierarchy(t *testing.T, s *sqlite.Store) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture

	f.apps = domain.Category{Name: "Apps", Path: "/dev/Apps"}
	require.NoError(t, s.SaveCategory(ctx, &f.apps))
	f.tools = domain.Category{Name: "Tools", Path: "/dev/Tools"}
	require.NoError(t, s.SaveCategory(ctx, &f.tools))

	f.weather = domain.Group{Name: "Weather", Shortcut: "w"}
	require.NoError(t, s.SaveGroup(ctx, &f.weather, f.apps))
	f.cli = domain.Group{Name: "CLI"}
	require.NoError(t, s.SaveGroup(ctx, &f.cli, f.tools))

	f.weatherApp = domain.Project{Name: "WeatherApp", Shortcut: "w", Type: domain.ProjectTypeProject}
	require.NoError(t, s.SaveProject(ctx, &f.weatherApp, f.weather))
	f.kit = domain.Project{Name: "WeatherKit", Shortcut: "wk", Type: domain.ProjectTypePackage}
	require.NoError(t, s.SaveProject(ctx, &f.kit, f.weather))
	f.formatter = domain.Project{Name: "Formatter", Type: domain.ProjectTypePackage}
	require.NoError(t, s.SaveProject(ctx, &f.formatter, f.cli))

	return f
}

func projectByName(t *testing.T, s *sqlite.Store, name string) domain.Project {
	t.Helper()
	projects, err := s.LoadProjects(context.Background())
	require.NoError(t, err)
	for _, p := range projects {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("project %s not found", name)
	return domain.Project{}
}

func groupByName(t *testing.T, s *sqlite.Store, name string) domain.Group {
	t.Helper()
	groups, err := s.LoadGroups(context.Background())
	require.NoError(t, err)
	for _, g := range groups {
		if g.Name == name {
			return g
		}
	}
	t.Fatalf("group %s not found", name)
	return domain.Group{}
}
