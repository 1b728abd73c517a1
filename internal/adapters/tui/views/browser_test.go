package views

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xclaunch/internal/domain"
)

func testTree() *domain.TreeNode {
	categories := []domain.Category{
		{ID: "c1", Name: "Apps", Path: "/dev/Apps"},
		{ID: "c2", Name: "Tools", Path: "/dev/Tools"},
	}
	groups := []domain.Group{
		{ID: "g1", Name: "Weather", Shortcut: "w", CategoryID: "c1", CategoryPath: "/dev/Apps"},
		{ID: "g2", Name: "Notes", CategoryID: "c1", CategoryPath: "/dev/Apps"},
		{ID: "g3", Name: "Lint", CategoryID: "c2", CategoryPath: "/dev/Tools"},
	}
	projects := []domain.Project{
		{ID: "p1", Name: "WeatherApp", Shortcut: "w", Type: domain.ProjectTypeProject, GroupID: "g1"},
		{ID: "p2", Name: "WeatherKit", Type: domain.ProjectTypePackage, GroupID: "g1"},
	}
	return domain.BuildTree(categories, groups, projects, domain.NodeProject)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(m *BrowserModel, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

func TestBrowser_CategoriesStartExpanded(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	// Apps, Weather, Notes, Tools, Lint; groups stay collapsed
	require.Len(t, m.flatNodes, 5)
	assert.Equal(t, "Apps", m.flatNodes[0].Name)
	assert.Equal(t, "Lint", m.flatNodes[4].Name)
}

func TestBrowser_SelectProject(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	// Down to Weather, expand, down to WeatherKit
	press(m, "j", "l", "j", "j")
	cmd := press(m, "enter")
	require.NotNil(t, cmd)

	node, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "p2", node.ID)
}

func TestBrowser_EnterOnParentToggles(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	press(m, "j", "enter")
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Len(t, m.flatNodes, 7)

	press(m, "enter")
	assert.Len(t, m.flatNodes, 5)
}

func TestBrowser_EnterOnEmptyGroupShowsMessage(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	press(m, "j", "j", "enter")
	_, ok := m.Selected()
	assert.False(t, ok)
	assert.Contains(t, m.message, "Notes has no projects")
}

func TestBrowser_SelectGroup(t *testing.T) {
	root := domain.BuildTree(
		[]domain.Category{{ID: "c1", Name: "Apps"}},
		[]domain.Group{{ID: "g1", Name: "Weather", CategoryID: "c1"}},
		nil, domain.NodeGroup)
	m := NewBrowserModel("Select a group", root, domain.NodeGroup)

	press(m, "j", "enter")
	node, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, domain.NodeGroup, node.Kind)
}

func TestBrowser_LeftMovesToParent(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	press(m, "j", "l", "j", "h")
	assert.Equal(t, "Weather", m.selectedNode().Name)

	press(m, "h")
	assert.Len(t, m.flatNodes, 5)
}

func TestBrowser_QuitCancels(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)

	cmd := press(m, "esc")
	require.NotNil(t, cmd)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestBrowser_ViewShowsDetails(t *testing.T) {
	m := NewBrowserModel("Select a project", testTree(), domain.NodeProject)
	press(m, "e")

	view := m.View()
	for _, want := range []string{"Select a project", "WeatherApp", "w, project", "WeatherKit"} {
		assert.True(t, strings.Contains(view, want), "view missing %q", want)
	}
}

func TestBrowser_EmptyTree(t *testing.T) {
	m := NewBrowserModel("Select a project", domain.BuildTree(nil, nil, nil, domain.NodeProject), domain.NodeProject)

	assert.Contains(t, m.View(), "Nothing registered yet")
	press(m, "enter", "j", "k")
	_, ok := m.Selected()
	assert.False(t, ok)
}
