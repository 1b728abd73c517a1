package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"xclaunch/internal/adapters/tui/styles"
	"xclaunch/internal/domain"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Enter  key.Binding
	Expand key.Binding
	Quit   key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "expand"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Expand: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "expand all"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "cancel"),
	),
}

// chrome is the number of rows taken by title, message and help line
const chrome = 8

// BrowserModel lets the user walk the hierarchy and pick a node of one kind
type BrowserModel struct {
	title      string
	root       *domain.TreeNode
	selectable domain.NodeKind

	flatNodes []*domain.TreeNode
	pager     *Paginator
	width     int
	height    int
	message   string

	selected *domain.TreeNode
}

// NewBrowserModel creates a browser over root. Categories start expanded
// unless categories themselves are being picked.
func NewBrowserModel(title string, root *domain.TreeNode, selectable domain.NodeKind) *BrowserModel {
	root.Expand()
	if selectable > domain.NodeCategory {
		for _, c := range root.Children {
			c.Expand()
		}
	}

	m := &BrowserModel{
		title:      title,
		root:       root,
		selectable: selectable,
		pager:      NewPaginator(20),
	}
	m.refreshFlatNodes()
	return m
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Selected returns the picked node; ok is false when the user cancelled
func (m *BrowserModel) Selected() (node *domain.TreeNode, ok bool) {
	return m.selected, m.selected != nil
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pager.SetPageSize(msg.Height - chrome)
		return m, nil

	case tea.KeyMsg:
		m.message = ""

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			m.selected = nil
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.pager.CursorUp()
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.pager.CursorDown()
			return m, nil

		case key.Matches(msg, BrowserKeys.Left):
			if node := m.selectedNode(); node != nil {
				if node.IsExpanded && !node.IsLeaf() {
					node.Collapse()
					m.refreshFlatNodes()
				} else if node.Parent != nil && node.Parent.Kind != domain.NodeRoot {
					m.moveTo(node.Parent)
				}
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Right):
			if node := m.selectedNode(); node != nil && !node.IsLeaf() && !node.IsExpanded {
				node.Expand()
				m.refreshFlatNodes()
			}
			return m, nil

		case key.Matches(msg, BrowserKeys.Expand):
			m.root.ExpandAll()
			m.refreshFlatNodes()
			return m, nil

		case key.Matches(msg, BrowserKeys.Enter):
			node := m.selectedNode()
			if node == nil {
				return m, nil
			}
			if node.Kind == m.selectable {
				m.selected = node
				return m, tea.Quit
			}
			if node.IsLeaf() {
				m.message = fmt.Sprintf("%s has no %ss", node.Name, m.selectable)
				return m, nil
			}
			node.Toggle()
			m.refreshFlatNodes()
			return m, nil
		}
	}

	return m, nil
}

func (m *BrowserModel) selectedNode() *domain.TreeNode {
	cursor := m.pager.Cursor()
	if cursor >= 0 && cursor < len(m.flatNodes) {
		return m.flatNodes[cursor]
	}
	return nil
}

func (m *BrowserModel) moveTo(target *domain.TreeNode) {
	for i, n := range m.flatNodes {
		if n == target {
			m.pager.SetCursor(i)
			return
		}
	}
}

func (m *BrowserModel) refreshFlatNodes() {
	current := m.selectedNode()

	m.flatNodes = m.root.Flatten()
	// Skip root node in display
	if len(m.flatNodes) > 0 {
		m.flatNodes = m.flatNodes[1:]
	}
	m.pager.SetTotal(len(m.flatNodes))

	if current != nil {
		m.moveTo(current)
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title))
	b.WriteString("\n")

	if len(m.flatNodes) == 0 {
		b.WriteString(styles.MutedText.Render("Nothing registered yet"))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderNode(m.flatNodes[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if pages := m.pager.TotalPages(); pages > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), pages)))
		b.WriteString("\n")
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(RenderMessage(m.message, true))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(RenderHelpLine(
		BrowserKeys.Up, BrowserKeys.Down, BrowserKeys.Left, BrowserKeys.Right,
		BrowserKeys.Enter, BrowserKeys.Expand, BrowserKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderNode(node *domain.TreeNode, selected bool) string {
	indent := strings.Repeat("  ", node.Depth()-1)

	var prefix string
	switch {
	case node.IsLeaf():
		prefix = styles.TreeLeaf
	case node.IsExpanded:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	var style lipgloss.Style
	switch node.Kind {
	case domain.NodeCategory:
		style = styles.NodeCategory
	case domain.NodeGroup:
		style = styles.NodeGroup
	default:
		style = styles.NodeProject
	}
	if node.Kind != m.selectable {
		style = styles.NodeDisabled
	}

	text := style.Render(node.Name)
	if selected {
		text = styles.NodeSelected.Render(node.Name)
	}
	if node.Detail != "" {
		text += " " + styles.NodeDetail.Render("("+node.Detail+")")
	}

	return fmt.Sprintf("%s%s%s", indent, styles.TreeBranch.Render(prefix), text)
}
