package domain

import "fmt"

// NodeKind identifies what a TreeNode represents
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeCategory
	NodeGroup
	NodeProject
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "root"
	case NodeCategory:
		return "category"
	case NodeGroup:
		return "group"
	case NodeProject:
		return "project"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// TreeNode represents a node in the hierarchy tree for navigation
type TreeNode struct {
	Kind       NodeKind
	ID         string
	Name       string
	Detail     string // shortcut or project type, rendered next to the name
	Path       string
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// BuildTree assembles the Category > Group > Project tree down to the given depth.
// Depth NodeCategory stops at categories, NodeProject includes everything.
func BuildTree(categories []Category, groups []Group, projects []Project, depth NodeKind) *TreeNode {
	root := &TreeNode{Kind: NodeRoot, ID: "root", Name: "Projects", IsExpanded: true}

	for _, c := range categories {
		catNode := root.add(&TreeNode{Kind: NodeCategory, ID: c.ID, Name: c.Name, Path: c.Path})
		if depth < NodeGroup {
			continue
		}
		for _, g := range GroupsInCategory(groups, c.ID) {
			groupNode := catNode.add(&TreeNode{Kind: NodeGroup, ID: g.ID, Name: g.Name, Detail: g.Shortcut, Path: g.Path()})
			if depth < NodeProject {
				continue
			}
			for _, p := range ProjectsInGroup(projects, g.ID) {
				detail := p.Type.String()
				if p.HasShortcut() {
					detail = p.Shortcut + ", " + detail
				}
				groupNode.add(&TreeNode{Kind: NodeProject, ID: p.ID, Name: p.Name, Detail: detail, Path: p.FolderPath()})
			}
		}
	}

	return root
}

func (n *TreeNode) add(child *TreeNode) *TreeNode {
	child.Parent = n
	n.Children = append(n.Children, child)
	return child
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// IsLeaf reports whether the node has nothing to expand
func (n *TreeNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// ExpandAll expands the node and all of its descendants
func (n *TreeNode) ExpandAll() {
	n.IsExpanded = true
	for _, child := range n.Children {
		child.ExpandAll()
	}
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}
