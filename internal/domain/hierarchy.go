package domain

import (
	"path/filepath"
	"strings"
)

// PackageManifest is the file that marks a folder as a Swift package
const PackageManifest = "Package.swift"

// ProjectType is the kind of Xcode artifact a project folder holds
type ProjectType string

const (
	ProjectTypeProject   ProjectType = "project"
	ProjectTypePackage   ProjectType = "package"
	ProjectTypeWorkspace ProjectType = "workspace"
)

// ParseProjectType parses a stored project type string
func ParseProjectType(s string) (ProjectType, bool) {
	switch t := ProjectType(strings.ToLower(s)); t {
	case ProjectTypeProject, ProjectTypePackage, ProjectTypeWorkspace:
		return t, true
	default:
		return "", false
	}
}

// Extension returns the bundle extension for the type, empty for packages
func (t ProjectType) Extension() string {
	switch t {
	case ProjectTypeProject:
		return "xcodeproj"
	case ProjectTypeWorkspace:
		return "xcworkspace"
	default:
		return ""
	}
}

func (t ProjectType) String() string {
	return string(t)
}

// Category is the top-level folder grouping several groups
type Category struct {
	ID   string
	Name string
	Path string // absolute folder path
}

// Group collects related projects inside a category folder
type Group struct {
	ID       string
	Name     string
	Shortcut string // empty when unset

	CategoryID   string
	CategoryName string
	CategoryPath string
}

// Path returns the group's folder, a direct child of its category's folder
func (g Group) Path() string {
	return filepath.Join(g.CategoryPath, g.Name)
}

// Category returns the owning category as recorded on the group
func (g Group) Category() Category {
	return Category{ID: g.CategoryID, Name: g.CategoryName, Path: g.CategoryPath}
}

// HasShortcut reports whether a shortcut is assigned
func (g Group) HasShortcut() bool {
	return g.Shortcut != ""
}

// ProjectLink is a named URL attached to a project
type ProjectLink struct {
	Name      string
	URLString string
}

// Project is a registered Xcode project, Swift package or workspace
type Project struct {
	ID       string
	Name     string
	Shortcut string // empty when unset
	Type     ProjectType
	Remote   *ProjectLink
	Links    []ProjectLink

	GroupID       string
	GroupName     string
	GroupShortcut string
	GroupPath     string
}

// FolderPath returns the project's folder, a direct child of its group's folder
func (p Project) FolderPath() string {
	return filepath.Join(p.GroupPath, p.Name)
}

// FileName returns the file an IDE should open for the project
func (p Project) FileName() string {
	if p.Type == ProjectTypePackage {
		return PackageManifest
	}
	return p.Name + "." + p.Type.Extension()
}

// FilePath returns the absolute path of FileName
func (p Project) FilePath() string {
	return filepath.Join(p.FolderPath(), p.FileName())
}

// IsMain reports whether the project holds its group's shortcut
func (p Project) IsMain() bool {
	return p.GroupShortcut != "" && strings.EqualFold(p.Shortcut, p.GroupShortcut)
}

// HasShortcut reports whether a shortcut is assigned
func (p Project) HasShortcut() bool {
	return p.Shortcut != ""
}

// SameName compares two names the way uniqueness is enforced (case-insensitive)
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// CategoryNames returns the names of the given categories
func CategoryNames(categories []Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}

// GroupNames returns the names of the given groups
func GroupNames(groups []Group) []string {
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		names = append(names, g.Name)
	}
	return names
}

// ProjectNames returns the names of the given projects
func ProjectNames(projects []Project) []string {
	names := make([]string, 0, len(projects))
	for _, p := range projects {
		names = append(names, p.Name)
	}
	return names
}

// GroupShortcuts returns all assigned group shortcuts
func GroupShortcuts(groups []Group) []string {
	var shortcuts []string
	for _, g := range groups {
		if g.HasShortcut() {
			shortcuts = append(shortcuts, g.Shortcut)
		}
	}
	return shortcuts
}

// ProjectShortcuts returns all assigned project shortcuts
func ProjectShortcuts(projects []Project) []string {
	var shortcuts []string
	for _, p := range projects {
		if p.HasShortcut() {
			shortcuts = append(shortcuts, p.Shortcut)
		}
	}
	return shortcuts
}

// ProjectsInGroup filters projects down to the members of one group
func ProjectsInGroup(projects []Project, groupID string) []Project {
	var members []Project
	for _, p := range projects {
		if p.GroupID == groupID {
			members = append(members, p)
		}
	}
	return members
}

// GroupsInCategory filters groups down to the members of one category
func GroupsInCategory(groups []Group, categoryID string) []Group {
	var members []Group
	for _, g := range groups {
		if g.CategoryID == categoryID {
			members = append(members, g)
		}
	}
	return members
}
