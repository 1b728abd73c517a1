package domain

import "testing"

func TestProjectDerivedPaths(t *testing.T) {
	tests := []struct {
		name         string
		project      Project
		wantFolder   string
		wantFileName string
		wantFilePath string
	}{
		{
			name:         "xcode project",
			project:      Project{Name: "App", Type: ProjectTypeProject, GroupPath: "/dev/iOS/Shop"},
			wantFolder:   "/dev/iOS/Shop/App",
			wantFileName: "App.xcodeproj",
			wantFilePath: "/dev/iOS/Shop/App/App.xcodeproj",
		},
		{
			name:         "swift package",
			project:      Project{Name: "Kit", Type: ProjectTypePackage, GroupPath: "/dev/iOS/Shop"},
			wantFolder:   "/dev/iOS/Shop/Kit",
			wantFileName: "Package.swift",
			wantFilePath: "/dev/iOS/Shop/Kit/Package.swift",
		},
		{
			name:         "workspace",
			project:      Project{Name: "Suite", Type: ProjectTypeWorkspace, GroupPath: "/dev/iOS/Shop"},
			wantFolder:   "/dev/iOS/Shop/Suite",
			wantFileName: "Suite.xcworkspace",
			wantFilePath: "/dev/iOS/Shop/Suite/Suite.xcworkspace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.FolderPath(); got != tt.wantFolder {
				t.Errorf("FolderPath() = %q, want %q", got, tt.wantFolder)
			}
			if got := tt.project.FileName(); got != tt.wantFileName {
				t.Errorf("FileName() = %q, want %q", got, tt.wantFileName)
			}
			if got := tt.project.FilePath(); got != tt.wantFilePath {
				t.Errorf("FilePath() = %q, want %q", got, tt.wantFilePath)
			}
		})
	}
}

func TestGroupPath(t *testing.T) {
	g := Group{Name: "Shop", CategoryPath: "/dev/iOS"}
	if got := g.Path(); got != "/dev/iOS/Shop" {
		t.Errorf("Path() = %q, want %q", got, "/dev/iOS/Shop")
	}
}

func TestProjectIsMain(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		want    bool
	}{
		{"matching shortcut", Project{Shortcut: "shp", GroupShortcut: "shp"}, true},
		{"case-insensitive match", Project{Shortcut: "SHP", GroupShortcut: "shp"}, true},
		{"different shortcut", Project{Shortcut: "api", GroupShortcut: "shp"}, false},
		{"both unset", Project{}, false},
		{"group unset", Project{Shortcut: "api"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.project.IsMain(); got != tt.want {
				t.Errorf("IsMain() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseProjectType(t *testing.T) {
	tests := []struct {
		in     string
		want   ProjectType
		wantOK bool
	}{
		{"project", ProjectTypeProject, true},
		{"Package", ProjectTypePackage, true},
		{"workspace", ProjectTypeWorkspace, true},
		{"playground", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseProjectType(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseProjectType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestShortcutPools(t *testing.T) {
	groups := []Group{{Shortcut: "a"}, {}, {Shortcut: "b"}}
	projects := []Project{{Shortcut: "c"}, {}}

	if got := GroupShortcuts(groups); len(got) != 2 {
		t.Errorf("GroupShortcuts() = %v, want 2 entries", got)
	}
	if got := ProjectShortcuts(projects); len(got) != 1 || got[0] != "c" {
		t.Errorf("ProjectShortcuts() = %v, want [c]", got)
	}
}
