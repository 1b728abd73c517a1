package application

import (
	"fmt"
	"path/filepath"
	"strings"

	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// ClassifyProject inspects a folder's direct contents and reports which kind
// of project it holds. A Package.swift manifest wins over an .xcodeproj bundle.
// Workspace detection is not implemented.
func ClassifyProject(fsys ports.FileSystem, folder string) (domain.ProjectType, error) {
	entries, err := fsys.ReadDir(folder)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", folder, err)
	}

	hasXcodeProj := false
	for _, entry := range entries {
		if !entry.IsDir() && entry.Name() == domain.PackageManifest {
			return domain.ProjectTypePackage, nil
		}
		ext := strings.TrimPrefix(filepath.Ext(entry.Name()), ".")
		if entry.IsDir() && ext == domain.ProjectTypeProject.Extension() {
			hasXcodeProj = true
		}
	}

	if hasXcodeProj {
		return domain.ProjectTypeProject, nil
	}

	return "", fmt.Errorf("%w: %s", ErrNoProjectInFolder, folder)
}
