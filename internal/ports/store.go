package ports

import (
	"context"
	"errors"

	"xclaunch/internal/domain"
)

// ErrUniqueConstraint is returned by a store when a write violates a uniqueness constraint
var ErrUniqueConstraint = errors.New("unique constraint violated")

// HierarchyLoader provides read access to the registered hierarchy.
// Groups and projects come back with their parent fields populated.
type HierarchyLoader interface {
	LoadCategories(ctx context.Context) ([]domain.Category, error)
	LoadGroups(ctx context.Context) ([]domain.Group, error)
	LoadProjects(ctx context.Context) ([]domain.Project, error)
}

// HierarchyStore persists categories, groups and projects.
// It enforces no business rules beyond storage constraints.
type HierarchyStore interface {
	HierarchyLoader

	// Save operations insert or update; a zero ID means insert and the
	// generated ID is written back to the entity
	SaveCategory(ctx context.Context, category *domain.Category) error
	SaveGroup(ctx context.Context, group *domain.Group, category domain.Category) error
	SaveProject(ctx context.Context, project *domain.Project, group domain.Group) error

	// Delete operations cascade to children and are atomic
	DeleteCategory(ctx context.Context, category domain.Category) error
	DeleteGroup(ctx context.Context, group domain.Group) error
	DeleteProject(ctx context.Context, project domain.Project) error

	// Transaction runs fn against a transaction-scoped store. The transaction
	// commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx HierarchyStore) error) error
}

// SettingsStore holds the two flat settings kept next to the hierarchy
type SettingsStore interface {
	LaunchScript(ctx context.Context) (string, error)
	SetLaunchScript(ctx context.Context, script string) error
	ClearLaunchScript(ctx context.Context) error

	LinkNames(ctx context.Context) ([]string, error)
	SetLinkNames(ctx context.Context, names []string) error
	ClearLinkNames(ctx context.Context) error
}
