package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// RemovalKind describes what deleting a project does to its group's shortcut
type RemovalKind int

const (
	// RemovalRegular deletes a project that is not the main project
	RemovalRegular RemovalKind = iota
	// RemovalSole deletes the only project of a group; the group keeps its shortcut
	RemovalSole
	// RemovalMain deletes the main project; a successor must take over
	RemovalMain
)

// Succession names the project taking over as main and the shortcut value it keeps
type Succession struct {
	Replacement domain.Project
	// KeepProjectShortcut retains the replacement's own shortcut instead of the group's
	KeepProjectShortcut bool
}

// MainProjects maintains the rule that a group's shortcut, when set, is held
// by exactly one of its projects
type MainProjects struct {
	store ports.HierarchyStore
	log   *zap.Logger
}

// NewMainProjects creates a new MainProjects coordinator
func NewMainProjects(store ports.HierarchyStore, log *zap.Logger) *MainProjects {
	return &MainProjects{store: store, log: log}
}

// ValidateMainShortcut checks candidate for use as the shared shortcut of
// group and target. Values already held by the group, its current main project
// and target itself do not count as taken.
func (m *MainProjects) ValidateMainShortcut(ctx context.Context, group domain.Group, target domain.Project, candidate string) (string, error) {
	if strings.TrimSpace(candidate) == "" {
		return "", &ValidationError{Field: "shortcut", Message: "a main project needs a shortcut"}
	}

	groups, err := m.store.LoadGroups(ctx)
	if err != nil {
		return "", err
	}
	projects, err := m.store.LoadProjects(ctx)
	if err != nil {
		return "", err
	}

	return ValidateShortcut(candidate,
		without(domain.GroupShortcuts(groups), group.Shortcut),
		without(domain.ProjectShortcuts(projects), group.Shortcut, target.Shortcut),
	)
}

// AssignMain makes target the main project of group with the given, already
// validated, shortcut. Whichever project held the previous group shortcut
// loses it. All writes happen in one transaction.
func (m *MainProjects) AssignMain(ctx context.Context, group domain.Group, target domain.Project, shortcut string) (domain.Group, domain.Project, error) {
	if target.GroupID != group.ID {
		return group, target, &ValidationError{
			Field:   "project",
			Message: fmt.Sprintf("%s does not belong to group %s", target.Name, group.Name),
		}
	}

	err := m.store.Transaction(ctx, func(tx ports.HierarchyStore) error {
		projects, err := tx.LoadProjects(ctx)
		if err != nil {
			return err
		}

		if group.HasShortcut() {
			for _, p := range domain.ProjectsInGroup(projects, group.ID) {
				if p.ID == target.ID || !strings.EqualFold(p.Shortcut, group.Shortcut) {
					continue
				}
				p.Shortcut = ""
				if err := tx.SaveProject(ctx, &p, group); err != nil {
					return err
				}
				m.log.Debug("main project shortcut cleared", zap.String("project", p.Name))
			}
		}

		group.Shortcut = shortcut
		if err := tx.SaveGroup(ctx, &group, group.Category()); err != nil {
			return err
		}

		target.Shortcut = shortcut
		target.GroupShortcut = shortcut
		return tx.SaveProject(ctx, &target, group)
	})
	if err != nil {
		return group, target, fmt.Errorf("failed to set main project: %w", err)
	}

	m.log.Debug("main project assigned",
		zap.String("group", group.Name),
		zap.String("project", target.Name),
		zap.String("shortcut", shortcut))
	return group, target, nil
}

// ClassifyRemoval reports how deleting target affects its group, given all
// projects of that group (target included)
func ClassifyRemoval(target domain.Project, members []domain.Project) RemovalKind {
	others := 0
	for _, p := range members {
		if p.ID != target.ID {
			others++
		}
	}

	switch {
	case others == 0:
		return RemovalSole
	case target.IsMain():
		return RemovalMain
	default:
		return RemovalRegular
	}
}

// Successors returns the projects eligible to take over from target
func Successors(target domain.Project, members []domain.Project) []domain.Project {
	var candidates []domain.Project
	for _, p := range members {
		if p.ID != target.ID {
			candidates = append(candidates, p)
		}
	}
	return candidates
}

// RemoveProject deletes target. When target is the main project of a group
// with other projects, succession must name a replacement from that group;
// the retained shortcut becomes the group's and the replacement's, and the
// other value is released.
func (m *MainProjects) RemoveProject(ctx context.Context, group domain.Group, target domain.Project, succession *Succession) error {
	err := m.store.Transaction(ctx, func(tx ports.HierarchyStore) error {
		projects, err := tx.LoadProjects(ctx)
		if err != nil {
			return err
		}
		members := domain.ProjectsInGroup(projects, group.ID)

		if ClassifyRemoval(target, members) != RemovalMain {
			return tx.DeleteProject(ctx, target)
		}

		if succession == nil {
			return missing(ErrMissingProject, "a replacement main project is required")
		}
		replacement, ok := findProject(Successors(target, members), succession.Replacement.ID)
		if !ok {
			return missing(ErrMissingProject, succession.Replacement.Name)
		}

		retained := group.Shortcut
		if succession.KeepProjectShortcut && replacement.HasShortcut() {
			retained = replacement.Shortcut
		}

		// target goes first so its shortcut is free before anyone takes it
		if err := tx.DeleteProject(ctx, target); err != nil {
			return err
		}

		group.Shortcut = retained
		if err := tx.SaveGroup(ctx, &group, group.Category()); err != nil {
			return err
		}

		replacement.Shortcut = retained
		replacement.GroupShortcut = retained
		return tx.SaveProject(ctx, &replacement, group)
	})
	if err != nil {
		return fmt.Errorf("failed to remove project %s: %w", target.Name, err)
	}

	m.log.Debug("project removed", zap.String("project", target.Name), zap.String("group", group.Name))
	return nil
}

func findProject(projects []domain.Project, id string) (domain.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Project{}, false
}
