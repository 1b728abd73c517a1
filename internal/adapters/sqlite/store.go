package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// Store implements ports.HierarchyStore on top of gorm
type Store struct {
	db  *gorm.DB
	log *zap.Logger
}

// Ensure Store implements HierarchyStore
var _ ports.HierarchyStore = (*Store)(nil)

// NewStore creates a new Store
func NewStore(db *gorm.DB, log *zap.Logger) *Store {
	return &Store{db: db, log: log}
}

// LoadCategories returns all categories in registration order
func (s *Store) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	var records []categoryRecord
	if err := s.db.WithContext(ctx).Order("created_at, rowid").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, toCategory(r))
	}
	return categories, nil
}

// LoadGroups returns all groups with their category fields populated
func (s *Store) LoadGroups(ctx context.Context) ([]domain.Group, error) {
	categories, err := s.LoadCategories(ctx)
	if err != nil {
		return nil, err
	}
	return s.loadGroups(ctx, categories)
}

func (s *Store) loadGroups(ctx context.Context, categories []domain.Category) ([]domain.Group, error) {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	var records []groupRecord
	if err := s.db.WithContext(ctx).Order("created_at, rowid").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	groups := make([]domain.Group, 0, len(records))
	for _, r := range records {
		category, ok := byID[r.CategoryID]
		if !ok {
			s.log.Warn("group without category", zap.String("group", r.Name))
			continue
		}
		groups = append(groups, toGroup(r, category))
	}
	return groups, nil
}

// LoadProjects returns all projects with their group fields and links populated
func (s *Store) LoadProjects(ctx context.Context) ([]domain.Project, error) {
	groups, err := s.LoadGroups(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	var records []projectRecord
	err = s.db.WithContext(ctx).
		Preload("Links", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("created_at, rowid").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	projects := make([]domain.Project, 0, len(records))
	for _, r := range records {
		group, ok := byID[r.GroupID]
		if !ok {
			s.log.Warn("project without group", zap.String("project", r.Name))
			continue
		}
		projects = append(projects, toProject(r, group))
	}
	return projects, nil
}

// SaveCategory inserts a new category or updates an existing one
func (s *Store) SaveCategory(ctx context.Context, category *domain.Category) error {
	db := s.db.WithContext(ctx)

	if category.ID == "" {
		r := categoryRecord{ID: uuid.NewString(), Name: category.Name, Path: category.Path}
		if err := db.Create(&r).Error; err != nil {
			return fmt.Errorf("failed to save category %s: %w", category.Name, translate(err))
		}
		category.ID = r.ID
		s.log.Debug("category inserted", zap.String("name", category.Name))
		return nil
	}

	res := db.Model(&categoryRecord{ID: category.ID}).Updates(map[string]any{
		"name": category.Name,
		"path": category.Path,
	})
	return s.updated(res, "category", category.Name)
}

// SaveGroup inserts or updates group as a child of category
func (s *Store) SaveGroup(ctx context.Context, group *domain.Group, category domain.Category) error {
	db := s.db.WithContext(ctx)

	if group.ID == "" {
		r := groupRecord{ID: uuid.NewString(), CategoryID: category.ID, Name: group.Name, Shortcut: nullable(group.Shortcut)}
		if err := db.Create(&r).Error; err != nil {
			return fmt.Errorf("failed to save group %s: %w", group.Name, translate(err))
		}
		group.ID = r.ID
		s.log.Debug("group inserted", zap.String("name", group.Name))
	} else {
		res := db.Model(&groupRecord{ID: group.ID}).Updates(map[string]any{
			"category_id": category.ID,
			"name":        group.Name,
			"shortcut":    nullable(group.Shortcut),
		})
		if err := s.updated(res, "group", group.Name); err != nil {
			return err
		}
	}

	group.CategoryID = category.ID
	group.CategoryName = category.Name
	group.CategoryPath = category.Path
	return nil
}

// SaveProject inserts or updates project as a child of group, replacing its links
func (s *Store) SaveProject(ctx context.Context, project *domain.Project, group domain.Group) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := fromProject(project, group.ID)

		if r.ID == "" {
			r.ID = uuid.NewString()
			if err := tx.Create(&r).Error; err != nil {
				return translate(err)
			}
		} else {
			res := tx.Model(&projectRecord{ID: r.ID}).Updates(map[string]any{
				"group_id":    r.GroupID,
				"name":        r.Name,
				"shortcut":    r.Shortcut,
				"type":        r.Type,
				"remote_name": r.RemoteName,
				"remote_url":  r.RemoteURL,
			})
			if res.Error != nil {
				return translate(res.Error)
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			if err := tx.Where("project_id = ?", r.ID).Delete(&linkRecord{}).Error; err != nil {
				return err
			}
		}

		if links := linkRecords(r.ID, project.Links); len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		project.ID = r.ID
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", project.Name, err)
	}

	project.GroupID = group.ID
	project.GroupName = group.Name
	project.GroupShortcut = group.Shortcut
	project.GroupPath = group.Path()
	s.log.Debug("project saved", zap.String("name", project.Name), zap.String("group", group.Name))
	return nil
}

// DeleteCategory removes category with all its groups and their projects
func (s *Store) DeleteCategory(ctx context.Context, category domain.Category) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var groupIDs []string
		if err := tx.Model(&groupRecord{}).Where("category_id = ?", category.ID).Pluck("id", &groupIDs).Error; err != nil {
			return err
		}
		if err := deleteGroups(tx, groupIDs); err != nil {
			return err
		}
		return deleteOne(tx, &categoryRecord{}, category.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", category.Name, err)
	}

	s.log.Debug("category deleted", zap.String("name", category.Name))
	return nil
}

// DeleteGroup removes group with all its projects
func (s *Store) DeleteGroup(ctx context.Context, group domain.Group) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteGroups(tx, []string{group.ID}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete group %s: %w", group.Name, err)
	}

	s.log.Debug("group deleted", zap.String("name", group.Name))
	return nil
}

// DeleteProject removes project and its links
func (s *Store) DeleteProject(ctx context.Context, project domain.Project) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&linkRecord{}).Error; err != nil {
			return err
		}
		return deleteOne(tx, &projectRecord{}, project.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete project %s: %w", project.Name, err)
	}

	s.log.Debug("project deleted", zap.String("name", project.Name))
	return nil
}

// Transaction runs fn against a store bound to one database transaction
func (s *Store) Transaction(ctx context.Context, fn func(tx ports.HierarchyStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx, log: s.log})
	})
}

func (s *Store) updated(res *gorm.DB, kind, name string) error {
	if res.Error != nil {
		return fmt.Errorf("failed to save %s %s: %w", kind, name, translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("failed to save %s %s: %w", kind, name, gorm.ErrRecordNotFound)
	}
	s.log.Debug(kind+" updated", zap.String("name", name))
	return nil
}

func deleteGroups(tx *gorm.DB, groupIDs []string) error {
	if len(groupIDs) == 0 {
		return nil
	}

	var projectIDs []string
	if err := tx.Model(&projectRecord{}).Where("group_id IN ?", groupIDs).Pluck("id", &projectIDs).Error; err != nil {
		return err
	}
	if len(projectIDs) > 0 {
		if err := tx.Where("project_id IN ?", projectIDs).Delete(&linkRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", projectIDs).Delete(&projectRecord{}).Error; err != nil {
			return err
		}
	}

	res := tx.Where("id IN ?", groupIDs).Delete(&groupRecord{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != int64(len(groupIDs)) {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func deleteOne(tx *gorm.DB, model any, id string) error {
	res := tx.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// translate maps driver constraint failures to ports.ErrUniqueConstraint
func translate(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return fmt.Errorf("%w: %v", ports.ErrUniqueConstraint, err)
		}
	}
	return err
}
