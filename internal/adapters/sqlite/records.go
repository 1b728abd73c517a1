package sqlite

import (
	"strings"
	"time"

	"xclaunch/internal/domain"
)

type categoryRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"type:text collate nocase;not null;uniqueIndex"`
	Path      string `gorm:"type:text collate nocase;not null;uniqueIndex"`
	CreatedAt time.Time
	Groups    []groupRecord `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

func (categoryRecord) TableName() string { return "categories" }

type groupRecord struct {
	ID         string  `gorm:"primaryKey"`
	CategoryID string  `gorm:"not null;index"`
	Name       string  `gorm:"type:text collate nocase;not null;uniqueIndex"`
	Shortcut   *string `gorm:"type:text collate nocase;uniqueIndex"`
	CreatedAt  time.Time
	Projects   []projectRecord `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (groupRecord) TableName() string { return "project_groups" }

type projectRecord struct {
	ID         string  `gorm:"primaryKey"`
	GroupID    string  `gorm:"not null;index"`
	Name       string  `gorm:"type:text collate nocase;not null;uniqueIndex"`
	Shortcut   *string `gorm:"type:text collate nocase;uniqueIndex"`
	Type       string  `gorm:"not null"`
	RemoteName string
	RemoteURL  string
	CreatedAt  time.Time
	Links      []linkRecord `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (projectRecord) TableName() string { return "projects" }

type linkRecord struct {
	ID        uint   `gorm:"primaryKey"`
	ProjectID string `gorm:"not null;index"`
	Name      string `gorm:"not null"`
	URL       string `gorm:"not null"`
	Position  int
}

func (linkRecord) TableName() string { return "project_links" }

type settingRecord struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

func (settingRecord) TableName() string { return "settings" }

func nullable(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toCategory(r categoryRecord) domain.Category {
	return domain.Category{ID: r.ID, Name: r.Name, Path: r.Path}
}

func toGroup(r groupRecord, category domain.Category) domain.Group {
	return domain.Group{
		ID:           r.ID,
		Name:         r.Name,
		Shortcut:     deref(r.Shortcut),
		CategoryID:   category.ID,
		CategoryName: category.Name,
		CategoryPath: category.Path,
	}
}

func toProject(r projectRecord, group domain.Group) domain.Project {
	p := domain.Project{
		ID:            r.ID,
		Name:          r.Name,
		Shortcut:      deref(r.Shortcut),
		Type:          domain.ProjectType(r.Type),
		GroupID:       group.ID,
		GroupName:     group.Name,
		GroupShortcut: group.Shortcut,
		GroupPath:     group.Path(),
	}
	if r.RemoteURL != "" {
		p.Remote = &domain.ProjectLink{Name: r.RemoteName, URLString: r.RemoteURL}
	}
	for _, l := range r.Links {
		p.Links = append(p.Links, domain.ProjectLink{Name: l.Name, URLString: l.URL})
	}
	return p
}

func fromProject(p *domain.Project, groupID string) projectRecord {
	r := projectRecord{
		ID:       p.ID,
		GroupID:  groupID,
		Name:     strings.TrimSpace(p.Name),
		Shortcut: nullable(p.Shortcut),
		Type:     p.Type.String(),
	}
	if p.Remote != nil {
		r.RemoteName = p.Remote.Name
		r.RemoteURL = p.Remote.URLString
	}
	return r
}

func linkRecords(projectID string, links []domain.ProjectLink) []linkRecord {
	records := make([]linkRecord, 0, len(links))
	for i, l := range links {
		records = append(records, linkRecord{ProjectID: projectID, Name: l.Name, URL: l.URLString, Position: i})
	}
	return records
}
