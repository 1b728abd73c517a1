package sqlite

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"xclaunch/internal/ports"
)

const (
	keyLaunchScript = "launch_script"
	keyLinkNames    = "link_names"
)

// Settings implements ports.SettingsStore as rows of the settings table
type Settings struct {
	db *gorm.DB
}

// Ensure Settings implements SettingsStore
var _ ports.SettingsStore = (*Settings)(nil)

// NewSettings creates a new Settings store
func NewSettings(db *gorm.DB) *Settings {
	return &Settings{db: db}
}

// LaunchScript returns the stored launch script, or "" when none is set
func (s *Settings) LaunchScript(ctx context.Context) (string, error) {
	value, _, err := s.get(ctx, keyLaunchScript)
	return value, err
}

func (s *Settings) SetLaunchScript(ctx context.Context, script string) error {
	return s.set(ctx, keyLaunchScript, script)
}

func (s *Settings) ClearLaunchScript(ctx context.Context) error {
	return s.clear(ctx, keyLaunchScript)
}

// LinkNames returns the remembered link names in the order they were added
func (s *Settings) LinkNames(ctx context.Context) ([]string, error) {
	value, ok, err := s.get(ctx, keyLinkNames)
	if err != nil || !ok {
		return nil, err
	}

	var names []string
	if err := json.Unmarshal([]byte(value), &names); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", keyLinkNames, err)
	}
	return names, nil
}

func (s *Settings) SetLinkNames(ctx context.Context, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", keyLinkNames, err)
	}
	return s.set(ctx, keyLinkNames, string(data))
}

func (s *Settings) ClearLinkNames(ctx context.Context) error {
	return s.clear(ctx, keyLinkNames)
}

func (s *Settings) get(ctx context.Context, key string) (string, bool, error) {
	var r settingRecord
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&r).Error
	switch {
	case err == nil:
		return r.Value, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return "", false, nil
	default:
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
}

func (s *Settings) set(ctx context.Context, key, value string) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&settingRecord{Key: key, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

func (s *Settings) clear(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&settingRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear setting %s: %w", key, err)
	}
	return nil
}
