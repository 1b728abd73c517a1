package application

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		wantMsg   string
	}{
		{
			name:      "valid value",
			fieldName: "groupName",
			value:     "Weather",
		},
		{
			name:      "empty string",
			fieldName: "groupName",
			value:     "",
			wantErr:   true,
			wantMsg:   "group name is required",
		},
		{
			name:      "whitespace only",
			fieldName: "linkURL",
			value:     "   ",
			wantErr:   true,
			wantMsg:   "link URL is required",
		},
		{
			name:      "unknown field name is used as-is",
			fieldName: "shortcut",
			value:     "",
			wantErr:   true,
			wantMsg:   "shortcut is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var valErr *ValidationError
			require.True(t, errors.As(err, &valErr), "expected ValidationError, got %T", err)
			assert.Equal(t, tt.fieldName, valErr.Field)
			assert.Contains(t, valErr.Message, tt.wantMsg)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestValidateName(t *testing.T) {
	existing := []string{"Weather", "Notes"}

	tests := []struct {
		name      string
		candidate string
		want      string
		wantErr   error
	}{
		{"new name", "Maps", "Maps", nil},
		{"trimmed", "  Maps ", "Maps", nil},
		{"exact collision", "Weather", "", ErrNameTaken},
		{"case-insensitive collision", "wEATHER", "", ErrNameTaken},
		{"empty", "  ", "", ErrInvalidInput},
		{"path separator", "Apps/Weather", "", ErrInvalidInput},
		{"backslash", `Apps\Weather`, "", ErrInvalidInput},
		{"dot dot", "..", "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(KindGroup, tt.candidate, existing)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateName_ErrorNamesKind(t *testing.T) {
	_, err := ValidateName(KindProject, "weatherapp", []string{"WeatherApp"})

	var taken *NameTakenError
	require.True(t, errors.As(err, &taken))
	assert.Equal(t, KindProject, taken.Kind)
	assert.Equal(t, `project name "weatherapp" is already taken`, err.Error())
}

func TestValidateShortcut(t *testing.T) {
	groupShortcuts := []string{"x"}
	projectShortcuts := []string{"wa", "nt"}

	tests := []struct {
		name      string
		candidate string
		want      string
		wantErr   error
	}{
		{"absent", "", "", nil},
		{"whitespace is absent", "  ", "", nil},
		{"free", "mp", "mp", nil},
		{"group pool", "x", "", ErrShortcutTaken},
		{"cross-kind, case-insensitive", "X", "", ErrShortcutTaken},
		{"project pool", "NT", "", ErrShortcutTaken},
		{"inner whitespace", "w a", "", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateShortcut(tt.candidate, groupShortcuts, projectShortcuts)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"https://github.com/me/weather", "https://github.com/me/weather", false},
		{" https://jira.example.com/browse/WEA ", "https://jira.example.com/browse/WEA", false},
		{"mailto:me@example.com", "mailto:me@example.com", false},
		{"github.com/me/weather", "", true},
		{"/just/a/path", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ValidateURL("linkURL", tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithout(t *testing.T) {
	got := without([]string{"w", "X", "nt", ""}, "x", "")
	assert.Equal(t, []string{"w", "nt", ""}, got)
}

func TestFolderCollisionError_Is(t *testing.T) {
	create := &FolderCollisionError{Kind: KindGroup, Path: "/dev/Apps/Weather"}
	imported := &FolderCollisionError{Kind: KindGroup, Path: "/dev/Apps/Weather", Importing: true}
	category := &FolderCollisionError{Kind: KindCategory, Path: "/dev/Apps", Importing: true}

	assert.True(t, errors.Is(create, ErrFolderNameTaken))
	assert.False(t, errors.Is(create, ErrGroupFolderAlreadyExists))
	assert.True(t, errors.Is(imported, ErrGroupFolderAlreadyExists))
	assert.True(t, errors.Is(imported, ErrFolderNameTaken))
	assert.False(t, errors.Is(category, ErrGroupFolderAlreadyExists))
}
