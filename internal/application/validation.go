package application

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "linkURL" -> "link URL")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"categoryName": "category name",
		"groupName":    "group name",
		"projectName":  "project name",
		"folderPath":   "folder path",
		"parentPath":   "parent path",
		"linkName":     "link name",
		"linkURL":      "link URL",
		"script":       "launch script",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateName checks candidate against the existing names of one entity kind.
// The comparison is case-insensitive; the trimmed candidate is returned.
func ValidateName(kind EntityKind, candidate string, existing []string) (string, error) {
	name := strings.TrimSpace(candidate)
	if name == "" {
		return "", &ValidationError{Field: string(kind) + "Name", Message: fmt.Sprintf("%s name is required", kind)}
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", &ValidationError{Field: string(kind) + "Name", Message: fmt.Sprintf("%q cannot be used as a folder name", name)}
	}

	for _, other := range existing {
		if strings.EqualFold(strings.TrimSpace(other), name) {
			return "", &NameTakenError{Kind: kind, Name: name}
		}
	}

	return name, nil
}

// ValidateShortcut checks candidate against the combined pool of group and
// project shortcuts. An empty candidate is valid and yields no shortcut.
func ValidateShortcut(candidate string, groupShortcuts, projectShortcuts []string) (string, error) {
	shortcut := strings.TrimSpace(candidate)
	if shortcut == "" {
		return "", nil
	}
	if strings.ContainsAny(shortcut, " \t") {
		return "", &ValidationError{Field: "shortcut", Message: "shortcut cannot contain whitespace"}
	}

	for _, pool := range [][]string{groupShortcuts, projectShortcuts} {
		for _, taken := range pool {
			if strings.EqualFold(taken, shortcut) {
				return "", &ShortcutTakenError{Shortcut: shortcut}
			}
		}
	}

	return shortcut, nil
}

// ValidateURL checks that raw is an absolute URL a browser can open
func ValidateURL(fieldName, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if err := ValidateRequired(fieldName, raw); err != nil {
		return "", err
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || (u.Host == "" && u.Opaque == "") {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be an absolute URL, got: %s", formatFieldName(fieldName), raw),
		}
	}

	return u.String(), nil
}

// without returns values minus every entry equal (case-insensitively) to one of drop
func without(values []string, drop ...string) []string {
	var kept []string
	for _, v := range values {
		skip := false
		for _, d := range drop {
			if d != "" && strings.EqualFold(v, d) {
				skip = true
				break
			}
		}
		if !skip {
			kept = append(kept, v)
		}
	}
	return kept
}
