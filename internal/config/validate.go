package config

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrMissingSchemaURL indicates schema_url is empty.
	ErrMissingSchemaURL = errors.New("schema_url must be set")

	// ErrInvalidColor indicates a palette value is not "#rrggbb".
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if strings.TrimSpace(cfg.SchemaURL) == "" {
		errs = append(errs, ErrMissingSchemaURL)
	}

	for name, hex := range cfg.Colors {
		if !hexColor.MatchString(hex) {
			errs = append(errs, &ColorError{Name: name, Value: hex, Err: ErrInvalidColor})
		}
	}

	for _, file := range cfg.RegistryFiles {
		if err := validatePath(file); err != nil {
			errs = append(errs, &PathError{Field: "registry_files", Path: file, Err: err})
		}
	}

	if cfg.SkillsDir != "" {
		if err := validatePath(cfg.SkillsDir); err != nil {
			errs = append(errs, &PathError{Field: "skills_dir", Path: cfg.SkillsDir, Err: err})
		}
	}

	if cfg.TargetDir != "" {
		if err := validatePath(cfg.TargetDir); err != nil {
			errs = append(errs, &PathError{Field: "target_dir", Path: cfg.TargetDir, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ColorError reports a palette entry with a malformed value.
type ColorError struct {
	Name  string
	Value string
	Err   error
}

func (e *ColorError) Error() string {
	return e.Err.Error() + ": " + e.Name + "=" + e.Value
}

func (e *ColorError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
