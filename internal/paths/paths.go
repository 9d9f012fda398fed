package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "ocmigrate"

// Source layout (Claude plugin or Claude config directory).
const (
	SourceAgentsDir   = "agents"
	SourceCommandsDir = "commands"
	SourceSkillsDir   = "skills"
)

// Target layout (OpenCode config directory).
const (
	TargetAgentDir    = "agent"
	TargetCommandsDir = "commands"
	TargetConfigFile  = "opencode.json"
)

// Relative locations under the user's home directory.
const (
	openCodeHomeRel = ".config/opencode"
	claudeHomeRel   = ".claude"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")
)

// DefaultDirPerm is the permission used for directories created in target trees.
const DefaultDirPerm = 0o755

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating directory %s", path)
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrapf(ErrHomeDirNotFound, "%v", err)
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
func ConfigHome() string {
	return xdg.ConfigHome
}

// AppConfigDir returns the directory searched for the ocmigrate config file.
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// OpenCodeConfigDir returns ~/.config/opencode, the default plugin target.
// OpenCode uses this location on every OS, so it is resolved relative to the
// home directory rather than the XDG config home.
func OpenCodeConfigDir() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, openCodeHomeRel), nil
}

// ClaudeConfigDir returns ~/.claude.
func ClaudeConfigDir() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, claudeHomeRel), nil
}

// ClaudeSkillsDir returns ~/.claude/skills, where OpenCode discovers skills.
func ClaudeSkillsDir() (string, error) {
	dir, err := ClaudeConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SourceSkillsDir), nil
}
