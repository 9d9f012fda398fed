package claude

import (
	"path/filepath"

	"github.com/thoreinstein/ocmigrate/internal/paths"
)

// Registry file names read from a Claude config directory, in override order.
const (
	// DesktopConfigFile is the Claude Desktop settings file.
	DesktopConfigFile = "claude_desktop_config.json"

	// ProjectMCPFile is the project-scoped Claude Code server list.
	ProjectMCPFile = ".mcp.json"
)

// DefaultRegistryFiles returns the registry files read when none are
// configured. Later files override same-named servers from earlier ones.
func DefaultRegistryFiles() []string {
	return []string{DesktopConfigFile, ProjectMCPFile}
}

// AgentsDir returns the agents directory under a Claude source root.
func AgentsDir(root string) string {
	return filepath.Join(root, paths.SourceAgentsDir)
}

// CommandsDir returns the commands directory under a Claude source root.
func CommandsDir(root string) string {
	return filepath.Join(root, paths.SourceCommandsDir)
}

// SkillsDir returns the skills directory under a Claude source root.
func SkillsDir(root string) string {
	return filepath.Join(root, paths.SourceSkillsDir)
}
