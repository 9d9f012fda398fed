package opencode

import (
	"path/filepath"

	"github.com/thoreinstein/ocmigrate/internal/paths"
)

// DefaultSchemaURL is the JSON schema written to new opencode.json files.
const DefaultSchemaURL = "https://opencode.ai/config.json"

// AgentDir returns the agent directory under an OpenCode root.
// OpenCode uses the singular "agent".
func AgentDir(root string) string {
	return filepath.Join(root, paths.TargetAgentDir)
}

// CommandDir returns the commands directory under an OpenCode root.
func CommandDir(root string) string {
	return filepath.Join(root, paths.TargetCommandsDir)
}

// ConfigPath returns the opencode.json path under an OpenCode root.
func ConfigPath(root string) string {
	return filepath.Join(root, paths.TargetConfigFile)
}

// AgentPath returns the markdown file for the named agent.
func AgentPath(root, name string) string {
	return filepath.Join(AgentDir(root), name+".md")
}
