// Package paths resolves the well-known directories the migration CLIs read
// from and write to.
//
// # Default Locations
//
//	| Purpose                  | Path                          |
//	|--------------------------|-------------------------------|
//	| OpenCode global config   | ~/.config/opencode/           |
//	| Claude global config     | ~/.claude/                    |
//	| Shared skills directory  | ~/.claude/skills/             |
//	| ocmigrate config file    | $XDG_CONFIG_HOME/ocmigrate/   |
//
// OpenCode reads skills from the Claude skills directory, which is why plugin
// skills are copied there rather than into the OpenCode tree.
//
// # Source and Target Layouts
//
// Directory names inside a source plugin or Claude config directory and
// inside an OpenCode target directory are exposed as constants
// ([SourceAgentsDir], [TargetAgentDir], ...) so the walker, the schema mapper
// and the CLI help text agree on them.
//
// The package wraps github.com/adrg/xdg for the XDG Base Directory lookups.
package paths
