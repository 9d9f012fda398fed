package opencode

import (
	"strings"

	"github.com/thoreinstein/ocmigrate/internal/platform/claude"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// FormatAgent renders a Claude agent descriptor as an OpenCode agent file.
//
// Header keys are written in a fixed order: description, mode, model (if
// set) and tools (if any). The instructions follow a blank line.
//
//	---
//	description: Reviews code
//	mode: subagent
//	tools:
//	  read: true
//	---
//
//	Reviews code
func FormatAgent(agent *claude.AgentDescriptor) string {
	lines := []string{
		"description: " + agent.Description(),
		"mode: " + frontmatter.ModeSubagent,
	}

	if agent.Model != "" {
		lines = append(lines, "model: "+agent.Model)
	}

	if len(agent.Tools) > 0 {
		lines = append(lines, "tools:")
		lines = append(lines, frontmatter.ToolFlags(agent.Tools)...)
	}

	var sb strings.Builder
	sb.WriteString(frontmatter.Assemble(lines, "\n"))
	if agent.Instructions != "" {
		sb.WriteString("\n")
		sb.WriteString(agent.Instructions)
		if !strings.HasSuffix(agent.Instructions, "\n") {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
