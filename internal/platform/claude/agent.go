package claude

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// headerField matches a single "key: value" header line.
var headerField = regexp.MustCompile(`^(\w+):\s*(.+)$`)

// ParseAgentJSON decodes a JSON agent descriptor. A missing name falls back
// to name, the file's base name.
func ParseAgentJSON(name string, data []byte) (*AgentDescriptor, error) {
	var agent AgentDescriptor
	if err := json.Unmarshal(data, &agent); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidDescriptor, "agent %q: %v", name, err)
	}
	if agent.Name == "" {
		agent.Name = name
	}
	return &agent, nil
}

// ParseAgentMarkdown decodes a markdown agent descriptor.
//
// Header lines of the form "key: value" set instructions, model and tools.
// A non-blank body replaces the header instructions. Content without a
// header is taken as instructions.
func ParseAgentMarkdown(name, content string) *AgentDescriptor {
	agent := &AgentDescriptor{Name: name}

	doc, ok := frontmatter.Split(content)
	if !ok {
		agent.Instructions = strings.TrimSpace(content)
		return agent
	}

	for _, line := range doc.HeaderLines() {
		m := headerField.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		switch key, value := m[1], strings.TrimSpace(m[2]); key {
		case "instructions":
			agent.Instructions = value
		case "model":
			agent.Model = value
		case "tools":
			agent.Tools = frontmatter.SplitList(value)
		}
	}

	if body := strings.TrimSpace(doc.Body); body != "" {
		agent.Instructions = body
	}

	return agent
}

// Description returns the first line of the instructions, or the agent name
// when that line is empty.
func (a *AgentDescriptor) Description() string {
	first, _, _ := strings.Cut(a.Instructions, "\n")
	first = strings.TrimSuffix(first, "\r")
	if first == "" {
		return a.Name
	}
	return first
}
