package claude

import (
	"encoding/json"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// MCPServer is one entry of a Claude "mcpServers" map.
type MCPServer struct {
	// Name is filled from the map key.
	Name string `json:"-"`

	// Type is "stdio", "http" or "sse" when the source declares it.
	Type string `json:"type,omitempty"`

	Command string            `json:"command,omitempty"`
	Args    []string          `json:"args,omitempty"`
	URL     string            `json:"url,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

// ToolList is the tool list of an agent descriptor.
// It decodes from a JSON list, where non-string items are skipped, or from a
// comma-separated string.
type ToolList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *ToolList) UnmarshalJSON(data []byte) error {
	var items []any
	if err := json.Unmarshal(data, &items); err == nil {
		var tools ToolList
		for _, item := range items {
			if s, ok := item.(string); ok {
				tools = append(tools, s)
			}
		}
		*t = tools
		return nil
	}

	var single *string
	if err := json.Unmarshal(data, &single); err != nil {
		return errors.Newf("tools must be a string or a list, got %s", data)
	}
	if single == nil {
		*t = nil
		return nil
	}
	*t = frontmatter.SplitList(*single)
	return nil
}

// AgentDescriptor is a Claude agent definition.
type AgentDescriptor struct {
	Name         string   `json:"name"`
	Instructions string   `json:"instructions,omitempty"`
	Tools        ToolList `json:"tools,omitempty"`
	Model        string   `json:"model,omitempty"`
}
