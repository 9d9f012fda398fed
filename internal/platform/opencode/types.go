package opencode

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
)

// MCPServer is one entry of the OpenCode "mcp" map.
// Field order matches the order OpenCode documents them in.
type MCPServer struct {
	// Type is "local" or "remote".
	Type string `json:"type"`

	// URL is the endpoint of a remote server.
	URL string `json:"url,omitempty"`

	// Command holds the executable followed by its arguments.
	Command []string `json:"command,omitempty"`

	// Environment is passed to local servers.
	Environment map[string]string `json:"environment,omitempty"`

	// Headers are sent to remote servers.
	Headers map[string]string `json:"headers,omitempty"`

	Enabled bool `json:"enabled"`
}

// MCPConfig is the opencode.json document.
//
// Servers holds entries produced by this run. Entries read from an existing
// file and every other top-level key are kept as raw JSON and written back
// unchanged unless a server of the same name replaces them.
type MCPConfig struct {
	// Schema is the "$schema" value.
	Schema string

	// Servers maps server names to converted entries.
	Servers map[string]*MCPServer

	// existing holds "mcp" entries read from disk.
	existing map[string]json.RawMessage

	// unknownFields stores top-level keys other than "$schema" and "mcp".
	unknownFields map[string]json.RawMessage
}

// NewMCPConfig creates an empty config with the given schema URL.
func NewMCPConfig(schema string) *MCPConfig {
	return &MCPConfig{
		Schema:  schema,
		Servers: make(map[string]*MCPServer),
	}
}

// Has reports whether name was present in the file the config was read from.
func (c *MCPConfig) Has(name string) bool {
	_, ok := c.existing[name]
	return ok
}

// Names returns every server name the config will write, in lexical order.
func (c *MCPConfig) Names() []string {
	names := make(map[string]struct{}, len(c.existing)+len(c.Servers))
	for name := range c.existing {
		names[name] = struct{}{}
	}
	for name := range c.Servers {
		names[name] = struct{}{}
	}
	return slices.Sorted(maps.Keys(names))
}

// MarshalJSON implements json.Marshaler to include preserved fields in output.
func (c *MCPConfig) MarshalJSON() ([]byte, error) {
	result := make(map[string]any, len(c.unknownFields)+2)

	// Copy unknown fields first so known fields take precedence.
	for k, v := range c.unknownFields {
		result[k] = v
	}

	servers := make(map[string]any, len(c.existing)+len(c.Servers))
	for name, raw := range c.existing {
		servers[name] = raw
	}
	for name, server := range c.Servers {
		servers[name] = server
	}

	if c.Schema != "" {
		result["$schema"] = c.Schema
	}
	result["mcp"] = servers

	return fileutil.MarshalJSON(result)
}

// UnmarshalJSON implements json.Unmarshaler to capture unknown fields.
func (c *MCPConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["$schema"]; ok {
		if err := json.Unmarshal(v, &c.Schema); err != nil {
			return err
		}
		delete(raw, "$schema")
	}

	if v, ok := raw["mcp"]; ok {
		if err := json.Unmarshal(v, &c.existing); err != nil {
			return err
		}
		delete(raw, "mcp")
	}

	if c.Servers == nil {
		c.Servers = make(map[string]*MCPServer)
	}

	if len(raw) > 0 {
		c.unknownFields = raw
	}

	return nil
}
