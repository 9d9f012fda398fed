package opencode

import (
	"maps"
	"slices"

	"github.com/thoreinstein/ocmigrate/internal/mcp"
)

// Type constants for OpenCode MCP server types.
const (
	// TypeLocal indicates a local process server.
	TypeLocal = "local"

	// TypeRemote indicates a server reached by URL.
	TypeRemote = "remote"
)

// MCPTranslator converts canonical servers to OpenCode entries.
//
// Differences from the Claude registry:
//   - "mcp" key instead of "mcpServers"
//   - "command" is []string (command followed by args)
//   - "type" is "local" or "remote"
//   - "environment" instead of "env"
//   - every entry carries "enabled"
type MCPTranslator struct{}

// NewMCPTranslator creates a new OpenCode MCP translator.
func NewMCPTranslator() *MCPTranslator {
	return &MCPTranslator{}
}

// FromCanonical converts each server in cfg.
//
// A server with a URL becomes a remote entry, even when it also names a
// command. Otherwise a server with a command becomes a local entry. Servers
// with neither cannot be expressed and their names are returned in dropped,
// in lexical order.
func (t *MCPTranslator) FromCanonical(cfg *mcp.Config) (servers map[string]*MCPServer, dropped []string) {
	servers = make(map[string]*MCPServer)
	if cfg == nil {
		return servers, nil
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Servers)) {
		server := t.convert(cfg.Servers[name])
		if server == nil {
			dropped = append(dropped, name)
			continue
		}
		servers[name] = server
	}

	return servers, dropped
}

func (t *MCPTranslator) convert(s *mcp.Server) *MCPServer {
	var out MCPServer
	switch {
	case s == nil:
		return nil
	case s.IsRemote():
		out.Type = TypeRemote
		out.URL = s.URL
		if len(s.Headers) > 0 {
			out.Headers = maps.Clone(s.Headers)
		}
	case s.IsLocal():
		out.Type = TypeLocal
		out.Command = s.CommandLine()
	default:
		return nil
	}

	if len(s.Env) > 0 {
		out.Environment = maps.Clone(s.Env)
	}
	out.Enabled = true

	return &out
}

// Platform returns the platform identifier for this translator.
func (t *MCPTranslator) Platform() string {
	return "opencode"
}
