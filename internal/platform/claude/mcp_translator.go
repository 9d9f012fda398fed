package claude

import (
	"encoding/json"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/mcp"
)

// Claude Code transport type constants.
const (
	// ClaudeTypeStdio is the Claude type for local process servers.
	ClaudeTypeStdio = "stdio"
	// ClaudeTypeHTTP is the Claude type for remote servers.
	ClaudeTypeHTTP = "http"
	// ClaudeTypeSSE is the Claude type for remote servers using server-sent events.
	ClaudeTypeSSE = "sse"
)

// MCPTranslator reads Claude MCP registries.
type MCPTranslator struct{}

// NewMCPTranslator creates a new Claude MCP translator.
func NewMCPTranslator() *MCPTranslator {
	return &MCPTranslator{}
}

var _ mcp.Reader = (*MCPTranslator)(nil)

// ToCanonical converts a Claude registry to canonical form.
//
// Input format:
//
//	{"mcpServers": {"name": {...}, ...}, ...}
//
// or just the servers map:
//
//	{"name": {...}, ...}
//
// A settings file with neither yields an empty config. Bytes that are not a
// JSON object return an error wrapping [mcp.ErrMalformedRegistry].
func (t *MCPTranslator) ToCanonical(platformData []byte) (*mcp.Config, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(platformData, &raw); err != nil {
		return nil, errors.Wrapf(mcp.ErrMalformedRegistry, "parsing Claude MCP config: %v", err)
	}

	var servers map[string]*MCPServer
	if serversData, ok := raw["mcpServers"]; ok {
		if err := json.Unmarshal(serversData, &servers); err != nil {
			return nil, errors.Wrapf(mcp.ErrMalformedRegistry, "parsing mcpServers: %v", err)
		}
	} else {
		servers = bareServers(raw)
	}

	config := mcp.NewConfig()
	for name, claudeServer := range servers {
		if claudeServer == nil {
			continue
		}
		config.Servers[name] = &mcp.Server{
			Name:      name,
			Command:   claudeServer.Command,
			Args:      claudeServer.Args,
			URL:       claudeServer.URL,
			Transport: declaredTransport(claudeServer.Type),
			Env:       claudeServer.Env,
			Headers:   claudeServer.Headers,
		}
	}

	return config, nil
}

// bareServers decodes raw as a plain servers map. It returns nil unless every
// value is an object naming a command or URL, so unrelated settings files are
// not mistaken for registries.
func bareServers(raw map[string]json.RawMessage) map[string]*MCPServer {
	servers := make(map[string]*MCPServer, len(raw))
	for name, data := range raw {
		var s MCPServer
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if s.Command == "" && s.URL == "" {
			return nil
		}
		servers[name] = &s
	}
	return servers
}

// declaredTransport maps a Claude "type" to a canonical transport. Entries
// without a type, or with one this tool does not know, declare none.
func declaredTransport(claudeType string) string {
	switch claudeType {
	case ClaudeTypeStdio:
		return mcp.TransportStdio
	case ClaudeTypeHTTP, ClaudeTypeSSE:
		return mcp.TransportRemote
	default:
		return ""
	}
}

// Platform returns the platform identifier for this translator.
func (t *MCPTranslator) Platform() string {
	return "claude"
}
