// Package claude reads the Claude side of a migration.
//
// Two artifact kinds are decoded here.
//
// # MCP registries
//
// Claude Desktop and Claude Code both keep MCP servers under an "mcpServers"
// key. [MCPTranslator] turns that JSON into a canonical [mcp.Config]:
//
//	cfg, err := claude.NewMCPTranslator().ToCanonical(data)
//
// Files holding only a bare map of server objects are accepted as well.
//
// # Agent descriptors
//
// Agents live in the agents directory as JSON objects
//
//	{"name": "reviewer", "instructions": "...", "tools": ["read"], "model": "sonnet"}
//
// or as markdown with a "key: value" header. [ParseAgentJSON] and
// [ParseAgentMarkdown] decode either form into an [AgentDescriptor].
package claude
