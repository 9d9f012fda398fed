// Package opencode writes the OpenCode side of a migration.
//
// OpenCode keeps MCP servers in opencode.json under an "mcp" key:
//
//	{
//	  "$schema": "https://opencode.ai/config.json",
//	  "mcp": {
//	    "github": {"type": "local", "command": ["npx", "-y", "server-github"], "enabled": true},
//	    "docs": {"type": "remote", "url": "https://docs.example.com/mcp", "enabled": true}
//	  }
//	}
//
// [MCPTranslator] converts canonical servers into that shape. [LoadConfig]
// and [SaveConfig] merge the result into an existing file without losing
// keys this tool does not manage.
//
// Agents are markdown files under the agent directory. [FormatAgent] renders
// a Claude agent descriptor in that form.
package opencode
