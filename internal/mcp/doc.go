// Package mcp holds the platform-neutral MCP (Model Context Protocol)
// server types that sit between the Claude registry reader and the OpenCode
// writer.
//
// A [Server] is either remote (it has a URL) or local (it has a Command).
// When both are set the URL wins:
//
//	s := &mcp.Server{Name: "docs", URL: "https://docs.example.com/mcp", Command: "ignored"}
//	s.IsRemote() // true
//
// Servers with neither are not convertible. Writers report them back to the
// caller instead of failing the whole registry.
//
// A [Config] collects servers by name. Registries read from several files are
// combined with [Config.Merge], where later files override earlier ones.
package mcp
