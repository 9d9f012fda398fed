package mcp

import (
	"maps"
	"slices"
)

// Transport type constants for MCP server communication.
const (
	// TransportStdio indicates a local process spoken to over stdin/stdout.
	TransportStdio = "stdio"

	// TransportRemote indicates a server reached over HTTP at a URL.
	TransportRemote = "remote"
)

// Server is a platform-neutral MCP server entry.
type Server struct {
	// Name is the registry key of the server.
	Name string

	// Command is the executable for local servers.
	Command string

	// Args are passed to Command.
	Args []string

	// URL is the endpoint for remote servers.
	URL string

	// Transport is the declared transport, if the source had one. It does
	// not decide the conversion; see ResolvedTransport.
	Transport string

	// Env holds environment variables for local servers.
	Env map[string]string

	// Headers holds HTTP headers for remote servers.
	Headers map[string]string
}

// IsRemote reports whether the server is reached by URL.
// A URL wins over a command when both are set.
func (s *Server) IsRemote() bool {
	return s.URL != ""
}

// IsLocal reports whether the server is a local process.
func (s *Server) IsLocal() bool {
	return s.URL == "" && s.Command != ""
}

// ResolvedTransport returns the transport implied by the server's fields:
// remote when it has a URL, stdio when it has only a command, and "" when it
// has neither.
func (s *Server) ResolvedTransport() string {
	switch {
	case s.IsRemote():
		return TransportRemote
	case s.IsLocal():
		return TransportStdio
	default:
		return ""
	}
}

// TransportMismatch reports whether the declared transport disagrees with
// the one implied by the server's fields.
func (s *Server) TransportMismatch() bool {
	resolved := s.ResolvedTransport()
	return s.Transport != "" && resolved != "" && s.Transport != resolved
}

// CommandLine returns the command followed by its arguments.
func (s *Server) CommandLine() []string {
	if s.Command == "" {
		return nil
	}
	return append([]string{s.Command}, s.Args...)
}

// Config is a set of servers keyed by name.
type Config struct {
	Servers map[string]*Server
}

// NewConfig creates an empty Config.
func NewConfig() *Config {
	return &Config{
		Servers: make(map[string]*Server),
	}
}

// Names returns the server names in lexical order.
func (c *Config) Names() []string {
	if c == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(c.Servers))
}

// Merge copies the servers of other into c. Servers in other replace
// same-named servers in c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if c.Servers == nil {
		c.Servers = make(map[string]*Server, len(other.Servers))
	}
	maps.Copy(c.Servers, other.Servers)
}

