package mcp

import "github.com/thoreinstein/ocmigrate/internal/errors"

// Reader converts a platform's MCP registry into canonical form.
//
//	registryJSON -> Reader.ToCanonical() -> *Config
type Reader interface {
	// ToCanonical parses raw registry bytes.
	ToCanonical(platformData []byte) (*Config, error)

	// Platform names the source platform for log messages.
	Platform() string
}

// Sentinel errors for translation operations.
var (
	// ErrRequiredFieldMissing indicates a server has neither a URL nor a
	// command, so no transport can be chosen for it.
	ErrRequiredFieldMissing = errors.New("required field missing from platform data")

	// ErrMalformedRegistry indicates registry bytes could not be decoded.
	ErrMalformedRegistry = errors.New("malformed MCP registry")
)
