package opencode

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
)

// ErrMalformedConfig indicates an existing opencode.json could not be parsed.
var ErrMalformedConfig = errors.New("malformed OpenCode config")

// LoadConfig reads the opencode.json at path.
// A missing file yields an empty config with schema set to defaultSchema.
// A file without "$schema" gets defaultSchema as well.
func LoadConfig(path, defaultSchema string) (*MCPConfig, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewMCPConfig(defaultSchema), nil
		}
		return nil, errors.Wrap(err, "reading OpenCode config")
	}

	var config MCPConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrapf(ErrMalformedConfig, "%s: %v", path, err)
	}

	if config.Schema == "" {
		config.Schema = defaultSchema
	}

	return &config, nil
}

// SaveConfig writes config to path atomically, creating the parent
// directory if needed.
func SaveConfig(path string, config *MCPConfig) error {
	dir := filepath.Dir(path)
	if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
		return err
	}

	return errors.Wrap(fileutil.AtomicWriteJSON(path, config), "writing OpenCode config")
}
