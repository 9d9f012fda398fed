package config

import (
	"github.com/spf13/viper"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/platform/claude"
	"github.com/thoreinstein/ocmigrate/internal/platform/opencode"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// EnvPrefix is prepended to environment variable overrides,
// e.g. OCMIGRATE_SCHEMA_URL.
const EnvPrefix = "OCMIGRATE"

// Config represents the top-level configuration structure.
type Config struct {
	SchemaURL     string            `mapstructure:"schema_url" yaml:"schema_url"`
	RegistryFiles []string          `mapstructure:"registry_files" yaml:"registry_files"`
	SkillsDir     string            `mapstructure:"skills_dir" yaml:"skills_dir"`
	TargetDir     string            `mapstructure:"target_dir" yaml:"target_dir"`
	Colors        map[string]string `mapstructure:"colors" yaml:"colors"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.AppConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	// Every key needs a default so environment overrides reach Unmarshal.
	viper.SetDefault("schema_url", opencode.DefaultSchemaURL)
	viper.SetDefault("registry_files", claude.DefaultRegistryFiles())
	viper.SetDefault("skills_dir", "")
	viper.SetDefault("target_dir", "")
	viper.SetDefault("colors", map[string]string{})
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file uses defaults.
		case path != "" && !paths.Exists(path):
			return nil, errors.NewConfigError(errors.Wrapf(err, "config file not found at %s", path))
		default:
			return nil, errors.NewConfigError(errors.Wrap(err, "reading config file"))
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError(errors.Wrap(err, "unmarshaling config"))
	}

	return &cfg, nil
}

// Palette returns the built-in color palette extended by cfg.Colors.
func (c *Config) Palette() frontmatter.Palette {
	if len(c.Colors) == 0 {
		return frontmatter.DefaultPalette
	}
	return frontmatter.DefaultPalette.With(c.Colors)
}
