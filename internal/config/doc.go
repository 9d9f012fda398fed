// Package config loads ocmigrate's own settings using Viper.
//
// # Configuration File
//
// config.yaml is looked up in the current directory and then in
// $XDG_CONFIG_HOME/ocmigrate. A file passed with --config replaces the
// search. Every key is optional:
//
//	schema_url: https://opencode.ai/config.json
//	registry_files:
//	  - claude_desktop_config.json
//	  - .mcp.json
//	skills_dir: ~/.claude/skills
//	target_dir: ~/.config/opencode
//	colors:
//	  brand: "#1e90ff"
//
// # Environment
//
// Keys can be overridden with OCMIGRATE_ prefixed variables, for example
// OCMIGRATE_SCHEMA_URL.
//
// # Validation
//
// [Validate] returns every problem it finds rather than stopping at the
// first:
//
//	if errs := config.Validate(cfg); len(errs) > 0 {
//	    for _, e := range errs {
//	        fmt.Println(e)
//	    }
//	}
package config
