package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ocmigrate/internal/cli/prompt"
	"github.com/thoreinstein/ocmigrate/internal/logging"
	"github.com/thoreinstein/ocmigrate/internal/migrate"
)

// Defaults used once at least one argument is given.
const (
	defaultConfigSource = ".claude"
	defaultConfigTarget = ".opencode"
)

// NewConfigCommand returns the migrate-config command.
func NewConfigCommand() *cobra.Command {
	opts := &globalOptions{}
	var selectServers bool

	c := &cobra.Command{
		Use:   "migrate-config [source-dir] [target-dir]",
		Short: "Migrate a Claude config directory to OpenCode",
		Long: `Migrate a Claude config directory to an OpenCode project directory.

  MCP registry  -> <target-dir>/opencode.json ("mcp" section)
  agents/*.json -> <target-dir>/agent/<name>.md
  agents/*.md   -> <target-dir>/agent/<name>.md

Registry files (claude_desktop_config.json, then .mcp.json) are read from
source-dir. Servers with a url become remote entries and servers with a
command become local entries. An existing opencode.json is merged: other
settings and servers are kept.

Skills are left in place because OpenCode reads .claude/skills directly.

With no arguments the usage is printed. Once one argument is given,
source-dir defaults to .claude and target-dir to .opencode.`,
		Example: `  # Migrate the project config
  migrate-config .claude .opencode

  # Pick which MCP servers to migrate
  migrate-config .claude --select`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}
			return runConfig(c, opts, selectServers, args)
		},
	}

	c.Flags().BoolVar(&selectServers, "select", false,
		"choose which MCP servers to migrate")

	root := newRootCommand(c, opts)

	// Usage must print even when the config file is broken.
	setup := root.PersistentPreRunE
	root.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return nil
		}
		return setup(c, args)
	}

	return root
}

func runConfig(c *cobra.Command, opts *globalOptions, selectServers bool, args []string) error {
	source, target := defaultConfigSource, defaultConfigTarget
	if len(args) > 0 {
		source = args[0]
	}
	if len(args) > 1 {
		target = args[1]
	}

	migrateOpts := migrate.ConfigOptions{
		Source:        source,
		Target:        target,
		RegistryFiles: opts.cfg.RegistryFiles,
		SchemaURL:     opts.cfg.SchemaURL,
		Verify:        opts.verify,
		DryRun:        opts.dryRun,
	}
	if selectServers {
		migrateOpts.Select = newSelector(c).SelectMany
	}

	rep, err := migrate.Config(c.Context(), migrateOpts)
	if err != nil {
		return err
	}

	return opts.finish(c, rep)
}

// newSelector uses the fuzzy finder on a terminal and a numbered prompt on
// the command's streams otherwise.
func newSelector(c *cobra.Command) *prompt.Selector {
	if c.InOrStdin() == os.Stdin && logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stderr) {
		return prompt.NewSelector()
	}
	return prompt.NewSelectorWithIO(c.InOrStdin(), c.ErrOrStderr())
}
