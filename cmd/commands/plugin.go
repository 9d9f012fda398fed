package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/migrate"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/platform/opencode"
)

// NewPluginCommand returns the migrate-plugin command.
func NewPluginCommand() *cobra.Command {
	opts := &globalOptions{}
	var skillsDir string

	c := &cobra.Command{
		Use:   "migrate-plugin [source-dir] [target-dir]",
		Short: "Migrate a Claude plugin to OpenCode",
		Long: `Migrate a Claude plugin directory to OpenCode.

  agents/    -> <target-dir>/agent     (agents get mode: subagent)
  commands/  -> <target-dir>/commands
  skills/    -> <skills-dir>           (OpenCode reads skills from there)

Markdown headers are rewritten: "tools: a, b" becomes a map of enabled
tools, color names become hex values, and "model" lines are dropped.
Every other file is copied unchanged.

source-dir defaults to the current directory. target-dir defaults to
target_dir from the config file, then ~/.config/opencode.`,
		Example: `  # Migrate the plugin in the current directory
  migrate-plugin

  # Preview a migration into a project
  migrate-plugin ./my-plugin ./.opencode --dry-run

  # Write a report of every file touched
  migrate-plugin ./my-plugin --report migration.yaml`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			return runPlugin(c, opts, skillsDir, args)
		},
	}

	c.Flags().StringVar(&skillsDir, "skills-dir", "",
		"where skills are copied (default: skills_dir from config, then ~/.claude/skills)")

	return newRootCommand(c, opts)
}

func runPlugin(c *cobra.Command, opts *globalOptions, skillsDir string, args []string) error {
	source := "."
	if len(args) > 0 {
		source = args[0]
	}

	target, err := pluginTarget(opts, args)
	if err != nil {
		return err
	}

	skills, err := pluginSkillsDir(opts, skillsDir)
	if err != nil {
		return err
	}

	rep, err := migrate.Plugin(c.Context(), migrate.PluginOptions{
		Source:    source,
		Target:    target,
		SkillsDir: skills,
		Palette:   opts.cfg.Palette(),
		DryRun:    opts.dryRun,
		Verify:    opts.verify,
	})
	if err != nil {
		return err
	}

	if err := opts.finish(c, rep); err != nil {
		return err
	}

	if !opts.quiet {
		out := c.OutOrStdout()
		fmt.Fprintf(out, "  Agents:   %s\n", opencode.AgentDir(target))
		fmt.Fprintf(out, "  Commands: %s\n", opencode.CommandDir(target))
		fmt.Fprintf(out, "  Skills:   %s\n", skills)
	}

	return nil
}

func pluginTarget(opts *globalOptions, args []string) (string, error) {
	if len(args) > 1 {
		return args[1], nil
	}
	if opts.cfg.TargetDir != "" {
		return opts.cfg.TargetDir, nil
	}
	dir, err := paths.OpenCodeConfigDir()
	if err != nil {
		return "", errors.NewUserError(err, "Pass the target directory as the second argument")
	}
	return dir, nil
}

func pluginSkillsDir(opts *globalOptions, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if opts.cfg.SkillsDir != "" {
		return opts.cfg.SkillsDir, nil
	}
	dir, err := paths.ClaudeSkillsDir()
	if err != nil {
		return "", errors.NewUserError(err, "Pass --skills-dir")
	}
	return dir, nil
}
