package migrate

import (
	"context"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/logging"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/platform/claude"
	"github.com/thoreinstein/ocmigrate/internal/platform/opencode"
	"github.com/thoreinstein/ocmigrate/internal/report"
	"github.com/thoreinstein/ocmigrate/pkg/frontmatter"
)

// PluginCommand names plugin runs in reports.
const PluginCommand = "migrate-plugin"

// PluginOptions configures a plugin migration.
type PluginOptions struct {
	// Source is the plugin root holding agents/, commands/ and skills/.
	Source string

	// Target is the OpenCode config directory.
	Target string

	// SkillsDir receives the skills tree. OpenCode discovers skills there.
	SkillsDir string

	Palette frontmatter.Palette
	DryRun  bool
	Verify  bool
}

// Plugin migrates a Claude plugin:
//
//	<source>/agents   -> <target>/agent     (agents get mode: subagent)
//	<source>/commands -> <target>/commands
//	<source>/skills   -> <skills-dir>
//
// A missing source directory is a user error. Missing subdirectories are
// reported as skipped.
func Plugin(ctx context.Context, opts PluginOptions) (*report.Report, error) {
	logger := logging.FromContext(ctx)

	if !paths.IsDir(opts.Source) {
		return nil, errors.NewUserError(
			errors.Wrapf(errors.ErrSourceNotFound, "Source directory %s does not exist", opts.Source),
			"Pass the plugin root as the first argument",
		)
	}

	logger.Info("Migrating plugin", "source", opts.Source, "target", opts.Target, "dry_run", opts.DryRun)

	rep := report.New(PluginCommand, opts.Source, opts.Target, opts.DryRun)

	if !opts.DryRun {
		for _, dir := range []string{opts.Target, opts.SkillsDir} {
			if err := paths.EnsureDir(dir, paths.DefaultDirPerm); err != nil {
				return rep, err
			}
		}
	}

	steps := []struct {
		kind  report.Kind
		src   string
		dst   string
		agent bool
	}{
		{report.KindAgent, claude.AgentsDir(opts.Source), opencode.AgentDir(opts.Target), true},
		{report.KindCommand, claude.CommandsDir(opts.Source), opencode.CommandDir(opts.Target), false},
		{report.KindSkill, claude.SkillsDir(opts.Source), opts.SkillsDir, false},
	}

	for _, step := range steps {
		logger.Debug("Copying tree", "kind", step.kind, "source", step.src, "target", step.dst)
		w := &Walker{
			Logger:  logger,
			Palette: opts.Palette,
			Report:  rep,
			Kind:    step.kind,
			DryRun:  opts.DryRun,
			Verify:  opts.Verify,
		}
		if err := w.CopyTree(step.src, step.dst, step.agent); err != nil {
			return rep, errors.Wrapf(err, "migrating %ss", step.kind)
		}
	}

	logger.Info("Migration complete",
		"agents", opencode.AgentDir(opts.Target),
		"commands", opencode.CommandDir(opts.Target),
		"skills", opts.SkillsDir,
	)

	return rep, nil
}
