package migrate

import (
	"context"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/thoreinstein/ocmigrate/internal/cli/prompt"
	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/logging"
	"github.com/thoreinstein/ocmigrate/internal/mcp"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/internal/platform/claude"
	"github.com/thoreinstein/ocmigrate/internal/platform/opencode"
	"github.com/thoreinstein/ocmigrate/internal/redact"
	"github.com/thoreinstein/ocmigrate/internal/report"
	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
)

// ConfigCommand names config runs in reports.
const ConfigCommand = "migrate-config"

// Descriptor extensions read from the agents directory.
const (
	descriptorJSON     = ".json"
	descriptorMarkdown = ".md"
)

// SelectFunc asks which of the offered servers to keep.
// (*prompt.Selector).SelectMany satisfies it.
type SelectFunc func(label string, choices []prompt.Choice) ([]string, error)

// ConfigOptions configures a config migration.
type ConfigOptions struct {
	// Source is the Claude config directory, usually .claude.
	Source string

	// Target is the OpenCode project directory, usually .opencode.
	Target string

	// RegistryFiles are read from Source in order. Later files override
	// same-named servers.
	RegistryFiles []string

	// SchemaURL is written as "$schema" when the target has none.
	SchemaURL string

	// Select, when set, lets the user pick which servers to write.
	Select SelectFunc

	// Verify decodes every written agent header as YAML and flags failures.
	Verify bool

	DryRun bool
}

// Config migrates a Claude config directory:
//
//	<source>/<registry files> -> <target>/opencode.json ("mcp" section)
//	<source>/agents/*.{json,md} -> <target>/agent/<name>.md
//
// Skills are left in place because OpenCode reads .claude/skills itself.
func Config(ctx context.Context, opts ConfigOptions) (*report.Report, error) {
	logger := logging.FromContext(ctx)

	if !paths.IsDir(opts.Source) {
		return nil, errors.NewUserError(
			errors.Wrapf(errors.ErrSourceNotFound, "Source directory %s does not exist", opts.Source),
			"Pass the Claude config directory as the first argument, e.g. .claude",
		)
	}

	logger.Info("Migrating config", "source", opts.Source, "target", opts.Target, "dry_run", opts.DryRun)

	rep := report.New(ConfigCommand, opts.Source, opts.Target, opts.DryRun)

	if !opts.DryRun {
		if err := paths.EnsureDir(opts.Target, paths.DefaultDirPerm); err != nil {
			return rep, err
		}
	}

	registry, err := readRegistries(logger, rep, opts.Source, opts.RegistryFiles)
	if err != nil {
		return rep, err
	}

	servers, warnings := convertServers(logger, rep, registry)

	if opts.Select != nil && len(servers) > 0 {
		if err := selectServers(rep, servers, opts.Select); err != nil {
			return rep, err
		}
	}

	configPath := opencode.ConfigPath(opts.Target)
	var ocConfig *opencode.MCPConfig
	if len(servers) > 0 {
		// Load before writing agents so a broken target config stops the run early.
		ocConfig, err = opencode.LoadConfig(configPath, opts.SchemaURL)
		if err != nil {
			return rep, errors.NewUserError(err, "Fix or remove "+configPath+" and run again")
		}
	}

	if err := migrateAgents(logger, rep, opts); err != nil {
		return rep, err
	}

	if ocConfig != nil {
		if err := writeServers(logger, rep, configPath, ocConfig, servers, warnings, opts.DryRun); err != nil {
			return rep, err
		}
	} else {
		logger.Info("No MCP servers to write")
	}

	skipSkills(logger, rep, opts.Source)

	logger.Info("Migration complete")
	return rep, nil
}

// readRegistries reads and merges every registry file that exists.
// A file that exists but cannot be decoded is fatal.
func readRegistries(logger *slog.Logger, rep *report.Report, source string, files []string) (*mcp.Config, error) {
	translator := claude.NewMCPTranslator()
	merged := mcp.NewConfig()

	for _, file := range files {
		path := filepath.Join(source, file)

		data, err := fileutil.ReadFileWithLimit(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				logger.Debug("Skipped registry: file does not exist", "path", path)
				continue
			}
			return nil, errors.NewUserError(errors.Wrapf(err, "reading %s", path), "Check the file permissions")
		}

		cfg, err := translator.ToCanonical(data)
		if err != nil {
			return nil, errors.NewUserError(
				errors.Wrapf(err, "reading %s", path),
				"Fix the JSON in "+path+" or drop it from registry_files",
			)
		}

		logger.Info("Read MCP registry", "path", path, "platform", translator.Platform(), "servers", len(cfg.Servers))
		for _, name := range cfg.Names() {
			if _, exists := merged.Servers[name]; exists {
				logger.Debug("MCP server overridden by later registry", "name", name, "path", path)
			}
		}
		merged.Merge(cfg)
	}

	return merged, nil
}

// convertServers translates the merged registry and reports entries that
// cannot be expressed in OpenCode. The returned warnings are keyed by server
// name and flag entries whose declared type disagrees with their fields.
func convertServers(
	logger *slog.Logger,
	rep *report.Report,
	registry *mcp.Config,
) (map[string]*opencode.MCPServer, map[string]string) {
	servers, dropped := opencode.NewMCPTranslator().FromCanonical(registry)

	warnings := make(map[string]string)
	for _, name := range slices.Sorted(maps.Keys(servers)) {
		src := registry.Servers[name]
		if !src.TransportMismatch() {
			continue
		}
		warnings[name] = "declared type " + src.Transport + " ignored, converted as " + servers[name].Type
		logger.Warn("MCP server type does not match its fields",
			"name", name, "declared", src.Transport, "type", servers[name].Type)
	}

	for _, name := range dropped {
		logger.Warn("Skipped MCP server: needs a url or a command", "name", name)
		rep.Add(report.Item{
			Kind:   report.KindMCP,
			Name:   name,
			Action: report.ActionSkipped,
			Reason: mcp.ErrRequiredFieldMissing.Error() + ": url or command",
		})
	}

	return servers, warnings
}

// selectServers removes the servers the user did not pick.
func selectServers(rep *report.Report, servers map[string]*opencode.MCPServer, choose SelectFunc) error {
	names := slices.Sorted(maps.Keys(servers))

	choices := make([]prompt.Choice, 0, len(names))
	for _, name := range names {
		choices = append(choices, prompt.Choice{Name: name, Detail: describeServer(servers[name])})
	}

	picked, err := choose("MCP servers to migrate", choices)
	if err != nil {
		if errors.Is(err, prompt.ErrSelectionCancelled) {
			return errors.NewUserError(err, "Run without --select to migrate every server")
		}
		return err
	}

	for _, name := range names {
		if slices.Contains(picked, name) {
			continue
		}
		delete(servers, name)
		rep.Add(report.Item{
			Kind:   report.KindMCP,
			Name:   name,
			Action: report.ActionSkipped,
			Reason: "not selected",
		})
	}

	return nil
}

// describeServer summarizes a server for the picker without leaking secrets.
func describeServer(s *opencode.MCPServer) string {
	var sb strings.Builder
	sb.WriteString(s.Type)
	sb.WriteString(": ")

	if s.Type == opencode.TypeRemote {
		sb.WriteString(redact.URL(s.URL))
	} else {
		args := make([]string, len(s.Command))
		for i, arg := range s.Command {
			if redact.ContainsTokenPrefix(arg) {
				arg = redact.MaskValue(arg)
			}
			args[i] = arg
		}
		sb.WriteString(strings.Join(args, " "))
	}

	if len(s.Environment) > 0 {
		keys := slices.Sorted(maps.Keys(s.Environment))
		sb.WriteString("\nenvironment: ")
		sb.WriteString(strings.Join(keys, ", "))
	}

	return sb.String()
}

// migrateAgents converts every JSON and markdown descriptor in the agents
// directory. Unreadable or malformed descriptors are skipped.
func migrateAgents(logger *slog.Logger, rep *report.Report, opts ConfigOptions) error {
	dir := claude.AgentsDir(opts.Source)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Info("Skipped agents: directory does not exist", "path", dir)
			rep.Add(report.Item{
				Kind:   report.KindAgent,
				Name:   paths.SourceAgentsDir,
				Source: dir,
				Action: report.ActionSkipped,
				Reason: "directory does not exist",
			})
			return nil
		}
		return errors.Wrapf(err, "reading directory %s", dir)
	}

	targetDir := opencode.AgentDir(opts.Target)
	if !opts.DryRun {
		if err := paths.EnsureDir(targetDir, paths.DefaultDirPerm); err != nil {
			return err
		}
	}

	written := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := filepath.Ext(entry.Name())
		if ext != descriptorJSON && ext != descriptorMarkdown {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), ext)
		src := filepath.Join(dir, entry.Name())

		agent, err := readDescriptor(name, src, ext)
		if err != nil {
			logger.Warn("Skipped agent", "file", entry.Name(), "error", err)
			rep.Add(report.Item{
				Kind:   report.KindAgent,
				Name:   name,
				Source: src,
				Action: report.ActionSkipped,
				Reason: err.Error(),
			})
			continue
		}

		target := opencode.AgentPath(opts.Target, name)
		content := opencode.FormatAgent(agent)
		if !opts.DryRun {
			if err := fileutil.AtomicWriteFile(target, []byte(content), 0o644); err != nil {
				return errors.Wrapf(err, "writing %s", target)
			}
		}

		if prev, ok := written[name]; ok {
			logger.Warn("Agent replaces earlier descriptor", "name", name, "previous", prev, "file", entry.Name())
		}
		written[name] = entry.Name()

		logger.Info("Agent", "name", name)
		rep.Add(report.Item{
			Kind:   report.KindAgent,
			Name:   name,
			Source: src,
			Target: target,
			Action: report.ActionConverted,
		})

		if opts.Verify {
			verifyHeader(logger, rep, target, content)
		}
	}

	return nil
}

func readDescriptor(name, path, ext string) (*claude.AgentDescriptor, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if ext == descriptorJSON {
		return claude.ParseAgentJSON(name, data)
	}
	return claude.ParseAgentMarkdown(name, string(data)), nil
}

// writeServers merges the converted servers into opencode.json.
func writeServers(
	logger *slog.Logger,
	rep *report.Report,
	path string,
	cfg *opencode.MCPConfig,
	servers map[string]*opencode.MCPServer,
	warnings map[string]string,
	dryRun bool,
) error {
	names := slices.Sorted(maps.Keys(servers))

	for _, name := range names {
		server := servers[name]
		if cfg.Has(name) {
			logger.Debug("Replacing existing MCP server", "name", name)
		}
		cfg.Servers[name] = server

		logger.Info("MCP", "name", name, "type", server.Type, "url", server.URL)
		if len(server.Environment) > 0 {
			logger.Debug("MCP environment", "name", name, "environment", server.Environment)
		}
		rep.Add(report.Item{
			Kind:    report.KindMCP,
			Name:    name,
			Target:  path,
			Action:  report.ActionConverted,
			Warning: warnings[name],
		})
	}

	if dryRun {
		return nil
	}

	if err := opencode.SaveConfig(path, cfg); err != nil {
		return err
	}
	logger.Info("Wrote OpenCode config", "path", path)
	return nil
}

// skipSkills notes that skills are left where they are.
func skipSkills(logger *slog.Logger, rep *report.Report, source string) {
	dir := claude.SkillsDir(source)
	if !paths.IsDir(dir) {
		return
	}
	logger.Info("Skipped skills: OpenCode reads .claude/skills directly", "path", dir)
	rep.Add(report.Item{
		Kind:   report.KindSkill,
		Name:   paths.SourceSkillsDir,
		Source: dir,
		Action: report.ActionSkipped,
		Reason: "OpenCode reads .claude/skills directly",
	})
}
