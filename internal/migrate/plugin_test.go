package migrate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/report"
)

func TestPlugin(t *testing.T) {
	src := t.TempDir()
	target := filepath.Join(t.TempDir(), "opencode")
	skills := filepath.Join(t.TempDir(), "claude", "skills")

	writeFiles(t, src, map[string]string{
		"agents/reviewer.md":          "---\ndescription: x\ntools: read, edit\ncolor: blue\nmodel: claude-sonnet-4\n---\nYou review code.\n",
		"commands/test.md":            "---\ndescription: run tests\nmodel: haiku\n---\nRun $ARGUMENTS\n",
		"skills/deploy/SKILL.md":      "---\nname: deploy\ntools: bash\n---\nDeploy.\n",
		"skills/deploy/scripts/go.sh": "#!/bin/sh\n",
	})

	rep, err := Plugin(testContext(t), PluginOptions{Source: src, Target: target, SkillsDir: skills})
	require.NoError(t, err)

	assert.Equal(t,
		"---\ndescription: x\ntools:\n  read: true\n  edit: true\ncolor: '#0000ff'\nmode: subagent\n---\nYou review code.\n",
		readFile(t, filepath.Join(target, "agent", "reviewer.md")))
	assert.Equal(t,
		"---\ndescription: run tests\n---\nRun $ARGUMENTS\n",
		readFile(t, filepath.Join(target, "commands", "test.md")))
	assert.Equal(t,
		"---\nname: deploy\ntools:\n  bash: true\n---\nDeploy.\n",
		readFile(t, filepath.Join(skills, "deploy", "SKILL.md")))
	assert.Equal(t, "#!/bin/sh\n", readFile(t, filepath.Join(skills, "deploy", "scripts", "go.sh")))

	assert.Equal(t, PluginCommand, rep.Command)
	assert.Equal(t, 3, rep.Counts()[report.ActionConverted])
	assert.Equal(t, 1, rep.Counts()[report.ActionCopied])
}

func TestPlugin_MissingSubdirectories(t *testing.T) {
	src := t.TempDir()
	target := filepath.Join(t.TempDir(), "opencode")
	writeFiles(t, src, map[string]string{"commands/a.md": "---\n---\n"})

	rep, err := Plugin(testContext(t), PluginOptions{Source: src, Target: target, SkillsDir: t.TempDir()})
	require.NoError(t, err)

	skipped := rep.Filter(func(i report.Item) bool { return i.Action == report.ActionSkipped })
	require.Len(t, skipped, 2)
	assert.Equal(t, report.KindAgent, skipped[0].Kind)
	assert.Equal(t, report.KindSkill, skipped[1].Kind)
	assert.DirExists(t, target)
	assert.FileExists(t, filepath.Join(target, "commands", "a.md"))
}

func TestPlugin_MissingSource(t *testing.T) {
	_, err := Plugin(testContext(t), PluginOptions{
		Source: filepath.Join(t.TempDir(), "missing"),
		Target: t.TempDir(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrSourceNotFound))
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Contains(t, err.Error(), "does not exist")
}

func TestPlugin_DryRun(t *testing.T) {
	src := t.TempDir()
	target := filepath.Join(t.TempDir(), "opencode")
	skills := filepath.Join(t.TempDir(), "skills")
	writeFiles(t, src, map[string]string{"agents/a.md": "---\n---\n"})

	rep, err := Plugin(testContext(t), PluginOptions{Source: src, Target: target, SkillsDir: skills, DryRun: true})
	require.NoError(t, err)

	assert.True(t, rep.DryRun)
	assert.NoDirExists(t, target)
	assert.NoDirExists(t, skills)
	assert.Equal(t, 1, rep.Counts()[report.ActionConverted])
}

func TestPlugin_SkillsAlreadyInPlace(t *testing.T) {
	home := t.TempDir()
	writeFiles(t, home, map[string]string{
		"skills/pdf/extract.py": "print('hello')\n",
		"skills/pdf/SKILL.md":   "---\nname: pdf\n---\nUse it.\n",
	})

	rep, err := Plugin(testContext(t), PluginOptions{
		Source:    home,
		Target:    filepath.Join(t.TempDir(), "opencode"),
		SkillsDir: filepath.Join(home, "skills"),
	})
	require.NoError(t, err)

	assert.Equal(t, "print('hello')\n", readFile(t, filepath.Join(home, "skills", "pdf", "extract.py")))

	skills := rep.Filter(func(i report.Item) bool { return i.Kind == report.KindSkill })
	require.Len(t, skills, 1)
	assert.Equal(t, report.ActionSkipped, skills[0].Action)
}
