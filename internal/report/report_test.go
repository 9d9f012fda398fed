package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

func sampleReport() *Report {
	r := New("migrate-config", ".claude", ".opencode", false)
	r.Add(Item{Kind: KindAgent, Name: "reviewer", Source: ".claude/agents/reviewer.md", Target: ".opencode/agent/reviewer.md", Action: ActionConverted})
	r.Add(Item{Kind: KindAgent, Name: "broken", Source: ".claude/agents/broken.json", Action: ActionSkipped, Reason: "invalid agent descriptor"})
	r.Add(Item{Kind: KindMCP, Name: "github", Target: ".opencode/opencode.json", Action: ActionConverted})
	r.Add(Item{Kind: KindSkill, Name: "skills", Action: ActionSkipped, Reason: "OpenCode reads .claude/skills directly"})
	r.Add(Item{Kind: KindCommand, Name: "logo.png", Action: ActionCopied})
	return r
}

func TestReport_Counts(t *testing.T) {
	counts := sampleReport().Counts()
	assert.Equal(t, 2, counts[ActionConverted])
	assert.Equal(t, 1, counts[ActionCopied])
	assert.Equal(t, 2, counts[ActionSkipped])

	var nilReport *Report
	nilReport.Add(Item{Name: "ignored"})
	assert.Empty(t, nilReport.Counts())
}

func TestReport_Warn(t *testing.T) {
	r := sampleReport()
	assert.True(t, r.Warn(".opencode/agent/reviewer.md", "header is not valid YAML"))
	assert.False(t, r.Warn("missing", "x"))
	assert.Equal(t, "header is not valid YAML", r.Items[0].Warning)
}

func TestReport_WriteText(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	r := sampleReport()
	r.Warn(".opencode/agent/reviewer.md", "header is not valid YAML")
	require.NoError(t, r.WriteText(&buf))

	out := buf.String()
	for _, want := range []string{
		"Migration complete",
		"agent:   1 converted, 1 skipped",
		"command: 1 copied",
		"skill:   1 skipped",
		"mcp:     1 converted",
		"• agent broken: invalid agent descriptor (.claude/agents/broken.json)",
		"Warnings:",
		"• agent reviewer: header is not valid YAML",
	} {
		assert.Contains(t, out, want)
	}

	// Kinds print in a fixed order.
	assert.Less(t, strings.Index(out, "agent:"), strings.Index(out, "command:"))
	assert.Less(t, strings.Index(out, "skill:"), strings.Index(out, "mcp:"))
}

func TestReport_WriteText_DryRunEmpty(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	require.NoError(t, New("migrate-plugin", ".", "out", true).WriteText(&buf))
	assert.Contains(t, buf.String(), "Dry run complete")
	assert.Contains(t, buf.String(), "nothing to migrate")
}

func TestReport_WriteFile(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "out", "report.json")
		require.NoError(t, r.WriteFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got Report
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, r.Items, got.Items)
		assert.Equal(t, "migrate-config", got.Command)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "report.YML")
		require.NoError(t, r.WriteFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var got Report
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, r.Items, got.Items)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(dir, "report.toml")
		require.NoError(t, r.WriteFile(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "[[items]]")

		var got Report
		require.NoError(t, toml.Unmarshal(data, &got))
		assert.Equal(t, r.Items, got.Items)
	})

	t.Run("unsupported", func(t *testing.T) {
		err := r.WriteFile(filepath.Join(dir, "report.txt"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))
	})
}
