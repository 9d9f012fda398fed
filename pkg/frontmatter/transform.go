package frontmatter

import (
	"fmt"
	"regexp"
	"strings"
)

// ModeSubagent is the mode given to agents that don't declare one.
const ModeSubagent = "subagent"

var (
	toolsLine = regexp.MustCompile(`^tools:\s*(.+)$`)
	colorLine = regexp.MustCompile(`^color:\s*(.+)$`)
)

// Options controls a header rewrite.
type Options struct {
	// Agent appends "mode: subagent" when the header has no mode line.
	Agent bool

	// Palette resolves color names. DefaultPalette is used when nil.
	Palette Palette
}

// Transform rewrites the header of content for OpenCode.
// When content has no header region it is returned unchanged with ok false,
// and the caller should copy the original bytes.
func Transform(content string, opts Options) (out string, ok bool) {
	doc, ok := Split(content)
	if !ok {
		return content, false
	}

	palette := opts.Palette
	if palette == nil {
		palette = DefaultPalette
	}

	lines := doc.HeaderLines()
	rewritten := make([]string, 0, len(lines)+1)
	hasMode := false

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "tools:"):
			rewritten = append(rewritten, rewriteTools(line)...)
		case strings.HasPrefix(line, "color:"):
			rewritten = append(rewritten, rewriteColor(line, palette))
		case strings.HasPrefix(line, "mode:"):
			hasMode = true
			rewritten = append(rewritten, line)
		case strings.HasPrefix(line, "model:"):
			// OpenCode selects the model per agent config, not per file.
		default:
			rewritten = append(rewritten, line)
		}
	}

	if opts.Agent && !hasMode {
		rewritten = append(rewritten, "mode: "+ModeSubagent)
	}

	return Assemble(rewritten, doc.Body), true
}

// rewriteTools expands "tools: a, b" into a "tools:" line followed by one
// flag line per tool. A bare "tools:" line is already in map form.
func rewriteTools(line string) []string {
	m := toolsLine.FindStringSubmatch(line)
	if m == nil {
		return []string{line}
	}

	names := SplitList(m[1])
	if len(names) == 0 {
		return []string{line}
	}

	return append([]string{"tools:"}, ToolFlags(names)...)
}

func rewriteColor(line string, palette Palette) string {
	m := colorLine.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	value := unquote(strings.TrimSpace(m[1]))
	return fmt.Sprintf("color: '%s'", palette.Resolve(value))
}

// SplitList splits a comma-separated list, tolerating surrounding brackets
// and quoted items. Empty items are dropped.
func SplitList(value string) []string {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")

	var names []string
	for item := range strings.SplitSeq(value, ",") {
		item = unquote(strings.TrimSpace(item))
		if item != "" {
			names = append(names, item)
		}
	}
	return names
}

// ToolFlags renders tool names as indented "name: true" lines.
func ToolFlags(names []string) []string {
	flags := make([]string, 0, len(names))
	for _, name := range names {
		flags = append(flags, "  "+name+": true")
	}
	return flags
}

func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
