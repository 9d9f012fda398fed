package report

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/ocmigrate/internal/errors"
	"github.com/thoreinstein/ocmigrate/internal/paths"
	"github.com/thoreinstein/ocmigrate/pkg/fileutil"
)

// Format is a structured report encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks a format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(errors.ErrUnsupportedFormat, "report extension %q (use .json, .yaml, .yml or .toml)", ext)
	}
}

// Marshal encodes the report in the given format.
func (r *Report) Marshal(format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return fileutil.MarshalJSON(r)
	case FormatYAML:
		out, err := yaml.Marshal(r)
		return out, errors.Wrap(err, "marshaling yaml")
	case FormatTOML:
		out, err := toml.Marshal(r)
		return out, errors.Wrap(err, "marshaling toml")
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "report format %q", format)
	}
}

// WriteFile writes the report to path atomically, in the format implied by
// its extension. The parent directory is created if needed.
func (r *Report) WriteFile(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	data, err := r.Marshal(format)
	if err != nil {
		return err
	}

	if err := paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm); err != nil {
		return err
	}

	return errors.Wrap(fileutil.AtomicWriteFile(path, data, 0o644), "writing report")
}

// WriteText writes a human-readable summary to w.
func (r *Report) WriteText(w io.Writer) error {
	title := "Migration complete"
	if r.DryRun {
		title = "Dry run complete (nothing written)"
	}
	fmt.Fprintln(w, color.GreenString("✓ %s", title))

	if len(r.Items) == 0 {
		fmt.Fprintln(w, "  nothing to migrate")
		return nil
	}

	for _, kind := range r.kinds() {
		counts := make(map[Action]int)
		for _, item := range r.Items {
			if item.Kind == kind {
				counts[item.Action]++
			}
		}
		fmt.Fprintf(w, "  %-8s %s\n", string(kind)+":", summarize(counts))
	}

	skipped := r.Filter(func(i Item) bool { return i.Action == ActionSkipped })
	if len(skipped) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Skipped:")
		for _, item := range skipped {
			printItem(w, item, item.Reason, color.FgYellow)
		}
	}

	warned := r.Filter(func(i Item) bool { return i.Warning != "" })
	if len(warned) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, item := range warned {
			printItem(w, item, item.Warning, color.FgRed)
		}
	}

	return nil
}

func summarize(counts map[Action]int) string {
	var parts []string
	if n := counts[ActionConverted]; n > 0 {
		parts = append(parts, color.GreenString("%d converted", n))
	}
	if n := counts[ActionCopied]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d copied", n))
	}
	if n := counts[ActionSkipped]; n > 0 {
		parts = append(parts, color.YellowString("%d skipped", n))
	}
	return strings.Join(parts, ", ")
}

func printItem(w io.Writer, item Item, detail string, c color.Attribute) {
	// Format:  • kind name: detail
	var sb strings.Builder
	sb.WriteString("  • ")
	sb.WriteString(color.New(c).Sprint(string(item.Kind)))
	sb.WriteString(" ")
	sb.WriteString(item.Name)
	if detail != "" {
		sb.WriteString(": ")
		sb.WriteString(detail)
	}
	if item.Source != "" {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" (%s)", item.Source))
	}
	fmt.Fprintln(w, sb.String())
}
