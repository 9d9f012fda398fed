package frontmatter

import (
	"errors"
	"strings"
	"testing"
)

type agentHeader struct {
	Description string          `yaml:"description"`
	Mode        string          `yaml:"mode"`
	Color       string          `yaml:"color"`
	Tools       map[string]bool `yaml:"tools"`
}

func TestParse_TransformedAgent(t *testing.T) {
	out, ok := Transform("---\ndescription: x\ntools: read, edit\ncolor: blue\n---\nbody\n", Options{Agent: true})
	if !ok {
		t.Fatal("Transform() reported no header")
	}

	var h agentHeader
	body, err := Parse(strings.NewReader(out), &h)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if h.Description != "x" || h.Mode != "subagent" || h.Color != "#0000ff" {
		t.Errorf("unexpected header: %+v", h)
	}
	if !h.Tools["read"] || !h.Tools["edit"] || len(h.Tools) != 2 {
		t.Errorf("tools = %v, want read and edit", h.Tools)
	}
	if body != "\nbody\n" {
		t.Errorf("body = %q", body)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "no frontmatter", input: "# title\n", wantErr: ErrNoFrontmatter},
		{name: "invalid yaml", input: "---\nname: [broken\n---\n", wantErr: ErrInvalidYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m map[string]any
			_, err := Parse(strings.NewReader(tt.input), &m)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
