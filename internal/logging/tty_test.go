package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestColorFor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"NO_COLOR prevents color", map[string]string{"NO_COLOR": "1"}, true, false},
		{"NO_COLOR beats always", map[string]string{"NO_COLOR": "", ColorEnv: "always"}, true, false},
		{"TERM=dumb prevents color", map[string]string{"TERM": "dumb"}, true, false},
		{"non-TTY prevents color", nil, false, false},
		{"TTY with clean env allows color", map[string]string{"TERM": "xterm-256color"}, true, true},
		{"always forces color off a TTY", map[string]string{ColorEnv: "always"}, false, true},
		{"never disables color on a TTY", map[string]string{ColorEnv: "never"}, true, false},
		{"unknown override ignored", map[string]string{ColorEnv: "sometimes"}, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			os.Unsetenv("NO_COLOR")
			t.Setenv(ColorEnv, "")
			t.Setenv("TERM", "")

			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			if got := colorFor(tt.isTTY); got != tt.want {
				t.Errorf("colorFor(%v) = %v, want %v (env=%v)", tt.isTTY, got, tt.want, tt.env)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY should return false for a buffer")
	}
}

func TestConfigureColor_Buffer(t *testing.T) {
	t.Setenv(ColorEnv, "")
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	ConfigureColor(&bytes.Buffer{})
	if !color.NoColor {
		t.Error("color should be off for a non-terminal writer")
	}
}
