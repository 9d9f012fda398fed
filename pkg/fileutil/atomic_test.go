package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/ocmigrate/internal/errors"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{name: "markdown", data: []byte("---\nmode: subagent\n---\nbody\n"), perm: 0o644},
		{name: "empty data", data: []byte{}, perm: 0o644},
		{name: "private", data: []byte(`{"mcp":{}}`), perm: 0o600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "out")

			if err := AtomicWriteFile(path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("stating file: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent", "file.txt")

	if err := AtomicWriteFile(path, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error when parent directory is missing")
	}
}

func TestAtomicWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "opencode.json")

	for range 3 {
		if err := AtomicWriteFile(path, []byte("{}"), 0o644); err != nil {
			t.Fatalf("AtomicWriteFile() error = %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".ocmigrate-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opencode.json")

	in := map[string]any{"$schema": "https://opencode.ai/config.json", "mcp": map[string]any{}}
	if err := AtomicWriteJSON(path, in); err != nil {
		t.Fatalf("AtomicWriteJSON() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "}\n") {
		t.Errorf("expected trailing newline, got %q", data)
	}
	if !strings.Contains(string(data), "\n  \"$schema\"") {
		t.Errorf("expected 2-space indentation, got %q", data)
	}

	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
}

func TestMarshalJSON_KeepsURLCharacters(t *testing.T) {
	data, err := MarshalJSON(map[string]string{"url": "https://x.example.com/mcp?a=1&b=<2>"})
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	want := "{\n  \"url\": \"https://x.example.com/mcp?a=1&b=<2>\"\n}\n"
	if string(data) != want {
		t.Errorf("MarshalJSON() = %q, want %q", data, want)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.sh")
	dst := filepath.Join(dir, "copy.sh")
	content := []byte("#!/bin/sh\necho --- not frontmatter ---\n")

	if err := os.WriteFile(src, content, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(src, 0o755); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("content = %q, want %q", got, content)
	}

	info, err := os.Stat(dst)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Errorf("expected executable bit to be preserved, got %o", info.Mode().Perm())
	}
}

func TestCopyFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFile_SameFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "extract.py")
	link := filepath.Join(dir, "link.py")
	content := "print('hello')\n"

	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(src, link); err != nil {
		t.Fatal(err)
	}

	for _, dst := range []string{src, link} {
		err := CopyFile(src, dst)
		if !errors.Is(err, ErrSameFile) {
			t.Errorf("CopyFile(%s) error = %v, want ErrSameFile", dst, err)
		}
	}

	got, err := os.ReadFile(src)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != content {
		t.Errorf("source content = %q, want %q", got, content)
	}
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	if err := os.WriteFile(a, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	if !SameFile(a, a) {
		t.Error("SameFile(a, a) = false")
	}
	if !SameFile(dir, filepath.Join(dir, ".")) {
		t.Error("SameFile(dir, dir/.) = false")
	}
	if SameFile(a, filepath.Join(dir, "missing")) {
		t.Error("SameFile with missing path = true")
	}
}
