package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHome(t *testing.T) {
	want, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	got, err := ResolveHome()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultDirs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	oc, err := OpenCodeConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "opencode"), oc)

	claude, err := ClaudeConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude"), claude)

	skills, err := ClaudeSkillsDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".claude", "skills"), skills)
}

func TestAppConfigDir(t *testing.T) {
	got := AppConfigDir()
	assert.True(t, filepath.IsAbs(got), "AppConfigDir() = %q, want absolute path", got)
	assert.Equal(t, AppName, filepath.Base(got))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDir(dir, 0))
	assert.True(t, IsDir(dir))

	// Idempotent.
	require.NoError(t, EnsureDir(dir, 0o700))
}

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, Exists(file))
	assert.False(t, IsDir(file))
	assert.True(t, IsDir(dir))
	assert.False(t, Exists(filepath.Join(dir, "missing")))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
