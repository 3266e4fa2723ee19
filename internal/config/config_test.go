package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
snapshot:
  path: state.json
  compress: true
prompt: "fs> "
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "state.json", cfg.Snapshot.Path)
	require.True(t, cfg.Snapshot.Compress)
	require.Equal(t, "fs> ", cfg.Prompt)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "snapshot: [not: a: mapping")

	_, err := Load(dir)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestApplyEnvironment(t *testing.T) {
	t.Setenv(EnvSnapshot, "/tmp/override.json")
	t.Setenv(EnvSnapshotCompress, "true")
	t.Setenv(EnvPrompt, "env> ")

	cfg := &Config{Snapshot: SnapshotConfig{Path: "file.json"}}
	cfg.ApplyEnvironment()

	require.Equal(t, "/tmp/override.json", cfg.Snapshot.Path)
	require.True(t, cfg.Snapshot.Compress)
	require.Equal(t, "env> ", cfg.Prompt)
}

func TestApplyEnvironmentIgnoresBadBool(t *testing.T) {
	t.Setenv(EnvSnapshotCompress, "definitely")

	cfg := &Config{Snapshot: SnapshotConfig{Compress: true}}
	cfg.ApplyEnvironment()
	require.True(t, cfg.Snapshot.Compress)
}

func TestApplyEnvironmentLeavesUnsetFields(t *testing.T) {
	for _, env := range []string{EnvSnapshot, EnvSnapshotCompress, EnvPrompt} {
		t.Setenv(env, "") // registers cleanup
		os.Unsetenv(env)
	}

	cfg := &Config{Snapshot: SnapshotConfig{Path: "keep.json"}, Prompt: "keep> "}
	cfg.ApplyEnvironment()
	require.Equal(t, "keep.json", cfg.Snapshot.Path)
	require.Equal(t, "keep> ", cfg.Prompt)
}
