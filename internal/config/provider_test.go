package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/treb-tracker/internal/domain/config"
)

func TestProvider(t *testing.T) {
	t.Run("resolves paths from project root", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "treb.toml"), []byte("[compiler]\ncmd = \"solcjs\"\n"), 0644))

		v := SetupViper(dir)
		v.Set("debug", true)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".treb"), cfg.DataDir)
		assert.Equal(t, filepath.Join(dir, "treb.toml"), cfg.ConfigPath)
		assert.True(t, cfg.Debug)
		assert.False(t, cfg.NonInteractive)
		require.NotNil(t, cfg.Project)
		assert.Equal(t, "solcjs", cfg.Project.Compiler.Cmd)
	})

	t.Run("loads .env before expanding treb.toml", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TREB_TEST_COMPILER", "")
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TREB_TEST_COMPILER=solcjs\n"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "treb.toml"), []byte("[compiler]\ncmd = \"${TREB_TEST_COMPILER}\"\n"), 0644))
		require.NoError(t, os.Unsetenv("TREB_TEST_COMPILER"))

		cfg, err := Provider(SetupViper(dir))
		require.NoError(t, err)
		assert.Equal(t, "solcjs", cfg.Project.Compiler.Cmd)
	})

	t.Run("non-interactive from environment", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("TREB_NON_INTERACTIVE", "true")

		cfg, err := Provider(SetupViper(dir))
		require.NoError(t, err)
		assert.True(t, cfg.NonInteractive)
		assert.Equal(t, config.DefaultProjectConfig(), cfg.Project)
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	// Resolve symlinks so the comparison holds on macOS temp dirs.
	dir, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "treb.toml"), nil, 0644))
	nested := filepath.Join(dir, "contracts", "token")
	require.NoError(t, os.MkdirAll(nested, 0755))

	prevWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(prevWd) })

	root, err := FindProjectRoot()
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}
