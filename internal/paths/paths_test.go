package paths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveConfigDir_FlagWins(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", dir)
}

func TestResolveConfigDir_EnvFallback(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", dir)
}

func TestResolveConfigDir_PlatformDefault(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only default layout")
	}
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	dir, err := ResolveConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/config", appDirName), dir)
}

func TestResolveConfigDir_RelativeFlagBecomesAbsolute(t *testing.T) {
	dir, err := ResolveConfigDir("relative/config")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}

func TestResolveDataDir_Precedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	// Flag beats everything.
	dir, err := ResolveDataDir("/flag/data", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", dir)

	// Config value beats the env var.
	dir, err = ResolveDataDir("", "/config/data")
	require.NoError(t, err)
	assert.Equal(t, "/config/data", dir)

	// Env var beats the platform default.
	dir, err = ResolveDataDir("", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", dir)
}

func TestDefaultDataDir_XDG(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only default layout")
	}
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/data", appDirName), dir)
}

func TestDefaultDataDir_HomeFallback(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only default layout")
	}
	t.Setenv("XDG_DATA_HOME", "")
	home := t.TempDir()
	orig := platformDir.homeDir
	platformDir.homeDir = func() (string, error) { return home, nil }
	t.Cleanup(func() { platformDir.homeDir = orig })

	dir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", appDirName), dir)
}
