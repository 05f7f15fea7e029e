package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Resolution tests touch the environment and working directory, so none of
// them run in parallel.

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SWATCH_THEME", "")
	t.Setenv("SWATCH_NO_COLOR", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("SWATCH_DEBUG", "")
	os.Unsetenv("SWATCH_THEME")
	os.Unsetenv("SWATCH_NO_COLOR")
	os.Unsetenv("NO_COLOR")
	os.Unsetenv("SWATCH_DEBUG")
}

func TestResolveConfig_When_NothingSet_UsesDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, DefaultThemeName, resolved.Theme)
	assert.Equal(t, DefaultDefaultThemeName, resolved.DefaultTheme)
	assert.False(t, resolved.NoColor)
}

func TestResolveConfig_When_FileSetsTheme_FileWins(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".swatch.yaml", []byte("theme: solarized\nno_color: true\n"), 0o644))

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "solarized", resolved.Theme)
	assert.Equal(t, "file", resolved.ThemeSource)
	assert.True(t, resolved.NoColor)
}

func TestResolveConfig_When_EnvSetsTheme_EnvBeatsFile(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".swatch.yaml", []byte("theme: solarized\n"), 0o644))
	t.Setenv("SWATCH_THEME", "light")

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "light", resolved.Theme)
	assert.Equal(t, "env", resolved.ThemeSource)
}

func TestResolveConfig_When_CliSetsTheme_CliBeatsEverything(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".swatch.yaml", []byte("theme: solarized\n"), 0o644))
	t.Setenv("SWATCH_THEME", "light")

	resolved, err := ResolveConfig(CliFlags{ThemeName: "dark"})
	require.NoError(t, err)

	assert.Equal(t, "dark", resolved.Theme)
	assert.Equal(t, "cli", resolved.ThemeSource)
}

func TestResolveConfig_When_NoColorFlagExplicitlyFalse_OverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "1")

	resolved, err := ResolveConfig(CliFlags{NoColor: false, NoColorSet: true})
	require.NoError(t, err)

	assert.False(t, resolved.NoColor)
	assert.Equal(t, "cli", resolved.NoColorSource)
}

func TestResolveConfig_When_NoColorEnvNonBoolean_StillHonored(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("NO_COLOR", "yes-please")

	resolved, err := ResolveConfig(CliFlags{})
	require.NoError(t, err)

	assert.True(t, resolved.NoColor)
	assert.Equal(t, "env", resolved.NoColorSource)
}

func TestResolveConfig_When_UnknownTheme_SuggestsClosest(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := ResolveConfig(CliFlags{ThemeName: "solarised"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "solarized")
}

func TestResolveConfig_When_UnknownThemeNoMatch_ListsAvailable(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())

	_, err := ResolveConfig(CliFlags{ThemeName: "zzz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available")
}

func TestLoadConfig_When_MalformedYAML_FallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".swatch.yaml", []byte("theme: [not: valid\n"), 0o644))

	appCfg := LoadConfig()
	assert.Equal(t, DefaultThemeName, appCfg.Theme)
}
