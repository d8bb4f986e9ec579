package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// isolate runs the test in an empty directory with no user config and no
// ptreport environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, name := range []string{"PTREPORT_RESULTS_DIR", "PTREPORT_LOCALE", "PTREPORT_DEBUG", "NO_COLOR"} {
		t.Setenv(name, "")
	}
	return dir
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("theme: orca\n"), 0o600))

	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	configDir := filepath.Join(dir, "xdg", "ptreport")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configPath := filepath.Join(configDir, FileName)
	require.NoError(t, os.WriteFile(configPath, []byte("theme: orca\n"), 0o600))

	assert.Equal(t, configPath, getConfigPath())
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	isolate(t)

	cfg, path, err := Load()
	require.NoError(t, err)

	assert.Empty(t, path)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Aggregate)
	assert.True(t, cfg.Preview)
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	dir := isolate(t)
	yamlContent := "results_dir: out\naggregate: false\nlogo_dirs: [logos]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yamlContent), 0o600))

	cfg, path, err := Load()
	require.NoError(t, err)

	assert.Equal(t, FileName, path)
	assert.Equal(t, "out", cfg.ResultsDir)
	assert.False(t, cfg.Aggregate)
	assert.Equal(t, []string{"logos"}, cfg.LogoDirs)
	assert.True(t, cfg.Preview, "keys missing from the file keep their defaults")
	assert.Equal(t, DefaultRepoURL, cfg.RepoURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("aggregate: [nope\n"), 0o600))

	_, _, err := Load()
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	isolate(t)
	t.Setenv("PTREPORT_RESULTS_DIR", "/data/results")
	t.Setenv("PTREPORT_LOCALE", "de")
	t.Setenv("PTREPORT_DEBUG", "1")
	t.Setenv("NO_COLOR", "true")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "/data/results", cfg.ResultsDir)
	assert.Equal(t, language.German, cfg.LocaleTag())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "mono", cfg.ThemeName())
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	isolate(t)
	t.Setenv("PTREPORT_DEBUG", "loud")

	assert.Error(t, Default().ApplyEnv())
}

func TestLocaleTag_FallsBackToEnglish(t *testing.T) {
	cfg := Default()
	cfg.Locale = "not a locale!"
	assert.Equal(t, language.English, cfg.LocaleTag())
}

func TestResolve_PriorityOrder(t *testing.T) {
	dir := isolate(t)
	yamlContent := "results_dir: from-file\ntheme: orca\nlocale: fr\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(yamlContent), 0o600))
	t.Setenv("PTREPORT_RESULTS_DIR", "from-env")
	t.Setenv("PTREPORT_LOCALE", "de")

	r, err := Resolve(Flags{Locale: "sv", Aggregate: false, AggregateSet: true})
	require.NoError(t, err)

	assert.Equal(t, "from-env", r.ResultsDir)
	assert.Equal(t, "env", r.Sources["results_dir"])
	assert.Equal(t, "orca", r.Theme)
	assert.Equal(t, "file", r.Sources["theme"])
	assert.Equal(t, "sv", r.Locale)
	assert.Equal(t, "cli", r.Sources["locale"])
	assert.False(t, r.Aggregate)
	assert.Equal(t, "cli", r.Sources["aggregate"])
	assert.True(t, r.Preview)
	assert.Equal(t, "file", r.Sources["preview"])
}
