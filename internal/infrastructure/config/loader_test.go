package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/url"
)

// isolate points every XDG directory at a fresh temp dir.
func isolate(t *testing.T) (configDir, dataDir string) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DOWNLOAD_DIR", filepath.Join(root, "downloads"))
	return filepath.Join(root, "config", appName), filepath.Join(root, "data", appName)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configName), []byte(content), filePerm))
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, url.HomePage, mgr.viper.GetString("home_page"))
	assert.Equal(t, entity.DefaultHistoryLimit, mgr.viper.GetInt("history.max_entries"))
	assert.Equal(t, "inject.js", mgr.viper.GetString("extensions.script_name"))
	assert.Equal(t, "grant", mgr.viper.GetString("permissions.default"))
	assert.Equal(t, "json", mgr.viper.GetString("storage.backend"))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	normalizeConfig(cfg)
	require.NoError(t, validateConfig(cfg))
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	configDir, dataDir := isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	_, err = os.Stat(filepath.Join(configDir, configName))
	require.NoError(t, err)

	cfg := mgr.Get()
	assert.Equal(t, url.DefaultSearchEngine, cfg.SearchEngine)
	assert.Equal(t, StorageJSON, cfg.Storage.Backend)
	assert.Equal(t, dataDir, cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join(configDir, "extensions"), cfg.Extensions.Dir)
	assert.Equal(t, os.Getenv("XDG_DOWNLOAD_DIR"), cfg.Downloads.Path)
	assert.Equal(t, filepath.Join(configDir, configName), mgr.ConfigFile())
}

func TestLoad_ReadsAndNormalizesFile(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, `
search_engine = "https://duckduckgo.com/?q=%s"

[storage]
backend = "SQLite"
data_dir = "/tmp/subject-data"

[history]
max_entries = 20

[permissions]
default = "DENY"

[permissions.overrides]
Clipboard = "allow"
`)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, "https://duckduckgo.com/?q=%s", cfg.SearchEngine)
	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/subject-data", cfg.Storage.DataDir)
	assert.Equal(t, 20, cfg.History.MaxEntries)
	assert.Equal(t, "deny", cfg.Permissions.Default)

	def, overrides := cfg.PermissionDecisions()
	assert.Equal(t, entity.PermissionDeny, def)
	assert.Equal(t, map[entity.PermissionType]entity.PermissionDecision{
		entity.PermissionClipboard: entity.PermissionGrant,
	}, overrides)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SUBJECT_HISTORY_MAX_ENTRIES", "42")
	t.Setenv("SUBJECT_LOG_LEVEL", "debug")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 42, cfg.History.MaxEntries)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidValuesAreAggregated(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, `
search_engine = "ftp://search"

[history]
max_entries = 0

[window]
width = 10
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "search_engine must start with http:// or https://")
	assert.Contains(t, err.Error(), "history.max_entries must be at least 1")
	assert.Contains(t, err.Error(), "window.width must be at least 200")
}

func TestLoad_HistoryLimitCapped(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, `
[history]
max_entries = 1000
`)

	mgr, err := NewManager()
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.max_entries must be at most 500")
}

func TestLoad_MalformedTOML(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, "this is = = not toml")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestReload_NotifiesCallbacks(t *testing.T) {
	configDir, _ := isolate(t)
	writeConfig(t, configDir, "[history]\nmax_entries = 5\n")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	writeConfig(t, configDir, "[history]\nmax_entries = 9\n")
	require.NoError(t, mgr.Reload())

	require.NotNil(t, got)
	assert.Equal(t, 9, got.History.MaxEntries)
	assert.Equal(t, 9, mgr.Get().History.MaxEntries)
}

func TestValidatePermissions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Permissions.Overrides = map[string]string{
		"camera":      "grant",
		"geolocation": "maybe",
	}

	errs := validatePermissions(cfg)
	assert.Len(t, errs, 2)
}

func TestGet_ReturnsCopy(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.History.MaxEntries = 1
	cfg.Permissions.Overrides["media"] = "deny"

	fresh := mgr.Get()
	assert.Equal(t, entity.DefaultHistoryLimit, fresh.History.MaxEntries)
	assert.NotContains(t, fresh.Permissions.Overrides, "media")
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"max_entries"`)
	assert.Contains(t, s, `"maximum": 500`)
	assert.Contains(t, s, `"search_engine"`)
	assert.Contains(t, s, "Subject Browser Configuration")

	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	path, err := mgr.WriteSchemaFile()
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "dl"), expandHome("~/dl"))
	assert.Equal(t, "/abs", expandHome("/abs"))
}
