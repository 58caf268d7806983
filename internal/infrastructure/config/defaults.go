package config

import (
	"github.com/subjectbrowser/subject/internal/domain/autocomplete"
	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/url"
)

const (
	defaultScriptName     = "inject.js"
	defaultExtensionCache = 64
	defaultWindowWidth    = 1024
	defaultWindowHeight   = 768
	defaultWindowTitle    = "Subject"
	defaultLogMaxSizeMB   = 10
	defaultLogMaxBackups  = 3
)

// DefaultConfig returns the built-in configuration. Directory fields are left
// empty and resolved against the XDG directories at load time.
func DefaultConfig() *Config {
	return &Config{
		HomePage:     url.HomePage,
		SearchEngine: url.DefaultSearchEngine,
		Storage: StorageConfig{
			Backend: StorageJSON,
		},
		History: HistoryConfig{
			MaxEntries: entity.DefaultHistoryLimit,
		},
		Omnibox: OmniboxConfig{
			MaxSuggestions: autocomplete.DefaultLimit,
		},
		Extensions: ExtensionsConfig{
			ScriptName: defaultScriptName,
			CacheSize:  defaultExtensionCache,
		},
		Downloads: DownloadsConfig{
			Ask: false,
		},
		Permissions: PermissionsConfig{
			Default:   string(entity.PermissionGrant),
			Overrides: map[string]string{},
		},
		Window: WindowConfig{
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
			Title:  defaultWindowTitle,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File: FileLogConfig{
				Enabled:    false,
				MaxSizeMB:  defaultLogMaxSizeMB,
				MaxBackups: defaultLogMaxBackups,
			},
		},
		Debug: DebugConfig{
			EnableDevTools: true,
		},
	}
}

// setDefaults registers every default with viper, section by section.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("home_page", defaults.HomePage)
	m.viper.SetDefault("search_engine", defaults.SearchEngine)

	m.setStorageDefaults(defaults)
	m.setHistoryDefaults(defaults)
	m.setOmniboxDefaults(defaults)
	m.setExtensionsDefaults(defaults)
	m.setDownloadsDefaults(defaults)
	m.setPermissionsDefaults(defaults)
	m.setWindowDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setDebugDefaults(defaults)
}

func (m *Manager) setStorageDefaults(defaults *Config) {
	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.data_dir", defaults.Storage.DataDir)
}

func (m *Manager) setHistoryDefaults(defaults *Config) {
	m.viper.SetDefault("history.max_entries", defaults.History.MaxEntries)
}

func (m *Manager) setOmniboxDefaults(defaults *Config) {
	m.viper.SetDefault("omnibox.max_suggestions", defaults.Omnibox.MaxSuggestions)
}

func (m *Manager) setExtensionsDefaults(defaults *Config) {
	m.viper.SetDefault("extensions.dir", defaults.Extensions.Dir)
	m.viper.SetDefault("extensions.script_name", defaults.Extensions.ScriptName)
	m.viper.SetDefault("extensions.cache_size", defaults.Extensions.CacheSize)
}

func (m *Manager) setDownloadsDefaults(defaults *Config) {
	m.viper.SetDefault("downloads.path", defaults.Downloads.Path)
	m.viper.SetDefault("downloads.ask", defaults.Downloads.Ask)
}

func (m *Manager) setPermissionsDefaults(defaults *Config) {
	m.viper.SetDefault("permissions.default", defaults.Permissions.Default)
	m.viper.SetDefault("permissions.overrides", defaults.Permissions.Overrides)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)
	m.viper.SetDefault("window.title", defaults.Window.Title)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file.enabled", defaults.Logging.File.Enabled)
	m.viper.SetDefault("logging.file.dir", defaults.Logging.File.Dir)
	m.viper.SetDefault("logging.file.max_size_mb", defaults.Logging.File.MaxSizeMB)
	m.viper.SetDefault("logging.file.max_backups", defaults.Logging.File.MaxBackups)
}

func (m *Manager) setDebugDefaults(defaults *Config) {
	m.viper.SetDefault("debug.enable_devtools", defaults.Debug.EnableDevTools)
}
