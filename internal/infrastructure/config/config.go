// Package config loads the shell configuration from TOML, environment variables and defaults.
package config

// Config represents the complete configuration for subject.
type Config struct {
	// HomePage is opened by new tabs and the Home button.
	HomePage string `mapstructure:"home_page" toml:"home_page" json:"home_page" jsonschema:"description=Page opened by new tabs and Home"`
	// SearchEngine is a prefix the query is appended to, or a template with one %s.
	SearchEngine string            `mapstructure:"search_engine" toml:"search_engine" json:"search_engine" jsonschema:"description=Search prefix or template with %s"`
	Storage      StorageConfig     `mapstructure:"storage" toml:"storage" json:"storage"`
	History      HistoryConfig     `mapstructure:"history" toml:"history" json:"history"`
	Omnibox      OmniboxConfig     `mapstructure:"omnibox" toml:"omnibox" json:"omnibox"`
	Extensions   ExtensionsConfig  `mapstructure:"extensions" toml:"extensions" json:"extensions"`
	Downloads    DownloadsConfig   `mapstructure:"downloads" toml:"downloads" json:"downloads"`
	Permissions  PermissionsConfig `mapstructure:"permissions" toml:"permissions" json:"permissions"`
	Window       WindowConfig      `mapstructure:"window" toml:"window" json:"window"`
	Logging      LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Debug        DebugConfig       `mapstructure:"debug" toml:"debug" json:"debug"`
}

// StorageBackend selects where collections are persisted.
type StorageBackend string

const (
	StorageJSON   StorageBackend = "json"
	StorageSQLite StorageBackend = "sqlite"
)

// StorageConfig controls persistence of history, bookmarks and session.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=json,enum=sqlite"`
	// DataDir holds the collection files. Empty means the XDG data directory.
	DataDir string `mapstructure:"data_dir" toml:"data_dir" json:"data_dir"`
}

// HistoryConfig controls history retention.
type HistoryConfig struct {
	// MaxEntries is the number of most recent visits kept, at most 500.
	MaxEntries int `mapstructure:"max_entries" toml:"max_entries" json:"max_entries" jsonschema:"minimum=1,maximum=500"`
}

// OmniboxConfig controls address bar suggestions.
type OmniboxConfig struct {
	MaxSuggestions int `mapstructure:"max_suggestions" toml:"max_suggestions" json:"max_suggestions" jsonschema:"minimum=1"`
}

// ExtensionsConfig controls script injection.
type ExtensionsConfig struct {
	// Dir contains one subdirectory per extension. Empty means <config dir>/extensions.
	Dir        string `mapstructure:"dir" toml:"dir" json:"dir"`
	ScriptName string `mapstructure:"script_name" toml:"script_name" json:"script_name"`
	// CacheSize bounds how many payloads stay in memory.
	CacheSize int `mapstructure:"cache_size" toml:"cache_size" json:"cache_size" jsonschema:"minimum=1"`
}

// DownloadsConfig controls where downloads are written.
type DownloadsConfig struct {
	// Path is the download directory. Empty means $XDG_DOWNLOAD_DIR or ~/Downloads.
	Path string `mapstructure:"path" toml:"path" json:"path"`
	// Ask shows a file chooser before every download.
	Ask bool `mapstructure:"ask" toml:"ask" json:"ask"`
}

// PermissionsConfig answers web permission requests.
type PermissionsConfig struct {
	Default   string            `mapstructure:"default" toml:"default" json:"default" jsonschema:"enum=grant,enum=deny"`
	Overrides map[string]string `mapstructure:"overrides" toml:"overrides" json:"overrides,omitempty"`
}

// WindowConfig sets the initial window geometry.
type WindowConfig struct {
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=200"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=200"`
	Title  string `mapstructure:"title" toml:"title" json:"title"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string        `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string        `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	File   FileLogConfig `mapstructure:"file" toml:"file" json:"file"`
}

// FileLogConfig controls the rotating log file.
type FileLogConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Dir is the log directory. Empty means <state dir>/logs.
	Dir        string `mapstructure:"dir" toml:"dir" json:"dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	// EnableDevTools turns on the web inspector (F12).
	EnableDevTools bool `mapstructure:"enable_devtools" toml:"enable_devtools" json:"enable_devtools"`
}
