package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from configDir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// SUBJECT_HISTORY_MAX_ENTRIES overrides history.max_entries, and so on.
	v.SetEnvPrefix("SUBJECT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SUBJECT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBJECT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SUBJECT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SUBJECT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decodeLocked()
}

// decodeLocked turns the viper state into a validated Config. m.mu must be held.
func (m *Manager) decodeLocked() error {
	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile = filepath.Join(m.configDir, configName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the registered defaults as config.toml.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, configName)

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// resolvePaths fills empty directory settings from the XDG directories.
func resolvePaths(config *Config) error {
	if config.Storage.DataDir == "" {
		dir, err := GetDataDir()
		if err != nil {
			return fmt.Errorf("failed to get data directory: %w", err)
		}
		config.Storage.DataDir = dir
	}
	if config.Extensions.Dir == "" {
		dir, err := GetExtensionsDir()
		if err != nil {
			return fmt.Errorf("failed to get extensions directory: %w", err)
		}
		config.Extensions.Dir = dir
	}
	if config.Downloads.Path == "" {
		dir, err := GetDownloadsDir()
		if err != nil {
			return fmt.Errorf("failed to get downloads directory: %w", err)
		}
		config.Downloads.Path = dir
	}
	if config.Logging.File.Dir == "" {
		dir, err := GetLogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		config.Logging.File.Dir = dir
	}

	config.Storage.DataDir = expandHome(config.Storage.DataDir)
	config.Extensions.Dir = expandHome(config.Extensions.Dir)
	config.Downloads.Path = expandHome(config.Downloads.Path)
	config.Logging.File.Dir = expandHome(config.Logging.File.Dir)
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func normalizeConfig(config *Config) {
	config.HomePage = strings.TrimSpace(config.HomePage)
	if config.HomePage == "" {
		config.HomePage = DefaultConfig().HomePage
	}
	config.SearchEngine = strings.TrimSpace(config.SearchEngine)
	if config.SearchEngine == "" {
		config.SearchEngine = DefaultConfig().SearchEngine
	}

	switch StorageBackend(strings.ToLower(strings.TrimSpace(string(config.Storage.Backend)))) {
	case "", StorageJSON:
		config.Storage.Backend = StorageJSON
	case StorageSQLite:
		config.Storage.Backend = StorageSQLite
	}

	config.Extensions.ScriptName = strings.TrimSpace(config.Extensions.ScriptName)
	if config.Extensions.ScriptName == "" {
		config.Extensions.ScriptName = defaultScriptName
	}

	config.Permissions.Default = strings.ToLower(strings.TrimSpace(config.Permissions.Default))
	if config.Permissions.Default == "" {
		config.Permissions.Default = DefaultConfig().Permissions.Default
	}
	overrides := make(map[string]string, len(config.Permissions.Overrides))
	for k, v := range config.Permissions.Overrides {
		overrides[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	config.Permissions.Overrides = overrides

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	configCopy.Permissions.Overrides = make(map[string]string, len(m.config.Permissions.Overrides))
	for k, v := range m.config.Permissions.Overrides {
		configCopy.Permissions.Overrides[k] = v
	}
	return &configCopy
}

// ConfigFile returns the path of the configuration file in use.
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, configName)
}

// ConfigDir returns the directory config.toml is read from.
func (m *Manager) ConfigDir() string {
	return m.configDir
}
