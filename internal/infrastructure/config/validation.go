package config

import (
	"fmt"
	"strings"

	"github.com/subjectbrowser/subject/internal/domain/entity"
	"github.com/subjectbrowser/subject/internal/domain/url"
)

const minWindowSize = 200

var knownPermissionTypes = map[string]entity.PermissionType{
	string(entity.PermissionGeolocation):   entity.PermissionGeolocation,
	string(entity.PermissionNotifications): entity.PermissionNotifications,
	string(entity.PermissionMedia):         entity.PermissionMedia,
	string(entity.PermissionClipboard):     entity.PermissionClipboard,
	string(entity.PermissionPointerLock):   entity.PermissionPointerLock,
	string(entity.PermissionDataAccess):    entity.PermissionDataAccess,
	string(entity.PermissionOther):         entity.PermissionOther,
}

// validateConfig collects every invalid value into one error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateSearchEngine(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLimits(config)...)
	validationErrors = append(validationErrors, validateExtensions(config)...)
	validationErrors = append(validationErrors, validatePermissions(config)...)
	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateSearchEngine(config *Config) []string {
	var validationErrors []string
	if !url.HasHTTPScheme(config.SearchEngine) {
		validationErrors = append(validationErrors, "search_engine must start with http:// or https://")
	}
	if strings.Count(config.SearchEngine, "%s") > 1 {
		validationErrors = append(validationErrors, "search_engine must contain at most one %s placeholder")
	}
	return validationErrors
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageJSON, StorageSQLite:
		return nil
	default:
		return []string{fmt.Sprintf("storage.backend must be %q or %q, got %q", StorageJSON, StorageSQLite, config.Storage.Backend)}
	}
}

func validateLimits(config *Config) []string {
	var validationErrors []string
	switch {
	case config.History.MaxEntries < 1:
		validationErrors = append(validationErrors, "history.max_entries must be at least 1")
	case config.History.MaxEntries > entity.DefaultHistoryLimit:
		validationErrors = append(validationErrors,
			fmt.Sprintf("history.max_entries must be at most %d", entity.DefaultHistoryLimit))
	}
	if config.Omnibox.MaxSuggestions < 1 {
		validationErrors = append(validationErrors, "omnibox.max_suggestions must be at least 1")
	}
	return validationErrors
}

func validateExtensions(config *Config) []string {
	var validationErrors []string
	if strings.ContainsAny(config.Extensions.ScriptName, `/\`) {
		validationErrors = append(validationErrors, "extensions.script_name must be a file name, not a path")
	}
	if config.Extensions.CacheSize < 1 {
		validationErrors = append(validationErrors, "extensions.cache_size must be at least 1")
	}
	return validationErrors
}

func validatePermissions(config *Config) []string {
	var validationErrors []string
	if _, ok := entity.ParsePermissionDecision(config.Permissions.Default); !ok {
		validationErrors = append(validationErrors,
			fmt.Sprintf("permissions.default must be grant or deny, got %q", config.Permissions.Default))
	}
	for kind, decision := range config.Permissions.Overrides {
		if _, ok := knownPermissionTypes[kind]; !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("permissions.overrides: unknown permission %q", kind))
			continue
		}
		if _, ok := entity.ParsePermissionDecision(decision); !ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("permissions.overrides.%s must be grant or deny, got %q", kind, decision))
		}
	}
	return validationErrors
}

func validateWindow(config *Config) []string {
	var validationErrors []string
	if config.Window.Width < minWindowSize {
		validationErrors = append(validationErrors, fmt.Sprintf("window.width must be at least %d", minWindowSize))
	}
	if config.Window.Height < minWindowSize {
		validationErrors = append(validationErrors, fmt.Sprintf("window.height must be at least %d", minWindowSize))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	if config.Logging.File.Enabled && config.Logging.File.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.file.max_size_mb must be at least 1")
	}
	if config.Logging.File.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.file.max_backups must be non-negative")
	}
	return validationErrors
}

// PermissionDecisions converts the permissions section into domain values.
// Entries that fail validation never reach here.
func (c *Config) PermissionDecisions() (entity.PermissionDecision, map[entity.PermissionType]entity.PermissionDecision) {
	def, ok := entity.ParsePermissionDecision(c.Permissions.Default)
	if !ok {
		def = entity.PermissionGrant
	}
	overrides := make(map[entity.PermissionType]entity.PermissionDecision, len(c.Permissions.Overrides))
	for kind, decision := range c.Permissions.Overrides {
		t, known := knownPermissionTypes[kind]
		d, valid := entity.ParsePermissionDecision(decision)
		if known && valid {
			overrides[t] = d
		}
	}
	return def, overrides
}
