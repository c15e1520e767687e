/*
Package config manages the TOML config for countryq.
*/
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bastiangx/countryq/internal/utils"
	"github.com/bastiangx/countryq/pkg/fuzzy"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Data    DataConfig    `toml:"data"`
	Display DisplayConfig `toml:"display"`
	Search  SearchConfig  `toml:"search"`
}

// DataConfig points at the dataset file.
type DataConfig struct {
	Path string `toml:"path"`
}

// DisplayConfig holds terminal output options.
type DisplayConfig struct {
	PageSize    int  `toml:"page_size"`
	NameWidth   int  `toml:"name_width"`
	ClearScreen bool `toml:"clear_screen"`
}

// SearchConfig holds fuzzy search and completion options.
type SearchConfig struct {
	CandidateLimit  int `toml:"candidate_limit"`
	MatchThreshold  int `toml:"match_threshold"`
	CacheSize       int `toml:"cache_size"`
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`
	CompletionLimit int `toml:"completion_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/
// 2. ~/Library/Application Support/ (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "countryq")
	if utils.IsWritableDir(primaryPath) {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "countryq")
	if utils.IsWritableDir(macOSPath) {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/countryq/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Data: DataConfig{
			Path: filepath.Join("data", "countries.csv"),
		},
		Display: DisplayConfig{
			PageSize:    10,
			NameWidth:   28,
			ClearScreen: true,
		},
		Search: SearchConfig{
			CandidateLimit:  fuzzy.CandidateLimit,
			MatchThreshold:  fuzzy.MatchThreshold,
			CacheSize:       256,
			CacheTTLSeconds: 600,
			CompletionLimit: 5,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps every key that still decodes when the file as a whole does not
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "data"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Data.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "display"); ok {
		extractDisplayConfig(section, &config.Display)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	config.sanitize()
	return config, nil
}

func extractDisplayConfig(data map[string]any, display *DisplayConfig) {
	if val, ok := utils.ExtractInt64(data, "page_size"); ok {
		display.PageSize = val
	}
	if val, ok := utils.ExtractInt64(data, "name_width"); ok {
		display.NameWidth = val
	}
	if val, ok := utils.ExtractBool(data, "clear_screen"); ok {
		display.ClearScreen = val
	}
}

func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "candidate_limit"); ok {
		search.CandidateLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "match_threshold"); ok {
		search.MatchThreshold = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		search.CacheSize = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_ttl_seconds"); ok {
		search.CacheTTLSeconds = val
	}
	if val, ok := utils.ExtractInt64(data, "completion_limit"); ok {
		search.CompletionLimit = val
	}
}

// sanitize resets values that would break a component back to defaults.
func (c *Config) sanitize() {
	def := DefaultConfig()
	if c.Display.PageSize <= 0 {
		log.Warnf("Invalid page_size %d, using %d", c.Display.PageSize, def.Display.PageSize)
		c.Display.PageSize = def.Display.PageSize
	}
	if c.Display.NameWidth <= 0 {
		c.Display.NameWidth = def.Display.NameWidth
	}
	if c.Search.CandidateLimit <= 0 {
		log.Warnf("Invalid candidate_limit %d, using %d", c.Search.CandidateLimit, def.Search.CandidateLimit)
		c.Search.CandidateLimit = def.Search.CandidateLimit
	}
	if c.Search.MatchThreshold < 0 || c.Search.MatchThreshold > 100 {
		log.Warnf("Invalid match_threshold %d, using %d", c.Search.MatchThreshold, def.Search.MatchThreshold)
		c.Search.MatchThreshold = def.Search.MatchThreshold
	}
	if c.Search.CacheSize < 0 {
		c.Search.CacheSize = 0
	}
	if c.Search.CacheTTLSeconds < 0 {
		c.Search.CacheTTLSeconds = 0
	}
	if c.Search.CompletionLimit <= 0 {
		c.Search.CompletionLimit = def.Search.CompletionLimit
	}
}

// FuzzyOptions maps the [search] section onto matcher options.
func (c *Config) FuzzyOptions() fuzzy.Options {
	return fuzzy.Options{
		CandidateLimit: c.Search.CandidateLimit,
		Threshold:      c.Search.MatchThreshold,
		CacheSize:      c.Search.CacheSize,
		CacheTTL:       time.Duration(c.Search.CacheTTLSeconds) * time.Second,
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
