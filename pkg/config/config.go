/*
Package config manages TOML config for the typeahead engine and its front ends.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/typeahead/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Model   ModelConfig   `toml:"model"`
	Server  ServerConfig  `toml:"server"`
	CLI     CliConfig     `toml:"cli"`
	Session SessionConfig `toml:"session"`
	HTTP    HTTPConfig    `toml:"http"`
}

// ModelConfig holds n-gram model options.
type ModelConfig struct {
	Order  int    `toml:"order"`
	Corpus string `toml:"corpus"`
	TopK   int    `toml:"top_k"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int  `toml:"max_limit"`
	MinPrefix    int  `toml:"min_prefix"`
	MaxPrefix    int  `toml:"max_prefix"`
	EnableFilter bool `toml:"enable_filter"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit    int  `toml:"default_limit"`
	DefaultMinLen   int  `toml:"default_min_len"`
	DefaultMaxLen   int  `toml:"default_max_len"`
	DefaultNoFilter bool `toml:"default_no_filter"`
}

// SessionConfig holds typing session options.
type SessionConfig struct {
	TextPath    string `toml:"text_path"`
	DelayMs     int    `toml:"delay_ms"`
	Suggestions int    `toml:"suggestions"`
}

// HTTPConfig holds the HTTP front end options.
type HTTPConfig struct {
	Addr string `toml:"addr"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/typeahead
// 2. ~/Library/Application Support/typeahead (macOS)
// 3. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		if result := utils.CheckDirStatus(filepath.Join(xdg, "typeahead")); result.Writable {
			return filepath.Join(xdg, "typeahead"), nil
		}
	}
	primaryPath := filepath.Join(homeDir, ".config", "typeahead")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "typeahead")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
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
// 2. Default path: [UserConfigDir]/typeahead/config.toml
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
		Model: ModelConfig{
			Order:  3,
			Corpus: "corpus.txt",
			TopK:   10,
		},
		Server: ServerConfig{
			MaxLimit:     64,
			MinPrefix:    1,
			MaxPrefix:    60,
			EnableFilter: true,
		},
		CLI: CliConfig{
			DefaultLimit:    10,
			DefaultMinLen:   1,
			DefaultMaxLen:   24,
			DefaultNoFilter: false,
		},
		Session: SessionConfig{
			TextPath:    "",
			DelayMs:     150,
			Suggestions: 5,
		},
		HTTP: HTTPConfig{
			Addr: "127.0.0.1:8080",
		},
	}
}

// Validate replaces values that cannot work with their defaults.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	if c.Model.Order < 1 {
		log.Warnf("Invalid model order %d, using %d", c.Model.Order, defaults.Model.Order)
		c.Model.Order = defaults.Model.Order
	}
	if c.Model.TopK < 1 {
		c.Model.TopK = defaults.Model.TopK
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.MinPrefix < 0 {
		c.Server.MinPrefix = defaults.Server.MinPrefix
	}
	if c.Server.MaxPrefix < c.Server.MinPrefix {
		log.Warnf("max_prefix %d below min_prefix %d, using %d", c.Server.MaxPrefix, c.Server.MinPrefix, defaults.Server.MaxPrefix)
		c.Server.MaxPrefix = max(defaults.Server.MaxPrefix, c.Server.MinPrefix)
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
	if c.Session.DelayMs < 0 {
		c.Session.DelayMs = 0
	}
	if c.Session.Suggestions < 1 {
		c.Session.Suggestions = defaults.Session.Suggestions
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = defaults.HTTP.Addr
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

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.Validate()
	return config, nil
}

// tryPartialParse keeps every section that still parses and defaults the rest
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "model"); ok {
		extractModelConfig(section, &config.Model)
	}
	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(section, &config.CLI)
	}
	if section, ok := utils.ExtractSection(tempConfig, "session"); ok {
		extractSessionConfig(section, &config.Session)
	}
	if section, ok := utils.ExtractSection(tempConfig, "http"); ok {
		if val, ok := utils.ExtractString(section, "addr"); ok {
			config.HTTP.Addr = val
		}
	}
	config.Validate()
	return config, nil
}

func extractModelConfig(data map[string]any, model *ModelConfig) {
	if val, ok := utils.ExtractInt64(data, "order"); ok {
		model.Order = val
	}
	if val, ok := utils.ExtractString(data, "corpus"); ok {
		model.Corpus = val
	}
	if val, ok := utils.ExtractInt64(data, "top_k"); ok {
		model.TopK = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "min_prefix"); ok {
		server.MinPrefix = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
	if val, ok := utils.ExtractBool(data, "enable_filter"); ok {
		server.EnableFilter = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		cli.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_min_len"); ok {
		cli.DefaultMinLen = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_len"); ok {
		cli.DefaultMaxLen = val
	}
	if val, ok := utils.ExtractBool(data, "default_no_filter"); ok {
		cli.DefaultNoFilter = val
	}
}

func extractSessionConfig(data map[string]any, session *SessionConfig) {
	if val, ok := utils.ExtractString(data, "text_path"); ok {
		session.TextPath = val
	}
	if val, ok := utils.ExtractInt64(data, "delay_ms"); ok {
		session.DelayMs = val
	}
	if val, ok := utils.ExtractInt64(data, "suggestions"); ok {
		session.Suggestions = val
	}
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return err
	}
	return utils.SaveTOMLFile(DefaultConfig(), defaultPath)
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

// Update changes the server values and saves to file
func (c *Config) Update(configPath string, maxLimit, minPrefix, maxPrefix *int, enableFilter *bool) error {
	server := &c.Server
	if maxLimit != nil {
		server.MaxLimit = *maxLimit
	}
	if minPrefix != nil {
		server.MinPrefix = *minPrefix
	}
	if maxPrefix != nil {
		server.MaxPrefix = *maxPrefix
	}
	if enableFilter != nil {
		server.EnableFilter = *enableFilter
	}
	c.Validate()
	return SaveConfig(c, configPath)
}
