/*
Package config manages the TOML config for the tagcloud CLI.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/tagforge/tagcloud/internal/utils"
	"github.com/tagforge/tagcloud/pkg/cloud"
	"github.com/tagforge/tagcloud/pkg/freq"
)

// Config holds the entire config structure
type Config struct {
	Cloud  CloudConfig  `toml:"cloud"`
	Tokens TokensConfig `toml:"tokens"`
	CLI    CliConfig    `toml:"cli"`
	Report ReportConfig `toml:"report"`
}

// CloudConfig has rendering related options.
type CloudConfig struct {
	MinFontSize   int    `toml:"min_font_size"`
	MaxFontSize   int    `toml:"max_font_size"`
	StylesheetURL string `toml:"stylesheet_url"`
}

// TokensConfig holds tokenizer options.
type TokensConfig struct {
	Separators string `toml:"separators"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultCount int  `toml:"default_count"`
	Preview      bool `toml:"preview"`
}

// ReportConfig controls the msgpack run-summary sidecar.
type ReportConfig struct {
	Enabled bool `toml:"enabled"`
}

// Scale returns the configured font scale.
func (c *Config) Scale() cloud.FontScale {
	return cloud.FontScale{Min: c.Cloud.MinFontSize, Max: c.Cloud.MaxFontSize}
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/tagcloud
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "tagcloud")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
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
// 1. Custom path from -config flag
// 2. Default path: ~/.config/tagcloud/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
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

	config, err = InitConfig(defaultPath)
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
		Cloud: CloudConfig{
			MinFontSize:   cloud.MinFontSize,
			MaxFontSize:   cloud.MaxFontSize,
			StylesheetURL: cloud.DefaultStylesheetURL,
		},
		Tokens: TokensConfig{
			Separators: freq.DefaultSeparators,
		},
		CLI: CliConfig{
			DefaultCount: 100,
			Preview:      false,
		},
		Report: ReportConfig{
			Enabled: false,
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
	return config, nil
}

// tryPartialParse salvages whatever sections still parse from a damaged file.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if cloudSection, ok := utils.ExtractSection(tempConfig, "cloud"); ok {
		extractCloudConfig(cloudSection, &config.Cloud)
	}
	if tokensSection, ok := utils.ExtractSection(tempConfig, "tokens"); ok {
		extractTokensConfig(tokensSection, &config.Tokens)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	if reportSection, ok := utils.ExtractSection(tempConfig, "report"); ok {
		extractReportConfig(reportSection, &config.Report)
	}
	return config, nil
}

// extractCloudConfig extracts rendering configuration from a map
func extractCloudConfig(data map[string]any, cloudCfg *CloudConfig) {
	if val, ok := utils.ExtractInt64(data, "min_font_size"); ok {
		cloudCfg.MinFontSize = val
	}
	if val, ok := utils.ExtractInt64(data, "max_font_size"); ok {
		cloudCfg.MaxFontSize = val
	}
	if val, ok := utils.ExtractString(data, "stylesheet_url"); ok {
		cloudCfg.StylesheetURL = val
	}
}

// extractTokensConfig extracts tokenizer configuration from a map
func extractTokensConfig(data map[string]any, tokens *TokensConfig) {
	if val, ok := utils.ExtractString(data, "separators"); ok {
		tokens.Separators = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_count"); ok {
		cli.DefaultCount = val
	}
	if val, ok := utils.ExtractBool(data, "preview"); ok {
		cli.Preview = val
	}
}

// extractReportConfig extracts report config from a map
func extractReportConfig(data map[string]any, report *ReportConfig) {
	if val, ok := utils.ExtractBool(data, "enabled"); ok {
		report.Enabled = val
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
