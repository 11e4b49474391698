package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	// Appearance
	AccentColor   string `mapstructure:"accent_color"`
	SourceContext int    `mapstructure:"source_context"`

	// Global settings
	Quiet   bool `mapstructure:"quiet"`
	Verbose bool `mapstructure:"verbose"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig controls the session log file. The interface owns the
// terminal, so file logging is the only place diagnostics can go.
type LogConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	File    string `mapstructure:"file"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		AccentColor:   "",
		SourceContext: 6,
		Log: LogConfig{
			Enabled: true,
			File:    "",
		},
	}
}

// accentPattern admits hex colors and ANSI palette indexes, the two forms
// lipgloss understands.
var accentPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{6}|[0-9]{1,3})$`)

// Validate reports the first problem that would produce a broken session
// rather than a merely ugly one.
func (c *Config) Validate() error {
	if c.SourceContext < 1 || c.SourceContext > 200 {
		return fmt.Errorf("source_context must be between 1 and 200, got %d", c.SourceContext)
	}
	if c.AccentColor != "" && !accentPattern.MatchString(c.AccentColor) {
		return fmt.Errorf("accent_color %q is neither #rrggbb nor an ANSI color index", c.AccentColor)
	}
	return nil
}

// LogFile resolves the session log path, defaulting to ~/.shdbg/shdbg.log
// when the config does not set one.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shdbg", "shdbg.log")
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	if pinned := os.Getenv("SHDBG_CONFIG"); pinned != "" {
		// An explicit pin must fail loudly when the file is missing,
		// unlike the search paths below.
		v.SetConfigFile(pinned)
	} else {
		v.SetConfigName(".shdbg")
		v.SetConfigType("yaml")

		// Config paths, lowest precedence first
		v.AddConfigPath("/etc/shdbg/")
		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "shdbg"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("SHDBG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.BindEnv("accent_color", "SHDBG_ACCENT_COLOR")
	v.BindEnv("source_context", "SHDBG_SOURCE_CONTEXT")
	v.BindEnv("quiet", "SHDBG_QUIET")
	v.BindEnv("verbose", "SHDBG_VERBOSE")
	v.BindEnv("log.enabled", "SHDBG_LOG_ENABLED")
	v.BindEnv("log.file", "SHDBG_LOG_FILE")

	// Defaults
	cfg := Default()
	v.SetDefault("accent_color", cfg.AccentColor)
	v.SetDefault("source_context", cfg.SourceContext)
	v.SetDefault("quiet", cfg.Quiet)
	v.SetDefault("verbose", cfg.Verbose)
	v.SetDefault("log.enabled", cfg.Log.Enabled)
	v.SetDefault("log.file", cfg.Log.File)

	// Try to read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// File returns the path of the config file Load would use, or "" when no
// file exists and defaults apply.
func File() string {
	v := viper.New()

	if pinned := os.Getenv("SHDBG_CONFIG"); pinned != "" {
		v.SetConfigFile(pinned)
	} else {
		v.SetConfigName(".shdbg")
		v.SetConfigType("yaml")

		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err == nil {
		return v.ConfigFileUsed()
	}
	return ""
}
