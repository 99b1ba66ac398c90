// File: internal/config/config.go
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Layout() LayoutConfig
	Limits() LimitsConfig
	History() HistoryConfig

	// Layout Setters
	SetLayoutConcurrency(int)
	SetDefaultScreenSize(width, height float64)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	LayoutCfg  LayoutConfig  `mapstructure:"layout" yaml:"layout"`
	LimitsCfg  LimitsConfig  `mapstructure:"limits" yaml:"limits"`
	HistoryCfg HistoryConfig `mapstructure:"history" yaml:"history"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig   { return c.LoggerCfg }
func (c *Config) Layout() LayoutConfig   { return c.LayoutCfg }
func (c *Config) Limits() LimitsConfig   { return c.LimitsCfg }
func (c *Config) History() HistoryConfig { return c.HistoryCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetLayoutConcurrency(n int) { c.LayoutCfg.Concurrency = n }
func (c *Config) SetDefaultScreenSize(width, height float64) {
	c.LayoutCfg.DefaultScreenWidth = width
	c.LayoutCfg.DefaultScreenHeight = height
}

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// LayoutConfig tunes the constraint layout engine.
type LayoutConfig struct {
	// Concurrency bounds how many screens are laid out at once.
	Concurrency         int     `mapstructure:"concurrency" yaml:"concurrency"`
	DefaultScreenWidth  float64 `mapstructure:"default_screen_width" yaml:"default_screen_width"`
	DefaultScreenHeight float64 `mapstructure:"default_screen_height" yaml:"default_screen_height"`
	// CharWidthRatio is the advance of one terminal cell relative to the font size.
	CharWidthRatio float64 `mapstructure:"char_width_ratio" yaml:"char_width_ratio"`
	BaseFontSize   float64 `mapstructure:"base_font_size" yaml:"base_font_size"`
	LineHeight     float64 `mapstructure:"line_height" yaml:"line_height"`
}

// LimitsConfig holds the acceptance-time document limits.
type LimitsConfig struct {
	MaxScreens        int `mapstructure:"max_screens" yaml:"max_screens"`
	MaxNodesPerScreen int `mapstructure:"max_nodes_per_screen" yaml:"max_nodes_per_screen"`
	MaxDepth          int `mapstructure:"max_depth" yaml:"max_depth"`
	MaxChildren       int `mapstructure:"max_children" yaml:"max_children"`
	MaxTextLength     int `mapstructure:"max_text_length" yaml:"max_text_length"`
}

// HistoryConfig configures the undo/redo stack.
type HistoryConfig struct {
	Limit int `mapstructure:"limit" yaml:"limit"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults, but good to be safe.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "mockup")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Layout --
	v.SetDefault("layout.concurrency", 4)
	v.SetDefault("layout.default_screen_width", 375.0)
	v.SetDefault("layout.default_screen_height", 812.0)
	v.SetDefault("layout.char_width_ratio", 0.55)
	v.SetDefault("layout.base_font_size", 16.0)
	v.SetDefault("layout.line_height", 1.5)

	// -- Limits --
	v.SetDefault("limits.max_screens", 20)
	v.SetDefault("limits.max_nodes_per_screen", 100)
	v.SetDefault("limits.max_depth", 10)
	v.SetDefault("limits.max_children", 50)
	v.SetDefault("limits.max_text_length", 1000)

	// -- History --
	v.SetDefault("history.limit", 100)
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.LayoutCfg.Validate(); err != nil {
		return fmt.Errorf("layout configuration invalid: %w", err)
	}
	if err := c.LimitsCfg.Validate(); err != nil {
		return fmt.Errorf("limits configuration invalid: %w", err)
	}
	if c.HistoryCfg.Limit < 0 {
		return fmt.Errorf("history.limit must not be negative")
	}
	return nil
}

// Validate checks the LayoutConfig settings.
func (l *LayoutConfig) Validate() error {
	if l.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be a positive integer")
	}
	if l.DefaultScreenWidth <= 0 || l.DefaultScreenHeight <= 0 {
		return fmt.Errorf("default screen dimensions must be positive")
	}
	if l.CharWidthRatio <= 0 {
		return fmt.Errorf("char_width_ratio must be positive")
	}
	if l.BaseFontSize <= 0 || l.LineHeight <= 0 {
		return fmt.Errorf("base_font_size and line_height must be positive")
	}
	return nil
}

// Validate checks the LimitsConfig settings. Zero disables a limit.
func (l *LimitsConfig) Validate() error {
	if l.MaxScreens < 0 || l.MaxNodesPerScreen < 0 || l.MaxDepth < 0 || l.MaxChildren < 0 || l.MaxTextLength < 0 {
		return fmt.Errorf("limits must not be negative")
	}
	return nil
}
