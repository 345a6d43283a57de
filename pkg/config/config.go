/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Configuration management for Synoptic Core. Defines the full
configuration surface (encoding, tokenizer, rules, output, logging) with
sensible defaults, viper population from flags/files/environment, and
validation before any processing starts.
*/

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// Config is the full configuration for the synoptic CLI and engine.
type Config struct {
	// Encoding settings
	Encoding string

	// Tokenizer settings
	TokenizerMode string
	MaxInputBytes int

	// Rule engine settings
	RulesPath       string
	UseBuiltinRules bool

	// Output settings
	OutputFormat  string
	OutputDir     string
	ExportResults bool

	// Logging settings
	LogLevel    string
	LogDir      string
	LogFormat   string
	LogMaxFiles int
	LogMaxSize  int64
	JSONLogs    bool
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Encoding:        "utf-8",
		TokenizerMode:   "word",
		MaxInputBytes:   1_000_000,
		UseBuiltinRules: true,
		OutputFormat:    "default",
		OutputDir:       "./synoptic_output",
		ExportResults:   false,
		LogLevel:        "info",
		LogDir:          "./logs",
		LogFormat:       "custom",
		LogMaxFiles:     10,
		LogMaxSize:      100 * 1024 * 1024,
		JSONLogs:        false,
	}
}

// FromViper builds a Config from the global viper state, falling back to
// defaults for unset keys.
func FromViper() *Config {
	c := Default()
	if viper.IsSet("encoding") {
		c.Encoding = viper.GetString("encoding")
	}
	if viper.IsSet("tokenizer_mode") {
		c.TokenizerMode = viper.GetString("tokenizer_mode")
	}
	if viper.IsSet("max_input_bytes") {
		c.MaxInputBytes = viper.GetInt("max_input_bytes")
	}
	if viper.IsSet("rules_path") {
		c.RulesPath = viper.GetString("rules_path")
	}
	if viper.IsSet("builtin_rules") {
		c.UseBuiltinRules = viper.GetBool("builtin_rules")
	}
	if viper.IsSet("output_format") {
		c.OutputFormat = viper.GetString("output_format")
	}
	if viper.IsSet("output_dir") {
		c.OutputDir = viper.GetString("output_dir")
	}
	if viper.IsSet("export_results") {
		c.ExportResults = viper.GetBool("export_results")
	}
	if viper.IsSet("log_level") {
		c.LogLevel = viper.GetString("log_level")
	}
	if viper.IsSet("log_dir") {
		c.LogDir = viper.GetString("log_dir")
	}
	if viper.IsSet("log_format") {
		c.LogFormat = viper.GetString("log_format")
	}
	if viper.IsSet("log_max_files") {
		c.LogMaxFiles = viper.GetInt("log_max_files")
	}
	if viper.IsSet("log_max_size") {
		c.LogMaxSize = viper.GetInt64("log_max_size")
	}
	if viper.IsSet("json_logs") {
		c.JSONLogs = viper.GetBool("json_logs")
	}
	return c
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MaxInputBytes <= 0 {
		return fmt.Errorf("max_input_bytes must be positive, got %d", c.MaxInputBytes)
	}
	switch c.OutputFormat {
	case "default", "verbose", "json", "prolog":
		// ok
	default:
		return fmt.Errorf("unsupported output format: %s", c.OutputFormat)
	}
	switch c.TokenizerMode {
	case "word", "punctuation", "sentence":
		// ok
	default:
		return fmt.Errorf("unsupported tokenizer mode: %s", c.TokenizerMode)
	}
	if !c.UseBuiltinRules && c.RulesPath == "" {
		return fmt.Errorf("built-in rules disabled and no rules_path given")
	}
	return nil
}

// EngineConfig derives the engine-facing configuration. The json and
// prolog output formats are export concerns handled at the CLI layer;
// statement rendering inside the engine uses the default format for them.
func (c *Config) EngineConfig() *interfaces.EngineConfig {
	format := c.OutputFormat
	if format != "verbose" {
		format = "default"
	}
	return &interfaces.EngineConfig{
		Encoding:        c.Encoding,
		TokenizerMode:   c.TokenizerMode,
		RulesPath:       c.RulesPath,
		OutputFormat:    format,
		MaxInputBytes:   c.MaxInputBytes,
		UseBuiltinRules: c.UseBuiltinRules,
		LogLevel:        c.LogLevel,
		LogDir:          c.LogDir,
		JSONLogs:        c.JSONLogs,
	}
}
