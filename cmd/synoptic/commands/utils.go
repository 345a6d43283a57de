/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Synoptic Core commands. Provides common
configuration loading, logging setup, and input resolution used across all
command implementations.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/config"
	"github.com/kleascm/synoptic-core/pkg/ingest"
	"github.com/kleascm/synoptic-core/pkg/logging"
)

// Shared logger instance for all commands, created by SetupLogging.
var appLogger *logging.Logger

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("SYNOPTIC")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging configures the logging system from the effective
// configuration: log directory, format, rotation limits. The resulting
// logger backs all command output and is handed to the engine.
func SetupLogging() error {
	cfg := config.FromViper()

	format := logging.LogFormat(cfg.LogFormat)
	if cfg.JSONLogs {
		format = logging.LogFormatJSON
	}
	loggerConfig := &logging.LoggerConfig{
		Level:     logging.LogLevel(cfg.LogLevel),
		Format:    format,
		OutputDir: cfg.LogDir,
		MaxFiles:  cfg.LogMaxFiles,
		MaxSize:   cfg.LogMaxSize,
		Timestamp: true,
		Colors:    !cfg.JSONLogs,
	}
	if err := loggerConfig.Validate(); err != nil {
		return fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(loggerConfig)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	appLogger = logger
	return nil
}

// Logger returns the shared command logger, or nil before SetupLogging.
func Logger() *logging.Logger {
	return appLogger
}

// CloseLogging flushes and closes the shared command logger.
func CloseLogging() {
	if appLogger != nil {
		appLogger.Close()
		appLogger = nil
	}
}

// resolveInput returns the text to process: --text wins, then --input (a
// file path), then standard input. HTML input is passed through the HTML
// source so only visible text reaches the pipeline.
func resolveInput() (string, error) {
	if text := viper.GetString("input_text"); text != "" {
		return sourceText(strings.NewReader(text))
	}

	if path := viper.GetString("input_file"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()
		return sourceText(f)
	}

	return sourceText(os.Stdin)
}

// sourceText runs the reader through the configured input source.
func sourceText(r io.Reader) (string, error) {
	if viper.GetBool("html_input") {
		return ingest.NewHTMLSource(r).Extract()
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return ingest.NewTextSource(string(data)).Extract()
}
