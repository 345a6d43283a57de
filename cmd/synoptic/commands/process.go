/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: process.go
Description: Process command implementation for Synoptic Core. Handles the main
text-to-logic pipeline with comprehensive configuration, result rendering in
all output formats, and optional result export.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/config"
	"github.com/kleascm/synoptic-core/pkg/engine"
	"github.com/kleascm/synoptic-core/pkg/output"
	"github.com/kleascm/synoptic-core/pkg/utils"
)

// RunProcess executes the main processing pipeline
func RunProcess(cmd *cobra.Command, args []string) error {
	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Setup logging
	if err := SetupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer CloseLogging()

	// Build and validate configuration
	cfg := config.FromViper()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Resolve input text
	text, err := resolveInput()
	if err != nil {
		return err
	}

	// Create and initialize processing engine with the shared logger
	eng := engine.NewEngine()
	eng.SetLogger(Logger())
	if err := eng.Initialize(cfg.EngineConfig()); err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	// Process input
	result, err := eng.Process(text)
	if err != nil {
		return err
	}

	// Render result in the requested format
	rendered, err := renderResult(result, cfg.OutputFormat)
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Println(rendered)
	}

	// Export result file if requested
	if cfg.ExportResults {
		path, err := utils.WriteResultFile(cfg.OutputDir, result)
		if err != nil {
			return fmt.Errorf("failed to export result: %w", err)
		}
		fmt.Printf("📄 Result exported to: %s\n", path)
	}

	if viper.GetString("log_level") == "debug" {
		printStats(result)
	}

	return nil
}

// renderResult produces the final output string for one result. The json
// and prolog formats are export renderings; default and verbose use the
// statement formatting built into the result.
func renderResult(result *output.ProcessResult, format string) (string, error) {
	switch format {
	case "json":
		return output.ExportJSON(result)
	case "prolog":
		return output.ExportProlog(result), nil
	default:
		return result.Render(), nil
	}
}

// printStats prints processing statistics for one invocation.
func printStats(result *output.ProcessResult) {
	fmt.Println()
	fmt.Println("📊 Processing Statistics")
	fmt.Printf("   Input bytes:  %d\n", result.Stats.InputBytes)
	fmt.Printf("   Tokens:       %d\n", result.Stats.TokenCount)
	fmt.Printf("   Matches:      %d\n", result.Stats.MatchCount)
	fmt.Printf("   Statements:   %d\n", result.Stats.StatementCount)
	fmt.Printf("   Duration:     %v\n", result.Stats.Duration)
	for stype, count := range result.Stats.StatementTypes {
		fmt.Printf("   %s: %d\n", stype, count)
	}
}
