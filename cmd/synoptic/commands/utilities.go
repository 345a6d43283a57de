/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utilities.go
Description: Utility commands for Synoptic Core. Provides the self-check
functionality for validating configuration, rule set compilability, and
filesystem prerequisites before processing.
*/

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/config"
	"github.com/kleascm/synoptic-core/pkg/engine"
	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/parser"
	"github.com/kleascm/synoptic-core/pkg/rules"
)

// PerformSelfCheck performs comprehensive system validation
func PerformSelfCheck(cmd *cobra.Command, args []string) error {
	fmt.Println("🔍 Synoptic Core - System Self-Check")
	fmt.Println("====================================")
	fmt.Println()

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	checks := []struct {
		name     string
		function func() error
	}{
		{"Configuration Validation", checkConfigurationValidation},
		{"Built-in Rule Set", checkBuiltinRules},
		{"External Rule Set", checkExternalRules},
		{"Log Directory Writability", checkLogWritability},
		{"Output Directory Writability", checkOutputWritability},
		{"Pipeline Round Trip", checkPipelineRoundTrip},
	}

	passed := 0
	total := len(checks)

	for _, check := range checks {
		fmt.Printf("🔍 %s... ", check.name)
		if err := check.function(); err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
		} else {
			fmt.Println("✅ PASSED")
			passed++
		}
	}

	fmt.Println()
	fmt.Printf("📊 Results: %d/%d checks passed\n", passed, total)

	if passed == total {
		fmt.Println("✨ All checks passed! System is ready for processing.")
		return nil
	}
	fmt.Println("⚠️  Some checks failed. Please address the issues before processing.")
	return fmt.Errorf("%d/%d checks failed", total-passed, total)
}

// checkConfigurationValidation validates the effective configuration
func checkConfigurationValidation() error {
	return config.FromViper().Validate()
}

// checkBuiltinRules compiles the built-in rule set against the default
// tokenizer to confirm every kind reference and pattern is valid
func checkBuiltinRules() error {
	tok, err := parser.NewTokenizer("")
	if err != nil {
		return err
	}
	_, err = rules.Compile(rules.BuiltinRuleSpecs(), tok.Kinds())
	return err
}

// checkExternalRules validates the configured rule set file, if any
func checkExternalRules() error {
	path := viper.GetString("rules_path")
	if path == "" {
		return nil
	}
	specs, err := rules.LoadFile(path)
	if err != nil {
		return err
	}
	tok, err := parser.NewTokenizer(config.FromViper().TokenizerMode)
	if err != nil {
		return err
	}
	_, err = rules.Compile(specs, tok.Kinds())
	return err
}

// checkLogWritability validates the log directory can be written
func checkLogWritability() error {
	return checkDirWritable(config.FromViper().LogDir)
}

// checkOutputWritability validates the output directory can be written
func checkOutputWritability() error {
	return checkDirWritable(config.FromViper().OutputDir)
}

// checkDirWritable confirms a directory exists (creating it if needed)
// and accepts a test file
func checkDirWritable(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}
	testFile := filepath.Join(dir, ".synoptic_write_check")
	if err := os.WriteFile(testFile, []byte("check"), 0644); err != nil {
		return fmt.Errorf("cannot write to %s: %w", dir, err)
	}
	os.Remove(testFile)
	return nil
}

// checkPipelineRoundTrip runs a known input through a default engine and
// confirms the expected statement comes out
func checkPipelineRoundTrip() error {
	specs := []interfaces.RuleSpec{
		{
			ID: "self-check",
			Pattern: []interfaces.PatternElement{
				{Kind: "WORD"},
				{Kind: "WORD"},
			},
			Priority: 1,
			Action:   interfaces.ActionSpec{Template: "pair({0},{1})"},
		},
	}
	result, err := engine.Process("hello world", specs, interfaces.FormatDefault)
	if err != nil {
		return err
	}
	if len(result.Statements) != 1 || result.Statements[0].Text != "pair(hello,world)" {
		return fmt.Errorf("unexpected pipeline output: %q", result.Render())
	}
	return nil
}
