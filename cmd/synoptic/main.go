/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for Synoptic Core. Provides the process,
tokenize, list-rules, and check commands with comprehensive configuration
management and advanced logging capabilities.
*/

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/cmd/synoptic/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	jsonLogs   bool

	// Input configuration
	inputText string
	inputFile string
	htmlInput bool

	// Pipeline configuration
	encoding      string
	tokenizerMode string
	maxInputBytes int

	// Rule configuration
	rulesPath    string
	builtinRules bool

	// Output configuration
	outputFormat  string
	outputDir     string
	exportResults bool

	// Logging configuration
	logDir      string
	logFormat   string
	logMaxFiles int
	logMaxSize  int64
)

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "synoptic",
		Short: "Synoptic Core - Deterministic text-to-logic processing engine",
		Long: `Synoptic Core is a deterministic processing engine that converts natural
language text into structured logic statements. Input text is byte-encoded,
tokenized into a classified token stream, matched against a prioritized rule
set, and rendered into ordered logic statements. The same input and rules
always produce the same output.`,
		Version: "1.0.0",
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "Use JSON log format")

	// Add logging-specific flags
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "./logs", "Log output directory")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().IntVar(&logMaxFiles, "log-max-files", 10, "Maximum number of log files to keep")
	rootCmd.PersistentFlags().Int64Var(&logMaxSize, "log-max-size", 100*1024*1024, "Maximum log file size in bytes")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("json_logs", rootCmd.PersistentFlags().Lookup("json-logs"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("log_max_size", rootCmd.PersistentFlags().Lookup("log-max-size"))

	// Add process command
	processCmd := &cobra.Command{
		Use:   "process",
		Short: "Process text into logic statements",
		Long: `Run the full processing pipeline on input text: encode to bytes, tokenize,
match rules, and emit ordered logic statements. Input comes from --text, from
--input (a file path), or from standard input when neither is given.`,
		RunE: commands.RunProcess,
	}

	// Add process command flags
	processCmd.Flags().StringVar(&inputText, "text", "", "Text to process")
	processCmd.Flags().StringVar(&inputFile, "input", "", "Path to input file")
	processCmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as HTML and extract visible text")

	processCmd.Flags().StringVar(&encoding, "encoding", "utf-8", "Input text encoding")
	processCmd.Flags().StringVar(&tokenizerMode, "tokenizer", "word", "Tokenizer mode (word, punctuation, sentence)")
	processCmd.Flags().IntVar(&maxInputBytes, "max-input-bytes", 1_000_000, "Maximum input size in bytes")

	processCmd.Flags().StringVar(&rulesPath, "rules", "", "Path to rule set file (JSON or YAML)")
	processCmd.Flags().BoolVar(&builtinRules, "builtin-rules", true, "Use built-in rules when no rule set is given")

	processCmd.Flags().StringVar(&outputFormat, "format", "default", "Output format (default, verbose, json, prolog)")
	processCmd.Flags().StringVar(&outputDir, "output", "./synoptic_output", "Directory for exported results")
	processCmd.Flags().BoolVar(&exportResults, "export", false, "Export the result to the output directory as JSON")

	// Bind flags to viper
	viper.BindPFlag("input_text", processCmd.Flags().Lookup("text"))
	viper.BindPFlag("input_file", processCmd.Flags().Lookup("input"))
	viper.BindPFlag("html_input", processCmd.Flags().Lookup("html"))
	viper.BindPFlag("encoding", processCmd.Flags().Lookup("encoding"))
	viper.BindPFlag("tokenizer_mode", processCmd.Flags().Lookup("tokenizer"))
	viper.BindPFlag("max_input_bytes", processCmd.Flags().Lookup("max-input-bytes"))
	viper.BindPFlag("rules_path", processCmd.Flags().Lookup("rules"))
	viper.BindPFlag("builtin_rules", processCmd.Flags().Lookup("builtin-rules"))
	viper.BindPFlag("output_format", processCmd.Flags().Lookup("format"))
	viper.BindPFlag("output_dir", processCmd.Flags().Lookup("output"))
	viper.BindPFlag("export_results", processCmd.Flags().Lookup("export"))

	rootCmd.AddCommand(processCmd)

	// Add tokenize command
	tokenizeCmd := &cobra.Command{
		Use:   "tokenize",
		Short: "Tokenize text and print the token stream",
		Long: `Run only the encoding and tokenization stages and print the resulting
token stream with kinds and byte offsets. Useful for inspecting how input will
be seen by the rule engine.`,
		RunE: commands.RunTokenize,
	}

	// Flags shared with process (text, input, tokenizer) are bound to
	// viper inside the command so the bindings never clash.
	tokenizeCmd.Flags().String("text", "", "Text to tokenize")
	tokenizeCmd.Flags().String("input", "", "Path to input file")
	tokenizeCmd.Flags().String("tokenizer", "word", "Tokenizer mode (word, punctuation, sentence)")
	tokenizeCmd.Flags().Bool("skip-spaces", false, "Hide whitespace tokens from the listing")

	rootCmd.AddCommand(tokenizeCmd)

	// Add list-rules command
	listRulesCmd := &cobra.Command{
		Use:   "list-rules",
		Short: "List rules in evaluation order",
		Long: `List the rules of a rule set (built-in or loaded from a file) in the order
the engine evaluates them: descending priority, declaration order breaking ties.`,
		RunE: commands.ListRules,
	}

	listRulesCmd.Flags().String("rules", "", "Path to rule set file (JSON or YAML)")

	rootCmd.AddCommand(listRulesCmd)

	// Add check command for built-in self-checks
	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Perform built-in self-checks for system validation",
		Long: `Perform system checks to validate configuration, rule set compilability,
log writability, and other prerequisites for successful processing. Very useful
for CI/CD integration.`,
		RunE: commands.PerformSelfCheck,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
