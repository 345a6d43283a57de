/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules.go
Description: Rule listing command for Synoptic Core. Compiles the configured
rule set and prints every rule in the order the engine evaluates it, with
priorities, patterns, and action templates.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/parser"
	"github.com/kleascm/synoptic-core/pkg/rules"
)

// ListRules lists the configured rule set in evaluation order
func ListRules(cmd *cobra.Command, args []string) error {
	// Bind this command's flags; the key is shared with process
	viper.BindPFlag("rules_path", cmd.Flags().Lookup("rules"))

	// Load configuration first
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Resolve rule specs: external file if given, built-ins otherwise
	var specs []interfaces.RuleSpec
	source := "builtin"
	if path := viper.GetString("rules_path"); path != "" {
		loaded, err := rules.LoadFile(path)
		if err != nil {
			return err
		}
		specs = loaded
		source = path
	} else {
		specs = rules.BuiltinRuleSpecs()
	}

	// Compile against the default tokenizer so kind references are checked
	tok, err := parser.NewTokenizer("")
	if err != nil {
		return err
	}
	compiled, err := rules.Compile(specs, tok.Kinds())
	if err != nil {
		return err
	}
	ruleEngine := rules.NewRuleEngine(compiled)

	fmt.Printf("📋 Rule Set (%d rules, source=%s)\n", len(compiled), source)
	fmt.Println("==================================================")
	fmt.Println()

	for i, rule := range ruleEngine.Rules() {
		names := make([]string, len(rule.Matchers))
		for j, m := range rule.Matchers {
			names[j] = m.Name()
		}
		fmt.Printf("%d. %s (priority %d)\n", i+1, rule.ID, rule.Priority)
		if rule.Description != "" {
			fmt.Printf("   Description: %s\n", rule.Description)
		}
		fmt.Printf("   Pattern: %s\n", strings.Join(names, " "))
		fmt.Printf("   Template: %s\n", rule.Action.Template)
		fmt.Println()
	}

	return nil
}
