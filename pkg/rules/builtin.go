/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builtin.go
Description: Built-in rule set for Synoptic Core. Provides the default
symbolic-logic extraction rules applied when no user rule set is supplied:
classification (is-a), property (has), conditional (if/then), and definition
patterns. All built-ins are expressed through the same declarative rule model
as user rules, so they compile and match identically.
*/

package rules

import "github.com/kleascm/synoptic-core/pkg/interfaces"

// BuiltinRuleSpecs returns the default rule set in declaration order.
// Case-insensitive keywords are expressed as regex elements so word tokens
// like "Is" still match.
func BuiltinRuleSpecs() []interfaces.RuleSpec {
	return []interfaces.RuleSpec{
		{
			ID:       "definition",
			Priority: 90,
			Pattern: []interfaces.PatternElement{
				{Kind: "WORD", Capture: "term"},
				{Regex: "(?i)is"},
				{Regex: "(?i)defined"},
				{Regex: "(?i)as"},
				{Kind: "WORD", Capture: "definition"},
			},
			Action: interfaces.ActionSpec{
				Template:      "defined_as({term},{definition})",
				Predicate:     "defined_as",
				StatementType: "definition",
				Confidence:    0.9,
			},
			Description: "Detects 'X is defined as Y' definitions",
		},
		{
			ID:       "is_a_relation",
			Priority: 80,
			Pattern: []interfaces.PatternElement{
				{Kind: "WORD", Capture: "subject"},
				{Regex: "(?i)is"},
				{Regex: "(?i)an?"},
				{Kind: "WORD", Capture: "object"},
			},
			Action: interfaces.ActionSpec{
				Template:      "is_a({subject},{object})",
				Predicate:     "is_a",
				StatementType: "classification",
				Confidence:    0.9,
			},
			Description: "Detects 'X is a Y' relationships",
		},
		{
			ID:       "if_then",
			Priority: 70,
			Pattern: []interfaces.PatternElement{
				{Regex: "(?i)if"},
				{Kind: "WORD", Capture: "condition"},
				{Regex: "(?i)then"},
				{Kind: "WORD", Capture: "consequence"},
			},
			Action: interfaces.ActionSpec{
				Template:      "implies({condition},{consequence})",
				Predicate:     "implies",
				StatementType: "conditional",
				Confidence:    0.85,
			},
			Description: "Detects conditional statements",
		},
		{
			ID:       "has_relation",
			Priority: 60,
			Pattern: []interfaces.PatternElement{
				{Kind: "WORD", Capture: "subject"},
				{Regex: "(?i)has"},
				{Kind: "WORD", Capture: "object"},
			},
			Action: interfaces.ActionSpec{
				Template:      "has({subject},{object})",
				Predicate:     "has",
				StatementType: "property",
				Confidence:    0.8,
			},
			Description: "Detects 'X has Y' relationships",
		},
	}
}
