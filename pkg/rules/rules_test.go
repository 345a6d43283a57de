/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rules_test.go
Description: Tests for rule-set loading, compilation, and the rule engine.
Covers document parsing in both formats, fail-fast validation with rule index
reporting, priority ordering with declaration-order tie-breaks, non-overlapping
left-to-right matching, and match determinism.
*/

package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/parser"
)

func contentTokens(t *testing.T, text string) []interfaces.Token {
	t.Helper()
	tok, err := parser.NewTokenizer("word")
	require.NoError(t, err)
	return parser.ContentTokens(tok.Tokenize([]byte(text)))
}

func wordKinds(t *testing.T) map[interfaces.TokenKind]bool {
	t.Helper()
	tok, err := parser.NewTokenizer("word")
	require.NoError(t, err)
	return tok.Kinds()
}

func wordPattern(n int) []interfaces.PatternElement {
	els := make([]interfaces.PatternElement, n)
	for i := range els {
		els[i] = interfaces.PatternElement{Kind: "WORD"}
	}
	return els
}

// TestParseDocumentJSON tests JSON rule document parsing
func TestParseDocumentJSON(t *testing.T) {
	doc := `[
		{
			"id": "greeting",
			"priority": 10,
			"pattern": [{"kind": "WORD"}, {"kind": "WORD"}],
			"action": {"template": "greet({0},{1})"}
		}
	]`

	specs, err := ParseDocument([]byte(doc), "json")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "greeting", specs[0].ID)
	assert.Equal(t, 10, specs[0].Priority)
	require.Len(t, specs[0].Pattern, 2)
	assert.Equal(t, "greet({0},{1})", specs[0].Action.Template)
}

// TestParseDocumentYAML tests YAML rule document parsing
func TestParseDocumentYAML(t *testing.T) {
	doc := `
- id: has_color
  priority: 5
  pattern:
    - kind: WORD
      capture: subject
    - literal: has
    - kind: WORD
      capture: object
  action:
    template: has({subject},{object})
    predicate: has
`

	specs, err := ParseDocument([]byte(doc), "yaml")
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "has_color", specs[0].ID)
	require.Len(t, specs[0].Pattern, 3)
	assert.Equal(t, "subject", specs[0].Pattern[0].Capture)
	assert.Equal(t, "has", specs[0].Pattern[1].Literal)
	assert.Equal(t, "has", specs[0].Action.Predicate)
}

// TestParseDocumentMalformed tests that unreadable documents report a
// document-level rule set error
func TestParseDocumentMalformed(t *testing.T) {
	for _, tc := range []struct{ data, format string }{
		{"{not a list}", "json"},
		{"[{\"id\": ", "json"},
		{": bad", "yaml"},
		{"[]", "toml"},
	} {
		_, err := ParseDocument([]byte(tc.data), tc.format)
		require.Error(t, err, "format %s", tc.format)

		var rsErr *interfaces.RuleSetError
		require.True(t, errors.As(err, &rsErr))
		assert.Equal(t, -1, rsErr.RuleIndex)
	}
}

// TestLoadFile tests extension-driven format selection
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "rules.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"id":"r1","priority":1,"pattern":[{"any":true}],"action":{"template":"x({0})"}}]`), 0644))
	specs, err := LoadFile(jsonPath)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "r1", specs[0].ID)

	yamlPath := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- id: r2\n  priority: 1\n  pattern:\n    - any: true\n  action:\n    template: y({0})\n"), 0644))
	specs, err = LoadFile(yamlPath)
	require.NoError(t, err)
	require.Len(t, specs, 1)
	assert.Equal(t, "r2", specs[0].ID)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	var rsErr *interfaces.RuleSetError
	require.True(t, errors.As(err, &rsErr))
}

// TestCompileValidation tests fail-fast spec validation with rule index
// and ID reporting
func TestCompileValidation(t *testing.T) {
	kinds := wordKinds(t)
	valid := interfaces.RuleSpec{
		ID:       "ok",
		Priority: 1,
		Pattern:  wordPattern(1),
		Action:   interfaces.ActionSpec{Template: "t({0})"},
	}

	cases := []struct {
		name string
		bad  interfaces.RuleSpec
	}{
		{"empty pattern", interfaces.RuleSpec{ID: "bad", Priority: 1, Action: interfaces.ActionSpec{Template: "t"}}},
		{"missing template", interfaces.RuleSpec{ID: "bad", Priority: 1, Pattern: wordPattern(1)}},
		{"priority too high", interfaces.RuleSpec{ID: "bad", Priority: 101, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "t"}}},
		{"priority negative", interfaces.RuleSpec{ID: "bad", Priority: -1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "t"}}},
		{"undefined kind", interfaces.RuleSpec{ID: "bad", Priority: 1, Pattern: []interfaces.PatternElement{{Kind: "EMOJI"}}, Action: interfaces.ActionSpec{Template: "t"}}},
		{"confidence too high", interfaces.RuleSpec{ID: "bad", Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "t", Confidence: 1.5}}},
		{"confidence negative", interfaces.RuleSpec{ID: "bad", Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "t", Confidence: -0.1}}},
	}

	for _, tc := range cases {
		_, err := Compile([]interfaces.RuleSpec{valid, tc.bad}, kinds)
		require.Error(t, err, tc.name)

		var rsErr *interfaces.RuleSetError
		require.True(t, errors.As(err, &rsErr), tc.name)
		assert.Equal(t, 1, rsErr.RuleIndex, tc.name)
		assert.Equal(t, "bad", rsErr.RuleID, tc.name)
	}
}

// TestCompileDefaults tests disabled-rule skipping, ID defaulting, and
// confidence defaulting
func TestCompileDefaults(t *testing.T) {
	kinds := wordKinds(t)
	specs := []interfaces.RuleSpec{
		{Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "a({0})"}},
		{ID: "off", Disabled: true, Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "b({0})"}},
		{ID: "sure", Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "c({0})", Confidence: 0.7}},
	}

	compiled, err := Compile(specs, kinds)
	require.NoError(t, err)
	require.Len(t, compiled, 2)
	assert.Equal(t, "rule-0", compiled[0].ID)
	assert.Equal(t, 0, compiled[0].Index)

	// An absent confidence compiles to full confidence; explicit values
	// survive unchanged
	assert.Equal(t, 1.0, compiled[0].Action.Confidence)
	assert.Equal(t, 0.7, compiled[1].Action.Confidence)
}

// TestEngineGreeting tests the canonical two-word scenario with
// positional captures
func TestEngineGreeting(t *testing.T) {
	compiled, err := Compile([]interfaces.RuleSpec{
		{
			ID:       "greeting",
			Priority: 10,
			Pattern:  wordPattern(2),
			Action:   interfaces.ActionSpec{Template: "greet({0},{1})"},
		},
	}, wordKinds(t))
	require.NoError(t, err)

	engine := NewRuleEngine(compiled)
	matches := engine.Match(contentTokens(t, "hello world"))
	require.Len(t, matches, 1)

	assert.Equal(t, "greeting", matches[0].RuleID)
	assert.Equal(t, 0, matches[0].TokenStart)
	assert.Equal(t, 2, matches[0].TokenEnd)
	assert.Equal(t, 0, matches[0].ByteStart)
	assert.Equal(t, 11, matches[0].ByteEnd)
	require.Len(t, matches[0].Captures, 2)
	assert.Equal(t, "hello", matches[0].Captures[0].Value)
	assert.Equal(t, "world", matches[0].Captures[1].Value)
}

// TestEnginePriorityOrder tests that higher priority wins at the same
// position
func TestEnginePriorityOrder(t *testing.T) {
	compiled, err := Compile([]interfaces.RuleSpec{
		{ID: "low", Priority: 1, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "low({0})"}},
		{ID: "high", Priority: 50, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "high({0})"}},
	}, wordKinds(t))
	require.NoError(t, err)

	matches := NewRuleEngine(compiled).Match(contentTokens(t, "token"))
	require.Len(t, matches, 1)
	assert.Equal(t, "high", matches[0].RuleID)
}

// TestEngineTieBreakDeclarationOrder tests that equal priorities resolve
// to the earlier-declared rule
func TestEngineTieBreakDeclarationOrder(t *testing.T) {
	compiled, err := Compile([]interfaces.RuleSpec{
		{ID: "first", Priority: 10, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "a({0})"}},
		{ID: "second", Priority: 10, Pattern: wordPattern(1), Action: interfaces.ActionSpec{Template: "b({0})"}},
	}, wordKinds(t))
	require.NoError(t, err)

	matches := NewRuleEngine(compiled).Match(contentTokens(t, "token"))
	require.Len(t, matches, 1)
	assert.Equal(t, "first", matches[0].RuleID)
}

// TestEngineNonOverlapping tests that the scan advances past matched
// spans so matches never overlap
func TestEngineNonOverlapping(t *testing.T) {
	compiled, err := Compile([]interfaces.RuleSpec{
		{ID: "pair", Priority: 10, Pattern: wordPattern(2), Action: interfaces.ActionSpec{Template: "pair({0},{1})"}},
	}, wordKinds(t))
	require.NoError(t, err)

	matches := NewRuleEngine(compiled).Match(contentTokens(t, "a b c d e"))
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].TokenStart)
	assert.Equal(t, 2, matches[0].TokenEnd)
	assert.Equal(t, 2, matches[1].TokenStart)
	assert.Equal(t, 4, matches[1].TokenEnd)
	// The trailing token matches nothing and is skipped silently
}

// TestEngineNoMatches tests that unmatched input yields an empty match
// list, not an error
func TestEngineNoMatches(t *testing.T) {
	compiled, err := Compile([]interfaces.RuleSpec{
		{ID: "num", Priority: 10, Pattern: []interfaces.PatternElement{{Kind: "NUMBER"}}, Action: interfaces.ActionSpec{Template: "n({0})"}},
	}, wordKinds(t))
	require.NoError(t, err)

	matches := NewRuleEngine(compiled).Match(contentTokens(t, "only words here"))
	assert.Empty(t, matches)
}

// TestEngineDeterminism tests that repeated matching of the same input
// yields identical results
func TestEngineDeterminism(t *testing.T) {
	compiled, err := Compile(BuiltinRuleSpecs(), wordKinds(t))
	require.NoError(t, err)
	engine := NewRuleEngine(compiled)

	tokens := contentTokens(t, "water is a liquid and ice has structure")
	first := engine.Match(tokens)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, engine.Match(tokens))
	}
}

// TestBuiltinRules tests the built-in rule set against representative
// sentences
func TestBuiltinRules(t *testing.T) {
	compiled, err := Compile(BuiltinRuleSpecs(), wordKinds(t))
	require.NoError(t, err)
	engine := NewRuleEngine(compiled)

	cases := []struct {
		text   string
		ruleID string
	}{
		{"water is a liquid", "is_a_relation"},
		{"gravity is defined as attraction", "definition"},
		{"if rain then wet", "if_then"},
		{"sky has color", "has_relation"},
	}

	for _, tc := range cases {
		matches := engine.Match(contentTokens(t, tc.text))
		require.Len(t, matches, 1, tc.text)
		assert.Equal(t, tc.ruleID, matches[0].RuleID, tc.text)
	}
}
