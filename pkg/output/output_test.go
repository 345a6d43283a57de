/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: output_test.go
Description: Tests for statement rendering and result building. Covers template
substitution with positional and named references, default and verbose format
modes, deterministic statement IDs, statement type tallies, and the JSON and
Prolog exporters.
*/

package output

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// TestRenderTemplatePositional tests {N} substitution in pattern order
func TestRenderTemplatePositional(t *testing.T) {
	captures := []interfaces.Capture{
		{Name: "", Value: "hello"},
		{Name: "", Value: "world"},
	}
	assert.Equal(t, "greet(hello,world)", RenderTemplate("greet({0},{1})", captures))
}

// TestRenderTemplateNamed tests {name} substitution
func TestRenderTemplateNamed(t *testing.T) {
	captures := []interfaces.Capture{
		{Name: "subject", Value: "water"},
		{Name: "", Value: "is"},
		{Name: "object", Value: "liquid"},
	}
	assert.Equal(t, "is_a(water,liquid)", RenderTemplate("is_a({subject},{object})", captures))

	// Positional references count every capture, named or not
	assert.Equal(t, "second(is)", RenderTemplate("second({1})", captures))
}

// TestRenderTemplateUnresolved tests that unresolved references stay
// visible instead of vanishing
func TestRenderTemplateUnresolved(t *testing.T) {
	captures := []interfaces.Capture{{Name: "a", Value: "x"}}

	assert.Equal(t, "f(x,{missing})", RenderTemplate("f({a},{missing})", captures))
	assert.Equal(t, "f({9})", RenderTemplate("f({9})", captures))
	assert.Equal(t, "plain text", RenderTemplate("plain text", captures))
	assert.Equal(t, "open {brace", RenderTemplate("open {brace", captures))
}

// TestStatementFormat tests default and verbose rendering modes
func TestStatementFormat(t *testing.T) {
	stmt := &Statement{
		ID:         "greeting@0-11",
		Text:       "greet(hello,world)",
		RuleID:     "greeting",
		TokenStart: 0,
		TokenEnd:   2,
		ByteStart:  0,
		ByteEnd:    11,
	}

	assert.Equal(t, "greet(hello,world)", stmt.Format(interfaces.FormatDefault))
	assert.Equal(t, "greet(hello,world)", stmt.String())

	verbose := stmt.Format(interfaces.FormatVerbose)
	assert.Contains(t, verbose, "greet(hello,world)")
	assert.Contains(t, verbose, "rule=greeting")
	assert.Contains(t, verbose, "tokens=0..2")
	assert.Contains(t, verbose, "bytes=0..11")

	// Default rendering carries no rule annotations
	assert.NotContains(t, stmt.Format(interfaces.FormatDefault), "rule=")
}

// TestNewBuilder tests output format validation
func TestNewBuilder(t *testing.T) {
	b, err := NewBuilder("")
	require.NoError(t, err)
	assert.NotNil(t, b)

	_, err = NewBuilder(interfaces.FormatVerbose)
	require.NoError(t, err)

	_, err = NewBuilder("xml")
	assert.Error(t, err)
}

func testRules() []interfaces.Rule {
	return []interfaces.Rule{
		{
			ID:       "greeting",
			Index:    0,
			Priority: 10,
			Action:   interfaces.ActionSpec{Template: "greet({0},{1})", Predicate: "greet", StatementType: "greeting", Confidence: 0.9},
		},
	}
}

func testMatches() []interfaces.Match {
	return []interfaces.Match{
		{
			RuleID:     "greeting",
			RuleIndex:  0,
			TokenStart: 0,
			TokenEnd:   2,
			ByteStart:  0,
			ByteEnd:    11,
			Captures: []interfaces.Capture{
				{Name: "a", Value: "hello"},
				{Name: "b", Value: "world"},
			},
		},
	}
}

// TestBuilderBuild tests statement construction from matches
func TestBuilderBuild(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)

	result, err := builder.Build(testMatches(), testRules())
	require.NoError(t, err)
	require.Len(t, result.Statements, 1)

	stmt := result.Statements[0]
	assert.Equal(t, "greeting@0-11", stmt.ID)
	assert.Equal(t, "greet(hello,world)", stmt.Text)
	assert.Equal(t, "greet", stmt.Predicate)
	assert.Equal(t, "greeting", stmt.StatementType)
	assert.Equal(t, 0.9, stmt.Confidence)

	assert.Equal(t, 1, result.Stats.MatchCount)
	assert.Equal(t, 1, result.Stats.StatementCount)
	assert.Equal(t, 1, result.Stats.StatementTypes["greeting"])
	assert.Equal(t, "greet(hello,world)", result.Render())
}

// TestBuilderDeterminism tests that rebuilding the same matches yields
// identical statements
func TestBuilderDeterminism(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)

	first, err := builder.Build(testMatches(), testRules())
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := builder.Build(testMatches(), testRules())
		require.NoError(t, err)
		assert.Equal(t, first.Statements, again.Statements)
	}
}

// TestBuilderUnknownRule tests that a match referencing a missing rule
// fails instead of producing a partial result
func TestBuilderUnknownRule(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)

	_, err = builder.Build(testMatches(), nil)
	assert.Error(t, err)
}

// TestBuilderEmptyMatches tests that no matches produce an empty result,
// not an error
func TestBuilderEmptyMatches(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)

	result, err := builder.Build(nil, testRules())
	require.NoError(t, err)
	assert.Empty(t, result.Statements)
	assert.Equal(t, "", result.Render())
}

// TestExportJSON tests the JSON export rendering
func TestExportJSON(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)
	result, err := builder.Build(testMatches(), testRules())
	require.NoError(t, err)

	data, err := ExportJSON(result)
	require.NoError(t, err)

	var decoded ProcessResult
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	require.Len(t, decoded.Statements, 1)
	assert.Equal(t, "greet(hello,world)", decoded.Statements[0].Text)
	assert.Equal(t, 0.9, decoded.Statements[0].Confidence)
	assert.Contains(t, data, `"confidence"`)
}

// TestExportProlog tests Prolog fact rendering with atomized arguments
func TestExportProlog(t *testing.T) {
	builder, err := NewBuilder(interfaces.FormatDefault)
	require.NoError(t, err)
	result, err := builder.Build(testMatches(), testRules())
	require.NoError(t, err)

	prolog := ExportProlog(result)
	assert.Equal(t, "greet(hello, world).", prolog)
}

// TestExportPrologFallback tests that statements without a predicate fall
// back to a quoted fact
func TestExportPrologFallback(t *testing.T) {
	result := &ProcessResult{
		Statements: []Statement{{Text: "free form"}},
		Format:     interfaces.FormatDefault,
	}
	assert.Equal(t, "statement('free form').", ExportProlog(result))
}

// TestAtomize tests Prolog atom normalization
func TestAtomize(t *testing.T) {
	assert.Equal(t, "water", atomize("Water"))
	assert.Equal(t, "new_york", atomize("New York"))
	assert.Equal(t, "''", atomize(""))
	assert.True(t, strings.HasPrefix(atomize("100degrees"), "'"))
	assert.True(t, strings.HasPrefix(atomize("a-b"), "'"))
}
