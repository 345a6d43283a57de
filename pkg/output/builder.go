/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Statement builder for Synoptic Core. Converts the ordered match
sequence into a ProcessResult: one Statement per match, rendered from the
matched rule's action template with captured variables substituted. Building
is pure and deterministic with no I/O side effects; exporting to a destination
is the caller's responsibility.
*/

package output

import (
	"fmt"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// ProcessResult is the full ordered output of one processing invocation.
type ProcessResult struct {
	Statements []Statement            `json:"statements"`
	Format     interfaces.FormatMode  `json:"format"`
	Stats      interfaces.ResultStats `json:"stats"`
}

// Render produces the human-readable rendering of every statement in the
// result's configured format, one statement per line.
func (r *ProcessResult) Render() string {
	lines := make([]string, len(r.Statements))
	for i := range r.Statements {
		lines[i] = r.Statements[i].Format(r.Format)
	}
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}

// Builder renders matches into statements.
type Builder struct {
	format interfaces.FormatMode
}

// NewBuilder creates a statement builder for the given output format.
// Unknown formats fail so configuration mistakes surface early.
func NewBuilder(format interfaces.FormatMode) (*Builder, error) {
	switch format {
	case "", interfaces.FormatDefault:
		format = interfaces.FormatDefault
	case interfaces.FormatVerbose:
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	return &Builder{format: format}, nil
}

// Build renders every match into a Statement using the action of its
// originating rule. rules must contain every rule the matches reference.
func (b *Builder) Build(matches []interfaces.Match, ruleSet []interfaces.Rule) (*ProcessResult, error) {
	actions := make(map[int]interfaces.Rule, len(ruleSet))
	for _, r := range ruleSet {
		actions[r.Index] = r
	}

	statements := make([]Statement, 0, len(matches))
	types := make(map[string]int)
	for _, m := range matches {
		rule, ok := actions[m.RuleIndex]
		if !ok {
			return nil, fmt.Errorf("match references unknown rule index %d", m.RuleIndex)
		}
		stmt := Statement{
			ID:            fmt.Sprintf("%s@%d-%d", m.RuleID, m.ByteStart, m.ByteEnd),
			Text:          RenderTemplate(rule.Action.Template, m.Captures),
			Predicate:     rule.Action.Predicate,
			StatementType: rule.Action.StatementType,
			Confidence:    rule.Action.Confidence,
			RuleID:        m.RuleID,
			TokenStart:    m.TokenStart,
			TokenEnd:      m.TokenEnd,
			ByteStart:     m.ByteStart,
			ByteEnd:       m.ByteEnd,
			Captures:      m.Captures,
		}
		statements = append(statements, stmt)
		if stmt.StatementType != "" {
			types[stmt.StatementType]++
		}
	}

	return &ProcessResult{
		Statements: statements,
		Format:     b.format,
		Stats: interfaces.ResultStats{
			MatchCount:     len(matches),
			StatementCount: len(statements),
			StatementTypes: types,
		},
	}, nil
}
