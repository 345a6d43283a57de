/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: engine.go
Description: Rule engine for Synoptic Core. Scans the token stream left to
right, evaluating candidate rules in descending priority order with declaration
order breaking ties (first-declared wins). The first successful match at a
position is recorded and the scan advances past the matched span, so matches
never overlap. Positions matching no rule are skipped silently. The engine
never mutates its rule set, so one rule set is safe across concurrent
invocations without locking.
*/

package rules

import (
	"sort"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// RuleEngine applies an ordered rule set to token streams.
type RuleEngine struct {
	rules []interfaces.Rule // sorted: priority desc, declaration order asc
}

// NewRuleEngine creates a rule engine over compiled rules. The input slice
// is copied and sorted once; the engine holds it read-only afterwards.
func NewRuleEngine(rules []interfaces.Rule) *RuleEngine {
	ordered := make([]interfaces.Rule, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Priority != ordered[j].Priority {
			return ordered[i].Priority > ordered[j].Priority
		}
		return ordered[i].Index < ordered[j].Index
	})
	return &RuleEngine{rules: ordered}
}

// Rules returns the evaluation-ordered rule set.
func (e *RuleEngine) Rules() []interfaces.Rule {
	out := make([]interfaces.Rule, len(e.rules))
	copy(out, e.rules)
	return out
}

// Match produces the ordered, non-overlapping match sequence for the given
// content token stream. Deterministic: the same tokens and rules always
// yield the same matches.
func (e *RuleEngine) Match(tokens []interfaces.Token) []interfaces.Match {
	var found []interfaces.Match
	pos := 0
	for pos < len(tokens) {
		m, ok := e.matchAt(tokens, pos)
		if !ok {
			pos++
			continue
		}
		found = append(found, m)
		pos = m.TokenEnd
	}
	return found
}

// matchAt tries every rule at one position in evaluation order and returns
// the first alignment.
func (e *RuleEngine) matchAt(tokens []interfaces.Token, pos int) (interfaces.Match, bool) {
	for _, rule := range e.rules {
		consumed, captures, ok := alignRule(rule, tokens, pos)
		if !ok {
			continue
		}
		return interfaces.Match{
			RuleID:     rule.ID,
			RuleIndex:  rule.Index,
			TokenStart: pos,
			TokenEnd:   pos + consumed,
			ByteStart:  tokens[pos].Start,
			ByteEnd:    tokens[pos+consumed-1].End,
			Captures:   captures,
		}, true
	}
	return interfaces.Match{}, false
}

// alignRule aligns a rule's matcher sequence against tokens starting at
// pos, accumulating captures in pattern order.
func alignRule(rule interfaces.Rule, tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	total := 0
	var captures []interfaces.Capture
	for _, m := range rule.Matchers {
		consumed, caps, ok := m.Match(tokens, pos+total)
		if !ok {
			return 0, nil, false
		}
		total += consumed
		captures = append(captures, caps...)
	}
	if total == 0 {
		// A rule that consumes nothing would stall the scan.
		return 0, nil, false
	}
	return total, captures, true
}
