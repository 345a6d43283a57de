/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: matchers.go
Description: Pattern matcher implementations for Synoptic Core. Each matcher
implements the single Matcher capability (match at a token position, report
consumed length and captures), so the rule engine stays agnostic to which
variant is used. New matcher kinds are added here, never in the engine.
Every consumed token contributes a capture so templates can reference
matched text positionally ({0}, {1}, ...) or by name ({subject}).
*/

package matchers

import (
	"fmt"
	"regexp"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// KindMatcher matches a single token of a specific kind.
type KindMatcher struct {
	kind    interfaces.TokenKind
	capture string
}

// NewKindMatcher creates a matcher for one token of the given kind.
// capture optionally names the bound variable.
func NewKindMatcher(kind interfaces.TokenKind, capture string) *KindMatcher {
	return &KindMatcher{kind: kind, capture: capture}
}

// Match consumes one token when its kind matches.
func (m *KindMatcher) Match(tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	if pos >= len(tokens) || tokens[pos].Kind != m.kind {
		return 0, nil, false
	}
	return 1, []interfaces.Capture{{Name: m.capture, Value: tokens[pos].Text()}}, true
}

// Name returns the name of this matcher.
func (m *KindMatcher) Name() string {
	return "KindMatcher"
}

// Description returns a description of this matcher.
func (m *KindMatcher) Description() string {
	return fmt.Sprintf("Matches a single token of kind %s", m.kind)
}

// LiteralMatcher matches a single token whose text equals a literal
// exactly. Case-insensitive matching is expressed with a RegexMatcher.
type LiteralMatcher struct {
	literal string
	capture string
}

// NewLiteralMatcher creates a matcher for one token with exact text.
func NewLiteralMatcher(literal, capture string) *LiteralMatcher {
	return &LiteralMatcher{literal: literal, capture: capture}
}

// Match consumes one token when its text equals the literal.
func (m *LiteralMatcher) Match(tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	if pos >= len(tokens) || tokens[pos].Text() != m.literal {
		return 0, nil, false
	}
	return 1, []interfaces.Capture{{Name: m.capture, Value: tokens[pos].Text()}}, true
}

// Name returns the name of this matcher.
func (m *LiteralMatcher) Name() string {
	return "LiteralMatcher"
}

// Description returns a description of this matcher.
func (m *LiteralMatcher) Description() string {
	return fmt.Sprintf("Matches a single token with exact text %q", m.literal)
}

// RegexMatcher matches a single token whose full text matches a compiled
// regular expression.
type RegexMatcher struct {
	pattern *regexp.Regexp
	capture string
}

// NewRegexMatcher compiles the expression and anchors it to the whole
// token text. Returns an error for invalid expressions so rule-set
// compilation can fail fast.
func NewRegexMatcher(expr, capture string) (*RegexMatcher, error) {
	pattern, err := regexp.Compile("^(?:" + expr + ")$")
	if err != nil {
		return nil, fmt.Errorf("invalid regex %q: %w", expr, err)
	}
	return &RegexMatcher{pattern: pattern, capture: capture}, nil
}

// Match consumes one token when the expression matches its whole text.
func (m *RegexMatcher) Match(tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	if pos >= len(tokens) || !m.pattern.MatchString(tokens[pos].Text()) {
		return 0, nil, false
	}
	return 1, []interfaces.Capture{{Name: m.capture, Value: tokens[pos].Text()}}, true
}

// Name returns the name of this matcher.
func (m *RegexMatcher) Name() string {
	return "RegexMatcher"
}

// Description returns a description of this matcher.
func (m *RegexMatcher) Description() string {
	return fmt.Sprintf("Matches a single token against regex %s", m.pattern)
}

// WildcardMatcher matches any single token regardless of kind or text.
type WildcardMatcher struct {
	capture string
}

// NewWildcardMatcher creates a matcher for any single token.
func NewWildcardMatcher(capture string) *WildcardMatcher {
	return &WildcardMatcher{capture: capture}
}

// Match consumes one token unconditionally.
func (m *WildcardMatcher) Match(tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	if pos >= len(tokens) {
		return 0, nil, false
	}
	return 1, []interfaces.Capture{{Name: m.capture, Value: tokens[pos].Text()}}, true
}

// Name returns the name of this matcher.
func (m *WildcardMatcher) Name() string {
	return "WildcardMatcher"
}

// Description returns a description of this matcher.
func (m *WildcardMatcher) Description() string {
	return "Matches any single token"
}

// SequenceMatcher composes multiple matchers into one. All inner matchers
// must align consecutively; captures are concatenated in order. Allows
// matcher trees to nest without the rule engine knowing.
type SequenceMatcher struct {
	matchers []interfaces.Matcher
}

// NewSequenceMatcher creates a sequence composition of matchers.
func NewSequenceMatcher(ms []interfaces.Matcher) *SequenceMatcher {
	return &SequenceMatcher{matchers: ms}
}

// Match aligns every inner matcher consecutively starting at pos.
func (m *SequenceMatcher) Match(tokens []interfaces.Token, pos int) (int, []interfaces.Capture, bool) {
	total := 0
	var captures []interfaces.Capture
	for _, inner := range m.matchers {
		consumed, caps, ok := inner.Match(tokens, pos+total)
		if !ok {
			return 0, nil, false
		}
		total += consumed
		captures = append(captures, caps...)
	}
	return total, captures, true
}

// Name returns the name of this matcher.
func (m *SequenceMatcher) Name() string {
	return "SequenceMatcher"
}

// Description returns a description of this matcher.
func (m *SequenceMatcher) Description() string {
	return fmt.Sprintf("Matches %d matchers in sequence", len(m.matchers))
}

// CompileElement converts one declarative pattern element into its
// matcher variant. knownKinds is the set of kinds the configured
// tokenizer can produce; a kind reference outside that set is a
// compilation error (caught before any matching).
func CompileElement(el interfaces.PatternElement, knownKinds map[interfaces.TokenKind]bool) (interfaces.Matcher, error) {
	set := 0
	if el.Kind != "" {
		set++
	}
	if el.Literal != "" {
		set++
	}
	if el.Regex != "" {
		set++
	}
	if el.Any {
		set++
	}
	if set == 0 {
		return nil, fmt.Errorf("pattern element defines no matcher (one of kind, literal, regex, any required)")
	}
	if set > 1 {
		return nil, fmt.Errorf("pattern element defines multiple matchers (exactly one of kind, literal, regex, any allowed)")
	}

	switch {
	case el.Kind != "":
		kind := interfaces.TokenKind(el.Kind)
		if !knownKinds[kind] {
			return nil, fmt.Errorf("pattern references undefined token kind %q", el.Kind)
		}
		return NewKindMatcher(kind, el.Capture), nil
	case el.Literal != "":
		return NewLiteralMatcher(el.Literal, el.Capture), nil
	case el.Regex != "":
		return NewRegexMatcher(el.Regex, el.Capture)
	default:
		return NewWildcardMatcher(el.Capture), nil
	}
}
