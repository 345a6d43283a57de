/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and types for Synoptic Core. Defines the core data
model (tokens, rules, matches, statements) and the Matcher interface used across
all packages to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"time"
)

// TokenKind classifies a run of bytes produced by the tokenizer.
type TokenKind string

const (
	TokenWord     TokenKind = "WORD"
	TokenNumber   TokenKind = "NUMBER"
	TokenPunct    TokenKind = "PUNCT"
	TokenSpace    TokenKind = "SPACE"
	TokenSentence TokenKind = "SENTENCE"
	TokenUnknown  TokenKind = "UNKNOWN"
)

// Token represents a classified, offset-addressed span of a byte sequence.
// Start and End are byte offsets into the encoded input; End is exclusive.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
	Value []byte
}

// Text returns the token's raw bytes as a string.
func (t Token) Text() string {
	return string(t.Value)
}

// Skip reports whether the token is a separator that carries no content.
// Skip tokens are still emitted by the tokenizer (total coverage) but are
// filtered out before rule matching.
func (t Token) Skip() bool {
	return t.Kind == TokenSpace
}

// PatternElement is one declarative matcher slot in a rule pattern.
// Exactly one of Kind, Literal, Regex, or Any should be set; Capture
// optionally names the variable bound to the matched token.
type PatternElement struct {
	Kind    string `json:"kind,omitempty" yaml:"kind,omitempty"`
	Literal string `json:"literal,omitempty" yaml:"literal,omitempty"`
	Regex   string `json:"regex,omitempty" yaml:"regex,omitempty"`
	Any     bool   `json:"any,omitempty" yaml:"any,omitempty"`
	Capture string `json:"capture,omitempty" yaml:"capture,omitempty"`
}

// ActionSpec describes the logic statement a rule emits on match.
// Template is the primary rendering mechanism; Predicate, StatementType,
// and Confidence carry optional structured metadata surfaced on the
// Statement. Confidence must be in [0, 1]; an absent confidence means
// full confidence (1.0).
type ActionSpec struct {
	Template      string  `json:"template" yaml:"template"`
	Predicate     string  `json:"predicate,omitempty" yaml:"predicate,omitempty"`
	StatementType string  `json:"statement_type,omitempty" yaml:"statement_type,omitempty"`
	Confidence    float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// RuleSpec is the external, declarative form of a rule as found in a
// rule-set document (JSON or YAML). Specs are compiled into Rules by the
// rules package before any matching occurs.
type RuleSpec struct {
	ID          string           `json:"id" yaml:"id"`
	Pattern     []PatternElement `json:"pattern" yaml:"pattern"`
	Priority    int              `json:"priority" yaml:"priority"`
	Action      ActionSpec       `json:"action" yaml:"action"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Disabled    bool             `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Capture binds a pattern variable to the text it matched.
// Captures keep declaration order so positional template references
// ({0}, {1}, ...) stay stable.
type Capture struct {
	Name  string
	Value string
}

// Matcher is the single capability every pattern matcher implementation
// must provide. Match reports how many tokens it consumed starting at pos
// and any captures it bound. New matcher kinds are added by introducing
// new variants, not by modifying the rule engine.
type Matcher interface {
	Match(tokens []Token, pos int) (consumed int, captures []Capture, ok bool)
	Name() string
	Description() string
}

// Rule is the compiled, immutable form of a RuleSpec. The engine treats
// rules as read-only for the duration of a match, so a single rule set is
// safe for concurrent invocations without locking.
type Rule struct {
	ID          string
	Index       int // declaration order, used for priority tie-breaks
	Priority    int
	Matchers    []Matcher
	Action      ActionSpec
	Description string
}

// Match binds a rule to a contiguous span of the token stream with any
// captured variables. Token indices are positions in the content token
// stream; byte offsets point back into the original input.
type Match struct {
	RuleID     string
	RuleIndex  int
	TokenStart int
	TokenEnd   int
	ByteStart  int
	ByteEnd    int
	Captures   []Capture
}

// FormatMode selects a Statement rendering style.
type FormatMode string

const (
	FormatDefault FormatMode = "default"
	FormatVerbose FormatMode = "verbose"
)

// ResultStats summarizes one processing invocation.
type ResultStats struct {
	InputBytes     int
	TokenCount     int
	MatchCount     int
	StatementCount int
	Duration       time.Duration
	StatementTypes map[string]int
}

// EngineConfig represents the configuration for the processing engine.
type EngineConfig struct {
	Encoding        string
	TokenizerMode   string
	RulesPath       string
	OutputFormat    string
	MaxInputBytes   int
	UseBuiltinRules bool
	LogLevel        string
	LogDir          string
	JSONLogs        bool
}
