/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: tokenizer.go
Description: Tokenizer for Synoptic Core. Consumes a byte sequence and produces
an ordered token stream with total coverage: every byte run is classified into
exactly one token kind, with whitespace emitted as explicit SPACE tokens and
unrecognized runs as UNKNOWN tokens. Never fails on input data, only on
malformed tokenizer configuration. Supports word, punctuation, and sentence
tokenization modes.
*/

package parser

import (
	"fmt"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// Mode selects the tokenization strategy.
type Mode string

const (
	// ModeWord merges runs of the same byte class: words, numbers,
	// punctuation runs, whitespace runs.
	ModeWord Mode = "word"
	// ModePunctuation behaves like ModeWord but emits each punctuation
	// byte as its own token.
	ModePunctuation Mode = "punctuation"
	// ModeSentence emits whole sentences (terminated by . ! ?) as single
	// SENTENCE tokens, with inter-sentence whitespace as SPACE tokens.
	ModeSentence Mode = "sentence"
)

// ClassDef overrides the byte class for a set of bytes. Used to extend the
// tokenizer with domain-specific token kinds without touching the core.
type ClassDef struct {
	Kind  interfaces.TokenKind
	Bytes string
}

// Tokenizer classifies byte sequences into token streams.
type Tokenizer struct {
	mode  Mode
	table [256]interfaces.TokenKind
	kinds map[interfaces.TokenKind]bool
}

// NewTokenizer creates a tokenizer for the given mode with the default
// byte classes. Fails with a TokenizationError on an unknown mode.
func NewTokenizer(mode string) (*Tokenizer, error) {
	return NewTokenizerWithClasses(mode, nil)
}

// NewTokenizerWithClasses creates a tokenizer with custom byte class
// overrides applied on top of the defaults. Fails with a
// TokenizationError on an unknown mode or a malformed class definition;
// it never fails on input data.
func NewTokenizerWithClasses(mode string, classes []ClassDef) (*Tokenizer, error) {
	m := Mode(mode)
	if mode == "" {
		m = ModeWord
	}
	switch m {
	case ModeWord, ModePunctuation, ModeSentence:
	default:
		return nil, &interfaces.TokenizationError{
			Reason: fmt.Sprintf("unknown tokenizer mode %q", mode),
		}
	}

	t := &Tokenizer{mode: m}
	t.buildDefaultTable()

	seen := make(map[byte]interfaces.TokenKind)
	for i, c := range classes {
		if c.Kind == "" {
			return nil, &interfaces.TokenizationError{
				Reason: fmt.Sprintf("class %d has empty token kind", i),
			}
		}
		if c.Bytes == "" {
			return nil, &interfaces.TokenizationError{
				Reason: fmt.Sprintf("class %d (%s) has empty byte set", i, c.Kind),
			}
		}
		for j := 0; j < len(c.Bytes); j++ {
			b := c.Bytes[j]
			if prev, dup := seen[b]; dup && prev != c.Kind {
				return nil, &interfaces.TokenizationError{
					Reason: fmt.Sprintf("byte %q assigned to both %s and %s", b, prev, c.Kind),
				}
			}
			seen[b] = c.Kind
			t.table[b] = c.Kind
		}
	}

	t.kinds = t.collectKinds()
	return t, nil
}

// Mode returns the configured tokenization mode.
func (t *Tokenizer) Mode() Mode {
	return t.mode
}

// Kinds returns the set of token kinds this tokenizer can produce. The
// rule engine validates pattern kind references against this set.
func (t *Tokenizer) Kinds() map[interfaces.TokenKind]bool {
	out := make(map[interfaces.TokenKind]bool, len(t.kinds))
	for k := range t.kinds {
		out[k] = true
	}
	return out
}

// Tokenize converts a byte sequence into an ordered token stream. Token
// spans are non-overlapping, monotonically increasing, and partition the
// input with no gaps. Tokenize never fails: configuration errors are
// caught at construction time.
func (t *Tokenizer) Tokenize(seq []byte) []interfaces.Token {
	if t.mode == ModeSentence {
		return t.tokenizeSentences(seq)
	}
	return t.tokenizeRuns(seq)
}

// tokenizeRuns implements word and punctuation modes: consecutive bytes of
// the same class form one token, except punctuation in punctuation mode,
// which is emitted byte by byte.
func (t *Tokenizer) tokenizeRuns(seq []byte) []interfaces.Token {
	var tokens []interfaces.Token
	for i := 0; i < len(seq); {
		kind := t.table[seq[i]]
		end := i + 1
		if !(t.mode == ModePunctuation && kind == interfaces.TokenPunct) {
			for end < len(seq) && t.table[seq[end]] == kind {
				end++
			}
		}
		tokens = append(tokens, makeToken(kind, seq, i, end))
		i = end
	}
	return tokens
}

// tokenizeSentences groups everything up to a sentence terminator run
// (. ! ?) into a single SENTENCE token. Whitespace between sentences is
// emitted as SPACE tokens; trailing text without a terminator is still a
// SENTENCE (total coverage).
func (t *Tokenizer) tokenizeSentences(seq []byte) []interfaces.Token {
	var tokens []interfaces.Token
	i := 0
	for i < len(seq) {
		// Leading whitespace between sentences.
		start := i
		for i < len(seq) && t.table[seq[i]] == interfaces.TokenSpace {
			i++
		}
		if i > start {
			tokens = append(tokens, makeToken(interfaces.TokenSpace, seq, start, i))
			continue
		}

		// Sentence body up to and including the terminator run.
		for i < len(seq) && !isTerminator(seq[i]) {
			i++
		}
		for i < len(seq) && isTerminator(seq[i]) {
			i++
		}
		tokens = append(tokens, makeToken(interfaces.TokenSentence, seq, start, i))
	}
	return tokens
}

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func makeToken(kind interfaces.TokenKind, seq []byte, start, end int) interfaces.Token {
	value := make([]byte, end-start)
	copy(value, seq[start:end])
	return interfaces.Token{
		Kind:  kind,
		Start: start,
		End:   end,
		Value: value,
	}
}

// buildDefaultTable assigns the default class to every byte value.
// Bytes >= 0x80 are classified as WORD so multi-byte UTF-8 characters
// join their surrounding word run.
func (t *Tokenizer) buildDefaultTable() {
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			t.table[i] = interfaces.TokenSpace
		case b >= '0' && b <= '9':
			t.table[i] = interfaces.TokenNumber
		case (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80:
			t.table[i] = interfaces.TokenWord
		case b > 0x20 && b < 0x7f:
			t.table[i] = interfaces.TokenPunct
		default:
			t.table[i] = interfaces.TokenUnknown
		}
	}
}

// collectKinds derives the set of kinds this configuration can emit.
func (t *Tokenizer) collectKinds() map[interfaces.TokenKind]bool {
	kinds := make(map[interfaces.TokenKind]bool)
	if t.mode == ModeSentence {
		kinds[interfaces.TokenSentence] = true
		kinds[interfaces.TokenSpace] = true
		return kinds
	}
	for i := 0; i < 256; i++ {
		kinds[t.table[i]] = true
	}
	return kinds
}

// ContentTokens filters out skip tokens (whitespace). The rule engine
// matches against content tokens only; byte offsets on the remaining
// tokens still point into the original input.
func ContentTokens(tokens []interfaces.Token) []interfaces.Token {
	out := make([]interfaces.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.Skip() {
			out = append(out, tok)
		}
	}
	return out
}
