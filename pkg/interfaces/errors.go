/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Typed error kinds for Synoptic Core. All three kinds are fatal and
fail-fast: the pipeline either returns a complete ProcessResult or surfaces one
of these errors, never a partial result. Unmatched input regions are a normal
outcome and have no error kind.
*/

package interfaces

import "fmt"

// EncodingError reports text that is not representable in the configured
// byte encoding. Offset is the byte position of the first offending unit.
type EncodingError struct {
	Offset int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error at byte %d: %s", e.Offset, e.Reason)
}

// TokenizationError reports a malformed tokenizer configuration. It is
// never raised for arbitrary input: unrecognized byte runs become UNKNOWN
// tokens instead.
type TokenizationError struct {
	Reason string
}

func (e *TokenizationError) Error() string {
	return fmt.Sprintf("tokenizer configuration error: %s", e.Reason)
}

// RuleSetError reports a malformed or inconsistent rule set. RuleIndex is
// the zero-based position of the offending rule in the document (-1 when
// the document itself is unreadable) so the caller can fix the rule set.
type RuleSetError struct {
	RuleIndex int
	RuleID    string
	Reason    string
}

func (e *RuleSetError) Error() string {
	if e.RuleIndex < 0 {
		return fmt.Sprintf("rule set error: %s", e.Reason)
	}
	if e.RuleID != "" {
		return fmt.Sprintf("rule set error: rule %d (%q): %s", e.RuleIndex, e.RuleID, e.Reason)
	}
	return fmt.Sprintf("rule set error: rule %d: %s", e.RuleIndex, e.Reason)
}
