/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: statement.go
Description: Logic statement model for Synoptic Core. A Statement is the final
output unit: a structured representation built from a match's rule action and
captures, with deterministic rendering in multiple formats. Statement IDs are
derived from the originating rule and matched span, so repeated processing of
the same input yields byte-identical results.
*/

package output

import (
	"fmt"
	"strings"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
)

// Statement is a rendered, structured logic output derived from a Match.
type Statement struct {
	ID            string               `json:"id"`
	Text          string               `json:"text"`
	Predicate     string               `json:"predicate,omitempty"`
	StatementType string               `json:"statement_type,omitempty"`
	Confidence    float64              `json:"confidence"`
	RuleID        string               `json:"rule_id"`
	TokenStart    int                  `json:"token_start"`
	TokenEnd      int                  `json:"token_end"`
	ByteStart     int                  `json:"byte_start"`
	ByteEnd       int                  `json:"byte_end"`
	Captures      []interfaces.Capture `json:"captures,omitempty"`
}

// Format renders the statement in the requested mode. Rendering is pure
// and deterministic: the same statement always yields the same string for
// a given mode. Unknown modes fall back to the default rendering.
func (s *Statement) Format(mode interfaces.FormatMode) string {
	switch mode {
	case interfaces.FormatVerbose:
		return fmt.Sprintf("%s [rule=%s tokens=%d..%d bytes=%d..%d]",
			s.Text, s.RuleID, s.TokenStart, s.TokenEnd, s.ByteStart, s.ByteEnd)
	default:
		return s.Text
	}
}

// String implements fmt.Stringer with the default rendering.
func (s *Statement) String() string {
	return s.Format(interfaces.FormatDefault)
}

// RenderTemplate substitutes captured variables into an action template.
// {N} references the Nth capture positionally; {name} references a named
// capture. Unresolved references are left intact so broken templates stay
// visible instead of vanishing silently.
func RenderTemplate(template string, captures []interfaces.Capture) string {
	var out strings.Builder
	for i := 0; i < len(template); {
		open := strings.IndexByte(template[i:], '{')
		if open < 0 {
			out.WriteString(template[i:])
			break
		}
		open += i
		close := strings.IndexByte(template[open:], '}')
		if close < 0 {
			out.WriteString(template[i:])
			break
		}
		close += open

		out.WriteString(template[i:open])
		ref := template[open+1 : close]
		if value, ok := resolveRef(ref, captures); ok {
			out.WriteString(value)
		} else {
			out.WriteString(template[open : close+1])
		}
		i = close + 1
	}
	return out.String()
}

// resolveRef looks a template reference up in the capture list.
func resolveRef(ref string, captures []interfaces.Capture) (string, bool) {
	if ref == "" {
		return "", false
	}
	if idx, ok := parseIndex(ref); ok {
		if idx < len(captures) {
			return captures[idx].Value, true
		}
		return "", false
	}
	for _, c := range captures {
		if c.Name == ref {
			return c.Value, true
		}
	}
	return "", false
}

// parseIndex parses a non-negative decimal index.
func parseIndex(s string) (int, bool) {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}
