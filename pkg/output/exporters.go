/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: exporters.go
Description: Export formats for Synoptic Core results. Provides JSON and Prolog
fact renderings of a ProcessResult on top of the default and verbose statement
formats. Exporters are pure string producers; writing to files or stdout stays
with the caller.
*/

package output

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON renders the full result as indented JSON.
func ExportJSON(result *ProcessResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}
	return string(data), nil
}

// ExportProlog renders statements as Prolog facts, one per line:
// predicate(arg1, arg2). Statements without a predicate fall back to their
// rendered text as a quoted fact. Arguments are normalized to Prolog atom
// form (lowercase, underscores).
func ExportProlog(result *ProcessResult) string {
	var lines []string
	for _, stmt := range result.Statements {
		args := namedCaptureValues(stmt)
		if stmt.Predicate == "" || len(args) == 0 {
			lines = append(lines, fmt.Sprintf("statement('%s').", strings.ReplaceAll(stmt.Text, "'", "\\'")))
			continue
		}
		for i, arg := range args {
			args[i] = atomize(arg)
		}
		lines = append(lines, fmt.Sprintf("%s(%s).", atomize(stmt.Predicate), strings.Join(args, ", ")))
	}
	return strings.Join(lines, "\n")
}

// namedCaptureValues returns the values of explicitly named captures in
// pattern order; anonymous positional captures (keyword tokens) are not
// Prolog arguments.
func namedCaptureValues(stmt Statement) []string {
	var values []string
	for _, c := range stmt.Captures {
		if c.Name != "" {
			values = append(values, c.Value)
		}
	}
	return values
}

// atomize converts text into a Prolog-safe atom.
func atomize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	if s == "" {
		return "''"
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		alnum := (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
		if !alnum || (i == 0 && b >= '0' && b <= '9') {
			return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
		}
	}
	return s
}
