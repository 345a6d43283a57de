/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ruleset.go
Description: Rule set loading and compilation for Synoptic Core. Parses rule
documents (JSON or YAML), validates every rule, and compiles declarative
pattern elements into matcher sequences. Validation is fail-fast: a malformed
rule set is reported with the offending rule index before any matching occurs,
never as a partial result.
*/

package rules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kleascm/synoptic-core/pkg/interfaces"
	"github.com/kleascm/synoptic-core/pkg/matchers"
)

// Priority bounds for rules, matching the documented rule model.
const (
	MinPriority = 0
	MaxPriority = 100
)

// ParseDocument decodes a rule-set document into rule specs. format is
// "json" or "yaml". The document must be a list of rule records.
func ParseDocument(data []byte, format string) ([]interfaces.RuleSpec, error) {
	var specs []interfaces.RuleSpec
	switch strings.ToLower(format) {
	case "json", "":
		if err := json.Unmarshal(data, &specs); err != nil {
			return nil, &interfaces.RuleSetError{RuleIndex: -1, Reason: fmt.Sprintf("invalid JSON document: %v", err)}
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &specs); err != nil {
			return nil, &interfaces.RuleSetError{RuleIndex: -1, Reason: fmt.Sprintf("invalid YAML document: %v", err)}
		}
	default:
		return nil, &interfaces.RuleSetError{RuleIndex: -1, Reason: fmt.Sprintf("unsupported rule document format %q", format)}
	}
	return specs, nil
}

// LoadFile reads and parses a rule-set document, picking the format from
// the file extension. File I/O lives here at the boundary; the engine API
// itself only accepts already-parsed specs.
func LoadFile(path string) ([]interfaces.RuleSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &interfaces.RuleSetError{RuleIndex: -1, Reason: fmt.Sprintf("cannot read rule set: %v", err)}
	}
	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		format = "yaml"
	}
	return ParseDocument(data, format)
}

// Compile validates rule specs and compiles them into immutable rules.
// knownKinds is the token kind set of the configured tokenizer; a pattern
// referencing a kind outside it fails compilation. Disabled rules are
// skipped. Rule Index preserves declaration order for tie-breaking.
func Compile(specs []interfaces.RuleSpec, knownKinds map[interfaces.TokenKind]bool) ([]interfaces.Rule, error) {
	compiled := make([]interfaces.Rule, 0, len(specs))
	for i, spec := range specs {
		if spec.Disabled {
			continue
		}
		if err := validateSpec(i, spec); err != nil {
			return nil, err
		}

		id := spec.ID
		if id == "" {
			id = fmt.Sprintf("rule-%d", i)
		}

		action := spec.Action
		if action.Confidence == 0 {
			action.Confidence = 1.0
		}

		seq := make([]interfaces.Matcher, 0, len(spec.Pattern))
		for _, el := range spec.Pattern {
			m, err := matchers.CompileElement(el, knownKinds)
			if err != nil {
				return nil, &interfaces.RuleSetError{RuleIndex: i, RuleID: id, Reason: err.Error()}
			}
			seq = append(seq, m)
		}

		compiled = append(compiled, interfaces.Rule{
			ID:          id,
			Index:       i,
			Priority:    spec.Priority,
			Matchers:    seq,
			Action:      action,
			Description: spec.Description,
		})
	}
	return compiled, nil
}

// validateSpec checks the declarative fields of one rule.
func validateSpec(index int, spec interfaces.RuleSpec) error {
	if len(spec.Pattern) == 0 {
		return &interfaces.RuleSetError{RuleIndex: index, RuleID: spec.ID, Reason: "pattern must not be empty"}
	}
	if spec.Action.Template == "" {
		return &interfaces.RuleSetError{RuleIndex: index, RuleID: spec.ID, Reason: "action template is required"}
	}
	if spec.Priority < MinPriority || spec.Priority > MaxPriority {
		return &interfaces.RuleSetError{
			RuleIndex: index,
			RuleID:    spec.ID,
			Reason:    fmt.Sprintf("priority %d out of range [%d, %d]", spec.Priority, MinPriority, MaxPriority),
		}
	}
	if spec.Action.Confidence < 0 || spec.Action.Confidence > 1 {
		return &interfaces.RuleSetError{
			RuleIndex: index,
			RuleID:    spec.ID,
			Reason:    fmt.Sprintf("confidence %g out of range [0, 1]", spec.Action.Confidence),
		}
	}
	return nil
}
