// SPDX-License-Identifier: MIT
package lexer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// ruleDocument is the JSON rule source layout.
	//
	//	{"tokens": [{"tokenType": "int_keyword", "regex": "int", "priority": 110, "wordBoundary": true}]}
	ruleDocument struct {
		Tokens []ruleEntry `json:"tokens"`
	}

	ruleEntry struct {
		Priority     *int   `json:"priority,omitempty"`
		TokenType    string `json:"tokenType"`
		Regex        string `json:"regex"`
		WordBoundary bool   `json:"wordBoundary,omitempty"`
	}
)

// Rule loading errors.
var (
	ErrInvalidRuleSource = errors.New("invalid rule source")
)

// LoadRules reads a JSON rule source into a RuleTable.
//
// The entries' order is the RuleTable's declaration order.
func LoadRules(r io.Reader, opts ...BuildOption) (table *RuleTable, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInvalidRuleSource, err)
		return
	}

	return ParseRules(data, opts...)
}

// ParseRules parses a JSON rule source into a RuleTable.
func ParseRules(data []byte, opts ...BuildOption) (table *RuleTable, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("%w: %w", ErrInvalidRuleSource, err)
		}
	}()

	var doc ruleDocument

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&doc); err != nil {
		return
	}
	if dec.More() {
		err = errors.New("trailing data after rule document")
		return
	}

	if len(doc.Tokens) < 1 {
		err = ErrEmptyRuleSource
		return
	}

	specs := make([]RuleSpec, len(doc.Tokens))
	for index, entry := range doc.Tokens {
		if specs[index], err = entry.spec(); err != nil {
			err = fmt.Errorf("entry %d: %w", index, err)
			return
		}
	}

	return NewRuleTable(specs, opts...)
}

// spec converts a ruleEntry into a RuleSpec.
func (e *ruleEntry) spec() (spec RuleSpec, err error) {
	if spec.Category, err = ParseCategory(e.TokenType); err != nil {
		err = fmt.Errorf("%w, expected one of: %s", err, strings.Join(CategoryNames(), ", "))
		return
	}

	if e.Regex == "" {
		err = fmt.Errorf("%w (%s): empty regex", ErrInvalidPattern, spec.Category)
		return
	}
	spec.Pattern, spec.WordBoundary = e.Regex, e.WordBoundary

	spec.Priority = DefaultPriority
	if e.Priority != nil {
		spec.Priority = *e.Priority
	}

	return
}

// CategoryNames lists the names accepted by ParseCategory, sorted.
func CategoryNames() []string {
	names := make(map[string]struct{}, len(categoryNames)+len(categoryAliases))
	for index := CategoryWhitespace; index < categoryCount; index++ {
		names[categoryNames[index]] = struct{}{}
	}
	for alias := range categoryAliases {
		names[alias] = struct{}{}
	}

	list := maps.Keys(names)
	slices.Sort(list)

	return list
}
