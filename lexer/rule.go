// SPDX-License-Identifier: MIT
package lexer

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

type (
	// MatchRule pairs a Category with a compiled pattern.
	//
	// A MatchRule is immutable once built.
	MatchRule struct {
		re       *regexp.Regexp
		pattern  string
		category Category
		priority int

		// boundary requires the match to start & end at a word boundary.
		boundary bool
	}

	// RuleTable is an ordered, immutable collection of MatchRules.
	//
	// The first rule in order that matches at the cursor wins.
	RuleTable struct {
		rules []MatchRule
	}
)

// Category obtains the MatchRule's Category.
func (m MatchRule) Category() Category { return m.category }

// Pattern obtains the pattern the MatchRule was declared with.
func (m MatchRule) Pattern() string { return m.pattern }

// Priority obtains the MatchRule's priority.
func (m MatchRule) Priority() int { return m.priority }

// WordBoundary reports whether the MatchRule's match must be delimited by word boundaries.
func (m MatchRule) WordBoundary() bool { return m.boundary }

// Match reports the length of the MatchRule's match at the start of input.
//
// ok is false when the pattern does not match at offset 0, only matches the empty string or
// misses a required word boundary.
func (m MatchRule) Match(input string) (length int, ok bool) {
	loc := m.re.FindStringIndex(input)
	if loc == nil || loc[0] != 0 || loc[1] == 0 {
		return
	}

	if m.boundary && !(isWordBoundary(input, 0) && isWordBoundary(input, loc[1])) {
		return
	}

	return loc[1], true
}

// Len retrieves the number of rules in the RuleTable.
func (r *RuleTable) Len() int { return len(r.rules) }

// Rule retrieves the MatchRule at some index.
func (r *RuleTable) Rule(index int) MatchRule { return r.rules[index] }

// Rules retrieves a copy of the RuleTable's rules in match order.
func (r *RuleTable) Rules() []MatchRule {
	rules := make([]MatchRule, len(r.rules))
	copy(rules, r.rules)

	return rules
}

// Match tries each rule in order against the start of input.
//
// The first rule with a non-empty match at offset 0 wins; CategoryEmpty is returned when none
// applies.
func (r *RuleTable) Match(input string) (category Category, length int) {
	for index := range r.rules {
		if n, ok := r.rules[index].Match(input); ok {
			return r.rules[index].category, n
		}
	}

	return CategoryEmpty, 0
}

// isWordBoundary reports whether the word-ness of the runes on either side of offset differs.
//
// The ends of input count as non-word runes.
func isWordBoundary(input string, offset int) bool {
	before, after := false, false

	if offset > 0 {
		r, _ := utf8.DecodeLastRuneInString(input[:offset])
		before = isWordRune(r)
	}
	if offset < len(input) {
		r, _ := utf8.DecodeRuneInString(input[offset:])
		after = isWordRune(r)
	}

	return before != after
}

// isWordRune return true for the runes of the wordClass pattern.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.In(r, unicode.Nd, unicode.Nl, unicode.Pc) ||
		r == '\u200c' || r == '\u200d'
}
