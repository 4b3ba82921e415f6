// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

type (
	// RuleSpec declares a rule before compilation.
	RuleSpec struct {
		Pattern  string
		Category Category
		Priority int

		// WordBoundary requires the match to start & end at a Unicode word boundary.
		WordBoundary bool
	}

	// ruleBuilder holds the state of a NewRuleTable operation.
	ruleBuilder struct {
		logger logrus.FieldLogger

		debug         bool
		priorityOrder bool
	}

	// BuildOption defines the RuleTable building functional option type.
	BuildOption func(*ruleBuilder)
)

const (
	// DefaultPriority is assigned to rules declared without one.
	DefaultPriority = 110

	// WhitespacePriority is the priority of the declared whitespace rule.
	WhitespacePriority = 100
)

// Unicode classes for the declared rules; RE2's `\s`, `\d` & `\w` are ASCII only.
//
// whitespaceClass is the White_Space property, wordClass approximates `\w` of the Unicode regex
// flavours (letters, marks, decimal & letter numbers, connector punctuation, join controls).
const (
	whitespaceClass = `[\s\v\x{85}\p{Z}]`
	digitClass      = `\p{Nd}`
	wordClass       = `[\p{L}\p{M}\p{Nd}\p{Nl}\p{Pc}\x{200C}\x{200D}]`
)

// RuleTable building errors.
var (
	ErrBuildRuleTable = errors.New("failed to build rule table")

	ErrEmptyRuleSource = errors.New("empty rule source")
	ErrInvalidPattern  = errors.New("invalid pattern")
	ErrInvalidCategory = errors.New("invalid token category")

	ErrPanicked = errors.New("recovery from panic")
)

// DefaultRuleSpecs lists the declared rules in match order.
//
// Keywords precede the identifier rule; reordering them classifies `int`, `void` & `return` as
// identifiers.
func DefaultRuleSpecs() []RuleSpec {
	return []RuleSpec{
		{Category: CategoryWhitespace, Pattern: whitespaceClass + `+`, Priority: WhitespacePriority},
		{Category: CategoryConstant, Pattern: digitClass + `+`, Priority: DefaultPriority},
		{Category: CategoryIntKeyword, Pattern: `int`, Priority: DefaultPriority, WordBoundary: true},
		{Category: CategoryVoidKeyword, Pattern: `void`, Priority: DefaultPriority, WordBoundary: true},
		{Category: CategoryReturnKeyword, Pattern: `return`, Priority: DefaultPriority, WordBoundary: true},
		{Category: CategoryIdentifier, Pattern: wordClass + `+`, Priority: DefaultPriority, WordBoundary: true},
		{Category: CategoryOpenParen, Pattern: `\(`, Priority: DefaultPriority},
		{Category: CategoryCloseParen, Pattern: `\)`, Priority: DefaultPriority},
		{Category: CategoryOpenBrace, Pattern: `\{`, Priority: DefaultPriority},
		{Category: CategoryCloseBrace, Pattern: `\}`, Priority: DefaultPriority},
		{Category: CategorySemicolon, Pattern: `;`, Priority: DefaultPriority},
	}
}

// WithBuildLogger configures the logger option.
func WithBuildLogger(logger logrus.FieldLogger) BuildOption {
	return func(b *ruleBuilder) { b.logger = logger }
}

// WithBuildDebug configures the debug option.
func WithBuildDebug(debug bool) BuildOption { return func(b *ruleBuilder) { b.debug = debug } }

// WithPriorityOrder orders the rules by descending priority.
//
// The sort is stable; rules sharing a priority keep their declaration order.
func WithPriorityOrder() BuildOption { return func(b *ruleBuilder) { b.priorityOrder = true } }

// BuildRuleTable compiles the declared rules.
//
// The declared patterns are fixed, a compilation failure panics.
func BuildRuleTable(opts ...BuildOption) *RuleTable {
	table, err := NewRuleTable(DefaultRuleSpecs(), opts...)
	if err != nil {
		panic(err)
	}

	return table
}

// NewRuleTable compiles a RuleTable from a list of RuleSpecs.
func NewRuleTable(specs []RuleSpec, opts ...BuildOption) (table *RuleTable, err error) {
	b := &ruleBuilder{logger: logrus.New()}
	for _, opt := range opts {
		opt(b)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			// Skip expensive operation if not debug.
			if b.debug {
				b.logger.Debugf("rule source: %s", spew.Sdump(specs))
			}

			table = nil
			err = fmt.Errorf("%w: %w", ErrBuildRuleTable, err)
		}
	}()

	if len(specs) < 1 {
		err = ErrEmptyRuleSource
		return
	}

	rules := make([]MatchRule, len(specs))
	for index, spec := range specs {
		if rules[index], err = compileRule(spec); err != nil {
			err = fmt.Errorf("rule %d: %w", index, err)
			return
		}
	}

	if b.priorityOrder {
		// Higher priorities are applied first.
		slices.SortStableFunc(rules, func(x, y MatchRule) int { return y.priority - x.priority })
	}

	if b.debug {
		for index := range rules {
			b.logger.WithFields(logrus.Fields{
				"category": rules[index].category,
				"priority": rules[index].priority,
			}).Debugf("rule %d: %s", index, rules[index].pattern)
		}
	}

	table = &RuleTable{rules: rules}

	return
}

// compileRule compiles a RuleSpec anchoring its pattern at the start of the input.
//
// An anchored match is equivalent to accepting only unanchored matches that start at offset 0.
func compileRule(spec RuleSpec) (rule MatchRule, err error) {
	if spec.Category <= CategoryEmpty || spec.Category >= categoryCount {
		err = fmt.Errorf("%w: %d", ErrInvalidCategory, int(spec.Category))
		return
	}

	re, err := regexp.Compile(`^(?:` + spec.Pattern + `)`)
	if err != nil {
		err = fmt.Errorf("%w (%s) `%s`: %v", ErrInvalidPattern, spec.Category, spec.Pattern, err)
		return
	}

	rule = MatchRule{
		re:       re,
		pattern:  spec.Pattern,
		category: spec.Category,
		priority: spec.Priority,
		boundary: spec.WordBoundary,
	}

	return
}
