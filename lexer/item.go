// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"strings"
)

type (
	// Category identifies the lexical class of a Token.
	Category int

	// ItemID int holding an identifier for the Item tokens
	ItemID int

	// Token is a classified, verbatim substring of the source.
	Token struct {
		Text     string   // The matched text, not normalized
		Category Category // The lexical class of this Token
		Pos      int      // The starting position, (in bytes) of this Token
	}

	// Item type holding a Token or the error that terminated a Lex operation.
	Item struct {
		Err   error
		Token Token
		ID    ItemID // The type of this Item
	}
)

// The zero value is the no-match sentinel.
const (
	CategoryEmpty Category = iota
	CategoryWhitespace
	CategoryConstant
	CategoryIntKeyword
	CategoryVoidKeyword
	CategoryReturnKeyword
	CategoryIdentifier
	CategoryOpenParen
	CategoryCloseParen
	CategoryOpenBrace
	CategoryCloseBrace
	CategorySemicolon

	categoryCount
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_         = iota // Consume 0 to start actual numbering at 1.
	ItemError        // Notify occurrence of an `error`.
	ItemEOF          // End of the source.
	ItemToken        // A scanned Token.
)

var categoryNames = [categoryCount]string{
	CategoryEmpty:         "empty",
	CategoryWhitespace:    "whitespace",
	CategoryConstant:      "constant",
	CategoryIntKeyword:    "int_keyword",
	CategoryVoidKeyword:   "void_keyword",
	CategoryReturnKeyword: "return_keyword",
	CategoryIdentifier:    "identifier",
	CategoryOpenParen:     "open_paren",
	CategoryCloseParen:    "close_paren",
	CategoryOpenBrace:     "open_brace",
	CategoryCloseBrace:    "close_brace",
	CategorySemicolon:     "semicolon",
}

// categoryAliases holds alternative spellings accepted by ParseCategory.
var categoryAliases = map[string]Category{
	"number":        CategoryConstant,
	"numeric":       CategoryConstant,
	"intkeyword":    CategoryIntKeyword,
	"voidkeyword":   CategoryVoidKeyword,
	"returnkeyword": CategoryReturnKeyword,
	"openparen":     CategoryOpenParen,
	"closeparen":    CategoryCloseParen,
	"openbrace":     CategoryOpenBrace,
	"closebrace":    CategoryCloseBrace,
}

// String is the fmt.Stringer implementation for Category.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("category(%d)", int(c))
	}

	return categoryNames[c]
}

// ParseCategory maps a category name to its Category.
//
// Matching is case-insensitive; the sentinel CategoryEmpty is not parsable.
func ParseCategory(name string) (c Category, err error) {
	key := strings.ToLower(strings.TrimSpace(name))

	for index := CategoryWhitespace; index < categoryCount; index++ {
		if categoryNames[index] == key {
			c = index
			return
		}
	}

	if alias, ok := categoryAliases[strings.ReplaceAll(key, "-", "")]; ok {
		c = alias
		return
	}

	err = fmt.Errorf("%w: %q", ErrInvalidCategory, name)

	return
}

// String renders the Token as `category: text`.
func (t Token) String() string { return t.Category.String() + ": " + t.Text }

// End is the byte offset immediately after the Token.
func (t Token) End() int { return t.Pos + len(t.Text) }
