// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Render writes Tokens to w, one `category: text` line per Token.
func Render(w io.Writer, tokens []Token) (err error) {
	for index := range tokens {
		if _, err = fmt.Fprintln(w, tokens[index].String()); err != nil {
			return
		}
	}

	return
}

// Serialize transforms Tokens into `category: text` lines.
func Serialize(tokens []Token) string {
	var buffer strings.Builder

	// Render can't fail on a strings.Builder.
	_ = Render(&buffer, tokens)

	return buffer.String()
}

// Improves on performance compared to ORs for the ASCII whitespace runes.
var whitespace = [utf8.RuneSelf]bool{
	' ':  true,
	'\t': true,
	'\n': true,
	'\v': true,
	'\f': true,
	'\r': true,
}

// Reconstruct rebuilds the scanned text from Tokens, restoring elided whitespace from source.
//
// ok is false when a Token's text differs from the source at its position, Tokens overlap or the
// text between Tokens is not whitespace.
func Reconstruct(source string, tokens []Token) (output string, ok bool) {
	var buffer strings.Builder
	buffer.Grow(len(source))

	pos := 0
	for _, t := range tokens {
		if t.Pos < pos || t.End() > len(source) || source[t.Pos:t.End()] != t.Text {
			return
		}

		if !isWhitespace(source[pos:t.Pos]) {
			return
		}

		buffer.WriteString(source[pos:t.Pos])
		buffer.WriteString(t.Text)
		pos = t.End()
	}

	if !isWhitespace(source[pos:]) {
		return
	}
	buffer.WriteString(source[pos:])

	return buffer.String(), true
}

// isWhitespace reports whether text consists only of runes matched by the whitespace rule.
func isWhitespace(text string) bool {
	for _, r := range text {
		if r < utf8.RuneSelf {
			if !whitespace[r] {
				return false
			}
			continue
		}

		// unicode.IsSpace covers the White_Space property, as does whitespaceClass.
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
