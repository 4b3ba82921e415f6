// SPDX-License-Identifier: MIT
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "canonical", input: "identifier", want: CategoryIdentifier},
		{name: "upper case", input: "SEMICOLON", want: CategorySemicolon},
		{name: "padded", input: " whitespace ", want: CategoryWhitespace},
		{name: "number alias", input: "number", want: CategoryConstant},
		{name: "camel case", input: "IntKeyword", want: CategoryIntKeyword},
		{name: "kebab case", input: "close-brace", want: CategoryCloseBrace},
		{name: "sentinel", input: "empty", wantErr: true},
		{name: "unknown", input: "comment", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategory_String(t *testing.T) {
	for c := CategoryWhitespace; c < categoryCount; c++ {
		got, err := ParseCategory(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, got)
	}

	assert.Equal(t, "empty", CategoryEmpty.String())
	assert.Equal(t, "category(-1)", Category(-1).String())
}

func TestToken_String(t *testing.T) {
	tok := Token{Category: CategoryReturnKeyword, Text: "return", Pos: 4}

	assert.Equal(t, "return_keyword: return", tok.String())
	assert.Equal(t, 10, tok.End())
}
