// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const declaredRulesJSON = `{
  "tokens": [
    {"tokenType": "whitespace", "regex": "[\\s\\v\\x{85}\\p{Z}]+", "priority": 100},
    {"tokenType": "constant", "regex": "\\p{Nd}+"},
    {"tokenType": "int_keyword", "regex": "int", "wordBoundary": true},
    {"tokenType": "void_keyword", "regex": "void", "wordBoundary": true},
    {"tokenType": "return_keyword", "regex": "return", "wordBoundary": true},
    {"tokenType": "identifier", "regex": "[\\p{L}\\p{M}\\p{Nd}\\p{Nl}\\p{Pc}\\x{200C}\\x{200D}]+", "wordBoundary": true},
    {"tokenType": "open_paren", "regex": "\\("},
    {"tokenType": "close_paren", "regex": "\\)"},
    {"tokenType": "open_brace", "regex": "\\{"},
    {"tokenType": "close_brace", "regex": "\\}"},
    {"tokenType": "semicolon", "regex": ";"}
  ]
}`

func TestLoadRules(t *testing.T) {
	table, err := LoadRules(strings.NewReader(declaredRulesJSON))
	require.NoError(t, err)

	declared := DefaultRules()
	require.Equal(t, declared.Len(), table.Len())
	for index := 0; index < table.Len(); index++ {
		assert.Equal(t, declared.Rule(index).Category(), table.Rule(index).Category())
		assert.Equal(t, declared.Rule(index).Pattern(), table.Rule(index).Pattern())
		assert.Equal(t, declared.Rule(index).Priority(), table.Rule(index).Priority())
		assert.Equal(t, declared.Rule(index).WordBoundary(), table.Rule(index).WordBoundary())
	}

	source := "int main() { return 0; int\u00a0inté; }"
	want, err := Scan(source)
	require.NoError(t, err)

	got, err := New(WithRules(table)).Scan(source)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseRules(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		wantLen int
	}{
		{
			name: "aliases",
			input: `{"tokens": [
				{"tokenType": "whitespace", "regex": "\\s"},
				{"tokenType": "number", "regex": "\\d"}
			]}`,
			wantLen: 2,
		},
		{
			name:    "malformed",
			input:   `{"tokens": [`,
			wantErr: ErrInvalidRuleSource,
		},
		{
			name:    "not an object",
			input:   `["whitespace"]`,
			wantErr: ErrInvalidRuleSource,
		},
		{
			name:    "unknown field",
			input:   `{"tokens": [{"tokenType": "whitespace", "pattern": "\\s"}]}`,
			wantErr: ErrInvalidRuleSource,
		},
		{
			name:    "trailing document",
			input:   `{"tokens": [{"tokenType": "semicolon", "regex": ";"}]} {}`,
			wantErr: ErrInvalidRuleSource,
		},
		{
			name:    "empty tokens",
			input:   `{"tokens": []}`,
			wantErr: ErrEmptyRuleSource,
		},
		{
			name:    "unknown token type",
			input:   `{"tokens": [{"tokenType": "comment", "regex": "//"}]}`,
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "empty regex",
			input:   `{"tokens": [{"tokenType": "semicolon", "regex": ""}]}`,
			wantErr: ErrInvalidPattern,
		},
		{
			name:    "invalid regex",
			input:   `{"tokens": [{"tokenType": "open_paren", "regex": "("}]}`,
			wantErr: ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseRules([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, ErrInvalidRuleSource)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, table)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, table.Len())
		})
	}
}

func TestParseRules_Scan(t *testing.T) {
	table, err := ParseRules([]byte(`{"tokens": [
		{"tokenType": "whitespace", "regex": "\\s"},
		{"tokenType": "number", "regex": "\\d"}
	]}`))
	require.NoError(t, err)

	got, err := New(WithRules(table)).Scan("1 23")
	require.NoError(t, err)
	assert.Equal(t, []Token{
		{Category: CategoryConstant, Text: "1", Pos: 0},
		{Category: CategoryConstant, Text: "2", Pos: 2},
		{Category: CategoryConstant, Text: "3", Pos: 3},
	}, got)
}

func TestCategoryNames(t *testing.T) {
	names := CategoryNames()

	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "number")
	assert.Contains(t, names, "identifier")
	assert.NotContains(t, names, "empty")
}
