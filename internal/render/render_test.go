package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/dekarrin/tkrlang/internal/config"
	"github.com/dekarrin/tkrlang/internal/lexer"
	"github.com/dekarrin/tkrlang/internal/tkrerrors"
	"github.com/dekarrin/tkrlang/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Tokens_List(t *testing.T) {
	toks := []token.Token{
		{Kind: token.KwLet, Pos: 0, Len: 3},
		{Kind: token.Ident("x"), Pos: 4, Len: 1},
		{Kind: token.SymLte, Pos: 6, Len: 2},
	}

	testCases := []struct {
		name   string
		spans  bool
		expect string
	}{
		{name: "with spans", spans: true, expect: "Keyword(Let)@[0,3)\nIdent(\"x\")@[4,5)\nSymbol(Lte)@[6,8)"},
		{name: "without spans", spans: false, expect: "Keyword(Let)\nIdent(\"x\")\nSymbol(Lte)"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			out := config.Output{Style: config.StyleList, Width: 80, Spans: tc.spans}

			assert.Equal(tc.expect, Tokens(nil, toks, out))
		})
	}
}

func Test_Tokens_Kinds(t *testing.T) {
	assert := assert.New(t)

	toks := []token.Token{
		{Kind: token.I32(1), Pos: 0, Len: 1},
		{Kind: token.SymAdd, Pos: 2, Len: 1},
		{Kind: token.F64(2.5), Pos: 4, Len: 3},
	}
	out := config.Output{Style: config.StyleKinds, Width: 80}

	assert.Equal("I32(1) Symbol(Add) F64(2.5)", strings.TrimRight(Tokens(nil, toks, out), "\n"))
}

func Test_Tokens_Table(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	src := "let s = \"a b\";"
	toks, err := lexer.Lex(src)
	require.NoError(err)

	out := config.Output{Style: config.StyleTable, Width: 80, Spans: true}
	actual := Tokens([]rune(src), toks, out)

	assert.Contains(actual, "CLASS")
	assert.Contains(actual, "KIND")
	assert.Contains(actual, "SPAN")
	assert.Contains(actual, "LEXEME")
	assert.Contains(actual, "Keyword(Let)")
	assert.Contains(actual, `String("a b")`)
	assert.Contains(actual, `"\"a b\""`)
	assert.Contains(actual, "8-13")

	out.Spans = false
	actual = Tokens(nil, toks, out)

	assert.Contains(actual, "CLASS")
	assert.NotContains(actual, "SPAN")
	assert.NotContains(actual, "LEXEME")
	assert.Contains(actual, "Symbol(Semicolon)")
}

func Test_Error(t *testing.T) {
	testCases := []struct {
		name          string
		input         func() error
		expectContain []string
	}{
		{
			name: "syntax error shows cursor",
			input: func() error {
				_, err := lexer.Lex("x = $")
				return err
			},
			expectContain: []string{"x = $\n    ^\n", "line 1, char 5", "unexpected '$'"},
		},
		{
			name:          "input error shows human message",
			input:         func() error { return tkrerrors.Input("That is not a format", "bad format") },
			expectContain: []string{"That is not a format"},
		},
		{
			name:          "plain error",
			input:         func() error { return errors.New("something broke") },
			expectContain: []string{"something broke"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Error(tc.input(), 80)

			for _, s := range tc.expectContain {
				assert.Contains(actual, s)
			}
		})
	}
}

func Test_Error_Wraps(t *testing.T) {
	assert := assert.New(t)

	msg := strings.Repeat("word ", 40)
	actual := Error(errors.New(msg), 30)

	for _, line := range strings.Split(actual, "\n") {
		assert.LessOrEqual(len(line), 30)
	}
}

func Test_Help(t *testing.T) {
	assert := assert.New(t)

	actual := Help(80)

	for _, e := range helpEntries {
		assert.Contains(actual, e.usage)
	}
}
