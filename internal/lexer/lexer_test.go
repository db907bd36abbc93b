package lexer

import (
	"strings"
	"testing"

	"github.com/dekarrin/tkrlang/internal/analyzer"
	"github.com/dekarrin/tkrlang/internal/cursor"
	"github.com/dekarrin/tkrlang/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i := range toks {
		ks[i] = toks[i].Kind
	}
	return ks
}

func Test_Lex(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []token.Kind
	}{
		{name: "single ident", input: "x", expect: []token.Kind{token.Ident("x")}},
		{name: "lte is one symbol", input: "<=", expect: []token.Kind{token.SymLte}},
		{name: "lt alone", input: "<", expect: []token.Kind{token.SymLt}},
		{name: "lt then space then assign", input: "< =", expect: []token.Kind{token.SymLt, token.SymAssign}},
		{name: "all multi-char operators", input: "!= ** && || <= >= ==", expect: []token.Kind{
			token.SymNe, token.SymPow, token.SymAnd, token.SymOr, token.SymLte, token.SymGte, token.SymEq,
		}},
		{name: "single char prefixes of operators", input: "! * & | < > =", expect: []token.Kind{
			token.SymNot, token.SymMul, token.SymBitAnd, token.SymBitOr, token.SymLt, token.SymGt, token.SymAssign,
		}},
		{name: "operators without spaces", input: "a<=b", expect: []token.Kind{token.Ident("a"), token.SymLte, token.Ident("b")}},
		{name: "triple star", input: "***", expect: []token.Kind{token.SymPow, token.SymMul}},
		{name: "int defaults to i32", input: "3", expect: []token.Kind{token.I32(3)}},
		{name: "i32 suffix", input: "3i32", expect: []token.Kind{token.I32(3)}},
		{name: "i64 suffix", input: "3i64", expect: []token.Kind{token.I64(3)}},
		{name: "big i64", input: "9000000000i64", expect: []token.Kind{token.I64(9000000000)}},
		{name: "float defaults to f64", input: "3.0", expect: []token.Kind{token.F64(3.0)}},
		{name: "f32 suffix", input: "3.0f32", expect: []token.Kind{token.F32(3.0)}},
		{name: "f64 suffix", input: "2.5f64", expect: []token.Kind{token.F64(2.5)}},
		{name: "dot without digits is not a fraction", input: "3.x", expect: []token.Kind{token.I32(3), token.SymDot, token.Ident("x")}},
		{name: "trailing dot", input: "3.", expect: []token.Kind{token.I32(3), token.SymDot}},
		{name: "dot then digits after ident is not a float", input: "a.5", expect: []token.Kind{token.Ident("a"), token.SymDot, token.I32(5)}},
		{name: "leading dot is not a float", input: ".5", expect: []token.Kind{token.SymDot, token.I32(5)}},
		{name: "keyword", input: "if", expect: []token.Kind{token.KwIf}},
		{name: "keyword prefix is ident", input: "iffy", expect: []token.Kind{token.Ident("iffy")}},
		{name: "float type keyword is capitalized", input: "F32 f32", expect: []token.Kind{token.KwF32, token.Ident("f32")}},
		{name: "ident with digits and underscore", input: "a_1b", expect: []token.Kind{token.Ident("a_1b")}},
		{name: "div between idents", input: "a / b", expect: []token.Kind{token.Ident("a"), token.SymDiv, token.Ident("b")}},
		{name: "line comment", input: "a // the rest\nb", expect: []token.Kind{token.Ident("a"), token.Ident("b")}},
		{name: "line comment at end of input", input: "a // no newline", expect: []token.Kind{token.Ident("a")}},
		{name: "block comment", input: "a /* skip */ b", expect: []token.Kind{token.Ident("a"), token.Ident("b")}},
		{name: "nested block comment", input: "/* a /* b */ c */ x", expect: []token.Kind{token.Ident("x")}},
		{name: "block comment with stars", input: "/** a * b **/ x", expect: []token.Kind{token.Ident("x")}},
		{name: "leading and trailing space", input: " \t\n x \n\t ", expect: []token.Kind{token.Ident("x")}},
		{name: "char literal", input: "'a'", expect: []token.Kind{token.Char('a')}},
		{name: "char escaped quote", input: `'\''`, expect: []token.Kind{token.Char('\'')}},
		{name: "char hex escape", input: `'\x41'`, expect: []token.Kind{token.Char('A')}},
		{name: "string literal", input: `"hi"`, expect: []token.Kind{token.Str("hi")}},
		{name: "empty string", input: `""`, expect: []token.Kind{token.Str("")}},
		{name: "string tab escape", input: `"a\tb"`, expect: []token.Kind{token.Str("a\tb")}},
		{name: "string all simple escapes", input: `"\t\n\r\\\""`, expect: []token.Kind{token.Str("\t\n\r\\\"")}},
		{name: "string single quote is plain", input: `"it's"`, expect: []token.Kind{token.Str("it's")}},
		{name: "string unicode escapes", input: `"é\U0001F600"`, expect: []token.Kind{token.Str("é\U0001F600")}},
		{name: "statement", input: "let x = 3;", expect: []token.Kind{
			token.KwLet, token.Ident("x"), token.SymAssign, token.I32(3), token.SymSemicolon,
		}},
		{name: "function", input: "fun f(a: i32) { return a ** 2.5f32; }", expect: []token.Kind{
			token.KwFun, token.Ident("f"), token.SymOpenParen, token.Ident("a"), token.SymColon, token.KwI32,
			token.SymCloseParen, token.SymOpenBrace, token.KwReturn, token.Ident("a"), token.SymPow,
			token.F32(2.5), token.SymSemicolon, token.SymCloseBrace,
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Lex(tc.input)

			if !assert.NoError(err) {
				return
			}
			assert.Equal(tc.expect, kinds(actual))
		})
	}
}

func Test_Lex_Errors(t *testing.T) {
	testCases := []struct {
		name            string
		input           string
		expectOffset    int
		expectExpecting string
	}{
		{name: "empty input", input: "", expectOffset: 0, expectExpecting: "token"},
		{name: "only whitespace", input: "  ", expectOffset: 2, expectExpecting: "token"},
		{name: "unknown symbol first", input: "$", expectOffset: 0, expectExpecting: "token"},
		{name: "unknown symbol later", input: "a $", expectOffset: 2, expectExpecting: "token or end of input"},
		{name: "float suffix on int", input: "3f64", expectOffset: 4, expectExpecting: "integer suffix i32 or i64"},
		{name: "int suffix on float", input: "3.0i32", expectOffset: 6, expectExpecting: "float suffix f32 or f64"},
		{name: "unknown suffix", input: "3abc", expectOffset: 4, expectExpecting: "integer suffix i32 or i64"},
		{name: "i32 overflow", input: "2147483648", expectOffset: 10, expectExpecting: "number in range of i32"},
		{name: "i64 overflow", input: "9223372036854775808i64", expectOffset: 22, expectExpecting: "number in range of i64"},
		{name: "unknown escape", input: `"\q"`, expectOffset: 2, expectExpecting: "escape sequence"},
		{name: "bad hex digit", input: `'\x4g'`, expectOffset: 4, expectExpecting: "hex digit"},
		{name: "surrogate", input: `"\uD800"`, expectOffset: 7, expectExpecting: "unicode scalar value"},
		{name: "above max scalar", input: `"\U00110000"`, expectOffset: 11, expectExpecting: "unicode scalar value"},
		{name: "unterminated string", input: `"abc`, expectOffset: 4, expectExpecting: `'"'`},
		{name: "empty char", input: `''`, expectOffset: 1, expectExpecting: `'\\'`},
		{name: "char with two symbols", input: `'ab'`, expectOffset: 2, expectExpecting: `'\''`},
		{name: "unterminated block comment", input: "x /* abc", expectOffset: 8, expectExpecting: "end of block comment"},
		{name: "unterminated nested block comment", input: "/* a /* b */", expectOffset: 12, expectExpecting: "end of block comment"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := Lex(tc.input)

			var synErr *SyntaxError
			if !assert.ErrorAs(err, &synErr) {
				return
			}
			assert.Equal(tc.expectOffset, synErr.Offset())
			assert.Equal(tc.expectExpecting, synErr.Expecting())

			aErr, ok := analyzer.AsError[rune](err)
			assert.True(ok)
			assert.Equal(tc.expectOffset, aErr.Pos)
		})
	}
}

func Test_Lex_SpansCoverSource(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "spaces", input: "let x = 3;", expect: "letx=3;"},
		{name: "comments", input: "a/*c*/+ // d\n\"s t\"", expect: `a+"s t"`},
		{name: "numbers and operators", input: "1.5f32<=x**2i64", expect: "1.5f32<=x**2i64"},
		{name: "escapes keep source text", input: `'\n' "\x41"`, expect: `'\n'"\x41"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			src := []rune(tc.input)
			toks, err := LexRunes(src)
			require.NoError(err)

			var sb strings.Builder
			prevEnd := 0
			for _, tok := range toks {
				assert.GreaterOrEqual(tok.Pos, prevEnd, "token %s overlaps previous", tok)
				assert.Positive(tok.Len)
				sb.WriteString(tok.Lexeme(src))
				prevEnd = tok.End()
			}

			assert.Equal(tc.expect, sb.String())
		})
	}
}

func Test_Skip_Idempotent(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect int
	}{
		{name: "nothing to skip", input: "x", expect: 0},
		{name: "spaces", input: "  \t\nx", expect: 4},
		{name: "comments and spaces", input: "// a\n /* b /* c */ */ x", expect: 22},
		{name: "everything", input: " // only a comment", expect: 18},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c := cursor.New([]rune(tc.input))
			_, err := Skip().Analyze(c)
			assert.NoError(err)
			assert.Equal(tc.expect, c.Position())

			_, err = Skip().Analyze(c)
			assert.NoError(err)
			assert.Equal(tc.expect, c.Position())
		})
	}
}

func Test_OneToken_Span(t *testing.T) {
	assert := assert.New(t)

	c := cursor.New([]rune("ab  <=  \"x\""))
	_ = c.SetPosition(4)

	tok, err := OneToken().Analyze(c)

	assert.NoError(err)
	assert.Equal(token.Token{Kind: token.SymLte, Pos: 4, Len: 2}, tok)
}

func Test_Stream(t *testing.T) {
	assert := assert.New(t)

	s, err := Stream("a + 1")

	assert.NoError(err)
	assert.Equal(3, s.Remaining())
	assert.Equal(token.Ident("a"), s.Next().Kind)
	assert.Equal(token.SymAdd, s.Next().Kind)
	assert.Equal(token.I32(1), s.Next().Kind)
}

func Test_SyntaxError_Location(t *testing.T) {
	assert := assert.New(t)

	_, err := Lex("let x = 1;\nlet y = $;")

	var synErr *SyntaxError
	if !assert.ErrorAs(err, &synErr) {
		return
	}
	assert.Equal(2, synErr.Line())
	assert.Equal(9, synErr.Position())
	assert.Equal(19, synErr.Offset())
	assert.Equal("let y = $;", synErr.SourceLine())
	assert.Equal("let y = $;\n        ^", synErr.SourceLineWithCursor())
	assert.Equal("syntax error: around line 2, char 9: unexpected '$'; expecting token or end of input", synErr.Error())
	assert.Equal("let y = $;\n        ^\nsyntax error: around line 2, char 9: unexpected '$'; expecting token or end of input", synErr.FullMessage())
}
