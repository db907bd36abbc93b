package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/dekarrin/tkrlang/internal/analyzer"
	"github.com/dekarrin/tkrlang/internal/cursor"
	"github.com/dekarrin/tkrlang/internal/token"
)

// file rules.go contains the grammar of the lexer, each rule built from the
// combinators in package analyzer. Every rule is a function that builds a new
// Analyzer; none of them hold state between calls.

func isSpace(r rune) bool {
	return r == ' ' || r == '\n' || r == '\t'
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentRune(r rune) bool {
	return isAlpha(r) || isDigit(r) || r == '_'
}

func isHex(r rune) bool {
	return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}

func discard[O any](O) struct{} {
	return struct{}{}
}

// Space matches a single whitespace symbol: a space, newline, or tab.
func Space() analyzer.Analyzer[rune, struct{}] {
	return analyzer.Map(analyzer.Msg(analyzer.Satisfy(isSpace), "whitespace"), discard[rune])
}

// LineComment matches a comment running from "//" up to and including the end
// of the line, or up to the end of input if there is no newline.
func LineComment() analyzer.Analyzer[rune, struct{}] {
	notNewline := analyzer.Satisfy(func(r rune) bool { return r != '\n' })

	body := analyzer.With(analyzer.Many(notNewline), analyzer.Optional(analyzer.Token('\n')))
	return analyzer.Map(analyzer.With(analyzer.Attempt(analyzer.String("//")), body), discard[analyzer.Option[rune]])
}

// BlockComment matches a comment running from "/*" to the matching "*/".
// Block comments nest, so "/* a /* b */ c */" is a single comment.
func BlockComment() analyzer.Analyzer[rune, struct{}] {
	self := analyzer.NewHandle[rune, struct{}]()
	var recurse analyzer.Analyzer[rune, struct{}] = self

	stop := analyzer.Fail[rune, struct{}]()
	anySym := analyzer.Map(analyzer.AnyOne[rune](), discard[rune])

	step := analyzer.Func[rune, struct{}](func(c *cursor.Cursor[rune]) (struct{}, error) {
		first, _ := c.Peek()
		second, ok := c.PeekAt(1)

		if ok && first == '/' && second == '*' {
			return recurse.Analyze(c)
		}
		if ok && first == '*' && second == '/' {
			return stop.Analyze(c)
		}
		return anySym.Analyze(c)
	})

	open := analyzer.Attempt(analyzer.String("/*"))
	closer := analyzer.Msg(analyzer.String("*/"), "end of block comment")

	body := analyzer.With(open, analyzer.With(analyzer.Many[rune, struct{}](step), closer))
	self.Bind(analyzer.Map(body, discard[string]))

	return recurse
}

// Comment matches either a line comment or a block comment.
func Comment() analyzer.Analyzer[rune, struct{}] {
	return analyzer.Or(LineComment(), BlockComment())
}

// Skip matches any amount of whitespace and comments, including none at all.
func Skip() analyzer.Analyzer[rune, struct{}] {
	return analyzer.Map(analyzer.Many(analyzer.Or(Space(), Comment())), discard[[]struct{}])
}

// IdentStr matches an ASCII letter followed by any number of ASCII letters,
// digits, and underscores, and produces the matched text.
func IdentStr() analyzer.Analyzer[rune, string] {
	first := analyzer.Msg(analyzer.Satisfy(isAlpha), "identifier")
	rest := analyzer.Many(analyzer.Satisfy(isIdentRune))

	return analyzer.Map(analyzer.And(first, rest), func(p analyzer.Pair[rune, []rune]) string {
		return string(p.First) + string(p.Second)
	})
}

// IdentOrKeyword matches an identifier and produces the Keyword it spells, or
// an Ident if it is not a reserved word. The entire identifier is read before
// checking, so "iffy" is an Ident and not the keyword "if" followed by more
// text.
func IdentOrKeyword() analyzer.Analyzer[rune, token.Kind] {
	return analyzer.Map(IdentStr(), func(s string) token.Kind {
		if kw, ok := token.LookupKeyword(s); ok {
			return kw
		}
		return token.Ident(s)
	})
}

// symbolOrder is the order that symbols are tried in. Any symbol whose text is
// a prefix of another's must come after it.
var symbolOrder = []token.Symbol{
	token.SymDot,
	token.SymComma,
	token.SymColon,
	token.SymSemicolon,
	token.SymOpenParen,
	token.SymCloseParen,
	token.SymOpenBracket,
	token.SymCloseBracket,
	token.SymOpenBrace,
	token.SymCloseBrace,
	token.SymNe,
	token.SymNot,
	token.SymAdd,
	token.SymSub,
	token.SymPow,
	token.SymMul,
	token.SymDiv,
	token.SymMod,
	token.SymAnd,
	token.SymBitAnd,
	token.SymOr,
	token.SymBitOr,
	token.SymBitXor,
	token.SymLte,
	token.SymLt,
	token.SymGte,
	token.SymGt,
	token.SymEq,
	token.SymAssign,
}

// Symbol matches an operator or punctuation mark. Multi-character operators
// are tried before the single-character operators they start with, so "<="
// is always Lte and never Lt followed by Assign.
func Symbol() analyzer.Analyzer[rune, token.Symbol] {
	alts := make([]analyzer.Analyzer[rune, token.Symbol], len(symbolOrder))
	for i, sym := range symbolOrder {
		text := []rune(sym.Text())
		if len(text) == 1 {
			alts[i] = analyzer.As(analyzer.Token(text[0]), sym)
		} else {
			alts[i] = analyzer.Attempt(analyzer.As(analyzer.Tokens(text), sym))
		}
	}
	return analyzer.Msg(analyzer.Choice(alts...), "symbol")
}

// NumLiteral matches a numeric literal: one or more decimal digits, optionally
// followed by a '.' and more digits, optionally followed by a type suffix.
//
// A literal with a fractional part is an F64, or an F32 with suffix "f32". A
// literal without one is an I32, or an I64 with suffix "i64". Any other suffix,
// including a float suffix on a literal with no fractional part, fails the
// rule, as does a value that cannot be represented in the selected width.
//
// A '.' that is not followed by a digit is not part of the literal and is left
// for the next token, so "3.x" is I32(3), Dot, Ident("x"). A literal never
// starts with '.', so ".5" is Dot, I32(5).
func NumLiteral() analyzer.Analyzer[rune, token.Num] {
	digits := analyzer.Map(analyzer.Many1(analyzer.Msg(analyzer.Satisfy(isDigit), "digit")), func(ds []rune) string {
		return string(ds)
	})
	fraction := analyzer.Attempt(analyzer.With(analyzer.Token('.'), digits))

	whole := analyzer.And(digits, analyzer.Optional(fraction))
	literal := analyzer.And(whole, analyzer.Optional(IdentStr()))

	return analyzer.Then(literal, func(p analyzer.Pair[analyzer.Pair[string, analyzer.Option[string]], analyzer.Option[string]]) analyzer.Analyzer[rune, token.Num] {
		intPart := p.First.First
		fracPart, hasFrac := p.First.Second.Get()
		suffix, _ := p.Second.Get()

		num, ok := convertNum(intPart, fracPart, hasFrac, suffix)
		if !ok {
			return analyzer.Msg(analyzer.Fail[rune, token.Num](), numExpectation(hasFrac, suffix))
		}
		return analyzer.Val[rune](num)
	})
}

func numExpectation(hasFrac bool, suffix string) string {
	if hasFrac {
		if suffix == "" || suffix == "f32" || suffix == "f64" {
			return "number in range of " + floatSuffixOrDefault(suffix)
		}
		return "float suffix f32 or f64"
	}
	if suffix == "" || suffix == "i32" || suffix == "i64" {
		return "number in range of " + intSuffixOrDefault(suffix)
	}
	return "integer suffix i32 or i64"
}

func floatSuffixOrDefault(s string) string {
	if s == "" {
		return "f64"
	}
	return s
}

func intSuffixOrDefault(s string) string {
	if s == "" {
		return "i32"
	}
	return s
}

// convertNum returns false if the suffix does not fit the literal or the value
// does not fit the width.
func convertNum(intPart, fracPart string, hasFrac bool, suffix string) (token.Num, bool) {
	if hasFrac {
		text := intPart + "." + fracPart
		switch suffix {
		case "", "f64":
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, false
			}
			return token.F64(v), true
		case "f32":
			v, err := strconv.ParseFloat(text, 32)
			if err != nil {
				return nil, false
			}
			return token.F32(v), true
		default:
			return nil, false
		}
	}

	switch suffix {
	case "", "i32":
		v, err := strconv.ParseInt(intPart, 10, 32)
		if err != nil {
			return nil, false
		}
		return token.I32(v), true
	case "i64":
		v, err := strconv.ParseInt(intPart, 10, 64)
		if err != nil {
			return nil, false
		}
		return token.I64(v), true
	default:
		return nil, false
	}
}

// HexChar matches exactly n hex digits and produces the Unicode scalar value
// they encode. It fails if the value is a surrogate or is above U+10FFFF.
func HexChar(n int) analyzer.Analyzer[rune, rune] {
	digits := analyzer.Exactly(analyzer.Msg(analyzer.Satisfy(isHex), "hex digit"), n)

	return analyzer.Then(digits, func(ds []rune) analyzer.Analyzer[rune, rune] {
		v, err := strconv.ParseUint(string(ds), 16, 32)
		if err != nil || !utf8.ValidRune(rune(v)) {
			return analyzer.Msg(analyzer.Fail[rune, rune](), "unicode scalar value")
		}
		return analyzer.Val[rune](rune(v))
	})
}

// escape returns the rule for what follows the backslash of an escape
// sequence in a literal quoted with q.
func escape(q rune) analyzer.Analyzer[rune, rune] {
	isEscapeLetter := func(r rune) bool {
		switch r {
		case 't', 'n', 'r', '\\', 'x', 'u', 'U':
			return true
		default:
			return r == q
		}
	}
	letter := analyzer.Msg(analyzer.Satisfy(isEscapeLetter), "escape sequence")

	return analyzer.Then(letter, func(r rune) analyzer.Analyzer[rune, rune] {
		switch r {
		case 't':
			return analyzer.Val[rune]('\t')
		case 'n':
			return analyzer.Val[rune]('\n')
		case 'r':
			return analyzer.Val[rune]('\r')
		case 'x':
			return HexChar(2)
		case 'u':
			return HexChar(4)
		case 'U':
			return HexChar(8)
		default:
			// the backslash or the quote itself
			return analyzer.Val[rune](r)
		}
	})
}

// LiteralChar matches one character of a literal quoted with q: either any
// symbol other than q or a backslash, or a backslash followed by an escape
// sequence. The escapes are \t, \n, \r, \\, a backslash followed by q, and
// \xHH, \uHHHH, and \UHHHHHHHH for hex-encoded Unicode scalar values.
func LiteralChar(q rune) analyzer.Analyzer[rune, rune] {
	plain := analyzer.Satisfy(func(r rune) bool { return r != q && r != '\\' })
	escaped := analyzer.With(analyzer.Token('\\'), escape(q))

	return analyzer.Or(plain, escaped)
}

// CharLiteral matches a single-quoted character literal.
func CharLiteral() analyzer.Analyzer[rune, rune] {
	return analyzer.Skip(analyzer.With(analyzer.Token('\''), LiteralChar('\'')), analyzer.Token('\''))
}

// StringLiteral matches a double-quoted string literal and produces its text
// with escapes decoded.
func StringLiteral() analyzer.Analyzer[rune, string] {
	chars := analyzer.Map(analyzer.Many(LiteralChar('"')), func(rs []rune) string {
		return string(rs)
	})
	return analyzer.Skip(analyzer.With(analyzer.Token('"'), chars), analyzer.Token('"'))
}

// Literal matches a character, string, or numeric literal. Which one is
// selected by the first symbol, so a literal that fails partway through is
// never retried as a different kind of literal from the point it failed at.
func Literal() analyzer.Analyzer[rune, token.Literal] {
	charLit := analyzer.Map(CharLiteral(), func(r rune) token.Literal { return token.Char(r) })
	strLit := analyzer.Map(StringLiteral(), func(s string) token.Literal { return token.Str(s) })
	numLit := analyzer.Map(NumLiteral(), func(n token.Num) token.Literal { return n })

	return analyzer.Func[rune, token.Literal](func(c *cursor.Cursor[rune]) (token.Literal, error) {
		next, _ := c.Peek()
		switch next {
		case '\'':
			return charLit.Analyze(c)
		case '"':
			return strLit.Analyze(c)
		default:
			return numLit.Analyze(c)
		}
	})
}

// Kind matches a single lexeme of any kind and produces its Kind, without
// recording where it was.
func Kind() analyzer.Analyzer[rune, token.Kind] {
	return analyzer.Choice(
		IdentOrKeyword(),
		analyzer.Map(Symbol(), func(s token.Symbol) token.Kind { return s }),
		analyzer.Map(Literal(), func(l token.Literal) token.Kind { return l }),
	)
}

// OneToken matches a single lexeme and produces a Token giving its Kind along
// with the offset and length of the text it was read from.
func OneToken() analyzer.Analyzer[rune, token.Token] {
	kind := Kind()

	return analyzer.Func[rune, token.Token](func(c *cursor.Cursor[rune]) (token.Token, error) {
		start := c.Position()
		k, err := kind.Analyze(c)
		if err != nil {
			// nothing matched at all; report that a token was wanted rather
			// than whatever the last alternative tried was looking for.
			if c.Position() == start {
				if aErr, ok := analyzer.AsError[rune](err); ok {
					relabeled := *aErr
					relabeled.Expecting = analyzer.ExpectLabel[rune]("token")
					err = &relabeled
				}
			}
			return token.Token{}, err
		}
		return token.Token{Kind: k, Pos: start, Len: c.Position() - start}, nil
	})
}

// Lexer matches an entire source text: at least one token, with whitespace and
// comments allowed before, between, and after tokens, followed by the end of
// input.
func Lexer() analyzer.Analyzer[rune, []token.Token] {
	skip := Skip()
	tokens := analyzer.Many1(analyzer.Skip(OneToken(), skip))
	end := analyzer.Msg(analyzer.EOF[rune](), "token or end of input")

	return analyzer.With(skip, analyzer.Skip(tokens, end))
}
