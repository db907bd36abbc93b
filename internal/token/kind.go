// Package token defines the tokens produced by lexing source text of the
// language. A Token pairs a Kind with the span of source it was read from; a
// Kind is one of Keyword, Ident, Symbol, or a Literal (Char, Str, or a Num of
// one of the widths I32, I64, F32, F64).
package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Class is the broad category of a Kind.
type Class int

const (
	ClassKeyword Class = iota
	ClassIdent
	ClassLiteral
	ClassSymbol
)

var classHuman = map[Class]string{
	ClassKeyword: "Keyword",
	ClassIdent:   "Ident",
	ClassLiteral: "Literal",
	ClassSymbol:  "Symbol",
}

// ID returns the lower-case identifier of the class.
func (cl Class) ID() string {
	return strings.ToLower(cl.Human())
}

// Human returns a human-readable name for the class, for use in contexts such
// as error reporting.
func (cl Class) Human() string {
	if h, ok := classHuman[cl]; ok {
		return h
	}
	return fmt.Sprintf("Class(%d)", int(cl))
}

// String returns the same as Human.
func (cl Class) String() string {
	return cl.Human()
}

// Kind is the type of a lexed token along with any value it carries. The set of
// implementations is closed; use a type switch to examine one.
type Kind interface {
	// Class returns the category of the Kind.
	Class() Class

	// String returns a debug representation such as `Ident("x")` or
	// `Symbol(Lte)`.
	String() string

	isKind()
}

// Literal is a Kind that holds a literal value: a Char, a Str, or a Num.
type Literal interface {
	Kind
	isLiteral()
}

// Num is a numeric Literal: one of I32, I64, F32, or F64.
type Num interface {
	Literal

	// Suffix returns the type suffix that selects this width in source, such
	// as "i64".
	Suffix() string

	isNum()
}

// Ident is an identifier.
type Ident string

func (Ident) Class() Class { return ClassIdent }
func (id Ident) String() string {
	return fmt.Sprintf("Ident(%q)", string(id))
}
func (Ident) isKind() {}

// Char is a character literal.
type Char rune

func (Char) Class() Class { return ClassLiteral }
func (ch Char) String() string {
	return fmt.Sprintf("Char(%s)", strconv.QuoteRune(rune(ch)))
}
func (Char) isKind()    {}
func (Char) isLiteral() {}

// Str is a string literal, with all escape sequences already decoded.
type Str string

func (Str) Class() Class { return ClassLiteral }
func (s Str) String() string {
	return fmt.Sprintf("String(%q)", string(s))
}
func (Str) isKind()    {}
func (Str) isLiteral() {}

// I32 is a 32-bit integer literal.
type I32 int32

// I64 is a 64-bit integer literal.
type I64 int64

// F32 is a 32-bit floating point literal.
type F32 float32

// F64 is a 64-bit floating point literal.
type F64 float64

func (I32) Class() Class { return ClassLiteral }
func (I64) Class() Class { return ClassLiteral }
func (F32) Class() Class { return ClassLiteral }
func (F64) Class() Class { return ClassLiteral }

func (n I32) String() string { return fmt.Sprintf("I32(%d)", int32(n)) }
func (n I64) String() string { return fmt.Sprintf("I64(%d)", int64(n)) }
func (n F32) String() string {
	return "F32(" + strconv.FormatFloat(float64(n), 'g', -1, 32) + ")"
}
func (n F64) String() string {
	return "F64(" + strconv.FormatFloat(float64(n), 'g', -1, 64) + ")"
}

func (I32) Suffix() string { return "i32" }
func (I64) Suffix() string { return "i64" }
func (F32) Suffix() string { return "f32" }
func (F64) Suffix() string { return "f64" }

func (I32) isKind() {}
func (I64) isKind() {}
func (F32) isKind() {}
func (F64) isKind() {}

func (I32) isLiteral() {}
func (I64) isLiteral() {}
func (F32) isLiteral() {}
func (F64) isLiteral() {}

func (I32) isNum() {}
func (I64) isNum() {}
func (F32) isNum() {}
func (F64) isNum() {}
