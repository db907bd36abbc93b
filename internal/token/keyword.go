package token

import "fmt"

// Keyword is a reserved word of the language.
type Keyword int

const (
	KwI32 Keyword = iota
	KwI64
	KwF32
	KwF64
	KwString
	KwBool
	KwChar
	KwTrue
	KwFalse
	KwLet
	KwIf
	KwWhile
	KwReturn
	KwStruct
	KwFun
	KwExtern
	KwFor
)

var keywordNames = []string{
	KwI32:    "I32",
	KwI64:    "I64",
	KwF32:    "F32",
	KwF64:    "F64",
	KwString: "String",
	KwBool:   "Bool",
	KwChar:   "Char",
	KwTrue:   "True",
	KwFalse:  "False",
	KwLet:    "Let",
	KwIf:     "If",
	KwWhile:  "While",
	KwReturn: "Return",
	KwStruct: "Struct",
	KwFun:    "Fun",
	KwExtern: "Extern",
	KwFor:    "For",
}

// the float type keywords are spelled with a capital F, unlike the integer
// ones and the f32/f64 numeric suffixes.
var keywordSpellings = []string{
	KwI32:    "i32",
	KwI64:    "i64",
	KwF32:    "F32",
	KwF64:    "F64",
	KwString: "string",
	KwBool:   "bool",
	KwChar:   "char",
	KwTrue:   "true",
	KwFalse:  "false",
	KwLet:    "let",
	KwIf:     "if",
	KwWhile:  "while",
	KwReturn: "return",
	KwStruct: "struct",
	KwFun:    "fun",
	KwExtern: "extern",
	KwFor:    "for",
}

var keywordsBySpelling map[string]Keyword

func init() {
	keywordsBySpelling = make(map[string]Keyword, len(keywordSpellings))
	for kw, spelling := range keywordSpellings {
		keywordsBySpelling[spelling] = Keyword(kw)
	}
}

// LookupKeyword returns the Keyword spelled exactly as s. If s is not a
// reserved word, ok is false.
func LookupKeyword(s string) (kw Keyword, ok bool) {
	kw, ok = keywordsBySpelling[s]
	return kw, ok
}

// Keywords returns every reserved word, in declaration order.
func Keywords() []Keyword {
	all := make([]Keyword, len(keywordSpellings))
	for i := range all {
		all[i] = Keyword(i)
	}
	return all
}

// Valid returns whether kw is one of the defined keywords.
func (kw Keyword) Valid() bool {
	return kw >= 0 && int(kw) < len(keywordSpellings)
}

// Text returns the source spelling of the keyword.
func (kw Keyword) Text() string {
	if !kw.Valid() {
		return ""
	}
	return keywordSpellings[kw]
}

// Name returns the name of the keyword, such as "If".
func (kw Keyword) Name() string {
	if !kw.Valid() {
		return fmt.Sprintf("Keyword#%d", int(kw))
	}
	return keywordNames[kw]
}

func (Keyword) Class() Class { return ClassKeyword }
func (kw Keyword) String() string {
	return "Keyword(" + kw.Name() + ")"
}
func (Keyword) isKind() {}
