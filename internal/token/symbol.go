package token

import "fmt"

// Symbol is an operator or punctuation mark.
type Symbol int

const (
	SymDot Symbol = iota
	SymComma
	SymColon
	SymSemicolon
	SymOpenParen
	SymCloseParen
	SymOpenBracket
	SymCloseBracket
	SymOpenBrace
	SymCloseBrace
	SymNot
	SymAdd
	SymSub
	SymMul
	SymDiv
	SymMod
	SymAnd
	SymOr
	SymBitAnd
	SymBitOr
	SymBitXor
	SymPow
	SymEq
	SymNe
	SymLt
	SymLte
	SymGt
	SymGte
	SymAssign
)

type symbolInfo struct {
	name string
	text string
}

var symbols = []symbolInfo{
	SymDot:          {"Dot", "."},
	SymComma:        {"Comma", ","},
	SymColon:        {"Colon", ":"},
	SymSemicolon:    {"Semicolon", ";"},
	SymOpenParen:    {"OpenParen", "("},
	SymCloseParen:   {"CloseParen", ")"},
	SymOpenBracket:  {"OpenBracket", "["},
	SymCloseBracket: {"CloseBracket", "]"},
	SymOpenBrace:    {"OpenBrace", "{"},
	SymCloseBrace:   {"CloseBrace", "}"},
	SymNot:          {"Not", "!"},
	SymAdd:          {"Add", "+"},
	SymSub:          {"Sub", "-"},
	SymMul:          {"Mul", "*"},
	SymDiv:          {"Div", "/"},
	SymMod:          {"Mod", "%"},
	SymAnd:          {"And", "&&"},
	SymOr:           {"Or", "||"},
	SymBitAnd:       {"BitAnd", "&"},
	SymBitOr:        {"BitOr", "|"},
	SymBitXor:       {"BitXor", "^"},
	SymPow:          {"Pow", "**"},
	SymEq:           {"Eq", "=="},
	SymNe:           {"Ne", "!="},
	SymLt:           {"Lt", "<"},
	SymLte:          {"Lte", "<="},
	SymGt:           {"Gt", ">"},
	SymGte:          {"Gte", ">="},
	SymAssign:       {"Assign", "="},
}

// Symbols returns every symbol, in declaration order.
func Symbols() []Symbol {
	all := make([]Symbol, len(symbols))
	for i := range all {
		all[i] = Symbol(i)
	}
	return all
}

// Valid returns whether sym is one of the defined symbols.
func (sym Symbol) Valid() bool {
	return sym >= 0 && int(sym) < len(symbols)
}

// Text returns the source spelling of the symbol, such as "<=".
func (sym Symbol) Text() string {
	if !sym.Valid() {
		return ""
	}
	return symbols[sym].text
}

// Name returns the name of the symbol, such as "Lte".
func (sym Symbol) Name() string {
	if !sym.Valid() {
		return fmt.Sprintf("Symbol#%d", int(sym))
	}
	return symbols[sym].name
}

func (Symbol) Class() Class { return ClassSymbol }
func (sym Symbol) String() string {
	return "Symbol(" + sym.Name() + ")"
}
func (Symbol) isKind() {}
