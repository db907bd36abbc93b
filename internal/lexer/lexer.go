// Package lexer turns source text into a sequence of tokens. The grammar is
// written as a composition of the analyzers in package analyzer; Lex runs it
// over a complete source text and converts any failure into a SyntaxError that
// can show the user where in the source things went wrong.
package lexer

import (
	"github.com/dekarrin/tkrlang/internal/analyzer"
	"github.com/dekarrin/tkrlang/internal/token"
)

// Lex reads every token in src. If src cannot be lexed, the returned error
// will be a *SyntaxError describing the first failure.
func Lex(src string) ([]token.Token, error) {
	return LexRunes([]rune(src))
}

// LexRunes is the same as Lex but operates on an already-decoded source.
// Token positions are offsets into src.
func LexRunes(src []rune) ([]token.Token, error) {
	toks, err := analyzer.Run(Lexer(), src)
	if err != nil {
		return nil, newSyntaxError(src, err)
	}
	return toks, nil
}

// Stream is the same as Lex but returns the tokens as a token.Stream.
func Stream(src string) (*token.Stream, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return token.NewStream(toks), nil
}
