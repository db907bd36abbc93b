// Package render produces the text shown to the user for lexed token
// sequences and for errors.
package render

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/dekarrin/tkrlang/internal/config"
	"github.com/dekarrin/tkrlang/internal/lexer"
	"github.com/dekarrin/tkrlang/internal/tkrerrors"
	"github.com/dekarrin/tkrlang/internal/token"
)

var textFormatOptions = rosed.Options{
	PreserveParagraphs:       true,
	NoTrailingLineSeparators: true,
}

var lineOptions = rosed.Options{
	NoTrailingLineSeparators: true,
}

// Tokens renders toks in the style given by out. src is the source the tokens
// were lexed from and is used to show each token's lexeme; it may be nil if the
// source is not available, in which case lexemes are left out.
func Tokens(src []rune, toks []token.Token, out config.Output) string {
	switch out.Style {
	case config.StyleList:
		return tokenList(toks, out)
	case config.StyleKinds:
		return tokenKinds(toks, out)
	default:
		return tokenTable(src, toks, out)
	}
}

func tokenTable(src []rune, toks []token.Token, out config.Output) string {
	header := []string{"#", "Class", "Kind"}
	if out.Spans {
		header = append(header, "Span")
	}
	if src != nil {
		header = append(header, "Lexeme")
	}
	data := [][]string{header}

	for i, tok := range toks {
		row := []string{strconv.Itoa(i), "", ""}
		if tok.Kind != nil {
			row[1] = tok.Kind.Class().Human()
			row[2] = tok.Kind.String()
		}
		if out.Spans {
			row = append(row, fmt.Sprintf("%d-%d", tok.Pos, tok.End()))
		}
		if src != nil {
			row = append(row, strconv.Quote(tok.Lexeme(src)))
		}
		data = append(data, row)
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, out.Width, tableOpts).
		String()
}

func tokenList(toks []token.Token, out config.Output) string {
	var sb strings.Builder
	for i, tok := range toks {
		if i > 0 {
			sb.WriteRune('\n')
		}
		if out.Spans {
			sb.WriteString(tok.String())
		} else if tok.Kind != nil {
			sb.WriteString(tok.Kind.String())
		}
	}
	return sb.String()
}

func tokenKinds(toks []token.Token, out config.Output) string {
	kinds := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == nil {
			continue
		}
		kinds = append(kinds, tok.Kind.String())
	}
	return rosed.Edit(strings.Join(kinds, " ")).WrapOpts(out.Width, lineOptions).String()
}

// Error renders err for display. A lexing failure is shown with the line of
// source it happened on and a cursor pointing at where; any other error has
// its human message word-wrapped to width.
func Error(err error, width int) string {
	var synErr *lexer.SyntaxError
	if errors.As(err, &synErr) {
		return synErr.SourceLineWithCursor() + "\n" + rosed.Edit(synErr.Error()).WrapOpts(width, lineOptions).String()
	}

	return rosed.Edit(tkrerrors.HumanMessage(err)).WrapOpts(width, textFormatOptions).String()
}

type helpEntry struct {
	usage string
	desc  string
}

var helpEntries = []helpEntry{
	{":help", "show this help"},
	{":quit", "end the session"},
	{":format STYLE", "print tokens as a table, list, or kinds"},
	{":spans on|off", "show or hide the position of each token"},
	{":load FILE", "lex the contents of FILE"},
	{":save FILE", "write the most recently lexed tokens to FILE"},
}

// Help renders the help text for an interactive session.
func Help(width int) string {
	intro := "Type source text to lex it. Lines that start with ':' are commands:"

	data := [][]string{{"Command", "Description"}}
	for _, e := range helpEntries {
		data = append(data, []string{e.usage, e.desc})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit(intro).WrapOpts(width, lineOptions).
		Insert(rosed.End, "\n\n").
		InsertTableOpts(rosed.End, data, width, tableOpts).
		String()
}
