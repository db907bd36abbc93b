package lexer

import (
	"fmt"
	"strings"

	"github.com/dekarrin/tkrlang/internal/analyzer"
)

// SyntaxError is returned by Lex when source text could not be lexed. It wraps
// the *analyzer.Error[rune] that caused it and adds the line and column of the
// failure.
type SyntaxError struct {
	cause *analyzer.Error[rune]

	sourceLine string

	// line that error occured on, 1-indexed.
	line int

	// position in line of error, 1-indexed.
	pos int
}

func newSyntaxError(src []rune, err error) error {
	aErr, ok := analyzer.AsError[rune](err)
	if !ok {
		return err
	}

	se := &SyntaxError{cause: aErr, line: 1, pos: 1}

	lineStart := 0
	for i := 0; i < aErr.Pos && i < len(src); i++ {
		if src[i] == '\n' {
			se.line++
			lineStart = i + 1
		}
	}
	se.pos = aErr.Pos - lineStart + 1

	lineEnd := lineStart
	for lineEnd < len(src) && src[lineEnd] != '\n' {
		lineEnd++
	}
	se.sourceLine = string(src[lineStart:lineEnd])

	return se
}

func (se *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: around line %d, char %d: unexpected %s; expecting %s", se.line, se.pos, se.cause.UnexpectedString(), se.cause.Expecting)
}

// Unwrap returns the analyzer error that caused the SyntaxError.
func (se *SyntaxError) Unwrap() error {
	return se.cause
}

// Offset returns the absolute offset into the source that the error occured
// at.
func (se *SyntaxError) Offset() int {
	return se.cause.Pos
}

// Line returns the line the error occured on. Lines are 1-indexed.
func (se *SyntaxError) Line() int {
	return se.line
}

// Position returns the character position within its line that the error
// occured on. Character positions are 1-indexed.
func (se *SyntaxError) Position() int {
	return se.pos
}

// SourceLine returns the full text of the line the error occured on.
func (se *SyntaxError) SourceLine() string {
	return se.sourceLine
}

// Expecting returns a description of what would have been accepted at the
// point of the error.
func (se *SyntaxError) Expecting() string {
	return se.cause.Expecting.String()
}

// FullMessage shows the complete message of the error string along with the
// offending line and a cursor to the problem position in a formatted way.
func (se *SyntaxError) FullMessage() string {
	return se.SourceLineWithCursor() + "\n" + se.Error()
}

// SourceLineWithCursor returns the source offending code on one line and
// directly under it a cursor showing where the error occured.
func (se *SyntaxError) SourceLineWithCursor() string {
	// tabs in the source line are kept in the cursor line so that the cursor
	// lines up no matter the tab width of the display.
	var cursorLine strings.Builder
	for i, r := range []rune(se.sourceLine) {
		if i >= se.pos-1 {
			break
		}
		if r == '\t' {
			cursorLine.WriteRune('\t')
		} else {
			cursorLine.WriteRune(' ')
		}
	}
	cursorLine.WriteRune('^')

	return se.sourceLine + "\n" + cursorLine.String()
}
