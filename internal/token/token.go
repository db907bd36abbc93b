package token

import "fmt"

// Token is one lexeme read from source, with the Kind it was lexed as. Pos is
// the absolute offset (in runes) of the first symbol of the lexeme and Len is
// the number of symbols it spans.
type Token struct {
	Kind Kind
	Pos  int
	Len  int
}

// End returns the offset just past the last symbol of the lexeme.
func (t Token) End() int {
	return t.Pos + t.Len
}

// Lexeme returns the text of the token as it appears in src, which must be the
// same source the token was lexed from. If the span does not fit in src, the
// part of it that does is returned.
func (t Token) Lexeme(src []rune) string {
	start, end := t.Pos, t.End()
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return ""
	}
	return string(src[start:end])
}

// String is the string representation.
func (t Token) String() string {
	kind := "<nil>"
	if t.Kind != nil {
		kind = t.Kind.String()
	}
	return fmt.Sprintf("%s@[%d,%d)", kind, t.Pos, t.End())
}

// Stream is a sequence of lexed tokens read in order, one at a time. It is how
// a token sequence is handed to something that consumes it.
//
// Stream should not be used directly; create one with [NewStream].
type Stream struct {
	tokens []Token
	cur    int
}

// NewStream creates a Stream that will produce toks in order.
func NewStream(toks []Token) *Stream {
	cp := make([]Token, len(toks))
	copy(cp, toks)
	return &Stream{tokens: cp}
}

// Next returns the next token in the stream and advances the stream by one
// token. If there are no more tokens, the zero Token (with a nil Kind) is
// returned.
func (s *Stream) Next() Token {
	if !s.HasNext() {
		return Token{}
	}
	n := s.tokens[s.cur]
	s.cur++
	return n
}

// Peek returns the next token in the stream without advancing the stream. If
// there are no more tokens, the zero Token (with a nil Kind) is returned.
func (s *Stream) Peek() Token {
	if !s.HasNext() {
		return Token{}
	}
	return s.tokens[s.cur]
}

// HasNext returns whether the stream has any additional tokens.
func (s *Stream) HasNext() bool {
	return s.Remaining() > 0
}

// Remaining returns the number of tokens not yet read.
func (s *Stream) Remaining() int {
	return len(s.tokens) - s.cur
}

// Len returns the total number of tokens in the stream, read or not.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of every token in the stream, read or not.
func (s *Stream) Tokens() []Token {
	cp := make([]Token, len(s.tokens))
	copy(cp, s.tokens)
	return cp
}
