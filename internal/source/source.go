// Package source loads source text from files and turns it into the sequence
// of Unicode scalar values that the lexer reads.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidUTF8 is returned when source is neither valid UTF-8 nor UTF-16
// with a byte order mark.
var ErrInvalidUTF8 = errors.New("source is not valid UTF-8")

// Options control how source bytes are decoded.
type Options struct {
	// Normalize is whether to convert the source to Unicode Normalization
	// Form C, so that a character typed as a base letter plus a combining
	// mark is read the same as its precomposed form.
	Normalize bool
}

// Decode converts the raw bytes of source text to runes. Text is read as UTF-8
// unless it begins with a UTF-16 byte order mark; a UTF-8 byte order mark is
// dropped.
func Decode(data []byte, opts Options) ([]rune, error) {
	dec := unicode.BOMOverride(encoding.Nop.NewDecoder())

	text, _, err := transform.Bytes(dec, data)
	if err != nil {
		return nil, fmt.Errorf("decoding source: %w", err)
	}
	if !utf8.Valid(text) {
		return nil, ErrInvalidUTF8
	}

	if opts.Normalize {
		text = norm.NFC.Bytes(text)
	}

	return []rune(string(text)), nil
}

// ReadFile reads and decodes the source in the file at path. A path of "-"
// reads from stdin.
func ReadFile(path string, opts Options) ([]rune, error) {
	var data []byte
	var err error

	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	src, err := Decode(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}
