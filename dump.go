package tkrlang

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/tkrlang/internal/token"
)

// This file contains the format of token dump files. A dump holds a lexed
// token sequence along with the source it was lexed from so that it can be
// re-read and handed off without lexing again.

// dumpMagic starts every dump file.
var dumpMagic = []byte("TKRD")

const dumpVersion = 1

// ErrNotDump is returned when data given to DecodeDump is not a token dump.
var ErrNotDump = errors.New("not a token dump")

// EncodeDump encodes toks and the source they were lexed from into the bytes
// of a dump file. src may be nil if it is not available.
func EncodeDump(src []rune, toks []token.Token) ([]byte, error) {
	var data []byte

	data = append(data, dumpMagic...)
	data = append(data, rezi.EncInt(dumpVersion)...)
	data = append(data, rezi.EncBool(src != nil)...)
	if src != nil {
		data = append(data, rezi.EncString(string(src))...)
	}

	stream := token.NewStream(toks)
	streamData, err := stream.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding tokens: %w", err)
	}
	data = append(data, streamData...)

	return data, nil
}

// DecodeDump decodes the bytes of a dump file. If the dump did not include the
// source, the returned source is nil.
func DecodeDump(data []byte) (src []rune, toks []token.Token, err error) {
	if !bytes.HasPrefix(data, dumpMagic) {
		return nil, nil, ErrNotDump
	}
	data = data[len(dumpMagic):]

	ver, n, err := rezi.DecInt(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding version: %w", err)
	}
	if ver != dumpVersion {
		return nil, nil, fmt.Errorf("unsupported dump version %d", ver)
	}
	data = data[n:]

	hasSrc, n, err := rezi.DecBool(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding source flag: %w", err)
	}
	data = data[n:]

	if hasSrc {
		s, n, err := rezi.DecString(data)
		if err != nil {
			return nil, nil, fmt.Errorf("decoding source: %w", err)
		}
		src = []rune(s)
		data = data[n:]
	}

	var stream token.Stream
	if err := stream.UnmarshalBinary(data); err != nil {
		return nil, nil, fmt.Errorf("decoding tokens: %w", err)
	}

	return src, stream.Tokens(), nil
}

// SaveDump writes a dump of toks and src to the file at path.
func SaveDump(path string, src []rune, toks []token.Token) error {
	data, err := EncodeDump(src, toks)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing dump file: %w", err)
	}
	return nil
}

// LoadDump reads the dump file at path.
func LoadDump(path string) (src []rune, toks []token.Token, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dump file: %w", err)
	}

	src, toks, err = DecodeDump(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return src, toks, nil
}
