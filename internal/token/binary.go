package token

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dekarrin/rezi"
)

// This file contains the format for binary encoding of tokens, used to save a
// lexed token sequence and hand it off for later use.

// ErrUnknownKind is returned when a Kind cannot be encoded or a decoded kind
// tag is not recognized.
var ErrUnknownKind = errors.New("unknown token kind")

const (
	tagKeyword = iota + 1
	tagIdent
	tagChar
	tagStr
	tagI32
	tagI64
	tagF32
	tagF64
	tagSymbol
)

func encKind(k Kind) ([]byte, error) {
	var data []byte

	switch v := k.(type) {
	case Keyword:
		data = append(data, rezi.EncInt(tagKeyword)...)
		data = append(data, rezi.EncInt(int(v))...)
	case Ident:
		data = append(data, rezi.EncInt(tagIdent)...)
		data = append(data, rezi.EncString(string(v))...)
	case Char:
		data = append(data, rezi.EncInt(tagChar)...)
		data = append(data, rezi.EncInt(int(v))...)
	case Str:
		data = append(data, rezi.EncInt(tagStr)...)
		data = append(data, rezi.EncString(string(v))...)
	case I32:
		data = append(data, rezi.EncInt(tagI32)...)
		data = append(data, rezi.EncString(strconv.FormatInt(int64(v), 10))...)
	case I64:
		data = append(data, rezi.EncInt(tagI64)...)
		data = append(data, rezi.EncString(strconv.FormatInt(int64(v), 10))...)
	case F32:
		data = append(data, rezi.EncInt(tagF32)...)
		data = append(data, rezi.EncString(strconv.FormatFloat(float64(v), 'g', -1, 32))...)
	case F64:
		data = append(data, rezi.EncInt(tagF64)...)
		data = append(data, rezi.EncString(strconv.FormatFloat(float64(v), 'g', -1, 64))...)
	case Symbol:
		data = append(data, rezi.EncInt(tagSymbol)...)
		data = append(data, rezi.EncInt(int(v))...)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownKind, k)
	}

	return data, nil
}

// returns the kind followed by bytes consumed.
func decKind(data []byte) (Kind, int, error) {
	tag, n, err := rezi.DecInt(data)
	if err != nil {
		return nil, 0, fmt.Errorf("decoding kind tag: %w", err)
	}
	data = data[n:]
	total := n

	switch tag {
	case tagKeyword, tagChar, tagSymbol:
		v, n, err := rezi.DecInt(data)
		if err != nil {
			return nil, 0, fmt.Errorf("decoding kind value: %w", err)
		}
		total += n

		switch tag {
		case tagKeyword:
			kw := Keyword(v)
			if !kw.Valid() {
				return nil, 0, fmt.Errorf("decoding kind value: %d is not a keyword", v)
			}
			return kw, total, nil
		case tagSymbol:
			sym := Symbol(v)
			if !sym.Valid() {
				return nil, 0, fmt.Errorf("decoding kind value: %d is not a symbol", v)
			}
			return sym, total, nil
		default:
			return Char(rune(v)), total, nil
		}
	case tagIdent, tagStr, tagI32, tagI64, tagF32, tagF64:
		s, n, err := rezi.DecString(data)
		if err != nil {
			return nil, 0, fmt.Errorf("decoding kind value: %w", err)
		}
		total += n

		k, err := kindFromText(tag, s)
		if err != nil {
			return nil, 0, fmt.Errorf("decoding kind value: %w", err)
		}
		return k, total, nil
	default:
		return nil, 0, fmt.Errorf("%w: tag %d", ErrUnknownKind, tag)
	}
}

func kindFromText(tag int, s string) (Kind, error) {
	switch tag {
	case tagIdent:
		return Ident(s), nil
	case tagStr:
		return Str(s), nil
	case tagI32:
		v, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return nil, err
		}
		return I32(v), nil
	case tagI64:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return I64(v), nil
	case tagF32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		return F32(v), nil
	case tagF64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return F64(v), nil
	default:
		return nil, fmt.Errorf("%w: tag %d", ErrUnknownKind, tag)
	}
}

// MarshalBinary encodes the token into a slice of bytes that can be decoded
// with UnmarshalBinary.
func (t Token) MarshalBinary() ([]byte, error) {
	if t.Kind == nil {
		return nil, fmt.Errorf("%w: token has no kind", ErrUnknownKind)
	}

	var data []byte

	kindData, err := encKind(t.Kind)
	if err != nil {
		return nil, err
	}
	data = append(data, kindData...)
	data = append(data, rezi.EncInt(t.Pos)...)
	data = append(data, rezi.EncInt(t.Len)...)

	return data, nil
}

// UnmarshalBinary decodes a token previously encoded with MarshalBinary.
func (t *Token) UnmarshalBinary(data []byte) error {
	var err error
	var bytesRead int

	t.Kind, bytesRead, err = decKind(data)
	if err != nil {
		return err
	}
	data = data[bytesRead:]

	t.Pos, bytesRead, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding position: %w", err)
	}
	data = data[bytesRead:]

	t.Len, _, err = rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding length: %w", err)
	}

	return nil
}

// MarshalBinary encodes every token in the stream, read or not, into a slice
// of bytes that can be decoded with UnmarshalBinary. The read position of the
// stream is not encoded.
func (s *Stream) MarshalBinary() ([]byte, error) {
	var data []byte

	data = append(data, rezi.EncInt(len(s.tokens))...)
	for i := range s.tokens {
		if s.tokens[i].Kind == nil {
			return nil, fmt.Errorf("token %d: %w: token has no kind", i, ErrUnknownKind)
		}
		data = append(data, rezi.EncBinary(s.tokens[i])...)
	}

	return data, nil
}

// UnmarshalBinary decodes a stream previously encoded with MarshalBinary. The
// decoded stream is positioned at its first token.
func (s *Stream) UnmarshalBinary(data []byte) error {
	count, bytesRead, err := rezi.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding token count: %w", err)
	}
	if count < 0 {
		return fmt.Errorf("decoding token count: count < 0")
	}
	data = data[bytesRead:]

	toks := make([]Token, count)
	for i := range toks {
		bytesRead, err = rezi.DecBinary(data, &toks[i])
		if err != nil {
			return fmt.Errorf("token %d: %w", i, err)
		}
		data = data[bytesRead:]
	}

	s.tokens = toks
	s.cur = 0
	return nil
}
