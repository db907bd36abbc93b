package tkrlang

import (
	"testing"

	"github.com/dekarrin/tkrlang/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Dump_RoundTrip(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		withSrc bool
	}{
		{name: "with source", input: "let s = \"é\\n\"; // done", withSrc: true},
		{name: "without source", input: "a ** 2.5f32 <= 9i64", withSrc: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			src := []rune(tc.input)
			toks, err := lexer.LexRunes(src)
			require.NoError(err)

			var dumpSrc []rune
			if tc.withSrc {
				dumpSrc = src
			}

			data, err := EncodeDump(dumpSrc, toks)
			require.NoError(err)

			actualSrc, actualToks, err := DecodeDump(data)
			require.NoError(err)

			assert.Equal(toks, actualToks)
			if tc.withSrc {
				assert.Equal(src, actualSrc)
			} else {
				assert.Nil(actualSrc)
			}
		})
	}
}

func Test_DecodeDump_NotADump(t *testing.T) {
	assert := assert.New(t)

	_, _, err := DecodeDump([]byte("format = \"TKRC\""))

	assert.ErrorIs(err, ErrNotDump)
}
