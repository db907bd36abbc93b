package input

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DirectReader_ReadCommand(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		allowBlank bool
		expect     []string
	}{
		{name: "lines", input: "a\nb\n", expect: []string{"a", "b"}},
		{name: "no trailing newline", input: "a\nb", expect: []string{"a", "b"}},
		{name: "blank lines skipped", input: "\n  \na\n\n\nb\n", expect: []string{"a", "b"}},
		{name: "blank lines allowed", input: "a\n\nb\n", allowBlank: true, expect: []string{"a", "", "b"}},
		{name: "surrounding space trimmed", input: "  x = 1 \t\n", expect: []string{"x = 1"}},
		{name: "empty input", input: "", expect: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			r := NewDirectReader(strings.NewReader(tc.input))
			r.AllowBlank(tc.allowBlank)
			defer r.Close()

			var actual []string
			for {
				line, err := r.ReadCommand()
				if err == io.EOF {
					assert.Equal("", line)
					break
				}
				if !assert.NoError(err) {
					return
				}
				actual = append(actual, line)
			}

			assert.Equal(tc.expect, actual)
		})
	}
}
