package command

import (
	"testing"

	"github.com/dekarrin/tkrlang/internal/tkrerrors"
	"github.com/stretchr/testify/assert"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Line
		expectErr string
	}{
		{name: "blank", input: "   ", expect: Line{}},
		{name: "source", input: "  let x = 3; ", expect: Line{Source: "let x = 3;"}},
		{name: "source with colon later", input: "a : b", expect: Line{Source: "a : b"}},
		{name: "quit", input: ":quit", expect: Line{Command: &Command{Verb: "QUIT"}}},
		{name: "quit alias", input: ":q", expect: Line{Command: &Command{Verb: "QUIT"}}},
		{name: "help mixed case", input: ":HeLp", expect: Line{Command: &Command{Verb: "HELP"}}},
		{name: "help alias", input: ":?", expect: Line{Command: &Command{Verb: "HELP"}}},
		{name: "format", input: ":format kinds", expect: Line{Command: &Command{Verb: "FORMAT", Arg: "KINDS"}}},
		{name: "format alias", input: ":f List", expect: Line{Command: &Command{Verb: "FORMAT", Arg: "LIST"}}},
		{name: "spans off", input: ":spans off", expect: Line{Command: &Command{Verb: "SPANS", Arg: "OFF"}}},
		{name: "load keeps case and spaces", input: ":load My Files/a.tkr", expect: Line{Command: &Command{Verb: "LOAD", Arg: "My Files/a.tkr"}}},
		{name: "save alias", input: ":w out.tkd", expect: Line{Command: &Command{Verb: "SAVE", Arg: "out.tkd"}}},
		{name: "space after prefix", input: ": quit", expect: Line{Command: &Command{Verb: "QUIT"}}},

		{name: "prefix only", input: ":", expectErr: `Type a command name after ":", such as :help`},
		{name: "unknown command", input: ":frob", expectErr: `I don't know what you mean by ":frob"`},
		{name: "quit with arg", input: ":quit now", expectErr: ":quit does not take an argument"},
		{name: "format missing arg", input: ":format", expectErr: "Give exactly one format: table, list, or kinds"},
		{name: "format bad arg", input: ":format tree", expectErr: `"tree" is not a format; use table, list, or kinds`},
		{name: "spans bad arg", input: ":spans maybe", expectErr: `"maybe" is not on or off`},
		{name: "load missing file", input: ":load", expectErr: "I don't know what file you want to load"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := Parse(tc.input)
			if tc.expectErr != "" {
				if assert.Error(err) {
					assert.Equal(tc.expectErr, tkrerrors.HumanMessage(err))
				}
				return
			}

			assert.NoError(err)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Line_Blank(t *testing.T) {
	assert := assert.New(t)

	assert.True(Line{}.Blank())
	assert.False(Line{Source: "x"}.Blank())
	assert.False(Line{Command: &Command{Verb: "QUIT"}}.Blank())
}

func Test_ExpandAlias(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "alias", input: "exit", expect: "QUIT"},
		{name: "canonical", input: "format", expect: "FORMAT"},
		{name: "unknown is upper-cased", input: "frob", expect: "FROB"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			assert.Equal(tc.expect, ExpandAlias(tc.input))
		})
	}
}
