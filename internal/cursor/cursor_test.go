package cursor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Cursor_Peek(t *testing.T) {
	testCases := []struct {
		name     string
		data     []rune
		advance  int
		offset   int
		expect   rune
		expectOK bool
	}{
		{
			name:     "empty input",
			data:     []rune{},
			expectOK: false,
		},
		{
			name:     "first symbol",
			data:     []rune("abc"),
			expect:   'a',
			expectOK: true,
		},
		{
			name:     "lookahead",
			data:     []rune("abc"),
			offset:   2,
			expect:   'c',
			expectOK: true,
		},
		{
			name:     "lookahead past end",
			data:     []rune("abc"),
			advance:  1,
			offset:   2,
			expectOK: false,
		},
		{
			name:     "at end",
			data:     []rune("abc"),
			advance:  3,
			expectOK: false,
		},
		{
			name:     "negative lookahead before start",
			data:     []rune("abc"),
			offset:   -1,
			expectOK: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c := New(tc.data)
			if !assert.NoError(c.Advance(tc.advance)) {
				return
			}

			actual, ok := c.PeekAt(tc.offset)

			assert.Equal(tc.expectOK, ok)
			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_Cursor_SetPosition(t *testing.T) {
	testCases := []struct {
		name      string
		data      []int
		pos       int
		expectPos int
		expectErr bool
	}{
		{name: "start", data: []int{1, 2, 3}, pos: 0, expectPos: 0},
		{name: "middle", data: []int{1, 2, 3}, pos: 2, expectPos: 2},
		{name: "end is valid", data: []int{1, 2, 3}, pos: 3, expectPos: 3},
		{name: "past end", data: []int{1, 2, 3}, pos: 4, expectPos: 0, expectErr: true},
		{name: "negative", data: []int{1, 2, 3}, pos: -1, expectPos: 0, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c := New(tc.data)
			err := c.SetPosition(tc.pos)

			if tc.expectErr {
				assert.Error(err)
				assert.True(errors.Is(err, ErrOutOfBounds))
			} else {
				assert.NoError(err)
			}
			assert.Equal(tc.expectPos, c.Position())
		})
	}
}

func Test_Cursor_NextUntilEnd(t *testing.T) {
	assert := assert.New(t)

	c := New([]rune("hi"))
	assert.False(c.AtEnd())

	r, ok := c.Next()
	assert.True(ok)
	assert.Equal('h', r)

	r, ok = c.Next()
	assert.True(ok)
	assert.Equal('i', r)
	assert.True(c.AtEnd())

	_, ok = c.Next()
	assert.False(ok)
	assert.Equal(2, c.Position())
	assert.Equal(2, c.Len())
}

func Test_Cursor_Slice(t *testing.T) {
	assert := assert.New(t)

	c := New([]rune("lexeme"))

	assert.Equal([]rune("xem"), c.Slice(2, 5))
	assert.Equal([]rune("lexeme"), c.Slice(-3, 100))
	assert.Equal([]rune{}, c.Slice(4, 4))
	assert.Equal([]rune{}, c.Slice(5, 1))
}
