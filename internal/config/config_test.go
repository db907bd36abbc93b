package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expect        Config
		expectUnknown []string
		expectErr     bool
	}{
		{
			name:   "header only gives defaults",
			input:  "format = \"TKRC\"\ntype = \"CONFIG\"\n",
			expect: Default(),
		},
		{
			name: "all keys set",
			input: `format = "TKRC"
type = "CONFIG"

[output]
style = "kinds"
width = 100
spans = false

[repl]
prompt = "> "
direct = true

[source]
normalize = true
`,
			expect: Config{
				Output: Output{Style: StyleKinds, Width: 100, Spans: false},
				REPL:   REPL{Prompt: "> ", Direct: true},
				Source: Source{Normalize: true},
			},
		},
		{
			name: "header is case-insensitive",
			input: `format = "tkrc"
type = "config"

[output]
style = "LIST"
`,
			expect: Config{
				Output: Output{Style: StyleList, Width: 80, Spans: true},
				REPL:   REPL{Prompt: "tkr> "},
			},
		},
		{
			name: "unknown keys are reported",
			input: `format = "TKRC"
type = "CONFIG"

[output]
colour = "red"
`,
			expect:        Default(),
			expectUnknown: []string{"output.colour"},
		},
		{
			name:      "missing header",
			input:     "[output]\nstyle = \"list\"\n",
			expectErr: true,
		},
		{
			name:      "wrong format",
			input:     "format = \"TUNA\"\ntype = \"CONFIG\"\n",
			expectErr: true,
		},
		{
			name:      "wrong type",
			input:     "format = \"TKRC\"\ntype = \"DATA\"\n",
			expectErr: true,
		},
		{
			name:      "bad style",
			input:     "format = \"TKRC\"\ntype = \"CONFIG\"\n[output]\nstyle = \"fancy\"\n",
			expectErr: true,
		},
		{
			name:      "width too small",
			input:     "format = \"TKRC\"\ntype = \"CONFIG\"\n[output]\nwidth = 5\n",
			expectErr: true,
		},
		{
			name:      "not toml",
			input:     "format = \"TKRC\"\ntype = \"CONFIG\"\n[output\n",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, unknown, err := Parse([]byte(tc.input))
			if tc.expectErr {
				assert.Error(err)
				return
			}
			if !assert.NoError(err) {
				return
			}

			assert.Equal(tc.expect, actual)
			assert.Equal(tc.expectUnknown, unknown)
		})
	}
}

func Test_Parse_BadHeaderIsSentinel(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Parse([]byte("format = \"TUNA\"\ntype = \"DATA\"\n"))

	assert.ErrorIs(err, ErrBadHeader)
}

func Test_ParseStyle(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expect    Style
		expectErr bool
	}{
		{name: "table", input: "table", expect: StyleTable},
		{name: "list", input: "list", expect: StyleList},
		{name: "kinds with space and case", input: " Kinds ", expect: StyleKinds},
		{name: "unknown", input: "tree", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := ParseStyle(tc.input)
			if tc.expectErr {
				assert.ErrorIs(err, ErrUnknownStyle)
				return
			}
			assert.NoError(err)
			assert.Equal(tc.expect, actual)
			assert.Equal(actual.String(), tc.expect.String())
		})
	}
}

func Test_ScanFileInfo(t *testing.T) {
	assert := assert.New(t)

	info, err := ScanFileInfo([]byte("format = \"TKRC\"\ntype = \"CONFIG\"\n\n[output]\nstyle = 3\n"))

	assert.NoError(err)
	assert.Equal(FileInfo{Format: "TKRC", Type: "CONFIG"}, info)
}

func Test_Load(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.toml")
	err := os.WriteFile(path, []byte("format = \"TKRC\"\ntype = \"CONFIG\"\n[repl]\nprompt = \"$ \"\n"), 0644)
	require.NoError(err)

	cfg, _, err := Load(path)

	assert.NoError(err)
	assert.Equal("$ ", cfg.REPL.Prompt)

	_, _, err = Load(filepath.Join(dir, "missing.toml"))
	assert.Error(err)
}

func Test_Path(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(EnvVar, "from-env.toml")

	assert.Equal("from-flag.toml", Path("from-flag.toml"))
	assert.Equal("from-env.toml", Path(""))
}
