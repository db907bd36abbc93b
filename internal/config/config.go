// Package config loads settings for the tkrlex front end from TKRC files, a
// TOML-based format. A TKRC file starts with a header giving its format and
// type, followed by [output], [repl], and [source] tables:
//
//	format = "TKRC"
//	type = "CONFIG"
//
//	[output]
//	style = "table"
//	width = 80
//	spans = true
//
//	[repl]
//	prompt = "tkr> "
//	direct = false
//
//	[source]
//	normalize = false
//
// Every key other than the header is optional; missing keys take the value
// from Default.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
)

// DefaultFile is the name of the config file that is used if no other is
// given and it exists in the current working directory.
const DefaultFile = "tkrlex.toml"

// EnvVar is the environment variable that can give the path to a config file.
const EnvVar = "TKRLEX_CONFIG"

const (
	// MinWidth is the narrowest output width that can be configured.
	MinWidth = 20

	// MaxWidth is the widest output width that can be configured.
	MaxWidth = 1000
)

var (
	// ErrBadHeader is returned when a file does not start with the TKRC
	// header.
	ErrBadHeader = errors.New("not a TKRC config file")

	// ErrUnknownStyle is returned when an output style is not one of the
	// supported ones.
	ErrUnknownStyle = errors.New("unknown output style")
)

// Style is a way of printing a lexed token sequence.
type Style int

const (
	// StyleTable prints one row per token with its kind, position, and
	// lexeme.
	StyleTable Style = iota

	// StyleList prints one token per line in its debug representation.
	StyleList

	// StyleKinds prints only the kinds of the tokens, all on one line.
	StyleKinds
)

var styleNames = []string{
	StyleTable: "table",
	StyleList:  "list",
	StyleKinds: "kinds",
}

// String returns the name of the style as used in config files.
func (s Style) String() string {
	if s < 0 || int(s) >= len(styleNames) {
		return fmt.Sprintf("Style(%d)", int(s))
	}
	return styleNames[s]
}

// ParseStyle returns the Style with the given name. Case is ignored.
func ParseStyle(s string) (Style, error) {
	lower := strings.ToLower(strings.TrimSpace(s))
	for i := range styleNames {
		if styleNames[i] == lower {
			return Style(i), nil
		}
	}
	return StyleTable, fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownStyle, s, strings.Join(styleNames, ", "))
}

// Config is the complete set of settings for the front end.
type Config struct {
	Output Output
	REPL   REPL
	Source Source
}

// Output holds settings for how results are printed.
type Output struct {
	// Style is the way token sequences are printed.
	Style Style

	// Width is the column that output is wrapped at.
	Width int

	// Spans is whether token positions are included in output.
	Spans bool
}

// REPL holds settings for the interactive session.
type REPL struct {
	// Prompt is shown before each line of input.
	Prompt string

	// Direct is whether to read input directly instead of going through
	// readline even when attached to a terminal.
	Direct bool
}

// Source holds settings for how source files are read.
type Source struct {
	// Normalize is whether source is converted to Unicode Normalization Form
	// C before it is lexed.
	Normalize bool
}

// Default returns the settings used when no config file is loaded.
func Default() Config {
	return Config{
		Output: Output{
			Style: StyleTable,
			Width: 80,
			Spans: true,
		},
		REPL: REPL{
			Prompt: "tkr> ",
		},
	}
}

// FileInfo contains the header that every TKRC file must contain. It can be
// obtained from a file by reading it into memory and calling ScanFileInfo on
// the bytes.
type FileInfo struct {
	Format string `toml:"format"`
	Type   string `toml:"type"`
}

// Path returns the config file to use. If flagPath is not empty, it is
// returned. Otherwise the path in the environment variable named by EnvVar is
// used, and if that is unset, DefaultFile is used if it exists. If no config
// file is to be used, the empty string is returned.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if envPath := os.Getenv(EnvVar); envPath != "" {
		return envPath
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load reads the config file at path. The returned slice lists any keys in the
// file that were not recognized; they are otherwise ignored.
func Load(path string) (Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, nil, err
	}

	cfg, unknown, err := Parse(data)
	if err != nil {
		return Config{}, nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, unknown, nil
}

// Parse reads a config from the bytes of a TKRC file. Values not given in the
// file are taken from Default. The returned slice lists any keys in the file
// that were not recognized.
func Parse(data []byte) (Config, []string, error) {
	info, err := ScanFileInfo(data)
	if err != nil {
		return Config{}, nil, err
	}
	if strings.ToUpper(info.Format) != "TKRC" {
		return Config{}, nil, fmt.Errorf("%w: in header: 'format' key must exist and be set to 'TKRC'", ErrBadHeader)
	}
	if strings.ToUpper(info.Type) != "CONFIG" {
		return Config{}, nil, fmt.Errorf("%w: in header: 'type' must exist and be set to 'CONFIG'", ErrBadHeader)
	}

	var tc topLevelConfig
	md, err := toml.Decode(string(data), &tc)
	if err != nil {
		return Config{}, nil, err
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}

	cfg, err := tc.toConfig(Default())
	if err != nil {
		return Config{}, nil, err
	}

	return cfg, unknown, nil
}

// ScanFileInfo takes the given bytes and attempts to read the TKRC header from
// it. The bytes are read up to the first table definition header and only
// those bytes are parsed for the info.
func ScanFileInfo(data []byte) (FileInfo, error) {
	// only run the toml parser up to the end of the top-level table
	topLevelEnd := -1
	onNewLine := true
	for b := range data {
		if onNewLine && data[b] == '[' {
			topLevelEnd = b
			break
		}

		if data[b] == '\n' {
			onNewLine = true
		} else if !unicode.IsSpace(rune(data[b])) {
			onNewLine = false
		}
	}

	scanData := data
	if topLevelEnd != -1 {
		scanData = data[:topLevelEnd]
	}

	var info FileInfo
	err := toml.Unmarshal(scanData, &info)
	return info, err
}
