package config

import "fmt"

// file marshaling.go contains the types that a TKRC file is decoded into
// before being checked and converted to a Config.

type topLevelConfig struct {
	Format string          `toml:"format"`
	Type   string          `toml:"type"`
	Output marshaledOutput `toml:"output"`
	REPL   marshaledREPL   `toml:"repl"`
	Source marshaledSource `toml:"source"`
}

type marshaledOutput struct {
	Style *string `toml:"style"`
	Width *int    `toml:"width"`
	Spans *bool   `toml:"spans"`
}

type marshaledREPL struct {
	Prompt *string `toml:"prompt"`
	Direct *bool   `toml:"direct"`
}

type marshaledSource struct {
	Normalize *bool `toml:"normalize"`
}

// toConfig applies every value that was set in the file on top of base.
func (tc topLevelConfig) toConfig(base Config) (Config, error) {
	cfg := base

	if tc.Output.Style != nil {
		style, err := ParseStyle(*tc.Output.Style)
		if err != nil {
			return Config{}, fmt.Errorf("output.style: %w", err)
		}
		cfg.Output.Style = style
	}
	if tc.Output.Width != nil {
		w := *tc.Output.Width
		if w < MinWidth || w > MaxWidth {
			return Config{}, fmt.Errorf("output.width: must be between %d and %d but is %d", MinWidth, MaxWidth, w)
		}
		cfg.Output.Width = w
	}
	if tc.Output.Spans != nil {
		cfg.Output.Spans = *tc.Output.Spans
	}
	if tc.REPL.Prompt != nil {
		cfg.REPL.Prompt = *tc.REPL.Prompt
	}
	if tc.REPL.Direct != nil {
		cfg.REPL.Direct = *tc.REPL.Direct
	}
	if tc.Source.Normalize != nil {
		cfg.Source.Normalize = *tc.Source.Normalize
	}

	return cfg, nil
}
