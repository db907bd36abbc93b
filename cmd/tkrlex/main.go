/*
Tkrlex lexes source text of the tkr language and prints the tokens it is made
of.

Usage:

	tkrlex [flags] [FILE ...]
	tkrlex [flags] -i
	tkrlex [flags] -l DUMP_FILE

Each FILE is read and lexed, and its tokens are printed. A FILE of "-" reads
source from stdin. If no FILE is given and --load is not used, an interactive
session is started in which each line typed is lexed as it is entered; type
":help" in a session for a list of commands and ":quit" to exit.

Settings are read from a TKRC config file if one is found. The file given with
--config is used if set; otherwise the one named by the environment variable
TKRLEX_CONFIG, and if that is not set either, the file "tkrlex.toml" in the
current working directory if it exists. Flags override settings from the file.

The flags are:

	-v, --version
		Give the current version of tkrlex and then exit.

	-i, --interactive
		Start an interactive session even if files are given. The files are
		lexed first.

	-f, --format STYLE
		Print tokens in the given style. STYLE must be one of table, list, or
		kinds.

	-w, --width COLUMNS
		Wrap output at the given column.

	--spans
		Show the position of each token. Use --spans=false to hide them.

	-c, --config FILE
		Read settings from the given TKRC config file.

	-o, --out FILE
		Write the lexed tokens to a token dump file. Only one source FILE may be
		given with this flag.

	-l, --load FILE
		Read tokens from a token dump file created with --out and print them
		instead of lexing any source.

	-d, --direct
		Force reading directly from the console as opposed to using GNU readline
		based routines for reading session input even if launched in a tty with
		stdin and stdout.

	--nfc
		Convert source to Unicode Normalization Form C before lexing it, so a
		letter followed by a combining mark reads the same as its precomposed
		form. Source files may be UTF-8, or UTF-16 with a byte order mark.

	--verbose
		Log what tkrlex is doing to stderr.
*/
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dekarrin/tkrlang"
	"github.com/dekarrin/tkrlang/internal/config"
	"github.com/dekarrin/tkrlang/internal/lexer"
	"github.com/dekarrin/tkrlang/internal/render"
	"github.com/dekarrin/tkrlang/internal/source"
	"github.com/dekarrin/tkrlang/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitLexError indicates that some source could not be lexed.
	ExitLexError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue with flags, config, or reading or writing files.
	ExitInitError
)

var (
	returnCode = ExitSuccess

	flagVersion     = pflag.BoolP("version", "v", false, "Give the current version of tkrlex and then exit.")
	flagInteractive = pflag.BoolP("interactive", "i", false, "Start an interactive session even if files are given.")
	flagFormat      = pflag.StringP("format", "f", "", "Print tokens in the given style: table, list, or kinds.")
	flagWidth       = pflag.IntP("width", "w", 0, "Wrap output at the given column.")
	flagSpans       = pflag.Bool("spans", true, "Show the position of each token.")
	flagConfig      = pflag.StringP("config", "c", "", "Read settings from the given TKRC config file.")
	flagOut         = pflag.StringP("out", "o", "", "Write the lexed tokens to the given token dump file.")
	flagLoad        = pflag.StringP("load", "l", "", "Print the tokens in the given token dump file.")
	flagDirect      = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
	flagNFC         = pflag.Bool("nfc", false, "Normalize source to Unicode NFC before lexing it.")
	flagVerbose     = pflag.Bool("verbose", false, "Log what tkrlex is doing to stderr.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if !*flagVerbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	files := pflag.Args()

	if *flagLoad != "" {
		if len(files) > 0 || *flagOut != "" {
			fmt.Fprintf(os.Stderr, "--load cannot be used with source files or --out\nDo -h for help.\n")
			returnCode = ExitInitError
			return
		}

		log.Printf("INFO  Loading token dump %s", *flagLoad)
		src, toks, err := tkrlang.LoadDump(*flagLoad)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			returnCode = ExitInitError
			return
		}
		if src == nil {
			log.Printf("WARN  Dump has no source; lexemes will not be shown")
		}
		fmt.Println(render.Tokens(src, toks, cfg.Output))
		return
	}

	if *flagOut != "" && len(files) != 1 {
		fmt.Fprintf(os.Stderr, "--out requires exactly one source file\nDo -h for help.\n")
		returnCode = ExitInitError
		return
	}

	for _, f := range files {
		code := lexFile(f, cfg)
		if code > returnCode {
			returnCode = code
		}
	}

	if len(files) > 0 && !*flagInteractive {
		return
	}

	log.Printf("DEBUG Starting interactive session")
	eng, initErr := tkrlang.New(os.Stdin, os.Stdout, cfg)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer eng.Close()

	if err := eng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}
}

// loadConfig reads the config file, if there is one, and applies flags on top
// of it.
func loadConfig() (config.Config, error) {
	cfg := config.Default()

	if path := config.Path(*flagConfig); path != "" {
		log.Printf("INFO  Reading config from %s", path)

		var unknown []string
		var err error
		cfg, unknown, err = config.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		for _, key := range unknown {
			log.Printf("WARN  Ignoring unknown config key %q", key)
		}
	}

	if pflag.Lookup("format").Changed {
		style, err := config.ParseStyle(*flagFormat)
		if err != nil {
			return cfg, err
		}
		cfg.Output.Style = style
	}
	if pflag.Lookup("width").Changed {
		if *flagWidth < config.MinWidth || *flagWidth > config.MaxWidth {
			return cfg, fmt.Errorf("--width must be between %d and %d", config.MinWidth, config.MaxWidth)
		}
		cfg.Output.Width = *flagWidth
	}
	if pflag.Lookup("spans").Changed {
		cfg.Output.Spans = *flagSpans
	}
	if pflag.Lookup("direct").Changed {
		cfg.REPL.Direct = *flagDirect
	}
	if pflag.Lookup("nfc").Changed {
		cfg.Source.Normalize = *flagNFC
	}

	return cfg, nil
}

// lexFile lexes and prints the source in the given file and returns the exit
// code to use for it.
func lexFile(path string, cfg config.Config) int {
	if path == "-" {
		log.Printf("INFO  Lexing source from stdin")
	} else {
		log.Printf("INFO  Lexing %s", path)
	}

	src, err := source.ReadFile(path, source.Options{Normalize: cfg.Source.Normalize})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return ExitInitError
	}

	toks, err := lexer.LexRunes(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, render.Error(err, cfg.Output.Width))
		return ExitLexError
	}
	log.Printf("DEBUG Lexed %d tokens from %s", len(toks), path)

	fmt.Println(render.Tokens(src, toks, cfg.Output))

	if *flagOut != "" {
		if err := tkrlang.SaveDump(*flagOut, src, toks); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return ExitInitError
		}
		log.Printf("INFO  Wrote %d tokens to %s", len(toks), *flagOut)
	}

	return ExitSuccess
}
