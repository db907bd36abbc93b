// Package tkrlang contains a CLI-driven engine that reads lines of source text,
// lexes them, and prints the resulting tokens until the user quits.
package tkrlang

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dekarrin/tkrlang/internal/command"
	"github.com/dekarrin/tkrlang/internal/config"
	"github.com/dekarrin/tkrlang/internal/input"
	"github.com/dekarrin/tkrlang/internal/lexer"
	"github.com/dekarrin/tkrlang/internal/render"
	"github.com/dekarrin/tkrlang/internal/source"
	"github.com/dekarrin/tkrlang/internal/tkrerrors"
	"github.com/dekarrin/tkrlang/internal/token"
	"github.com/dekarrin/tkrlang/internal/version"
)

// Engine contains the things needed to run a lexing session from an
// interactive shell attached to an input stream and an output stream.
type Engine struct {
	cfg     config.Config
	in      command.Reader
	out     *bufio.Writer
	running bool

	// the most recently lexed source and its tokens, for :save.
	lastSrc  []rune
	lastToks []token.Token
}

// New returns an Engine that reads lines from inputStream and writes lexed
// tokens and messages to outputStream, with cfg as its starting settings.
//
// If nil is given for the input stream, stdin is used. If nil is given for the
// output stream, stdout is used. Readline is used for input only when both
// streams are the console and cfg.REPL.Direct is not set.
func New(inputStream io.Reader, outputStream io.Writer, cfg config.Config) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	eng := &Engine{
		cfg: cfg,
		out: bufio.NewWriter(outputStream),
	}

	useReadline := !cfg.REPL.Direct && inputStream == os.Stdin && outputStream == os.Stdout

	if useReadline {
		var err error
		eng.in, err = input.NewInteractiveReader(cfg.REPL.Prompt, "")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive-mode input reader: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	return eng, nil
}

// Close releases the Engine's line reader, which may hold the terminal when
// readline is in use. It fails if called while RunUntilQuit is going.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}

	err := eng.in.Close()
	if err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}

	return nil
}

// Config returns the settings the engine is currently using. They can change
// during a session as the user issues commands.
func (eng *Engine) Config() config.Config {
	return eng.cfg
}

// RunUntilQuit begins reading lines from the input stream and lexing them until
// the :quit command is received or input ends.
func (eng *Engine) RunUntilQuit() error {
	introMsg := "tkrlex " + version.Current + "\n"
	if eng.cfg.REPL.Direct {
		introMsg += "(direct input mode)\n"
	}
	introMsg += "Type source text to lex it, or :help for commands.\n"

	if err := eng.write(introMsg); err != nil {
		return err
	}

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for eng.running {
		if _, direct := eng.in.(*input.DirectReader); direct && eng.cfg.REPL.Prompt != "" {
			if err := eng.write(eng.cfg.REPL.Prompt); err != nil {
				return err
			}
		}

		line, err := eng.in.ReadCommand()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("get user input: %w", err)
		}

		if err := eng.Execute(line); err != nil {
			if err := eng.write(render.Error(err, eng.cfg.Output.Width) + "\n"); err != nil {
				return err
			}
		}
	}

	return eng.write("Goodbye\n")
}

// Execute runs a single line of input as if it had been typed in a session:
// a meta-command is carried out, and anything else is lexed and the tokens are
// printed. The returned error is a problem with the line itself, such as
// source that does not lex; it is suitable for showing to the user with
// render.Error.
func (eng *Engine) Execute(line string) error {
	parsed, err := command.Parse(line)
	if err != nil {
		return err
	}
	if parsed.Blank() {
		return nil
	}
	if parsed.Command != nil {
		return eng.runCommand(*parsed.Command)
	}
	return eng.lexAndPrint([]rune(parsed.Source))
}

func (eng *Engine) lexAndPrint(src []rune) error {
	toks, err := lexer.LexRunes(src)
	if err != nil {
		return err
	}

	eng.lastSrc = src
	eng.lastToks = toks

	return eng.write(render.Tokens(src, toks, eng.cfg.Output) + "\n")
}

func (eng *Engine) runCommand(cmd command.Command) error {
	switch cmd.Verb {
	case "HELP":
		return eng.write(render.Help(eng.cfg.Output.Width) + "\n")
	case "QUIT":
		eng.running = false
		return nil
	case "FORMAT":
		style, err := config.ParseStyle(cmd.Arg)
		if err != nil {
			return tkrerrors.WrapInputf(err, "%q is not a format", cmd.Arg)
		}
		eng.cfg.Output.Style = style
		return eng.write(fmt.Sprintf("Format set to %s\n", style))
	case "SPANS":
		eng.cfg.Output.Spans = cmd.Arg == "ON"
		if eng.cfg.Output.Spans {
			return eng.write("Spans will be shown\n")
		}
		return eng.write("Spans will be hidden\n")
	case "LOAD":
		src, err := source.ReadFile(cmd.Arg, source.Options{Normalize: eng.cfg.Source.Normalize})
		if err != nil {
			return tkrerrors.WrapInputf(err, "Could not read %s", cmd.Arg)
		}
		return eng.lexAndPrint(src)
	case "SAVE":
		if eng.lastToks == nil {
			return tkrerrors.Inputf("Nothing has been lexed yet, so there is nothing to save")
		}
		if err := SaveDump(cmd.Arg, eng.lastSrc, eng.lastToks); err != nil {
			return tkrerrors.WrapInputf(err, "Could not save to %s", cmd.Arg)
		}
		return eng.write(fmt.Sprintf("Saved %d tokens to %s\n", len(eng.lastToks), cmd.Arg))
	default:
		return tkrerrors.Inputf("I don't know how to %s", cmd.Verb)
	}
}

func (eng *Engine) write(s string) error {
	if _, err := eng.out.WriteString(s); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}
