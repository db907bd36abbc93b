// Package command defines the meta-commands of an interactive tkrlex session
// and handles parsing of them from input lines. A line that starts with ':' is
// a meta-command; any other line is source text to be lexed.
package command

// Prefix is the symbol that starts every meta-command.
const Prefix = ":"

// Command is a valid meta-command received from a session input source.
type Command struct {

	// Verb is the canonical name of the command being invoked, such as "QUIT",
	// "FORMAT", or "SPANS". Some verbs may have shorthand forms which are typed
	// differently, for instance ":q" could be typed instead of ":quit", and
	// for all those cases they would result in a Command with a verb of QUIT.
	Verb string

	// Arg is the argument to the command, if it takes one. It is upper-cased
	// for commands whose argument is a choice from a fixed set, and kept as
	// typed otherwise.
	Arg string
}

// Line is a single line of input from a session. Exactly one of Command and
// Source is set, unless the line was blank in which case neither is.
type Line struct {
	Command *Command
	Source  string
}

// Blank returns whether the line had no content at all.
func (l Line) Blank() bool {
	return l.Command == nil && l.Source == ""
}
