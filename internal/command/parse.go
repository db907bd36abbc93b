package command

import (
	"strings"

	"github.com/dekarrin/tkrlang/internal/tkrerrors"
)

var (
	// VerbAliases maps shorthand verbs to their canonical forms. They are all
	// uppercase and do not include the Prefix.
	VerbAliases = map[string]string{
		"Q":     "QUIT",
		"EXIT":  "QUIT",
		"BYE":   "QUIT",
		"?":     "HELP",
		"H":     "HELP",
		"F":     "FORMAT",
		"FMT":   "FORMAT",
		"S":     "SPANS",
		"L":     "LOAD",
		"W":     "SAVE",
		"WRITE": "SAVE",
	}
)

// Parse parses one line of session input. Lines starting with Prefix are
// parsed as meta-commands and any error returned will have a human message
// obtainable with tkrerrors.HumanMessage. Other lines are returned as source
// unchanged, other than having surrounding whitespace removed.
func Parse(line string) (Line, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Line{}, nil
	}
	if !strings.HasPrefix(trimmed, Prefix) {
		return Line{Source: trimmed}, nil
	}

	cmd, err := parseCommand(strings.TrimPrefix(trimmed, Prefix))
	if err != nil {
		return Line{}, err
	}
	return Line{Command: &cmd}, nil
}

func parseCommand(toParse string) (Command, error) {
	var parsedCmd Command

	casedTokens := strings.Fields(toParse)
	if len(casedTokens) < 1 {
		return parsedCmd, tkrerrors.Inputf("Type a command name after %q, such as %shelp", Prefix, Prefix)
	}

	parsedCmd.Verb = ExpandAlias(casedTokens[0])
	args := casedTokens[1:]

	switch parsedCmd.Verb {
	case "HELP", "QUIT":
		if len(args) > 0 {
			errMsg := "%s%s does not take an argument"
			return parsedCmd, tkrerrors.Inputf(errMsg, Prefix, strings.ToLower(casedTokens[0]))
		}
	case "FORMAT":
		if len(args) != 1 {
			return parsedCmd, tkrerrors.Inputf("Give exactly one format: table, list, or kinds")
		}
		parsedCmd.Arg = strings.ToUpper(args[0])
		switch parsedCmd.Arg {
		case "TABLE", "LIST", "KINDS":
		default:
			return parsedCmd, tkrerrors.Inputf("%q is not a format; use table, list, or kinds", args[0])
		}
	case "SPANS":
		if len(args) != 1 {
			return parsedCmd, tkrerrors.Inputf("Give either on or off")
		}
		parsedCmd.Arg = strings.ToUpper(args[0])
		switch parsedCmd.Arg {
		case "ON", "OFF":
		default:
			return parsedCmd, tkrerrors.Inputf("%q is not on or off", args[0])
		}
	case "LOAD", "SAVE":
		// file names may contain spaces; keep everything after the verb as
		// typed.
		if len(args) < 1 {
			return parsedCmd, tkrerrors.Inputf("I don't know what file you want to %s", strings.ToLower(parsedCmd.Verb))
		}
		parsedCmd.Arg = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(toParse), casedTokens[0]))
	default:
		return parsedCmd, tkrerrors.Inputf("I don't know what you mean by %q", Prefix+casedTokens[0])
	}

	return parsedCmd, nil
}

// ExpandAlias returns the canonical form of verb, upper-cased. If verb is not
// an alias, it is returned upper-cased.
func ExpandAlias(verb string) string {
	upper := strings.ToUpper(verb)
	if expansion, ok := VerbAliases[upper]; ok {
		return expansion
	}
	return upper
}
