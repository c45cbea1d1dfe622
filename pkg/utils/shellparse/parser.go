// Package shellparse splits command strings into argument vectors using
// POSIX-style word splitting, and joins vectors back with the quoting
// required to round-trip. Wrapper commands from the configuration file go
// through Split before being prepended to a launch.
package shellparse

import (
	"errors"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote reports a quote opened but never closed.
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape reports a backslash as the final character.
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

type quoteState int

const (
	unquoted quoteState = iota
	singleQuoted
	doubleQuoted
)

// Split parses a command string into arguments. Single quotes are fully
// literal; double quotes honor backslash escapes for `"`, `\`, `$` and
// backtick; a backslash outside quotes escapes any character. A quoted
// empty string produces an empty argument.
func Split(input string) ([]string, error) {
	args := []string{}
	var word strings.Builder

	state := unquoted
	wordOpen := false // distinguishes "" from no word at all

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\' && state != singleQuoted:
			if i+1 == len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if state == doubleQuoted && !strings.ContainsRune("\"\\$`", next) {
				// Inside double quotes the backslash is literal before
				// ordinary characters.
				word.WriteRune('\\')
			}
			word.WriteRune(next)
			wordOpen = true

		case r == '\'' && state == unquoted:
			state = singleQuoted
			wordOpen = true
		case r == '\'' && state == singleQuoted:
			state = unquoted

		case r == '"' && state == unquoted:
			state = doubleQuoted
			wordOpen = true
		case r == '"' && state == doubleQuoted:
			state = unquoted

		case unicode.IsSpace(r) && state == unquoted:
			if wordOpen {
				args = append(args, word.String())
				word.Reset()
				wordOpen = false
			}

		default:
			word.WriteRune(r)
			wordOpen = true
		}
	}

	if state != unquoted {
		return nil, ErrUnclosedQuote
	}
	if wordOpen {
		args = append(args, word.String())
	}

	return args, nil
}

// Join renders an argument vector as a command string that Split parses
// back to the same vector.
func Join(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quoteArg(arg)
	}
	return strings.Join(quoted, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsFunc(arg, needsQuoting) {
		return arg
	}

	// Single quotes are the simple case; they cannot contain themselves.
	if !strings.ContainsRune(arg, '\'') {
		return "'" + arg + "'"
	}

	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range arg {
		if strings.ContainsRune("\"\\$`", r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsQuoting(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(`'"\$`+"`", r)
}
