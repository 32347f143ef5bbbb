// Package directive parses the named arguments attached to a stringcat
// strings directive and builds localization keys from the result.
package directive

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type (
	// Request holds the parsed directive arguments of one key enumeration.
	// Values are captured as raw expression text; plain-string arguments
	// have surrounding quotes stripped.
	Request struct {
		Prefix       string
		HasPrefix    bool
		Separator    string
		HasSeparator bool
		Table        string
		HasTable     bool
		Bundle       string
		HasBundle    bool
		StringsEnum  string
	}
)

// DefaultStringsEnum is the nested enumeration consulted for key cases when
// the directive does not name one.
const DefaultStringsEnum = "Strings"

var (
	// ErrInvalidArguments signals directive arguments that could not be
	// parsed as a named-argument list.
	ErrInvalidArguments = errors.New("directive arguments could not be parsed as a named-argument list")

	// ErrInvalidSeparator signals a separator argument that is not a quoted
	// string literal.
	ErrInvalidSeparator = errors.New("separator must be a quoted string literal")
)

// Parse extracts the recognized named arguments (prefix, table, separator,
// stringsEnum, bundle) from the raw directive argument text. Unrecognized
// names are ignored for forward compatibility.
func Parse(args string) (*Request, error) {
	req := &Request{StringsEnum: DefaultStringsEnum}

	for _, part := range splitArguments(args) {
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidArguments, part)
		}

		name = strings.TrimSpace(name)
		value = strings.TrimSpace(value)
		if name == "" || value == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidArguments, part)
		}

		switch name {
		case "prefix":
			req.Prefix = unwrapString(value)
			req.HasPrefix = true
		case "separator":
			literal, err := strconv.Unquote(value)
			if err != nil || !strings.HasPrefix(value, `"`) {
				return nil, fmt.Errorf("%w, got %s", ErrInvalidSeparator, value)
			}
			req.Separator = literal
			req.HasSeparator = true
		case "stringsEnum":
			req.StringsEnum = unwrapString(value)
		case "table":
			req.Table = value
			req.HasTable = true
		case "bundle":
			req.Bundle = value
			req.HasBundle = true
		}
	}

	return req, nil
}

// Key builds the localization key for a case name: prefix + separator + name
// when a prefix was supplied, the bare de-escaped name otherwise. The
// separator is never inserted without a prefix.
func (r *Request) Key(name, separatorDefault string) string {
	name = Unescape(name)
	if !r.HasPrefix {
		return name
	}

	separator := r.Separator
	if !r.HasSeparator {
		separator = separatorDefault
	}
	return r.Prefix + separator + name
}

// NeedsSeparatorNotice reports whether the advisory diagnostic about the
// pending separator default change applies: a prefix was supplied but no
// explicit separator was.
func (r *Request) NeedsSeparatorNotice() bool {
	return r.HasPrefix && !r.HasSeparator
}

// Unescape removes identifier-escaping decoration from a case name, such as
// the surrounding backticks used when a name collides with a reserved word.
func Unescape(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, "`") && strings.HasSuffix(name, "`") {
		return name[1 : len(name)-1]
	}
	return name
}

// unwrapString strips surrounding quotes from values where a plain string is
// expected, leaving unquoted expression text untouched.
func unwrapString(value string) string {
	if literal, err := strconv.Unquote(value); err == nil && strings.HasPrefix(value, `"`) {
		return literal
	}
	return value
}

// splitArguments splits the argument text on top-level commas, keeping
// commas inside string literals and parenthesized expressions intact.
func splitArguments(args string) []string {
	var (
		parts    []string
		depth    int
		inString bool
		escaped  bool
		start    int
	)

	for i := 0; i < len(args); i++ {
		c := args[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, args[start:i])
			start = i + 1
		}
	}
	parts = append(parts, args[start:])

	out := parts[:0]
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			out = append(out, strings.TrimSpace(part))
		}
	}
	return out
}
