// Package format parses printf-style format specifiers embedded in default
// localization values and maps each formatting argument to a semantic type.
package format

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

type (
	// ArgType is the semantic type of a single formatting argument.
	ArgType int

	// Specifier is one parsed format specifier from a default value.
	Specifier struct {
		Raw        string
		Length     string
		Conversion string
		ArgIndex   int
		Explicit   bool
		Type       ArgType
	}

	// IndexError reports a positional argument index that leaves a gap in
	// the 1..N sequence or is not positive.
	IndexError struct {
		Index int
	}

	// UnknownSpecifierError reports a length modifier/conversion combination
	// that has no semantic argument type.
	UnknownSpecifierError struct {
		Length     string
		Conversion string
	}
)

const (
	Char ArgType = iota
	Int16
	UInt16
	Int
	UInt
	Float64
	String
)

// ErrMixedIndices signals a default value that mixes explicit positional
// indices (%1$@) with implicit ones (%@).
var ErrMixedIndices = errors.New("format string mixes explicit and implicit argument indices")

// specifierPattern recognizes a printf-style specifier: an optional explicit
// 1-based index, flags, width, precision, an optional length modifier and a
// mandatory conversion character. A bare %% is matched so it can be skipped.
//
//nolint:lll // the grammar reads better on one line
var specifierPattern = regexp.MustCompile(`%(?:(\d+)\$)?([-+ #0']*)(\d+)?(?:\.(\d+))?(hh?|ll?)?([diuoxXfFeEgGaAcspn@%])`)

func (e *IndexError) Error() string {
	return fmt.Sprintf("format argument index %d is out of range: indices must form a dense 1..N sequence", e.Index)
}

func (e *UnknownSpecifierError) Error() string {
	return fmt.Sprintf("unknown format specifier %%%s%s", e.Length, e.Conversion)
}

// GoType returns the Go parameter type the argument type maps to.
func (t ArgType) GoType() string {
	switch t {
	case Char:
		return "rune"
	case Int16:
		return "int16"
	case UInt16:
		return "uint16"
	case Int:
		return "int"
	case UInt:
		return "uint"
	case Float64:
		return "float64"
	case String:
		return "string"
	default:
		return "any"
	}
}

// Parse scans text for printf-style format specifiers and returns one
// specifier per distinct argument index, ordered by index. A text without
// specifiers yields an empty result, never an error.
//
// All specifiers must agree on explicit or implicit indexing, the observed
// index set must be exactly 1..N, and every length modifier/conversion pair
// must map to a semantic argument type.
func Parse(text string) ([]Specifier, error) {
	matches := specifierPattern.FindAllStringSubmatch(text, -1)

	specs := make([]Specifier, 0, len(matches))
	for _, m := range matches {
		if m[6] == "%" {
			// Escaped percent, not an argument.
			continue
		}

		spec := Specifier{
			Raw:        m[0],
			Length:     m[5],
			Conversion: m[6],
		}

		if m[1] != "" {
			idx, err := strconv.Atoi(m[1])
			if err != nil {
				return nil, &IndexError{Index: -1}
			}
			spec.ArgIndex = idx
			spec.Explicit = true
		} else {
			spec.ArgIndex = len(specs) + 1
		}

		// The first specifier decides the indexing style for the rest.
		if len(specs) > 0 && specs[0].Explicit != spec.Explicit {
			return nil, ErrMixedIndices
		}

		specs = append(specs, spec)
	}

	if len(specs) == 0 {
		return nil, nil
	}

	sort.SliceStable(specs, func(i, j int) bool {
		return specs[i].ArgIndex < specs[j].ArgIndex
	})

	// Repeated references to the same argument collapse to one specifier.
	deduped := specs[:1]
	for _, spec := range specs[1:] {
		if spec.ArgIndex == deduped[len(deduped)-1].ArgIndex {
			continue
		}
		deduped = append(deduped, spec)
	}

	for i := range deduped {
		if deduped[i].ArgIndex != i+1 {
			return nil, &IndexError{Index: deduped[i].ArgIndex}
		}

		argType, ok := semanticType(deduped[i].Length, deduped[i].Conversion)
		if !ok {
			return nil, &UnknownSpecifierError{
				Length:     deduped[i].Length,
				Conversion: deduped[i].Conversion,
			}
		}
		deduped[i].Type = argType
	}

	return deduped, nil
}

// semanticType maps a length modifier/conversion pair to an argument type.
// Combinations outside the table are rejected rather than guessed.
func semanticType(length, conversion string) (ArgType, bool) {
	switch length {
	case "":
		switch conversion {
		case "c":
			return Char, true
		case "d", "i", "o", "x", "X":
			return Int16, true
		case "u":
			return UInt16, true
		case "f", "F", "e", "E", "g", "G", "a", "A":
			return Float64, true
		case "@":
			return String, true
		}
	case "h":
		switch conversion {
		case "d", "i", "o", "x", "X":
			return Int16, true
		case "u":
			return UInt16, true
		}
	case "l", "ll":
		switch conversion {
		case "d", "i", "o", "x", "X":
			return Int, true
		case "u":
			return UInt, true
		}
	}
	return 0, false
}

// Rewrite converts a default value with printf-style specifiers into Go fmt
// syntax so it can be applied with fmt.Sprintf: explicit indices become
// [N] argument indexes, length modifiers are dropped and conversions without
// a Go equivalent are mapped to the closest verb.
func Rewrite(text string) string {
	return specifierPattern.ReplaceAllStringFunc(text, func(raw string) string {
		m := specifierPattern.FindStringSubmatch(raw)
		if m[6] == "%" {
			return "%%"
		}

		var b strings.Builder
		b.WriteByte('%')
		b.WriteString(strings.ReplaceAll(m[2], "'", ""))
		b.WriteString(m[3])
		if m[4] != "" {
			b.WriteString("." + m[4])
		}
		// Go places the explicit argument index right before the verb.
		if m[1] != "" {
			b.WriteString("[" + m[1] + "]")
		}
		b.WriteString(goVerb(m[6]))
		return b.String()
	})
}

func goVerb(conversion string) string {
	switch conversion {
	case "@", "n":
		return "v"
	case "i", "u":
		return "d"
	case "a":
		return "x"
	case "A":
		return "X"
	case "F":
		return "f"
	default:
		return conversion
	}
}
