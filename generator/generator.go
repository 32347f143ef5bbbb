// Package generator synthesizes typed localized-string accessor declarations
// from declarative key enumerations.
//
// A key enumeration is described by a Decl tree: the annotated enum, its raw
// directive arguments and a nested strings enumeration whose cases pair a key
// name with a default value. Generate turns every case into exactly one
// declaration: a zero-argument accessor when the default value carries no
// format specifiers, or a formatting function whose parameters are typed from
// the parsed specifiers.
package generator

import (
	"errors"
	"fmt"

	"github.com/bondowe/stringcat/internal/directive"
	"github.com/bondowe/stringcat/internal/format"
)

type (
	// Kind classifies a declaration in the host source tree.
	Kind int

	// Mode selects the lookup call shape and the default key separator.
	Mode int

	// Severity grades a diagnostic.
	Severity int

	// KeyCase is one entry of a key enumeration: a raw case name (possibly
	// escaped) and an optional explicit default value.
	KeyCase struct {
		Name         string
		DefaultValue string
		HasDefault   bool
		Comment      string
	}

	// Decl is a node of the abstract declaration tree the synthesizer
	// operates on. Host-syntax concerns stay in the front end that builds it.
	Decl struct {
		Kind    Kind
		Name    string
		Args    string
		Members []*Decl
		Cases   []KeyCase
	}

	// Declaration is one synthesized accessor. Params is empty for constant
	// bindings and holds the ordered semantic argument types otherwise.
	Declaration struct {
		Name    string
		Key     string
		Default string
		Params  []format.ArgType
		Source  string
	}

	// Diagnostic is a non-fatal notice attached to the annotated enum.
	Diagnostic struct {
		Severity Severity
		Message  string
	}

	// Result is the outcome of one successful expansion.
	Result struct {
		Declarations []Declaration
		Diagnostics  []Diagnostic
	}

	// MissingEnumError reports an absent nested strings enumeration.
	MissingEnumError struct {
		Name string
	}
)

const (
	KindEnum Kind = iota
	KindStruct
	KindOther
)

const (
	// ModeCurrent emits option-style lookups and keys joined with a dot.
	ModeCurrent Mode = iota
	// ModeLegacy emits the fixed-arity lookup call and underscore-joined keys.
	ModeLegacy
)

const (
	SeverityWarning Severity = iota
	SeverityError
)

// ErrNotAnEnum signals a directive attached to a declaration that is not an
// enumeration.
var ErrNotAnEnum = errors.New("localized strings can only be generated for enum declarations")

func (e *MissingEnumError) Error() string {
	return fmt.Sprintf("no nested strings enumeration named %q was found", e.Name)
}

// Member returns the nested declaration with the given name.
func (d *Decl) Member(name string) (*Decl, bool) {
	for _, member := range d.Members {
		if member.Name == name {
			return member, true
		}
	}
	return nil, false
}

func (m Mode) defaultSeparator() string {
	if m == ModeLegacy {
		return "_"
	}
	return "."
}

// Generate expands one annotated enumeration into its accessor declarations.
// Every case of the nested strings enumeration yields exactly one
// declaration; any failure aborts the whole expansion with no partial output.
func Generate(decl *Decl, mode Mode) (*Result, error) {
	if decl.Kind != KindEnum {
		return nil, ErrNotAnEnum
	}

	req, err := directive.Parse(decl.Args)
	if err != nil {
		return nil, err
	}

	stringsEnum, ok := decl.Member(req.StringsEnum)
	if !ok {
		return nil, &MissingEnumError{Name: req.StringsEnum}
	}

	result := &Result{}
	if req.NeedsSeparatorNotice() {
		// One advisory per expansion, never blocking.
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Message: "the default separator is scheduled to change from \"_\" to \".\"; " +
				"specify separator explicitly to keep keys stable",
		})
	}

	for _, keyCase := range stringsEnum.Cases {
		name := directive.Unescape(keyCase.Name)

		defaultValue := name
		if keyCase.HasDefault {
			defaultValue = keyCase.DefaultValue
		}

		specs, parseErr := format.Parse(defaultValue)
		if parseErr != nil {
			return nil, fmt.Errorf("case %q: %w", name, parseErr)
		}

		declaration := Declaration{
			Name:    exportedName(name),
			Key:     req.Key(keyCase.Name, mode.defaultSeparator()),
			Default: defaultValue,
		}
		for _, spec := range specs {
			declaration.Params = append(declaration.Params, spec.Type)
		}
		declaration.Source = emitDeclaration(decl.Name, req, mode, declaration, keyCase.Comment)

		result.Declarations = append(result.Declarations, declaration)
	}

	return result, nil
}
