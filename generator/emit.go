package generator

import (
	"fmt"
	goformat "go/format"
	"strconv"
	"strings"
	"unicode"

	"github.com/bondowe/stringcat/internal/directive"
)

// runtimeImport is the package the generated accessors resolve strings
// through. The emitted call shapes must match its signatures exactly.
const runtimeImport = "github.com/bondowe/stringcat"

// emitDeclaration renders the Go source of one accessor declaration.
func emitDeclaration(receiver string, req *directive.Request, mode Mode, decl Declaration, comment string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "// %s returns the localized string for key %q.\n", decl.Name, decl.Key)
	if comment != "" {
		fmt.Fprintf(&b, "//\n// %s\n", comment)
	}

	if len(decl.Params) == 0 {
		fmt.Fprintf(&b, "func (%s) %s() string {\n", receiver, decl.Name)
		fmt.Fprintf(&b, "\treturn %s\n", lookupCall(req, mode, decl, comment))
		b.WriteString("}\n")
		return b.String()
	}

	params := make([]string, len(decl.Params))
	args := make([]string, len(decl.Params))
	for i, argType := range decl.Params {
		args[i] = fmt.Sprintf("arg%d", i+1)
		params[i] = args[i] + " " + argType.GoType()
	}

	fmt.Fprintf(&b, "func (%s) %s(%s) string {\n", receiver, decl.Name, strings.Join(params, ", "))
	fmt.Fprintf(&b, "\tformat := %s\n", lookupCall(req, mode, decl, comment))
	fmt.Fprintf(&b, "\treturn stringcat.Format(format, %s)\n", strings.Join(args, ", "))
	b.WriteString("}\n")
	return b.String()
}

// lookupCall renders the resource-lookup expression for one declaration.
//
// The current form appends table/bundle options only when they differ from
// the documented defaults; the legacy form is fixed-arity and spells every
// argument out.
func lookupCall(req *directive.Request, mode Mode, decl Declaration, comment string) string {
	if mode == ModeLegacy {
		table := `""`
		if req.HasTable {
			table = req.Table
		}
		bundle := "stringcat.Main"
		if req.HasBundle && !isDefaultBundle(req.Bundle) {
			bundle = req.Bundle
		}
		return fmt.Sprintf("stringcat.Localize(%s, %s, %s, %s, %s)",
			strconv.Quote(decl.Key), table, bundle, strconv.Quote(decl.Default), strconv.Quote(comment))
	}

	call := fmt.Sprintf("stringcat.Lookup(%s, %s", strconv.Quote(decl.Key), strconv.Quote(decl.Default))
	if req.HasTable && !isDefaultTable(req.Table) {
		call += ", stringcat.InTable(" + req.Table + ")"
	}
	if req.HasBundle && !isDefaultBundle(req.Bundle) {
		call += ", stringcat.InBundle(" + req.Bundle + ")"
	}
	return call + ")"
}

// isDefaultTable reports whether the table expression is textually the
// documented default (not specified, or the empty string literal).
func isDefaultTable(table string) bool {
	return table == "" || table == `""`
}

// isDefaultBundle reports whether the bundle expression is textually the
// documented default (the main bundle).
func isDefaultBundle(bundle string) bool {
	switch bundle {
	case "", ".main", "Main", "stringcat.Main":
		return true
	default:
		return false
	}
}

// exportedName turns a case name into an exported Go method name.
func exportedName(name string) string {
	runes := []rune(name)
	if len(runes) == 0 {
		return name
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// File renders a complete generated source file from the given sections and
// returns it gofmt-formatted. Sections are emitted in order and typically
// come from Result.Declarations.
func File(pkg string, sections ...string) ([]byte, error) {
	var b strings.Builder
	b.WriteString("// Code generated by stringcat-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import %q\n\n", runtimeImport)

	for _, section := range sections {
		b.WriteString(section)
		b.WriteString("\n")
	}

	formatted, err := goformat.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}
