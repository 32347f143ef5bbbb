// Package main provides stringcat-gen, a CLI tool for generating typed localized-string accessors from declarative key enumerations.
//
// stringcat-gen scans Go source for key enumerations annotated with a
// //stringcat:strings directive, derives one accessor per key case — a
// zero-argument accessor for plain default values, a typed formatting
// function when the default value embeds printf-style specifiers — and
// writes them to sibling *_strings.go files. It can also maintain JSON
// message catalogs so translators always see the current key set.
//
// Installation:
//
//	go install github.com/bondowe/stringcat/cmd/stringcat-gen@latest
//
// Basic Usage:
//
// Generate accessors for a package:
//
//	stringcat-gen -source ./ui
//
// Generate accessors and update message catalogs:
//
//	stringcat-gen -source ./ui -mode both -languages "en,fr,es"
//
// Generate from a YAML manifest instead of Go source:
//
//	stringcat-gen -manifest strings.yaml
//
// Emit the legacy lookup form with underscore-joined keys:
//
//	stringcat-gen -source ./ui -legacy
//
// Flags:
//
//	-source     Directory containing annotated Go source files
//	-manifest   YAML manifest describing key enumerations
//	-mode       accessors, catalogs, or both (default: accessors)
//	-locales    Output directory for message catalogs (default: ./locales)
//	-languages  Comma-separated language codes (required for catalog modes)
//	-legacy     Emit the legacy fixed-arity lookup call shape
//	-config     YAML file with default values for the other flags
//
// A key enumeration looks like:
//
//	//stringcat:strings(prefix: "about", separator: ".")
//	type About int
//
//	type AboutStrings string
//
//	const (
//	    title         AboutStrings = "Perfectly balanced"
//	    pieChartTitle AboutStrings = "%1$@ with color %2$@"
//	)
//
// Errors abort only the offending enumeration's expansion and are reported
// as file:line diagnostics; the advisory separator notice never blocks
// generation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/uuid"
	"sigs.k8s.io/yaml"

	"github.com/bondowe/stringcat/generator"
	"github.com/bondowe/stringcat/internal/format"
)

// Placeholder represents a placeholder in a catalog message.
type Placeholder struct {
	ID             string `json:"id"`
	String         string `json:"string"`
	Type           string `json:"type"`
	UnderlyingType string `json:"underlyingType"`
	Expr           string `json:"expr"`
	ArgNum         int    `json:"argNum"`
}

// Message represents a translation message in gotext format.
type Message struct {
	ID           string                 `json:"id"`
	Message      string                 `json:"message"`
	Translation  string                 `json:"translation,omitempty"`
	Placeholders map[string]Placeholder `json:"placeholders,omitempty"`
}

// Catalog represents a message catalog file.
type Catalog struct {
	Language string    `json:"language"`
	Messages []Message `json:"messages"`
}

// KeyInfo holds one generated key with the data catalog maintenance needs.
type KeyInfo struct {
	Key          string
	DefaultValue string
	Specifiers   []format.Specifier
}

// enumSource ties a declaration tree to the file it came from.
type enumSource struct {
	decl     *generator.Decl
	pkg      string
	file     string
	position string
}

type config struct {
	sourceDir  string
	manifest   string
	mode       string
	localesDir string
	languages  []string
	legacy     bool
}

// toolConfig mirrors the flag set for the optional YAML config file. Flags
// given on the command line always win over file values.
type toolConfig struct {
	Source    string   `json:"source,omitempty"`
	Manifest  string   `json:"manifest,omitempty"`
	Mode      string   `json:"mode,omitempty"`
	Locales   string   `json:"locales,omitempty"`
	Languages []string `json:"languages,omitempty"`
	Legacy    bool     `json:"legacy,omitempty"`
}

type manifest struct {
	Package string         `json:"package"`
	Enums   []manifestEnum `json:"enums"`
}

type manifestEnum struct {
	Name    string         `json:"name"`
	Args    string         `json:"args,omitempty"`
	Strings []manifestCase `json:"strings"`
}

type manifestCase struct {
	Name    string `json:"name"`
	Value   string `json:"value,omitempty"`
	Comment string `json:"comment,omitempty"`
}

// directivePattern matches the strings directive with its optional argument list.
var directivePattern = regexp.MustCompile(`^//stringcat:strings(?:\((.*)\))?$`)

func main() {
	cfg := parseFlags()

	mode := generator.ModeCurrent
	if cfg.legacy {
		mode = generator.ModeLegacy
	}

	enums := collectSources(cfg)
	if len(enums) == 0 {
		log.Println("No key enumerations found")
		return
	}

	keys, failed := expand(cfg, mode, enums)

	if cfg.mode == "catalogs" || cfg.mode == "both" {
		updateCatalogs(cfg, keys)
	}

	printKeySummary(keys)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "stringcat-gen: %d enumeration(s) failed\n", failed)
		os.Exit(1)
	}
	log.Println("\n✓ Generation completed successfully")
}

func parseFlags() config {
	sourceDir := flag.String("source", "", "Directory containing annotated Go source files")
	manifestPath := flag.String("manifest", "", "YAML manifest describing key enumerations")
	mode := flag.String("mode", "accessors", "Generation mode: accessors, catalogs, or both")
	localesDir := flag.String("locales", "./locales", "Directory for message catalogs (input and output)")
	languagesFlag := flag.String("languages", "", "Comma-separated list of language codes (e.g., en,fr,es)")
	legacy := flag.Bool("legacy", false, "Emit the legacy fixed-arity lookup call shape")
	configPath := flag.String("config", "", "YAML file with default values for the other flags")
	flag.Parse()

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if *configPath != "" {
		fileCfg, err := loadToolConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file: %v\n", err)
			os.Exit(1)
		}

		if !explicit["source"] && fileCfg.Source != "" {
			*sourceDir = fileCfg.Source
		}
		if !explicit["manifest"] && fileCfg.Manifest != "" {
			*manifestPath = fileCfg.Manifest
		}
		if !explicit["mode"] && fileCfg.Mode != "" {
			*mode = fileCfg.Mode
		}
		if !explicit["locales"] && fileCfg.Locales != "" {
			*localesDir = fileCfg.Locales
		}
		if !explicit["languages"] && len(fileCfg.Languages) > 0 {
			*languagesFlag = strings.Join(fileCfg.Languages, ",")
		}
		if !explicit["legacy"] {
			*legacy = fileCfg.Legacy
		}
	}

	if *mode != "accessors" && *mode != "catalogs" && *mode != "both" {
		fmt.Fprintf(os.Stderr, "Invalid mode: %s. Use 'accessors', 'catalogs', or 'both'\n", *mode)
		flag.Usage()
		os.Exit(1)
	}

	if *sourceDir == "" && *manifestPath == "" {
		fmt.Fprintf(os.Stderr, "Error: one of -source or -manifest is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	languages := parseLanguages(*languagesFlag)
	if (*mode == "catalogs" || *mode == "both") && len(languages) == 0 {
		fmt.Fprintf(os.Stderr, "Error: -languages is required for mode '%s'\n", *mode)
		fmt.Fprintf(os.Stderr, "Example: -languages \"en,fr,es\"\n\n")
		flag.Usage()
		os.Exit(1)
	}

	return config{
		sourceDir:  *sourceDir,
		manifest:   *manifestPath,
		mode:       *mode,
		localesDir: *localesDir,
		languages:  languages,
		legacy:     *legacy,
	}
}

// loadToolConfig reads the optional YAML config file.
func loadToolConfig(path string) (toolConfig, error) {
	var cfg toolConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config: %w", err)
	}
	if unmarshalErr := yaml.Unmarshal(data, &cfg); unmarshalErr != nil {
		return cfg, fmt.Errorf("error parsing config: %w", unmarshalErr)
	}
	return cfg, nil
}

// parseLanguages splits a comma-separated string into a slice of language codes.
func parseLanguages(input string) []string {
	if input == "" {
		return nil
	}

	var languages []string
	for _, part := range strings.Split(input, ",") {
		lang := strings.TrimSpace(part)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

func collectSources(cfg config) []enumSource {
	var enums []enumSource

	if cfg.manifest != "" {
		manifestEnums, err := loadManifest(cfg.manifest)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
			os.Exit(1)
		}
		enums = append(enums, manifestEnums...)
	}

	if cfg.sourceDir != "" {
		sourceEnums, err := scanGoSources(cfg.sourceDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error scanning sources: %v\n", err)
			os.Exit(1)
		}
		enums = append(enums, sourceEnums...)
	}

	return enums
}

// expand runs the generator over every collected enumeration, writes the
// accessor files and reports diagnostics. A failure aborts only the
// offending enumeration; the remaining declarations still expand.
func expand(cfg config, mode generator.Mode, enums []enumSource) ([]KeyInfo, int) {
	var keys []KeyInfo
	failed := 0

	// Accessors for enums from one source file share one generated file.
	sections := make(map[string][]string)
	packages := make(map[string]string)
	order := make([]string, 0, len(enums))

	for _, enum := range enums {
		result, err := generator.Generate(enum.decl, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: error: %v\n", enum.position, err)
			failed++
			continue
		}

		for _, diag := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "%s: warning: %s\n", enum.position, diag.Message)
		}

		if _, seen := sections[enum.file]; !seen {
			order = append(order, enum.file)
			packages[enum.file] = enum.pkg
			if isManifestFile(enum.file) {
				// Manifest enums have no host type; declare it alongside
				// the accessors.
				sections[enum.file] = append(sections[enum.file],
					fmt.Sprintf("type %s struct{}\n", enum.decl.Name))
			}
		} else if isManifestFile(enum.file) {
			sections[enum.file] = append(sections[enum.file],
				fmt.Sprintf("type %s struct{}\n", enum.decl.Name))
		}

		for _, decl := range result.Declarations {
			sections[enum.file] = append(sections[enum.file], decl.Source)

			specs, _ := format.Parse(decl.Default)
			keys = append(keys, KeyInfo{
				Key:          decl.Key,
				DefaultValue: decl.Default,
				Specifiers:   specs,
			})
		}
	}

	if cfg.mode == "accessors" || cfg.mode == "both" {
		for _, file := range order {
			if err := writeAccessorFile(file, packages[file], sections[file]); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing accessors for %s: %v\n", file, err)
				failed++
			}
		}
	}

	return keys, failed
}

func isManifestFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".yaml" || ext == ".yml"
}

func outputPath(sourceFile string) string {
	ext := filepath.Ext(sourceFile)
	return strings.TrimSuffix(sourceFile, ext) + "_strings.go"
}

func writeAccessorFile(sourceFile, pkg string, sections []string) error {
	data, err := generator.File(pkg, sections...)
	if err != nil {
		return err
	}

	target := outputPath(sourceFile)
	if writeErr := os.WriteFile(target, data, 0600); writeErr != nil {
		return fmt.Errorf("error writing file: %w", writeErr)
	}

	log.Printf("Wrote %s\n", target)
	return nil
}

// loadManifest reads a YAML manifest and builds one declaration tree per
// listed enumeration. The nested strings enumeration is always named
// "Strings" in manifest mode.
func loadManifest(path string) ([]enumSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}

	var m manifest
	if unmarshalErr := yaml.Unmarshal(data, &m); unmarshalErr != nil {
		return nil, fmt.Errorf("error parsing manifest: %w", unmarshalErr)
	}
	if m.Package == "" {
		return nil, fmt.Errorf("manifest %s does not name a package", path)
	}

	enums := make([]enumSource, 0, len(m.Enums))
	for _, enum := range m.Enums {
		cases := make([]generator.KeyCase, 0, len(enum.Strings))
		for _, c := range enum.Strings {
			cases = append(cases, generator.KeyCase{
				Name:         c.Name,
				DefaultValue: c.Value,
				HasDefault:   c.Value != "",
				Comment:      c.Comment,
			})
		}

		enums = append(enums, enumSource{
			decl: &generator.Decl{
				Kind: generator.KindEnum,
				Name: enum.Name,
				Args: enum.Args,
				Members: []*generator.Decl{
					{Kind: generator.KindEnum, Name: "Strings", Cases: cases},
				},
			},
			pkg:      m.Package,
			file:     path,
			position: path,
		})
	}

	return enums, nil
}

// scanGoSources walks a directory for Go files carrying strings directives
// and builds a declaration tree per annotated type.
func scanGoSources(dir string) ([]enumSource, error) {
	var enums []enumSource

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".go") ||
			strings.HasSuffix(path, "_test.go") ||
			strings.HasSuffix(path, "_strings.go") {
			return nil
		}

		fset := token.NewFileSet()
		file, parseErr := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if parseErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: error parsing %s: %v\n", path, parseErr)
			return nil // Continue processing other files
		}

		enums = append(enums, collectEnums(fset, file, path)...)
		return nil
	})

	return enums, err
}

// collectEnums extracts every directive-annotated type of one parsed file,
// together with its nested enumerations and their key cases.
func collectEnums(fset *token.FileSet, file *ast.File, path string) []enumSource {
	type annotated struct {
		spec *ast.TypeSpec
		args string
	}

	var (
		directives []annotated
		types      = make(map[string]*ast.TypeSpec)
		cases      = make(map[string][]generator.KeyCase)
		typeOrder  []string
	)

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		switch genDecl.Tok {
		case token.TYPE:
			for _, spec := range genDecl.Specs {
				typeSpec, isType := spec.(*ast.TypeSpec)
				if !isType {
					continue
				}
				types[typeSpec.Name.Name] = typeSpec
				typeOrder = append(typeOrder, typeSpec.Name.Name)

				if args, found := directiveArgs(genDecl.Doc, typeSpec.Doc); found {
					directives = append(directives, annotated{spec: typeSpec, args: args})
				}
			}
		case token.CONST:
			collectCases(genDecl, cases)
		}
	}

	var enums []enumSource
	for _, annotatedType := range directives {
		outer := annotatedType.spec.Name.Name
		decl := &generator.Decl{
			Kind: kindOf(annotatedType.spec.Type),
			Name: outer,
			Args: annotatedType.args,
		}

		// Nested enumerations are the sibling types named <Outer><Member>.
		for _, typeName := range typeOrder {
			if typeName == outer || !strings.HasPrefix(typeName, outer) {
				continue
			}
			memberName := strings.TrimPrefix(typeName, outer)
			decl.Members = append(decl.Members, &generator.Decl{
				Kind:  kindOf(types[typeName].Type),
				Name:  memberName,
				Cases: cases[typeName],
			})
		}

		enums = append(enums, enumSource{
			decl:     decl,
			pkg:      file.Name.Name,
			file:     path,
			position: fset.Position(annotatedType.spec.Pos()).String(),
		})
	}

	return enums
}

// collectCases gathers the key cases of every typed const group in one block.
func collectCases(genDecl *ast.GenDecl, cases map[string][]generator.KeyCase) {
	currentType := ""
	for _, spec := range genDecl.Specs {
		valueSpec, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}

		if ident, hasType := valueSpec.Type.(*ast.Ident); hasType {
			currentType = ident.Name
		}
		if currentType == "" {
			continue
		}

		for i, name := range valueSpec.Names {
			keyCase := generator.KeyCase{Name: name.Name}

			if i < len(valueSpec.Values) {
				if lit, isLit := valueSpec.Values[i].(*ast.BasicLit); isLit && lit.Kind == token.STRING {
					if value, err := strconv.Unquote(lit.Value); err == nil {
						keyCase.DefaultValue = value
						keyCase.HasDefault = true
					}
				}
			}

			keyCase.Comment = caseComment(valueSpec)
			cases[currentType] = append(cases[currentType], keyCase)
		}
	}
}

// caseComment returns the doc or trailing line comment of a const spec.
func caseComment(valueSpec *ast.ValueSpec) string {
	if valueSpec.Doc != nil {
		return strings.TrimSpace(valueSpec.Doc.Text())
	}
	if valueSpec.Comment != nil {
		return strings.TrimSpace(valueSpec.Comment.Text())
	}
	return ""
}

// directiveArgs finds the strings directive in the declaration's comments
// and returns its raw argument text.
func directiveArgs(groups ...*ast.CommentGroup) (string, bool) {
	for _, group := range groups {
		if group == nil {
			continue
		}
		for _, comment := range group.List {
			if m := directivePattern.FindStringSubmatch(comment.Text); m != nil {
				return m[1], true
			}
		}
	}
	return "", false
}

// kindOf classifies a type expression the way the generator expects:
// defined basic types are enumerations, structs and interfaces are not.
func kindOf(expr ast.Expr) generator.Kind {
	switch expr.(type) {
	case *ast.Ident, *ast.SelectorExpr:
		return generator.KindEnum
	case *ast.StructType:
		return generator.KindStruct
	default:
		return generator.KindOther
	}
}

// updateCatalogs merges the generated key set into every language's catalog.
func updateCatalogs(cfg config, keys []KeyInfo) {
	if err := os.MkdirAll(cfg.localesDir, 0750); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating locales directory: %v\n", err)
		os.Exit(1)
	}

	keyed := make(map[string]KeyInfo, len(keys))
	for _, key := range keys {
		keyed[key.Key] = key
	}

	log.Println("\n=== Updating Message Catalogs ===")
	for _, lang := range cfg.languages {
		if err := mergeAndUpdateCatalog(cfg.localesDir, lang, keyed); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating catalog for %s: %v\n", lang, err)
			os.Exit(1)
		}
	}
}

// mergeAndUpdateCatalog merges the generated keys with an existing catalog,
// preserving translations and skipping the write when nothing changed.
func mergeAndUpdateCatalog(localesDir, lang string, keys map[string]KeyInfo) error {
	filename := filepath.Join(localesDir, fmt.Sprintf("messages.%s.json", lang))

	existing, err := loadExistingCatalog(filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Creating new catalog: %s\n", filename)
			return writeCatalog(filename, buildCatalog(nil, lang, keys))
		}
		return fmt.Errorf("error loading existing catalog: %w", err)
	}

	merged := buildCatalog(existing, lang, keys)

	changed, err := catalogChanged(existing, &merged)
	if err != nil {
		return err
	}
	if !changed {
		log.Printf("Skipped %s: no changes detected\n", filename)
		return nil
	}

	if writeErr := writeCatalog(filename, merged); writeErr != nil {
		return writeErr
	}
	log.Printf("Updated %s\n", filename)
	return nil
}

// catalogChanged compares two catalogs through a JSON merge patch: an empty
// patch in both directions means the catalogs are semantically equal.
func catalogChanged(existing *Catalog, merged *Catalog) (bool, error) {
	existingJSON, err := json.Marshal(existing)
	if err != nil {
		return false, fmt.Errorf("error marshaling existing catalog: %w", err)
	}
	mergedJSON, err := json.Marshal(merged)
	if err != nil {
		return false, fmt.Errorf("error marshaling merged catalog: %w", err)
	}

	forward, err := jsonpatch.CreateMergePatch(existingJSON, mergedJSON)
	if err != nil {
		return false, fmt.Errorf("error diffing catalogs: %w", err)
	}
	backward, err := jsonpatch.CreateMergePatch(mergedJSON, existingJSON)
	if err != nil {
		return false, fmt.Errorf("error diffing catalogs: %w", err)
	}

	return string(forward) != "{}" || string(backward) != "{}", nil
}

// buildCatalog merges the generated keys with an existing catalog. Existing
// translations are preserved; removed keys drop out.
func buildCatalog(existing *Catalog, lang string, keys map[string]KeyInfo) Catalog {
	existingMessages := make(map[string]Message)
	if existing != nil {
		for i := range existing.Messages {
			existingMessages[existing.Messages[i].ID] = existing.Messages[i]
		}
	}

	sortedKeys := make([]string, 0, len(keys))
	for key := range keys {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	catalog := Catalog{Language: lang, Messages: []Message{}}
	for _, key := range sortedKeys {
		message := createMessage(keys[key])
		if previous, ok := existingMessages[key]; ok {
			message.Translation = previous.Translation
		}
		catalog.Messages = append(catalog.Messages, message)
	}
	return catalog
}

// createMessage builds a catalog message with one placeholder per parsed
// format specifier.
func createMessage(info KeyInfo) Message {
	message := Message{
		ID:      info.Key,
		Message: info.DefaultValue,
	}

	if len(info.Specifiers) == 0 {
		return message
	}

	message.Placeholders = make(map[string]Placeholder, len(info.Specifiers))
	for _, spec := range info.Specifiers {
		placeholderID := fmt.Sprintf("arg_%d", spec.ArgIndex)
		message.Placeholders[placeholderID] = Placeholder{
			ID:             placeholderID,
			String:         spec.Raw,
			Type:           spec.Type.GoType(),
			UnderlyingType: spec.Type.GoType(),
			Expr:           fmt.Sprintf("arg%d", spec.ArgIndex),
			ArgNum:         spec.ArgIndex,
		}
	}
	return message
}

// loadExistingCatalog loads an existing catalog file.
func loadExistingCatalog(filename string) (*Catalog, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if unmarshalErr := json.Unmarshal(data, &catalog); unmarshalErr != nil {
		return nil, fmt.Errorf("error parsing catalog: %w", unmarshalErr)
	}
	return &catalog, nil
}

// writeCatalog writes a catalog atomically: the payload lands in a uniquely
// named temp file first, then replaces the target in one rename.
func writeCatalog(filename string, catalog Catalog) error {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling catalog: %w", err)
	}

	tmp := fmt.Sprintf("%s.%s.tmp", filename, uuid.NewString())
	if writeErr := os.WriteFile(tmp, data, 0600); writeErr != nil {
		return fmt.Errorf("error writing file: %w", writeErr)
	}
	if renameErr := os.Rename(tmp, filename); renameErr != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("error replacing catalog: %w", renameErr)
	}
	return nil
}

// printKeySummary prints a summary of the generated keys.
func printKeySummary(keys []KeyInfo) {
	log.Printf("\n=== Generation Summary ===\n")
	log.Printf("Total keys: %d\n", len(keys))

	if len(keys) == 0 {
		return
	}

	sorted := make([]KeyInfo, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	log.Println("\nKeys generated:")
	for _, key := range sorted {
		line := "  - " + key.Key
		if len(key.Specifiers) > 0 {
			argTypes := make([]string, len(key.Specifiers))
			for i, spec := range key.Specifiers {
				argTypes[i] = spec.Type.GoType()
			}
			line += " (" + strings.Join(argTypes, ", ") + ")"
		}
		log.Println(line)
	}
}
