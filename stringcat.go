// Package stringcat resolves localization keys to translated strings. It is
// the runtime half of stringcat-gen: generated accessors call Lookup (or the
// legacy Localize form) with a key and its default value, then apply
// positional formatting through Format.
//
// Translations live in JSON catalog files named <table>.<lang>.json, loaded
// from an fs.FS into golang.org/x/text message catalogs. A missing
// translation falls back to the default value baked into the accessor.
//
// Example usage:
//
//	//go:embed locales
//	var locales embed.FS
//
//	func main() {
//	    stringcat.Configure(&stringcat.Config{
//	        FS:       locales,
//	        Language: language.French,
//	    })
//	    fmt.Println(ui.L10n{}.Title())
//	}
package stringcat

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/bondowe/stringcat/internal/format"
	"github.com/bondowe/stringcat/internal/telemetry"
)

type (
	contextKey string

	// Config holds the runtime lookup configuration.
	Config struct {
		// FS contains the <table>.<lang>.json catalog files.
		FS fs.FS
		// Language selects the translations used by package-level lookups.
		Language language.Tag
	}

	// Bundle is a loaded set of message catalogs, one per table.
	Bundle struct {
		mu       sync.RWMutex
		language language.Tag
		tables   map[string]*catalog.Builder
	}

	// MessageFile represents the structure of the JSON catalog files.
	MessageFile struct {
		Language string         `json:"language"`
		Messages []MessageEntry `json:"messages"`
	}

	// MessageEntry is a single message with its translation.
	MessageEntry struct {
		ID          string `json:"id"`
		Message     string `json:"message"`
		Translation string `json:"translation,omitempty"`
	}

	// LookupOption adjusts a single lookup.
	LookupOption func(*lookupConfig)

	lookupConfig struct {
		table  string
		bundle *Bundle
	}
)

const (
	printerKey contextKey = "stringcatPrinter"

	// DefaultTable is the catalog file prefix consulted when a lookup names
	// no table.
	DefaultTable = "messages"
)

// Main is the main bundle. Configure populates it; lookups default to it.
//
//nolint:gochecknoglobals // Package-level bundle mirrors the process-wide catalog state
var Main = &Bundle{tables: map[string]*catalog.Builder{}}

// Configure loads the main bundle's catalogs from the provided filesystem and
// sets the language used by package-level lookups.
func Configure(cfg *Config) {
	Main.mu.Lock()
	Main.language = cfg.Language
	Main.tables = map[string]*catalog.Builder{}
	Main.mu.Unlock()

	if cfg.FS == nil {
		slog.Default().Warn("stringcat config has no filesystem, skipping catalog loading")
		return
	}
	if err := Main.load(cfg.FS); err != nil {
		slog.Default().Error("Error loading stringcat catalogs", "error", err)
	}
}

// NewBundle loads a standalone bundle from the provided filesystem.
func NewBundle(fsys fs.FS, lang language.Tag) (*Bundle, error) {
	b := &Bundle{language: lang, tables: map[string]*catalog.Builder{}}
	if err := b.load(fsys); err != nil {
		return nil, err
	}
	return b, nil
}

// InTable directs a lookup at the named table's catalog.
func InTable(name string) LookupOption {
	return func(cfg *lookupConfig) {
		if name != "" {
			cfg.table = name
		}
	}
}

// InBundle directs a lookup at the given bundle instead of Main.
func InBundle(b *Bundle) LookupOption {
	return func(cfg *lookupConfig) {
		if b != nil {
			cfg.bundle = b
		}
	}
}

// Lookup resolves a localization key to its translated string, falling back
// to the default value when the key has no translation in the selected
// table and bundle.
func Lookup(key, defaultValue string, opts ...LookupOption) string {
	cfg := lookupConfig{table: DefaultTable, bundle: Main}
	for _, opt := range opts {
		opt(&cfg)
	}

	translated, found := cfg.bundle.lookup(cfg.table, key)

	telemetry.LookupsTotal.WithLabelValues(cfg.table, strconv.FormatBool(found)).Inc()
	if !found {
		telemetry.MissingTranslationsTotal.WithLabelValues(cfg.table).Inc()
		return defaultValue
	}
	return translated
}

// Localize is the legacy fixed-arity lookup form kept for accessors emitted
// in legacy mode. The comment travels with the key for translators and has
// no runtime effect.
func Localize(key, table string, bundle *Bundle, value, comment string) string {
	_ = comment

	opts := make([]LookupOption, 0, 2)
	if table != "" {
		opts = append(opts, InTable(table))
	}
	if bundle != nil {
		opts = append(opts, InBundle(bundle))
	}
	return Lookup(key, value, opts...)
}

// Format applies positional printf-style formatting to a localized template.
// Explicit %N$ indices select arguments independent of textual order.
func Format(template string, args ...any) string {
	return fmt.Sprintf(format.Rewrite(template), args...)
}

// Printer returns an x/text message printer over the named table of the
// bundle, for callers that format through the catalog directly.
func (b *Bundle) Printer(table string) *message.Printer {
	b.mu.RLock()
	builder, ok := b.tables[table]
	lang := b.language
	b.mu.RUnlock()

	if !ok {
		return message.NewPrinter(lang)
	}
	return message.NewPrinter(lang, message.Catalog(builder))
}

// ContextWithPrinter stores a message printer in the context, letting
// request-scoped code carry a per-language printer.
func ContextWithPrinter(ctx context.Context, printer *message.Printer) context.Context {
	return context.WithValue(ctx, printerKey, printer)
}

// PrinterFromContext retrieves a message printer from the context.
// Returns the printer and true if found, or nil and false if not present.
func PrinterFromContext(ctx context.Context) (*message.Printer, bool) {
	printer, ok := ctx.Value(printerKey).(*message.Printer)
	return printer, ok
}

func (b *Bundle) lookup(table, key string) (string, bool) {
	b.mu.RLock()
	builder, ok := b.tables[table]
	lang := b.language
	b.mu.RUnlock()

	if !ok {
		return "", false
	}

	printer := message.NewPrinter(lang, message.Catalog(builder))
	translated := printer.Sprintf(key)
	if translated == key {
		// The catalog echoes the key back when it holds no translation.
		return "", false
	}
	return translated, true
}

// load walks the filesystem for <table>.<lang>.json catalog files and merges
// them into the bundle's per-table catalogs.
func (b *Bundle) load(fsys fs.FS) error {
	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		table, langTag := splitCatalogFilename(path)
		if table == "" || langTag == language.Und {
			slog.Default().Warn("could not determine table and language for file", "path", path)
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("error reading file %s: %w", path, err)
		}
		if loadErr := b.loadJSONMessages(table, langTag, data); loadErr != nil {
			return fmt.Errorf("error loading messages from %s: %w", path, loadErr)
		}

		slog.Default().Info("Loaded messages", "table", table, "language", langTag, "path", path)
		return nil
	})
}

// splitCatalogFilename extracts table name and language tag from a catalog
// filename of the form <table>.<lang>.json.
func splitCatalogFilename(path string) (string, language.Tag) {
	base := filepath.Base(path)
	nameWithoutExt := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(nameWithoutExt, ".")
	if len(parts) < 2 { //nolint:mnd // need at least table and language parts
		return "", language.Und
	}

	table := strings.Join(parts[:len(parts)-1], ".")
	langTag, err := language.Parse(parts[len(parts)-1])
	if err != nil {
		return "", language.Und
	}
	return table, langTag
}

func (b *Bundle) loadJSONMessages(table string, tag language.Tag, data []byte) error {
	var msgFile MessageFile
	if err := json.Unmarshal(data, &msgFile); err != nil {
		return fmt.Errorf("error parsing JSON: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	builder, ok := b.tables[table]
	if !ok {
		builder = catalog.NewBuilder()
		b.tables[table] = builder
	}

	for _, entry := range msgFile.Messages {
		if entry.Translation == "" {
			continue
		}
		// Translations are templates: escape percents so the catalog printer
		// returns them verbatim and Format can apply the arguments later.
		escaped := strings.ReplaceAll(entry.Translation, "%", "%%")
		_ = builder.SetString(tag, entry.ID, escaped)
	}
	return nil
}
