package localization

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// formatsFile holds the format-string patterns; every other file is a language table.
const formatsFile = "formats.yaml"

//go:embed tables/*.yaml
var tablesFS embed.FS

// errNotMapping is returned when a table file is not a YAML mapping.
var errNotMapping = errors.New("table is not a mapping")

// FormatPattern is a printf-style phrase with its translations.
type FormatPattern struct {
	// Source is the phrase in the source language.
	Source string
	// Translations maps language code to translated pattern.
	Translations map[string]string
}

// Catalog holds the static translation tables.
type Catalog struct {
	// tables maps language code to source phrase to translation.
	tables map[string]map[string]string
	// formats keeps the order of formats.yaml.
	formats []FormatPattern
}

// NewCatalog builds a catalog from in-memory tables.
func NewCatalog(tables map[string]map[string]string, formats []FormatPattern) *Catalog {
	return &Catalog{
		tables:  tables,
		formats: formats,
	}
}

// DefaultCatalog loads the tables embedded in the binary.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(tablesFS, "tables")
}

// LoadCatalog reads <lang>.yaml tables and formats.yaml from dir in fsys.
func LoadCatalog(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}

	catalog := &Catalog{
		tables: make(map[string]map[string]string, len(entries)),
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".yaml" {
			continue
		}

		contents, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}

		if name == formatsFile {
			if catalog.formats, err = decodeFormats(contents); err != nil {
				return nil, fmt.Errorf("decode %s: %w", name, err)
			}

			continue
		}

		code, err := canonical(strings.TrimSuffix(name, ".yaml"))
		if err != nil {
			return nil, err
		}

		table := make(map[string]string)
		if err = yaml.Unmarshal(contents, &table); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}

		catalog.tables[code] = table
	}

	return catalog, nil
}

// decodeFormats walks the document node so the file order is preserved.
func decodeFormats(contents []byte) ([]FormatPattern, error) {
	var document yaml.Node
	if err := yaml.Unmarshal(contents, &document); err != nil {
		return nil, err
	}

	if len(document.Content) == 0 {
		return nil, nil
	}

	root := document.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errNotMapping
	}

	patterns := make([]FormatPattern, 0, len(root.Content)/2)

	for i := 0; i+1 < len(root.Content); i += 2 {
		pattern := FormatPattern{
			Source: root.Content[i].Value,
		}

		if err := root.Content[i+1].Decode(&pattern.Translations); err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern.Source, err)
		}

		patterns = append(patterns, pattern)
	}

	return patterns, nil
}

// Languages returns the codes that have a table, sorted.
func (c *Catalog) Languages() []string {
	codes := make([]string, 0, len(c.tables))
	for code := range c.tables {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	return codes
}

// Formats returns the format-string patterns in file order.
func (c *Catalog) Formats() []FormatPattern {
	return c.formats
}

// Lookup returns the translation of phrase into lang. Matching is exact and case-sensitive.
func (c *Catalog) Lookup(lang, phrase string) (string, bool) {
	translation, ok := c.tables[lang][phrase]
	if !ok || translation == "" {
		return "", false
	}

	return translation, true
}

// Translate is Lookup with a fallback: a missing phrase is returned
// unchanged and a warning is logged.
func (c *Catalog) Translate(ctx context.Context, lang, phrase string) string {
	if translation, ok := c.Lookup(lang, phrase); ok {
		return translation
	}

	logger.WarnKV(ctx, "No translation, keeping the source phrase", "language", lang, "phrase", phrase)

	return phrase
}

// DisplayName renders a language for file headers, e.g. "German - Deutsch".
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}

	english := display.English.Languages().Name(tag)
	if english == "" {
		return code
	}

	self := cases.Title(tag).String(display.Self.Name(tag))
	if self == "" || self == english {
		return english
	}

	return english + " - " + self
}

func canonical(code string) (string, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}

	return tag.String(), nil
}
