package localization

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// FormatStringsMark introduces the block appended by AppendFormats.
const FormatStringsMark = "// MARK: - Format Strings (Auto-generated)"

// otherCategory collects everything not listed in a category.
const otherCategory = "Other"

// Entry is one "key" = "value"; line.
type Entry struct {
	Key   string
	Value string
}

// Category groups well-known keys under a MARK comment.
type Category struct {
	Name string
	Keys []string
}

// entryLine matches a pair, allowing escaped quotes inside either string.
var entryLine = regexp.MustCompile(`"((?:[^"\\]|\\.)+)"\s*=\s*"((?:[^"\\]|\\.)+)";`)

// DefaultCategories returns the MARK groups used when rendering a whole file.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Common UI Elements", Keys: []string{
			"Continue", "Cancel", "Delete", "Done", "Close", "OK", "Skip", "Next", "Yes", "No", "Send", "Apply", "Save",
		}},
		{Name: "Loading States", Keys: []string{"Loading...", "Sending...", "Updating…", "Generating...", "Saving…"}},
		{Name: "Home Screen", Keys: []string{"No notes yet", "Add a note below to get started", "Wallpaper Not Showing?"}},
		{Name: "Settings", Keys: []string{"Settings", "Wallpaper Settings", "Text Style", "Help & Support"}},
		{Name: "Onboarding", Keys: []string{"Welcome to NoteWall", "Grant Permissions First", "Start Using NoteWall"}},
		{Name: "Paywall", Keys: []string{"Unlock Full Access", "Get Premium", "Restore Purchase"}},
	}
}

// ParseStrings returns the pairs of a Localizable.strings file in file order.
// Later duplicates win in the map, as they do in Foundation.
func ParseStrings(content string) ([]Entry, map[string]string) {
	matches := entryLine.FindAllStringSubmatch(content, -1)

	var (
		entries = make([]Entry, 0, len(matches))
		values  = make(map[string]string, len(matches))
	)

	for _, m := range matches {
		entry := Entry{
			Key:   unescape(m[1]),
			Value: unescape(m[2]),
		}

		entries = append(entries, entry)
		values[entry.Key] = entry.Value
	}

	return entries, values
}

// FormatEntry renders one pair with quotes escaped.
func FormatEntry(key, value string) string {
	return fmt.Sprintf("\"%s\" = \"%s\";", escape(key), escape(value))
}

// RenderStrings renders a complete file: a comment header, then every
// category with at least one key, keys sorted within a category.
func RenderStrings(language, appName string, translations map[string]string, categories []Category) string {
	var (
		assigned = make(map[string]string, len(translations))
		order    = make([]string, 0, len(categories)+1)
		grouped  = make(map[string][]string, len(categories)+1)
	)

	for _, category := range categories {
		order = append(order, category.Name)

		for _, key := range category.Keys {
			if _, ok := assigned[key]; !ok {
				assigned[key] = category.Name
			}
		}
	}

	order = append(order, otherCategory)

	keys := make([]string, 0, len(translations))
	for key := range translations {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		category, ok := assigned[key]
		if !ok {
			category = otherCategory
		}

		grouped[category] = append(grouped[category], key)
	}

	var builder strings.Builder

	fmt.Fprintf(&builder, "/* \n  Localizable.strings (%s)\n  %s\n  \n  Auto-generated translations\n*/\n\n",
		DisplayName(language), appName)

	for _, category := range order {
		if len(grouped[category]) == 0 {
			continue
		}

		builder.WriteString("// MARK: - " + category + "\n")

		for _, key := range grouped[category] {
			builder.WriteString(FormatEntry(key, translations[key]) + "\n")
		}

		builder.WriteString("\n")
	}

	return builder.String()
}

// AppendFormats adds a format-strings block to an existing file, skipping
// pairs already present verbatim. It returns the new content and the number
// of lines added; when nothing is added the content is returned as is.
func AppendFormats(content string, pairs []Entry) (string, int) {
	var lines []string

	for _, pair := range pairs {
		line := FormatEntry(pair.Key, pair.Value)
		if strings.Contains(content, line) {
			continue
		}

		lines = append(lines, line)
	}

	if len(lines) == 0 {
		return content, 0
	}

	var builder strings.Builder

	builder.WriteString(strings.TrimRight(content, " \t\r\n"))
	builder.WriteString("\n\n")

	if !strings.Contains(content, FormatStringsMark) {
		builder.WriteString(FormatStringsMark + "\n")
	}

	for _, line := range lines {
		builder.WriteString(line + "\n")
	}

	return builder.String(), len(lines)
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func unescape(s string) string {
	return strings.ReplaceAll(s, `\"`, `"`)
}
