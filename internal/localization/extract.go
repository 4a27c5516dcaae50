package localization

import (
	"regexp"
	"strings"
	"unicode"
)

// textLiteral matches Text("...") with a plain string literal argument.
var textLiteral = regexp.MustCompile(`Text\("([^"]+)"\)`)

// InterpolatedText is a Text() literal that needs a format pattern.
type InterpolatedText struct {
	// Line is the 1-based line number.
	Line int
	// Source is the trimmed source line.
	Source string
}

// ExtractTexts returns the Text("...") literals of a Swift source, deduplicated, in source order.
// Interpolated literals are left to the format patterns.
func ExtractTexts(source string) []string {
	var (
		seen    = make(map[string]struct{})
		results []string
	)

	for _, m := range textLiteral.FindAllStringSubmatch(source, -1) {
		if _, ok := seen[m[1]]; ok || strings.Contains(m[1], `\(`) {
			continue
		}

		seen[m[1]] = struct{}{}
		results = append(results, m[1])
	}

	return results
}

// IsMeaningful filters out strings not worth translating: single characters,
// numbers and whitespace.
func IsMeaningful(s string) bool {
	if len([]rune(s)) <= 1 || strings.TrimSpace(s) == "" {
		return false
	}

	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0
}

// FindInterpolated returns the lines holding Text("...\(...)...") outside of line comments.
func FindInterpolated(source string) []InterpolatedText {
	var results []InterpolatedText

	for i, line := range strings.Split(source, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			continue
		}

		if strings.Contains(line, `Text("`) && strings.Contains(line, `\(`) {
			results = append(results, InterpolatedText{Line: i + 1, Source: trimmed})
		}
	}

	return results
}
