package pbxproj

import (
	"fmt"
	"regexp"
	"strings"
)

// Span is a half-open byte range of the manifest.
type Span struct {
	Start int
	End   int
}

// Section is a "/* Begin <Name> section */ ... /* End <Name> section */" block.
type Section struct {
	// Name is the object kind, e.g. PBXFileReference.
	Name string
	// Content spans everything between the two markers.
	Content Span
	// Close spans the closing marker.
	Close Span
}

// Object is an "ID /* comment */ = { ... };" declaration.
type Object struct {
	// ID is the object identifier.
	ID string
	// Comment is the display name Xcode writes next to the identifier.
	Comment string
	// Isa is the object kind.
	Isa string
	// Body spans the text between the braces.
	Body Span
}

var (
	// objectHeader matches the start of a declaration: "ID /* comment */ = {".
	objectHeader = regexp.MustCompile(`(?m)^[ \t]*([0-9A-Za-z]+)(?: /\* (.*?) \*/)? = \{`)
	// isaAttribute captures the kind of an object.
	isaAttribute = regexp.MustCompile(`\bisa = ([A-Za-z0-9]+);`)
)

// LocateSection finds the section named name. It fails with a
// *SectionNotFoundError when either marker is missing.
func LocateSection(blob, name string) (Section, error) {
	var (
		opening = fmt.Sprintf("/* Begin %s section */", name)
		closing = fmt.Sprintf("/* End %s section */", name)
	)

	start := strings.Index(blob, opening)
	if start < 0 {
		return Section{}, notFound("%s section", name)
	}

	contentStart := start + len(opening)

	end := strings.Index(blob[contentStart:], closing)
	if end < 0 {
		return Section{}, notFound("end of %s section", name)
	}

	end += contentStart

	return Section{
		Name:    name,
		Content: Span{Start: contentStart, End: end},
		Close:   Span{Start: end, End: end + len(closing)},
	}, nil
}

// FindObjects returns every object of the given isa, in manifest order.
func FindObjects(blob, isa string) []Object {
	var objects []Object

	for _, loc := range objectHeader.FindAllStringSubmatchIndex(blob, -1) {
		open := loc[1] - 1

		closeAt := matchClose(blob, open)
		if closeAt < 0 {
			continue
		}

		body := blob[open+1 : closeAt]

		// The isa must belong to this object, not to a nested one.
		kind := isaAttribute.FindStringSubmatchIndex(body)
		if kind == nil || body[kind[2]:kind[3]] != isa {
			continue
		}

		if nested := strings.IndexByte(body, '{'); nested >= 0 && nested < kind[0] {
			continue
		}

		object := Object{
			ID:   blob[loc[2]:loc[3]],
			Isa:  isa,
			Body: Span{Start: open + 1, End: closeAt},
		}

		if loc[4] >= 0 {
			object.Comment = blob[loc[4]:loc[5]]
		}

		objects = append(objects, object)
	}

	return objects
}

// findOnlyObject returns the single object of the given isa accepted by keep.
func findOnlyObject(blob, isa string, keep func(Object) bool) (Object, error) {
	var found []Object

	for _, object := range FindObjects(blob, isa) {
		if keep == nil || keep(object) {
			found = append(found, object)
		}
	}

	switch len(found) {
	case 0:
		return Object{}, notFound("%s object", isa)
	case 1:
		return found[0], nil
	default:
		ids := make([]string, 0, len(found))
		for _, object := range found {
			ids = append(ids, object.ID)
		}

		return Object{}, fmt.Errorf("%w: %d %s objects (%s)", ErrAmbiguousSection, len(found), isa, strings.Join(ids, ", "))
	}
}

// locateList finds the "<attribute> = ( ... )" list inside an object body and
// returns the span of its items, excluding the parentheses.
func locateList(blob string, object Object, attribute string) (Span, error) {
	body := blob[object.Body.Start:object.Body.End]
	marker := attribute + " = ("

	at := strings.Index(body, marker)
	if at < 0 {
		return Span{}, notFound("%s list of %s %s", attribute, object.Isa, object.ID)
	}

	open := object.Body.Start + at + len(marker) - 1

	closeAt := matchClose(blob, open)
	if closeAt < 0 || closeAt > object.Body.End {
		return Span{}, notFound("end of %s list of %s %s", attribute, object.Isa, object.ID)
	}

	return Span{Start: open + 1, End: closeAt}, nil
}

// appendToSection writes line right before the section's closing marker.
func appendToSection(blob string, section Section, line string) string {
	at, ownLine := lineStart(blob, section.Close.Start)
	if !ownLine {
		// The marker shares a line with other text; give the entry its own.
		return blob[:at] + "\n" + line + "\n" + blob[at:]
	}

	return blob[:at] + line + "\n" + blob[at:]
}

// appendToList writes item as the last entry of a parenthesized list,
// indented one level deeper than the closing parenthesis.
func appendToList(blob string, list Span, item string) string {
	indent := "\t\t\t"
	if at, ownLine := lineStart(blob, list.End); ownLine && at < list.End {
		indent = blob[at:list.End]
	}

	at := trimLeftSpace(blob, list.End)
	if at < list.Start {
		at = list.Start
	}

	return blob[:at] + "\n" + indent + "\t" + item + blob[at:]
}
