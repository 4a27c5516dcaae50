package pbxproj

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
)

var (
	// fileReferenceLine matches a one-line PBXFileReference declaration.
	fileReferenceLine = regexp.MustCompile(
		`(?m)^[ \t]*([0-9A-Za-z]+) /\* (.+?) \*/ = \{isa = PBXFileReference;(.*)\};[ \t]*$`)
	// buildFileLine matches the head of a PBXBuildFile declaration.
	buildFileLine = regexp.MustCompile(
		`(\w+)\s+/\*\s+(.+?) in (\w+)\s+\*/\s+=\s+\{isa\s+=\s+PBXBuildFile;\s*fileRef\s*=\s*(\w+)`)
	// attribute captures "key = value;" pairs, value quoted or bare.
	attribute = regexp.MustCompile(`(\w+) = ("(?:[^"\\]|\\.)*"|[^;]*);`)
	// bareValue lists the characters Xcode writes without quotes.
	bareValue = regexp.MustCompile(`^[A-Za-z0-9_$./-]+$`)
)

// FileReferences returns the one-line PBXFileReference declarations in manifest order.
func FileReferences(blob string) []pbx.FileReference {
	matches := fileReferenceLine.FindAllStringSubmatch(blob, -1)
	refs := make([]pbx.FileReference, 0, len(matches))

	for _, m := range matches {
		ref := pbx.FileReference{
			ID:   m[1],
			Name: m[2],
		}

		for _, attr := range attribute.FindAllStringSubmatch(m[3], -1) {
			switch attr[1] {
			case "lastKnownFileType", "explicitFileType":
				ref.FileType = unquote(attr[2])
			case "path":
				ref.Path = unquote(attr[2])
			}
		}

		refs = append(refs, ref)
	}

	return refs
}

// BuildFiles returns the PBXBuildFile declarations that point at a file
// reference, with FileRef resolved where the reference is declared.
func BuildFiles(blob string) []pbx.BuildFile {
	refs := make(map[string]*pbx.FileReference)

	for _, ref := range FileReferences(blob) {
		ref := ref
		refs[ref.ID] = &ref
	}

	matches := buildFileLine.FindAllStringSubmatch(blob, -1)
	files := make([]pbx.BuildFile, 0, len(matches))

	for _, m := range matches {
		files = append(files, pbx.BuildFile{
			ID:        m[1],
			Name:      m[2],
			Phase:     pbx.Phase(m[3]),
			FileRefID: m[4],
			FileRef:   refs[m[4]],
		})
	}

	return files
}

// HasFileReference reports whether a file reference with this name or path exists.
func HasFileReference(blob, name string) bool {
	for _, ref := range FileReferences(blob) {
		if ref.Name == name || ref.Path == name {
			return true
		}
	}

	return false
}

// validateName rejects names that would break the line they are written into.
func validateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.ContainsAny(name, "\r\n"):
		return fmt.Errorf("%w: %q contains a line break", ErrInvalidName, name)
	case strings.Contains(name, "*/"):
		return fmt.Errorf("%w: %q contains a comment terminator", ErrInvalidName, name)
	}

	return nil
}

// quote renders a value the way Xcode does: bare when possible.
func quote(value string) string {
	if bareValue.MatchString(value) {
		return value
	}

	return strconv.Quote(value)
}

func unquote(value string) string {
	value = strings.TrimSpace(value)
	if unquoted, err := strconv.Unquote(value); err == nil {
		return unquoted
	}

	return value
}

func fileReferenceEntry(id, name, fileType string) string {
	return fmt.Sprintf(
		"\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = %s; path = %s; sourceTree = \"<group>\"; };",
		id, name, quote(fileType), quote(name))
}

func buildFileEntry(id, fileRefID, name string, phase pbx.Phase) string {
	return fmt.Sprintf(
		"\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };",
		id, name, phase, fileRefID, name)
}

func phaseItem(id, name string, phase pbx.Phase) string {
	return fmt.Sprintf("%s /* %s in %s */,", id, name, phase)
}

func groupItem(id, name string) string {
	return fmt.Sprintf("%s /* %s */,", id, name)
}
