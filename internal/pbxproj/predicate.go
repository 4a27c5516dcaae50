package pbxproj

import (
	"fmt"
	"path"

	"github.com/gobwas/glob"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
)

// Predicate selects build files.
type Predicate func(pbx.BuildFile) bool

// MatchNames selects build files whose name, or the base name of the
// referenced path, matches one of the glob patterns.
func MatchNames(patterns ...string) (Predicate, error) {
	globs := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
		}

		globs = append(globs, compiled)
	}

	return func(file pbx.BuildFile) bool {
		names := []string{file.Name}
		if file.FileRef != nil && file.FileRef.Path != "" {
			names = append(names, path.Base(file.FileRef.Path))
		}

		for _, g := range globs {
			for _, name := range names {
				if g.Match(name) {
					return true
				}
			}
		}

		return false
	}, nil
}

// MatchFileTypes selects build files whose reference has one of the types.
func MatchFileTypes(fileTypes ...string) Predicate {
	set := make(map[string]struct{}, len(fileTypes))
	for _, fileType := range fileTypes {
		set[fileType] = struct{}{}
	}

	return func(file pbx.BuildFile) bool {
		if file.FileRef == nil {
			return false
		}

		_, ok := set[file.FileRef.FileType]

		return ok
	}
}

// AnyOf selects build files matched by at least one predicate.
func AnyOf(predicates ...Predicate) Predicate {
	return func(file pbx.BuildFile) bool {
		for _, predicate := range predicates {
			if predicate != nil && predicate(file) {
				return true
			}
		}

		return false
	}
}
