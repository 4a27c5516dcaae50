package pbxproj

import (
	"errors"
	"fmt"
)

var (
	// ErrSectionNotFound matches every *SectionNotFoundError.
	ErrSectionNotFound = errors.New("section not found")
	// ErrAmbiguousSection is returned when a group or build phase matches more than once.
	ErrAmbiguousSection = errors.New("section is ambiguous")
	// ErrAlreadyReferenced is returned when the file already has a PBXFileReference.
	ErrAlreadyReferenced = errors.New("file is already referenced")
	// ErrInvalidName is returned for names that cannot be written into the manifest.
	ErrInvalidName = errors.New("invalid file name")
)

// SectionNotFoundError reports that the manifest no longer has the expected shape.
type SectionNotFoundError struct {
	// Section names the section, object or list that was looked for.
	Section string
}

// Error implements error.
func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("could not find %s", e.Section)
}

// Is makes errors.Is(err, ErrSectionNotFound) hold.
func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

func notFound(format string, args ...any) error {
	return &SectionNotFoundError{Section: fmt.Sprintf(format, args...)}
}

// ErrorIsNotFound reports whether err is a *SectionNotFoundError.
func ErrorIsNotFound(err error) bool {
	var target *SectionNotFoundError

	return errors.As(err, &target)
}
