package pbx

import (
	"errors"
	"fmt"
	"strings"
)

// Phase names a build phase that files can be compiled or copied in.
type Phase string

const (
	// PhaseSources compiles the file.
	PhaseSources Phase = "Sources"
	// PhaseResources copies the file into the bundle.
	PhaseResources Phase = "Resources"
)

// ErrUnknownPhase is returned for phase names the patcher cannot place entries in.
var ErrUnknownPhase = errors.New("unknown build phase")

// ParsePhase accepts "sources"/"resources" in any case.
func ParsePhase(s string) (Phase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sources", "source":
		return PhaseSources, nil
	case "resources", "resource":
		return PhaseResources, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPhase, s)
	}
}

// Section returns the isa of the phase object, e.g. PBXSourcesBuildPhase.
func (p Phase) Section() string {
	return "PBX" + string(p) + "BuildPhase"
}

// FileReference is a PBXFileReference declaration.
type FileReference struct {
	// ID is the object identifier.
	ID string
	// Name is the display name from the declaration comment.
	Name string
	// FileType is the lastKnownFileType or explicitFileType tag.
	FileType string
	// Path is the path attribute, unquoted.
	Path string
}

// BuildFile is a PBXBuildFile declaration tying a file reference to a phase.
type BuildFile struct {
	// ID is the object identifier.
	ID string
	// Name is the display name from the declaration comment.
	Name string
	// Phase is taken from the "<name> in <Phase>" comment.
	Phase Phase
	// FileRefID is the identifier of the referenced file.
	FileRefID string
	// FileRef is the resolved reference, nil when it is not declared.
	FileRef *FileReference
}

// NewFile describes a file to register in the manifest.
type NewFile struct {
	// Name is the file name, used both as display name and path.
	Name string
	// FileType is the lastKnownFileType tag.
	FileType string
	// Phase is the build phase the file joins.
	Phase Phase
}
