package pbxproj

import (
	"fmt"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
)

const (
	// fileReferenceSection holds one declaration per referenced file.
	fileReferenceSection = "PBXFileReference"
	// buildFileSection holds one declaration per file-in-phase.
	buildFileSection = "PBXBuildFile"
	// groupIsa is the kind of navigator groups.
	groupIsa = "PBXGroup"
)

// GroupSelector identifies the navigator group new files are added to.
// When ID is set it wins over Name.
type GroupSelector struct {
	// Name is the group's display name.
	Name string
	// ID pins the group by identifier.
	ID string
}

func (g GroupSelector) String() string {
	if g.ID != "" {
		return g.ID
	}

	return g.Name
}

func (g GroupSelector) matches(object Object) bool {
	if g.ID != "" {
		return object.ID == g.ID
	}

	return object.Comment == g.Name
}

// Patcher splices new entries into a manifest.
type Patcher struct {
	// newID produces object identifiers.
	newID func() string
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithIDGenerator replaces the random identifier source.
func WithIDGenerator(generate func() string) Option {
	return func(p *Patcher) {
		if generate != nil {
			p.newID = generate
		}
	}
}

// New creates a Patcher that uses NewID unless configured otherwise.
func New(opts ...Option) *Patcher {
	patcher := &Patcher{
		newID: NewID,
	}

	for _, opt := range opts {
		opt(patcher)
	}

	return patcher
}

// AddResult describes a successful AddFile.
type AddResult struct {
	// Blob is the patched manifest.
	Blob string
	// FileRefID identifies the new PBXFileReference.
	FileRefID string
	// BuildFileID identifies the new PBXBuildFile.
	BuildFileID string
	// Steps lists the sections that were patched, in order.
	Steps []string
}

// AddFile registers a file: a file reference, a build file, a child of the
// group and an entry in the build phase, four lines in total. On error the
// returned result is nil and the input blob is untouched.
func (p *Patcher) AddFile(blob string, file pbx.NewFile, group GroupSelector) (*AddResult, error) {
	if err := validateName(file.Name); err != nil {
		return nil, err
	}

	if file.Phase != pbx.PhaseSources && file.Phase != pbx.PhaseResources {
		return nil, fmt.Errorf("%w: %q", pbx.ErrUnknownPhase, file.Phase)
	}

	result := &AddResult{
		FileRefID:   p.newID(),
		BuildFileID: p.newID(),
	}

	var (
		patched = blob
		err     error
	)

	steps := []struct {
		name  string
		apply func(string) (string, error)
	}{
		{
			name: fileReferenceSection,
			apply: func(b string) (string, error) {
				return InsertFileReference(b, result.FileRefID, file.Name, file.FileType)
			},
		},
		{
			name: buildFileSection,
			apply: func(b string) (string, error) {
				return InsertBuildFile(b, result.BuildFileID, result.FileRefID, file.Name, file.Phase)
			},
		},
		{
			name: "group " + group.String(),
			apply: func(b string) (string, error) {
				return InsertGroupChild(b, result.FileRefID, file.Name, group)
			},
		},
		{
			name: file.Phase.Section(),
			apply: func(b string) (string, error) {
				return InsertPhaseEntry(b, result.BuildFileID, file.Name, file.Phase)
			},
		},
	}

	for _, step := range steps {
		if patched, err = step.apply(patched); err != nil {
			return nil, err
		}

		result.Steps = append(result.Steps, step.name)
	}

	result.Blob = patched

	return result, nil
}

// InsertFileReference appends a PBXFileReference declaration before the end
// of its section.
func InsertFileReference(blob, id, name, fileType string) (string, error) {
	section, err := LocateSection(blob, fileReferenceSection)
	if err != nil {
		return "", err
	}

	return appendToSection(blob, section, fileReferenceEntry(id, name, fileType)), nil
}

// InsertBuildFile appends a PBXBuildFile declaration before the end of its section.
func InsertBuildFile(blob, id, fileRefID, name string, phase pbx.Phase) (string, error) {
	section, err := LocateSection(blob, buildFileSection)
	if err != nil {
		return "", err
	}

	return appendToSection(blob, section, buildFileEntry(id, fileRefID, name, phase)), nil
}

// InsertGroupChild appends the file reference to the children of a group.
func InsertGroupChild(blob, id, name string, group GroupSelector) (string, error) {
	object, err := findOnlyObject(blob, groupIsa, group.matches)
	if err != nil {
		if ErrorIsNotFound(err) {
			return "", notFound("%s group", group)
		}

		return "", err
	}

	list, err := locateList(blob, object, "children")
	if err != nil {
		return "", err
	}

	return appendToList(blob, list, groupItem(id, name)), nil
}

// InsertPhaseEntry appends the build file to the files of the phase.
func InsertPhaseEntry(blob, id, name string, phase pbx.Phase) (string, error) {
	list, err := locatePhaseFiles(blob, phase)
	if err != nil {
		return "", err
	}

	return appendToList(blob, list, phaseItem(id, name, phase)), nil
}

// locatePhaseFiles finds the files list of the only build phase of a kind.
func locatePhaseFiles(blob string, phase pbx.Phase) (Span, error) {
	object, err := findOnlyObject(blob, phase.Section(), nil)
	if err != nil {
		return Span{}, err
	}

	return locateList(blob, object, "files")
}
