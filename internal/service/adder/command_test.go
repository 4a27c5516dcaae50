package adder

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
	"github.com/oshokin/xcode-upkeep/internal/pbxproj"
	"github.com/oshokin/xcode-upkeep/internal/repository/textfile"
)

// memoryRepository is a minimal in-memory Repository implementation for tests.
type memoryRepository struct {
	// contents is returned from Load.
	contents string
	// loadErr is the error to return from Load operations.
	loadErr error
	// saved stores the last content passed to Save, nil when Save was not called.
	saved *string
}

func (m *memoryRepository) Load() (string, error) {
	return m.contents, m.loadErr
}

func (m *memoryRepository) Save(contents string) error {
	if contents == m.contents {
		return textfile.ErrNoChanges
	}

	m.saved = &contents

	return nil
}

func (m *memoryRepository) Path() string {
	return "memory.pbxproj"
}

const manifest = `/* Begin PBXBuildFile section */
/* End PBXBuildFile section */
/* Begin PBXFileReference section */
		E00000000000000000000001 /* Existing.swift */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.swift; path = Existing.swift; sourceTree = "<group>"; };
/* End PBXFileReference section */
		G00000000000000000000001 /* NoteWall */ = {
			isa = PBXGroup;
			children = (
			);
		};
		S00000000000000000000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
			);
		};
`

// TestResolveFile infers type and phase unless they are given.
func TestResolveFile(t *testing.T) {
	t.Parallel()

	file, err := ResolveFile("Views/WhatsNewView.swift", "", "")
	require.NoError(t, err)
	require.Equal(t, pbx.NewFile{Name: "WhatsNewView.swift", FileType: "sourcecode.swift", Phase: pbx.PhaseSources}, file)

	file, err = ResolveFile("PrivacyInfo.xcprivacy", "", "")
	require.NoError(t, err)
	require.Equal(t, "text.xml", file.FileType)
	require.Equal(t, pbx.PhaseResources, file.Phase)

	file, err = ResolveFile("Bridge.h", "", "resources")
	require.NoError(t, err)
	require.Equal(t, pbx.PhaseResources, file.Phase)

	_, err = ResolveFile("Bridge.h", "", "")
	require.ErrorIs(t, err, pbx.ErrUnknownPhase)

	_, err = ResolveFile("", "", "")
	require.ErrorIs(t, err, errFileNameRequired)
}

// TestAdd_SavesPatchedManifest checks the happy path writes once.
func TestAdd_SavesPatchedManifest(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{contents: manifest}
	a := &adder{repo: repo, patcher: pbxproj.New()}

	file := pbx.NewFile{Name: "Foo.swift", FileType: "sourcecode.swift", Phase: pbx.PhaseSources}

	result, err := a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, false, false)
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
	require.Equal(t, result.Blob, *repo.saved)
	require.Equal(t, strings.Count(manifest, "\n")+4, strings.Count(*repo.saved, "\n"))
}

// TestAdd_DryRunDoesNotSave leaves the repository untouched.
func TestAdd_DryRunDoesNotSave(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{contents: manifest}
	a := &adder{repo: repo, patcher: pbxproj.New()}

	file := pbx.NewFile{Name: "Foo.swift", FileType: "sourcecode.swift", Phase: pbx.PhaseSources}

	_, err := a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, false, true)
	require.NoError(t, err)
	require.Nil(t, repo.saved)
}

// TestAdd_RejectsDuplicates refuses a second reference unless forced.
func TestAdd_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{contents: manifest}
	a := &adder{repo: repo, patcher: pbxproj.New()}

	file := pbx.NewFile{Name: "Existing.swift", FileType: "sourcecode.swift", Phase: pbx.PhaseSources}

	_, err := a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, false, false)
	require.ErrorIs(t, err, pbxproj.ErrAlreadyReferenced)
	require.Nil(t, repo.saved)

	_, err = a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, true, false)
	require.NoError(t, err)
	require.NotNil(t, repo.saved)
}

// TestAdd_MissingSectionDoesNotSave aborts without writing anything.
func TestAdd_MissingSectionDoesNotSave(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{contents: manifest}
	a := &adder{repo: repo, patcher: pbxproj.New()}

	// The Resources phase is missing from the manifest.
	file := pbx.NewFile{Name: "PrivacyInfo.xcprivacy", FileType: "text.xml", Phase: pbx.PhaseResources}

	_, err := a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, false, false)
	require.ErrorIs(t, err, pbxproj.ErrSectionNotFound)
	require.Nil(t, repo.saved)
}

// TestAdd_LoadError surfaces repository failures.
func TestAdd_LoadError(t *testing.T) {
	t.Parallel()

	repo := &memoryRepository{loadErr: textfile.ErrNotFound}
	a := &adder{repo: repo, patcher: pbxproj.New()}

	file := pbx.NewFile{Name: "Foo.swift", FileType: "sourcecode.swift", Phase: pbx.PhaseSources}

	_, err := a.add(context.Background(), file, pbxproj.GroupSelector{Name: "NoteWall"}, false, false)
	require.ErrorIs(t, err, textfile.ErrNotFound)
}
