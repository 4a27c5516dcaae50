package pbxproj

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
)

// emptyManifest has every section the patcher needs, all of them empty.
const emptyManifest = `// !$*UTF8*$!
{
	objects = {

/* Begin PBXBuildFile section */
/* End PBXBuildFile section */

/* Begin PBXFileReference section */
/* End PBXFileReference section */

/* Begin PBXGroup section */
		G00000000000000000000001 /* App */ = {
			isa = PBXGroup;
			children = (
			);
			sourceTree = "<group>";
		};
/* End PBXGroup section */

/* Begin PBXResourcesBuildPhase section */
		R00000000000000000000001 /* Resources */ = {
			isa = PBXResourcesBuildPhase;
			files = (
			);
		};
/* End PBXResourcesBuildPhase section */

/* Begin PBXSourcesBuildPhase section */
		S00000000000000000000001 /* Sources */ = {
			isa = PBXSourcesBuildPhase;
			files = (
			);
		};
/* End PBXSourcesBuildPhase section */
	};
}
`

func loadFixture(t *testing.T) string {
	t.Helper()

	contents, err := os.ReadFile(filepath.Join("testdata", "project.pbxproj"))
	require.NoError(t, err)

	return string(contents)
}

// sequentialIDs returns a generator producing F000...1, F000...2 and so on.
func sequentialIDs() func() string {
	n := 0

	return func() string {
		n++

		return fmt.Sprintf("F%023d", n)
	}
}

// requireSuperset asserts that every input line survives and exactly added lines are new.
func requireSuperset(t *testing.T, before, after string, added int) []string {
	t.Helper()

	counts := make(map[string]int)
	for _, line := range strings.Split(before, "\n") {
		counts[line]++
	}

	var extra []string

	for _, line := range strings.Split(after, "\n") {
		if counts[line] > 0 {
			counts[line]--
			continue
		}

		extra = append(extra, line)
	}

	for line, left := range counts {
		require.Zerof(t, left, "line %q disappeared", line)
	}

	require.Len(t, extra, added)

	return extra
}

// TestAddFile_EmptySections registers Foo.swift in a manifest with empty sections.
func TestAddFile_EmptySections(t *testing.T) {
	t.Parallel()

	patcher := New(WithIDGenerator(sequentialIDs()))

	file := pbx.NewFile{
		Name:     "Foo.swift",
		FileType: "sourcecode.swift",
		Phase:    pbx.PhaseSources,
	}

	result, err := patcher.AddFile(emptyManifest, file, GroupSelector{Name: "App"})
	require.NoError(t, err)
	require.Equal(t, "F00000000000000000000001", result.FileRefID)
	require.Equal(t, "F00000000000000000000002", result.BuildFileID)
	require.Len(t, result.Steps, 4)

	extra := requireSuperset(t, emptyManifest, result.Blob, 4)

	require.ElementsMatch(t, []string{
		"\t\tF00000000000000000000001 /* Foo.swift */ = {isa = PBXFileReference; " +
			"lastKnownFileType = sourcecode.swift; path = Foo.swift; sourceTree = \"<group>\"; };",
		"\t\tF00000000000000000000002 /* Foo.swift in Sources */ = {isa = PBXBuildFile; " +
			"fileRef = F00000000000000000000001 /* Foo.swift */; };",
		"\t\t\t\tF00000000000000000000001 /* Foo.swift */,",
		"\t\t\t\tF00000000000000000000002 /* Foo.swift in Sources */,",
	}, extra)

	// The build id landed in the Sources phase, not in Resources.
	sources, err := locatePhaseFiles(result.Blob, pbx.PhaseSources)
	require.NoError(t, err)
	require.Contains(t, result.Blob[sources.Start:sources.End], result.BuildFileID)

	resources, err := locatePhaseFiles(result.Blob, pbx.PhaseResources)
	require.NoError(t, err)
	require.NotContains(t, result.Blob[resources.Start:resources.End], result.BuildFileID)

	// The new declarations parse back.
	require.True(t, HasFileReference(result.Blob, "Foo.swift"))

	buildFiles := BuildFiles(result.Blob)
	require.Len(t, buildFiles, 1)
	require.Equal(t, result.FileRefID, buildFiles[0].FileRefID)
	require.NotNil(t, buildFiles[0].FileRef)
	require.Equal(t, "sourcecode.swift", buildFiles[0].FileRef.FileType)
}

// TestAddFile_Fixture adds a resource to a realistic manifest, appending after existing entries.
func TestAddFile_Fixture(t *testing.T) {
	t.Parallel()

	blob := loadFixture(t)
	patcher := New(WithIDGenerator(sequentialIDs()))

	file := pbx.NewFile{
		Name:     "PrivacyInfo.xcprivacy",
		FileType: "text.xml",
		Phase:    pbx.PhaseResources,
	}

	result, err := patcher.AddFile(blob, file, GroupSelector{ID: "A5000002000000000000001"})
	require.NoError(t, err)

	requireSuperset(t, blob, result.Blob, 4)

	require.Contains(t, result.Blob,
		"\t\t\t\tA5000010000000000000007A /* image-2-review.png in Resources */,\n"+
			"\t\t\t\tF00000000000000000000002 /* PrivacyInfo.xcprivacy in Resources */,\n"+
			"\t\t\t);")
	require.Contains(t, result.Blob,
		"\t\t\t\tA5000011000000000000007A /* image-2-review.png */,\n"+
			"\t\t\t\tF00000000000000000000001 /* PrivacyInfo.xcprivacy */,\n"+
			"\t\t\t);\n\t\t\tpath = NoteWall;")
	require.Contains(t, result.Blob,
		"sourceTree = \"<group>\"; };\n/* End PBXFileReference section */")
}

// TestAddFile_QuotesPaths writes names with spaces as quoted paths.
func TestAddFile_QuotesPaths(t *testing.T) {
	t.Parallel()

	patcher := New(WithIDGenerator(sequentialIDs()))

	file := pbx.NewFile{
		Name:     "What's New.swift",
		FileType: "sourcecode.swift",
		Phase:    pbx.PhaseSources,
	}

	result, err := patcher.AddFile(emptyManifest, file, GroupSelector{Name: "App"})
	require.NoError(t, err)
	require.Contains(t, result.Blob, `path = "What's New.swift";`)

	refs := FileReferences(result.Blob)
	require.Len(t, refs, 1)
	require.Equal(t, "What's New.swift", refs[0].Path)
}

// TestAddFile_MissingSections aborts when any one required section is absent.
func TestAddFile_MissingSections(t *testing.T) {
	t.Parallel()

	removals := map[string]string{
		"file references": "/* Begin PBXFileReference section */\n",
		"build files":     "/* End PBXBuildFile section */\n",
		"group":           "/* App */ = {",
		"sources phase":   "isa = PBXSourcesBuildPhase;",
	}

	for name, marker := range removals {
		name, marker := name, marker

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			blob := strings.Replace(emptyManifest, marker, "", 1)
			require.NotEqual(t, emptyManifest, blob)

			file := pbx.NewFile{
				Name:     "Foo.swift",
				FileType: "sourcecode.swift",
				Phase:    pbx.PhaseSources,
			}

			result, err := New().AddFile(blob, file, GroupSelector{Name: "App"})
			require.ErrorIs(t, err, ErrSectionNotFound)
			require.Nil(t, result)
		})
	}
}

// TestAddFile_AmbiguousGroup rejects a group name that matches twice.
func TestAddFile_AmbiguousGroup(t *testing.T) {
	t.Parallel()

	second := "/* End PBXGroup section */"
	blob := strings.Replace(emptyManifest, second,
		"\t\tG00000000000000000000002 /* App */ = {\n\t\t\tisa = PBXGroup;\n\t\t\tchildren = (\n\t\t\t);\n\t\t};\n"+second, 1)

	file := pbx.NewFile{
		Name:     "Foo.swift",
		FileType: "sourcecode.swift",
		Phase:    pbx.PhaseSources,
	}

	_, err := New().AddFile(blob, file, GroupSelector{Name: "App"})
	require.ErrorIs(t, err, ErrAmbiguousSection)

	// Pinning the identifier resolves it.
	_, err = New().AddFile(blob, file, GroupSelector{Name: "App", ID: "G00000000000000000000002"})
	require.NoError(t, err)
}

// TestAddFile_RejectsBadInput covers names and phases the patcher cannot write.
func TestAddFile_RejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := New().AddFile(emptyManifest, pbx.NewFile{Name: "a */ b.swift", Phase: pbx.PhaseSources}, GroupSelector{Name: "App"})
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = New().AddFile(emptyManifest, pbx.NewFile{Name: "Foo.h", Phase: "Headers"}, GroupSelector{Name: "App"})
	require.ErrorIs(t, err, pbx.ErrUnknownPhase)
}

// TestNewID checks the identifier shape.
func TestNewID(t *testing.T) {
	t.Parallel()

	id := NewID()
	require.Len(t, id, IDLength)
	require.Regexp(t, `^[0-9A-F]{24}$`, id)
	require.NotEqual(t, id, NewID())
}
