package pbxproj

import (
	"strings"

	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
)

// RemoveResult describes a RemoveBuildEntries run.
type RemoveResult struct {
	// Blob is the manifest after removal.
	Blob string
	// Matched counts the build files selected by the predicate.
	Matched int
	// Removed counts the lines dropped from the phase's files list.
	Removed int
	// Names lists the display names of the removed lines.
	Names []string
}

// RemoveBuildEntries drops from the phase's files list every line whose
// build file is selected by match. The PBXBuildFile declarations themselves
// are kept, so a second run matches the same files but removes nothing.
func RemoveBuildEntries(blob string, phase pbx.Phase, match Predicate) (*RemoveResult, error) {
	list, err := locatePhaseFiles(blob, phase)
	if err != nil {
		return nil, err
	}

	selected := make(map[string]pbx.BuildFile)

	for _, file := range BuildFiles(blob) {
		if file.Phase == phase && match(file) {
			selected[file.ID] = file
		}
	}

	result := &RemoveResult{
		Blob:    blob,
		Matched: len(selected),
	}

	if len(selected) == 0 {
		return result, nil
	}

	var (
		tag   = " in " + string(phase) + " "
		lines = strings.Split(blob[list.Start:list.End], "\n")
		kept  = lines[:0]
	)

	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) > 0 && strings.Contains(line, tag) {
			if file, ok := selected[fields[0]]; ok {
				result.Removed++
				result.Names = append(result.Names, file.Name)

				continue
			}
		}

		kept = append(kept, line)
	}

	if result.Removed > 0 {
		result.Blob = blob[:list.Start] + strings.Join(kept, "\n") + blob[list.End:]
	}

	return result, nil
}
