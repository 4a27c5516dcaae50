package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/service/localizer"
)

// TestSyncThenAddFormats runs both localization passes over a small app folder.
func TestSyncThenAddFormats(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	appDir := filepath.Join(root, "NoteWall")
	settings := filepath.Join(root, "xcode-upkeep.yaml")

	require.NoError(t, os.MkdirAll(appDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(appDir, "SettingsView.swift"),
		[]byte(`Text("Settings")`+"\n"+`Text("Version \(appVersion)")`+"\n"), 0o600))
	require.NoError(t, os.WriteFile(settings,
		[]byte("project_file: NoteWall.xcodeproj/project.pbxproj\nlocalization_dir: "+appDir+"\nlanguages: [en, es]\n"), 0o600))

	ctx := context.Background()
	opts := &localizer.Options{ConfigPath: settings}

	_, err := localizer.Sync(ctx, opts)
	require.NoError(t, err)

	_, err = localizer.AddFormats(ctx, opts)
	require.NoError(t, err)

	contents, err := os.ReadFile(filepath.Join(appDir, "es.lproj", localizer.StringsFilename))
	require.NoError(t, err)

	_, values := localization.ParseStrings(string(contents))
	require.Equal(t, "Ajustes", values["Settings"])
	require.Equal(t, "Versión %@", values["Version %@"])
}
