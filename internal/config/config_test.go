package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestValidate checks required fields and language validation.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing project file.
	settings := new(Config)

	err := Validate(settings)
	require.ErrorIs(t, err, errProjectFileRequired)

	// Bad language code.
	settings = &Config{
		ProjectFile: "App.xcodeproj/project.pbxproj",
		Languages:   []string{"en", "not a language"},
	}

	err = Validate(settings)
	require.Error(t, err)

	// Source language absent from languages.
	settings = &Config{
		ProjectFile: "App.xcodeproj/project.pbxproj",
		Languages:   []string{"de", "fr"},
	}

	err = Validate(settings)
	require.ErrorIs(t, err, errSourceLanguageMissing)

	// Defaults are filled in.
	settings = &Config{
		ProjectFile: "App.xcodeproj/project.pbxproj",
		Languages:   []string{"EN", "de"},
	}

	require.NoError(t, Validate(settings))
	require.Equal(t, DefaultGroupName, settings.GroupName)
	require.Equal(t, DefaultSourceLanguage, settings.SourceLanguage)
	require.Equal(t, []string{"en", "de"}, settings.Languages)
}

// TestSaveLoadRoundtrip ensures settings are persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	settings := &Config{
		ProjectFile:     "Demo.xcodeproj/project.pbxproj",
		GroupName:       "Demo",
		GroupID:         "A5000002000000000000001",
		RemovalPatterns: []string{"Contents.json"},
		LocalizationDir: "Demo",
		SourceLanguage:  "en",
		Languages:       []string{"en", "de"},
	}

	require.NoError(t, Save(path, settings))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, settings.ProjectFile, loaded.ProjectFile)
	require.Equal(t, settings.GroupID, loaded.GroupID)
	require.Equal(t, settings.RemovalPatterns, loaded.RemovalPatterns)
	require.Equal(t, settings.Languages, loaded.Languages)

	// File exists.
	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestLoad_MissingFile distinguishes the default path from an explicit one.
func TestLoad_MissingFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
