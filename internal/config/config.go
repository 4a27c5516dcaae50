package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Config holds the paths and patching rules used by the tools.
type Config struct {
	// ProjectFile is the path to the project.pbxproj manifest.
	ProjectFile string `yaml:"project_file"`
	// GroupName is the display name of the navigator group that receives new files.
	GroupName string `yaml:"group_name"`
	// GroupID pins the group by identifier when several groups share a name.
	GroupID string `yaml:"group_id,omitempty"`
	// RemovalPatterns are file-name globs of build entries dropped from the Resources phase.
	RemovalPatterns []string `yaml:"removal_patterns"`
	// LocalizationDir contains the Swift sources and the <lang>.lproj folders.
	LocalizationDir string `yaml:"localization_dir"`
	// SourceLanguage is the language the Swift sources are written in.
	SourceLanguage string `yaml:"source_language"`
	// Languages lists every language with a Localizable.strings file, source language included.
	Languages []string `yaml:"languages"`
	// SkipSources are file-name globs of Swift files ignored during string extraction.
	SkipSources []string `yaml:"skip_sources"`
}

const (
	// DefaultConfigFilename is the default filename for tool settings.
	DefaultConfigFilename = "xcode-upkeep.yaml"

	// DefaultGroupName is the navigator group new files are added to.
	DefaultGroupName = "NoteWall"

	// DefaultProjectFile is the manifest path relative to the repository root.
	DefaultProjectFile = DefaultGroupName + ".xcodeproj/project.pbxproj"

	// DefaultSourceLanguage is the development language of the app.
	DefaultSourceLanguage = "en"

	// DefaultFilePermissions is the default file permission for settings files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errProjectFileRequired is returned when the manifest path is empty.
	errProjectFileRequired = errors.New("project file must be provided")
	// errSourceLanguageMissing is returned when languages do not include the source language.
	errSourceLanguageMissing = errors.New("languages must include the source language")
)

// DefaultRemovalPatterns returns the asset-catalog files that end up
// duplicated in the Resources phase when an asset folder is dragged in by hand.
func DefaultRemovalPatterns() []string {
	return []string{
		"Contents.json",
		"Icon-App-*.png",
		"mockup*.png",
		"experiment-icon.png",
		"FAITHWALL.png",
		"skipForward3s.png",
		"skipBackward3s.png",
		"safari-logo*.png",
		"shortcuts-app-logo.png",
		"stuck-placeholder.png",
		"notificationes.png",
		"image-[0-9]-review.png",
		"logo-icon.png",
		"instruction_wallpaper.png",
		"arrow.png",
	}
}

// Default returns settings that match the layout of the NoteWall repository.
func Default() *Config {
	return &Config{
		ProjectFile:     DefaultProjectFile,
		GroupName:       DefaultGroupName,
		RemovalPatterns: DefaultRemovalPatterns(),
		LocalizationDir: DefaultGroupName,
		SourceLanguage:  DefaultSourceLanguage,
		Languages:       []string{"en", "de", "es", "fr"},
		SkipSources:     []string{"Config.swift"},
	}
}

// Load reads configuration from the provided path and validates it.
// An absent file at the default path yields Default().
func Load(path string) (*Config, error) {
	explicit := path != "" && path != DefaultConfigFilename
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks required fields, fills defaults and canonicalizes language codes.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if strings.TrimSpace(settings.ProjectFile) == "" {
		return errProjectFileRequired
	}

	if settings.GroupName == "" && settings.GroupID == "" {
		settings.GroupName = DefaultGroupName
	}

	if settings.SourceLanguage == "" {
		settings.SourceLanguage = DefaultSourceLanguage
	}

	source, err := CanonicalLanguage(settings.SourceLanguage)
	if err != nil {
		return err
	}

	settings.SourceLanguage = source

	hasSource := false

	for i, code := range settings.Languages {
		canonical, err := CanonicalLanguage(code)
		if err != nil {
			return err
		}

		settings.Languages[i] = canonical
		hasSource = hasSource || canonical == source
	}

	if len(settings.Languages) > 0 && !hasSource {
		return fmt.Errorf("%w: %s", errSourceLanguageMissing, source)
	}

	return nil
}

// CanonicalLanguage parses a BCP 47 code and returns its canonical form,
// which is also the name of the matching .lproj folder.
func CanonicalLanguage(code string) (string, error) {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return "", fmt.Errorf("invalid language code %q: %w", code, err)
	}

	return tag.String(), nil
}
