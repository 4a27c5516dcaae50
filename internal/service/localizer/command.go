package localizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/repository/textfile"
)

const (
	// StringsFilename is the strings table inside every <lang>.lproj folder.
	StringsFilename = "Localizable.strings"

	// lprojPermissions is used for .lproj folders created by Sync.
	lprojPermissions = 0o755
)

// Options contains inputs shared by the localize subcommands.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
	// Dir overrides the folder with the Swift sources and .lproj folders.
	Dir string
	// Languages overrides the configured languages.
	Languages []string
	// DryRun renders everything without writing files.
	DryRun bool
}

// errNoLanguages is returned when there is no language to work on.
var errNoLanguages = errors.New("no languages configured")

// localizer works on the .lproj folders of one source directory.
type localizer struct {
	// dir holds the Swift sources and the .lproj folders.
	dir string
	// appName is printed in the header of rendered files.
	appName string
	// source is the development language.
	source string
	// languages lists every language file, source included.
	languages []string
	// skip matches Swift file names excluded from extraction.
	skip []glob.Glob
	// catalog supplies the built-in translations.
	catalog *localization.Catalog
	// files caches one repository per path so Save compares with what Load returned.
	files map[string]textfile.Repository
	// dryRun disables writes.
	dryRun bool
}

// newLocalizer loads the settings, applies opts and compiles the skip list.
func newLocalizer(opts *Options) (*localizer, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if opts.Dir != "" {
		cfg.LocalizationDir = opts.Dir
	}

	if len(opts.Languages) > 0 {
		cfg.Languages = append([]string{cfg.SourceLanguage}, opts.Languages...)
	}

	catalog, err := localization.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load translation tables: %w", err)
	}

	l := &localizer{
		dir:     filepath.Clean(cfg.LocalizationDir),
		source:  cfg.SourceLanguage,
		catalog: catalog,
		files:   make(map[string]textfile.Repository),
		dryRun:  opts.DryRun,
	}

	l.appName = filepath.Base(l.dir)

	if l.languages, err = uniqueLanguages(cfg.SourceLanguage, cfg.Languages); err != nil {
		return nil, err
	}

	for _, pattern := range cfg.SkipSources {
		compiled, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid skip pattern %q: %w", pattern, err)
		}

		l.skip = append(l.skip, compiled)
	}

	return l, nil
}

// uniqueLanguages canonicalizes codes, puts the source language first and drops repeats.
func uniqueLanguages(source string, codes []string) ([]string, error) {
	if len(codes) == 0 {
		return nil, errNoLanguages
	}

	var (
		seen   = map[string]struct{}{source: {}}
		result = []string{source}
	)

	for _, code := range codes {
		canonical, err := config.CanonicalLanguage(code)
		if err != nil {
			return nil, err
		}

		if _, ok := seen[canonical]; ok {
			continue
		}

		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}

	return result, nil
}

// stringsPath returns <dir>/<lang>.lproj/Localizable.strings.
func (l *localizer) stringsPath(lang string) string {
	return filepath.Join(l.dir, lang+".lproj", StringsFilename)
}

// file returns the cached repository for path.
func (l *localizer) file(path string) textfile.Repository {
	repo, ok := l.files[path]
	if !ok {
		repo = textfile.NewFileRepository(path)
		l.files[path] = repo
	}

	return repo
}

// sources lists the Swift files of dir in name order, without the skipped ones.
func (l *localizer) sources(ctx context.Context) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(l.dir, "*.swift"))
	if err != nil {
		return nil, fmt.Errorf("list Swift sources: %w", err)
	}

	sort.Strings(paths)

	kept := paths[:0]

	for _, path := range paths {
		if l.skipped(filepath.Base(path)) {
			logger.DebugKV(ctx, "Skipping Swift source", "file", filepath.Base(path))
			continue
		}

		kept = append(kept, path)
	}

	return kept, nil
}

func (l *localizer) skipped(name string) bool {
	for _, pattern := range l.skip {
		if pattern.Match(name) {
			return true
		}
	}

	return false
}

// save writes contents to path unless this is a dry run; unchanged files are not an error.
func (l *localizer) save(ctx context.Context, path, contents string) (bool, error) {
	if l.dryRun {
		logger.InfoKV(ctx, "Dry run, file left untouched", "file", path)
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), lprojPermissions); err != nil {
		return false, fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}

	err := l.file(path).Save(contents)

	switch {
	case errors.Is(err, textfile.ErrNoChanges):
		logger.DebugKV(ctx, "File is up to date", "file", path)
		return false, nil
	case err != nil:
		return false, err
	}

	return true, nil
}
