package localizer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/repository/textfile"
)

// SyncResult summarizes one Sync run.
type SyncResult struct {
	// Extracted is the number of meaningful literals found in the sources.
	Extracted int
	// Missing is the number of those literals the source-language file did not have.
	Missing int
	// Untranslated counts per language the phrases that fell back to the source text.
	Untranslated map[string]int
	// Rendered maps language code to the full file content.
	Rendered map[string]string
	// Written lists the files that were actually changed on disk.
	Written []string
}

// Sync extracts Text() literals, merges them into the source-language file and
// rewrites every language file. All files are rendered before any is written.
func Sync(ctx context.Context, opts *Options) (*SyncResult, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "localize")

	l, err := newLocalizer(opts)
	if err != nil {
		return nil, err
	}

	return l.sync(ctx)
}

//nolint:cyclop,funlen // Merge order is easier to follow in one place.
func (l *localizer) sync(ctx context.Context) (*SyncResult, error) {
	ctx = logger.WithKV(ctx, "dir", l.dir)

	logger.Info(ctx, "Extracting hardcoded strings from Swift files")

	extracted, err := l.extract(ctx)
	if err != nil {
		return nil, err
	}

	logger.Infof(ctx, "Extracted %d unique strings", len(extracted))

	existing := make(map[string]map[string]string, len(l.languages))

	for _, lang := range l.languages {
		if existing[lang], err = l.readStrings(lang); err != nil {
			return nil, err
		}
	}

	result := &SyncResult{
		Extracted:    len(extracted),
		Untranslated: make(map[string]int, len(l.languages)),
		Rendered:     make(map[string]string, len(l.languages)),
	}

	// Source language: existing values win, new literals translate to themselves.
	source := make(map[string]string, len(existing[l.source])+len(extracted))
	for key, value := range existing[l.source] {
		source[key] = value
	}

	for _, phrase := range extracted {
		if _, ok := source[phrase]; !ok {
			source[phrase] = phrase
			result.Missing++
		}
	}

	logger.InfoKV(ctx, "Checked existing translations",
		"existing", len(existing[l.source]), "missing", result.Missing)

	result.Rendered[l.source] = localization.RenderStrings(l.source, l.appName, source, localization.DefaultCategories())

	for _, lang := range l.languages {
		if lang == l.source {
			continue
		}

		translations := make(map[string]string, len(source))

		for phrase := range source {
			if value, ok := existing[lang][phrase]; ok {
				translations[phrase] = value
				continue
			}

			if _, ok := l.catalog.Lookup(lang, phrase); !ok {
				result.Untranslated[lang]++
			}

			translations[phrase] = l.catalog.Translate(ctx, lang, phrase)
		}

		result.Rendered[lang] = localization.RenderStrings(lang, l.appName, translations, localization.DefaultCategories())
	}

	for _, lang := range l.languages {
		path := l.stringsPath(lang)

		written, err := l.save(ctx, path, result.Rendered[lang])
		if err != nil {
			return nil, err
		}

		if written {
			result.Written = append(result.Written, path)
			logger.InfoKV(ctx, "Wrote translations", "language", lang, "count", len(source))
		}
	}

	return result, nil
}

// extract collects meaningful literals from every Swift source, in source order.
func (l *localizer) extract(ctx context.Context) ([]string, error) {
	paths, err := l.sources(ctx)
	if err != nil {
		return nil, err
	}

	var (
		seen   = make(map[string]struct{})
		result []string
	)

	for _, path := range paths {
		contents, err := l.file(path).Load()
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}

		found := 0

		for _, phrase := range localization.ExtractTexts(contents) {
			if !localization.IsMeaningful(phrase) {
				continue
			}

			found++

			if _, ok := seen[phrase]; ok {
				continue
			}

			seen[phrase] = struct{}{}
			result = append(result, phrase)
		}

		if found > 0 {
			logger.Infof(ctx, "Found %d strings in %s", found, filepath.Base(path))
		}
	}

	return result, nil
}

// readStrings parses a language file; a missing file reads as empty.
func (l *localizer) readStrings(lang string) (map[string]string, error) {
	contents, err := l.file(l.stringsPath(lang)).Load()

	switch {
	case errors.Is(err, textfile.ErrNotFound):
		return map[string]string{}, nil
	case err != nil:
		return nil, fmt.Errorf("read %s translations: %w", lang, err)
	}

	_, values := localization.ParseStrings(contents)

	return values, nil
}
