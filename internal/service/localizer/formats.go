package localizer

import (
	"context"
	"fmt"

	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// AddFormats appends the built-in format patterns to every language file and
// returns the number of lines added per language. The files must exist.
func AddFormats(ctx context.Context, opts *Options) (map[string]int, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "localize")

	l, err := newLocalizer(opts)
	if err != nil {
		return nil, err
	}

	return l.addFormats(ctx)
}

func (l *localizer) addFormats(ctx context.Context) (map[string]int, error) {
	var (
		formats = l.catalog.Formats()
		updated = make(map[string]string, len(l.languages))
		added   = make(map[string]int, len(l.languages))
	)

	logger.Infof(ctx, "Adding %d format patterns", len(formats))

	for _, lang := range l.languages {
		path := l.stringsPath(lang)

		contents, err := l.file(path).Load()
		if err != nil {
			return nil, fmt.Errorf("read %s translations: %w", lang, err)
		}

		pairs := make([]localization.Entry, 0, len(formats))

		for _, pattern := range formats {
			value := pattern.Source

			if lang != l.source {
				if translation, ok := pattern.Translations[lang]; ok && translation != "" {
					value = translation
				} else {
					logger.DebugKV(ctx, "No format translation, keeping the pattern", "language", lang, "pattern", pattern.Source)
				}
			}

			pairs = append(pairs, localization.Entry{Key: pattern.Source, Value: value})
		}

		updated[lang], added[lang] = localization.AppendFormats(contents, pairs)
	}

	for _, lang := range l.languages {
		if added[lang] == 0 {
			logger.InfoKV(ctx, "Format patterns already present", "language", lang)
			continue
		}

		if _, err := l.save(ctx, l.stringsPath(lang), updated[lang]); err != nil {
			return nil, err
		}

		logger.InfoKV(ctx, "Updated translations", "language", lang, "added", added[lang])
	}

	return added, nil
}
