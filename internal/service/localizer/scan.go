package localizer

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// ScanReport lists the interpolated Text() literals of one Swift file.
type ScanReport struct {
	// File is the base name of the Swift source.
	File string
	// Texts are the offending lines.
	Texts []localization.InterpolatedText
}

// Scan reports Text() literals with string interpolation, which SwiftUI
// looks up through format patterns rather than plain keys.
func Scan(ctx context.Context, opts *Options) ([]ScanReport, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "localize")

	l, err := newLocalizer(opts)
	if err != nil {
		return nil, err
	}

	return l.scan(ctx)
}

func (l *localizer) scan(ctx context.Context) ([]ScanReport, error) {
	paths, err := l.sources(ctx)
	if err != nil {
		return nil, err
	}

	var (
		reports []ScanReport
		total   int
	)

	for _, path := range paths {
		contents, err := l.file(path).Load()
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}

		texts := localization.FindInterpolated(contents)
		if len(texts) == 0 {
			continue
		}

		report := ScanReport{
			File:  filepath.Base(path),
			Texts: texts,
		}

		logger.Infof(ctx, "%s: %d interpolated strings", report.File, len(texts))

		for _, text := range texts {
			logger.InfoKV(ctx, text.Source, "file", report.File, "line", text.Line)
		}

		reports = append(reports, report)
		total += len(texts)
	}

	logger.Infof(ctx, "Total: %d interpolated strings found", total)

	return reports, nil
}
