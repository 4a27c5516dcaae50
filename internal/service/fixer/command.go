package fixer

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/pbxproj"
	"github.com/oshokin/xcode-upkeep/internal/repository/textfile"
	"github.com/oshokin/xcode-upkeep/internal/service/common"
)

// Options contains inputs for the pbx-fix-resources entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
	// ProjectFile overrides the manifest path from the settings.
	ProjectFile string
	// Patterns override the configured removal globs.
	Patterns []string
	// DryRun logs what would be removed without writing the manifest.
	DryRun bool
}

// errNoPatterns is returned when there is nothing to match build files against.
var errNoPatterns = errors.New("no removal patterns configured")

// Run removes the matching build entries from the Resources phase.
// A run that changes nothing returns textfile.ErrNoChanges.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "pbx-fix-resources")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	projectFile := cfg.ProjectFile
	if opts.ProjectFile != "" {
		projectFile = opts.ProjectFile
	}

	patterns := cfg.RemovalPatterns
	if len(opts.Patterns) > 0 {
		patterns = opts.Patterns
	}

	if len(patterns) == 0 {
		return errNoPatterns
	}

	match, err := pbxproj.MatchNames(patterns...)
	if err != nil {
		return err
	}

	_, err = fix(ctx, textfile.NewFileRepository(projectFile), match, opts.DryRun)

	return err
}

// fix runs one removal pass against the repository.
func fix(
	ctx context.Context,
	repo textfile.Repository,
	match pbxproj.Predicate,
	dryRun bool,
) (*pbxproj.RemoveResult, error) {
	ctx = logger.WithKV(ctx, "project", repo.Path())

	logger.Info(ctx, "Fixing Xcode project resource conflicts")

	blob, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	result, err := pbxproj.RemoveBuildEntries(blob, pbx.PhaseResources, match)
	if err != nil {
		return nil, fmt.Errorf("remove build entries: %w", err)
	}

	logger.Infof(ctx, "Found %d asset catalog file references to remove", result.Matched)

	for _, name := range result.Names {
		logger.DebugKV(ctx, "Removed from Resources build phase", "file", name)
	}

	logger.Infof(ctx, "Removed %d entries from Resources build phase", result.Removed)

	if dryRun {
		logger.Info(ctx, "Dry run, project file left untouched")
		return result, nil
	}

	common.WarnIfXcodeRunning(ctx)

	if err = repo.Save(result.Blob); err != nil {
		if errors.Is(err, textfile.ErrNoChanges) {
			logger.Warn(ctx, "No changes were made, the patterns might not match this project")
		}

		return nil, err
	}

	logger.Info(ctx, "Fix complete, clean the build folder (Shift+Cmd+K) and build again")

	return result, nil
}
