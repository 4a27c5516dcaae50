package adder

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/domain/pbx"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/pbxproj"
	"github.com/oshokin/xcode-upkeep/internal/repository/textfile"
	"github.com/oshokin/xcode-upkeep/internal/service/common"
)

// Options contains inputs for the pbx-add entry point.
type Options struct {
	// ConfigPath is an optional path to the settings YAML file.
	ConfigPath string
	// ProjectFile overrides the manifest path from the settings.
	ProjectFile string
	// FileName is the file to register, relative to its group folder.
	FileName string
	// FileType overrides the inferred lastKnownFileType.
	FileType string
	// Phase overrides the inferred build phase ("sources" or "resources").
	Phase string
	// GroupName overrides the navigator group from the settings.
	GroupName string
	// GroupID overrides the navigator group identifier from the settings.
	GroupID string
	// Force registers the file even when a reference with the same name exists.
	Force bool
	// DryRun logs the result without writing the manifest.
	DryRun bool
}

// errFileNameRequired is returned when no file name is given.
var errFileNameRequired = errors.New("file name must be provided")

// adder applies one registration to a manifest repository.
type adder struct {
	// repo loads and saves the manifest.
	repo textfile.Repository
	// patcher splices the entries.
	patcher *pbxproj.Patcher
}

// Run registers opts.FileName in the project manifest.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "pbx-add")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	projectFile := cfg.ProjectFile
	if opts.ProjectFile != "" {
		projectFile = opts.ProjectFile
	}

	file, err := ResolveFile(opts.FileName, opts.FileType, opts.Phase)
	if err != nil {
		return err
	}

	group := pbxproj.GroupSelector{
		Name: cfg.GroupName,
		ID:   cfg.GroupID,
	}

	// A group named on the command line replaces the configured one entirely.
	if opts.GroupName != "" || opts.GroupID != "" {
		group = pbxproj.GroupSelector{
			Name: opts.GroupName,
			ID:   opts.GroupID,
		}
	}

	a := &adder{
		repo:    textfile.NewFileRepository(projectFile),
		patcher: pbxproj.New(),
	}

	if _, err = a.add(ctx, file, group, opts.Force, opts.DryRun); err != nil {
		return err
	}

	return nil
}

// ResolveFile fills in the file type and build phase that were not given explicitly.
func ResolveFile(name, fileType, phase string) (pbx.NewFile, error) {
	if name == "" {
		return pbx.NewFile{}, errFileNameRequired
	}

	file := pbx.NewFile{
		Name:     filepath.Base(name),
		FileType: fileType,
	}

	if file.FileType == "" {
		file.FileType = pbx.InferFileType(file.Name)
	}

	var err error

	if phase != "" {
		file.Phase, err = pbx.ParsePhase(phase)
	} else {
		file.Phase, err = pbx.InferPhase(file.FileType)
	}

	if err != nil {
		return pbx.NewFile{}, fmt.Errorf("%s: %w", file.Name, err)
	}

	return file, nil
}

// add runs Load, Splice×4, Compare and Write.
func (a *adder) add(
	ctx context.Context,
	file pbx.NewFile,
	group pbxproj.GroupSelector,
	force, dryRun bool,
) (*pbxproj.AddResult, error) {
	ctx = logger.WithKV(ctx, "project", a.repo.Path())

	blob, err := a.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}

	if pbxproj.HasFileReference(blob, file.Name) {
		if !force {
			return nil, fmt.Errorf("%w: %s", pbxproj.ErrAlreadyReferenced, file.Name)
		}

		logger.WarnKV(ctx, "File is already referenced, adding another reference", "file", file.Name)
	}

	logger.InfoKV(ctx, "Adding file to Xcode project",
		"file", file.Name, "type", file.FileType, "phase", file.Phase, "group", group.String())

	result, err := a.patcher.AddFile(blob, file, group)
	if err != nil {
		return nil, fmt.Errorf("patch project: %w", err)
	}

	logger.InfoKV(ctx, "Generated identifiers", "file_ref_id", result.FileRefID, "build_file_id", result.BuildFileID)

	for _, step := range result.Steps {
		logger.Infof(ctx, "Added to %s", step)
	}

	if dryRun {
		logger.Info(ctx, "Dry run, project file left untouched")
		return result, nil
	}

	common.WarnIfXcodeRunning(ctx)

	if err = a.repo.Save(result.Blob); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logger.InfoKV(ctx, "Successfully added file to Xcode project", "file", file.Name)

	return result, nil
}
