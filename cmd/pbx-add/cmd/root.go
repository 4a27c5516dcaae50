package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/service/adder"
	"github.com/oshokin/xcode-upkeep/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level of printed messages.
	logLevel string
	// options collects the flag values passed to the adder.
	options adder.Options

	// rootCmd represents the base command for registering a file in the project.
	rootCmd = &cobra.Command{
		Use:   "pbx-add [file-name]",
		Short: "Register a source or resource file in the Xcode project.",
		Long: `Adds a file to project.pbxproj: a PBXFileReference, a PBXBuildFile,
a child of the navigator group and an entry in the Sources or Resources build phase.

The file type is inferred from the extension unless --type is given, and the
build phase follows from the type unless --phase is given. The manifest is
written only when all four entries were placed. Close Xcode first, it may
overwrite the manifest with its own copy.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.SetLevelFromString(logLevel)
		},
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.ConfigPath = configPath
			options.FileName = args[0]

			return adder.Run(ctx, &options)
		},
	}
)

// Execute runs the pbx-add CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.Flags().StringVarP(&options.ProjectFile, "project", "p", "", "path to project.pbxproj (overrides config)")
	rootCmd.Flags().StringVarP(&options.FileType, "type", "t", "", "lastKnownFileType, e.g. sourcecode.swift (inferred by default)")
	rootCmd.Flags().StringVar(&options.Phase, "phase", "", "build phase: sources or resources (inferred by default)")
	rootCmd.Flags().StringVarP(&options.GroupName, "group", "g", "", "navigator group name (overrides config)")
	rootCmd.Flags().StringVar(&options.GroupID, "group-id", "", "navigator group identifier (overrides config)")
	rootCmd.Flags().BoolVarP(&options.Force, "force", "f", false, "add even if a file with the same name is referenced")
	rootCmd.Flags().BoolVarP(&options.DryRun, "dry-run", "n", false, "log the changes without writing the project")
}
