package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/service/fixer"
	"github.com/oshokin/xcode-upkeep/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level of printed messages.
	logLevel string
	// options collects the flag values passed to the fixer.
	options fixer.Options

	// rootCmd represents the base command for cleaning the Resources build phase.
	rootCmd = &cobra.Command{
		Use:   "pbx-fix-resources",
		Short: "Remove duplicated asset files from the Resources build phase.",
		Long: `Removes asset-catalog files that were added to the Resources build phase
one by one, which makes Xcode fail with "Multiple commands produce" errors.

Build files are selected by file-name globs from the configuration or from
--pattern. Only the lines of the Resources phase are removed. A run that finds
nothing to remove leaves the project untouched and exits with status 1.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.SetLevelFromString(logLevel)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			options.ConfigPath = configPath

			return fixer.Run(ctx, &options)
		},
	}
)

// Execute runs the pbx-fix-resources CLI and exits with non-zero status on error.
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
	rootCmd.Flags().
		StringArrayVar(&options.Patterns, "pattern", nil, "file-name glob to remove, repeatable (overrides config)")
	rootCmd.Flags().BoolVarP(&options.DryRun, "dry-run", "n", false, "log the changes without writing the project")
}
