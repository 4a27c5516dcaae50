package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/logger"
	"github.com/oshokin/xcode-upkeep/internal/service/localizer"
	"github.com/oshokin/xcode-upkeep/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// logLevel is the minimum level of printed messages.
	logLevel string
	// options collects the flag values shared by the subcommands.
	options localizer.Options

	// rootCmd groups the localization subcommands.
	rootCmd = &cobra.Command{
		Use:   "localize",
		Short: "Maintain the Localizable.strings files of the app.",
		Long: `Keeps <lang>.lproj/Localizable.strings in step with the Text() literals
of the Swift sources, using built-in translation tables for German, Spanish
and French. Phrases without a translation keep the English text and are
reported as warnings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return logger.SetLevelFromString(logLevel)
		},
	}

	// syncCmd rewrites every language file from the Swift sources.
	syncCmd = &cobra.Command{
		Use:   "sync",
		Short: "Extract Text() literals and rewrite every language file.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			_, err := localizer.Sync(ctx, withConfig())

			return err
		},
	}

	// addFormatsCmd appends the format-string patterns.
	addFormatsCmd = &cobra.Command{
		Use:   "add-formats",
		Short: "Append format-string patterns for interpolated text to every language file.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			_, err := localizer.AddFormats(ctx, withConfig())

			return err
		},
	}

	// scanCmd reports interpolated Text() literals.
	scanCmd = &cobra.Command{
		Use:   "scan",
		Short: "Report Text() literals that use string interpolation.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			_, err := localizer.Scan(ctx, withConfig())

			return err
		},
	}

	// lookupCmd prints one translation.
	lookupCmd = &cobra.Command{
		Use:   "lookup <language> <phrase>",
		Short: "Print the built-in translation of a phrase.",
		Args:  cobra.ExactArgs(2), //nolint:mnd // Language and phrase.
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signalContext()
			defer stop()

			translation, err := localizer.Lookup(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write([]byte(translation + "\n"))

			return err
		},
	}
)

// Execute runs the localize CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// signalContext cancels on SIGTERM or SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

func withConfig() *localizer.Options {
	options.ConfigPath = configPath
	return &options
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	for _, command := range []*cobra.Command{syncCmd, addFormatsCmd, scanCmd} {
		command.Flags().StringVarP(&options.Dir, "dir", "d", "", "folder with Swift sources and .lproj folders (overrides config)")
		command.Flags().
			StringSliceVarP(&options.Languages, "language", "l", nil, "target languages besides the source language (overrides config)")
	}

	syncCmd.Flags().BoolVarP(&options.DryRun, "dry-run", "n", false, "render the files without writing them")
	addFormatsCmd.Flags().BoolVarP(&options.DryRun, "dry-run", "n", false, "render the files without writing them")

	rootCmd.AddCommand(syncCmd, addFormatsCmd, scanCmd, lookupCmd)
}
