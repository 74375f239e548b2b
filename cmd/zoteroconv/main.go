package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zoteroconv/internal/app"
	"zoteroconv/internal/config"
	"zoteroconv/internal/logging"
	"zoteroconv/internal/usecase"
)

var (
	flagInput    string
	flagOutput   string
	flagConfig   string
	flagFormat   string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "zoteroconv",
	Short: "Convert a Zotero HTML report into structured JSON",
	Long: `zoteroconv reads a Zotero "Generate Report from Collection" HTML export
and writes its bibliographic entries as an indented JSON array with the
fields title, author(s), year, journal, and abstract.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagInput, "input", "i", "", "path to the Zotero HTML report")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "destination path for the JSON output")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to a YAML configuration file")
	rootCmd.Flags().StringVar(&flagFormat, "format", "", "report format (default \"zotero\")")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load(flagConfig)
	applyFlagOverrides(&cfg)

	logger := logging.New(cfg.Logging.Level)

	application, err := app.New(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return application.Run(ctx)
}

// Flags take precedence over environment and file configuration.
func applyFlagOverrides(cfg *config.Config) {
	if flagInput != "" {
		cfg.Input = flagInput
	}
	if flagOutput != "" {
		cfg.Output = flagOutput
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, usecase.ErrParseFailure):
		return ExitParseFailure
	case errors.Is(err, usecase.ErrWrite):
		return ExitWriteFailure
	default:
		return ExitError
	}
}
