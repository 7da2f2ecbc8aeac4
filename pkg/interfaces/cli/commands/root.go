// Package commands wires the tradeops cobra command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsinha/tradeops/pkg/config"
	"github.com/vsinha/tradeops/pkg/logger"
)

// NewRootCommand creates the tradeops root command with every subcommand attached
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "tradeops",
		Short: "Trading operations document and workflow tools",
		Long: `Normalize extracted trade documents into deal, quote and customer PO
form fields, create those entities from documents, and query the status
lifecycles of trading entities.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error, disabled)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(
		NewNormalizeCommand(),
		NewIntakeCommand(),
		NewTransitionsCommand(),
		NewStatusesCommand(),
	)

	return root
}

// setup loads configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	logLevel, logJSON, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Log.JSON = logJSON
	}
	logger.SetupLogger(cfg.Log.Level, cfg.Log.JSON, false)

	log := logger.GetDefault()
	log.Debug("Configuration loaded", "path", path, "default_currency", cfg.Normalizer.DefaultCurrency)

	ctx := config.ContextWithConfig(cmd.Context(), cfg)
	ctx = logger.ContextWithLogger(ctx, log)
	cmd.SetContext(ctx)
	return nil
}

// outputFormat returns the --format flag, falling back to the configured format
func outputFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = config.FromContext(cmd.Context()).Output.Format
	}
	return format, nil
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "o", "", "Output format (text, json, yaml, csv)")
}
