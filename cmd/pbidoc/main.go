// Package main provides the CLI entry point for pbidoc.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/config"
	"github.com/ukaji3/pbidoc-go/pkg/pbidoc/output"
)

var (
	configPath string
	verbose    bool
	outputPath string
	force      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pbidoc",
		Short: "Generate Word documentation from Power BI reports",
		Long: `pbidoc reads a Power BI template (.pbit) and documents its pages, visuals,
tables, measures, data sources and relationships in a Word document built
from a .docx template.`,
		Args:          cobra.NoArgs,
		RunE:          runGenerate,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: ./"+config.ConfigFileName+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	bindReportFlags(rootCmd.PersistentFlags())
	bindGenerateFlags(rootCmd.Flags())

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Word documentation (default command)",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	bindGenerateFlags(generateCmd.Flags())

	extractCmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract report metadata and print it as JSON",
		Args:  cobra.NoArgs,
		RunE:  runExtract,
	}
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().BoolVar(&flags.pretty, "pretty", false, "Pretty-print JSON output")

	initConfigCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write a default configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitConfig,
	}

	initTemplateCmd := &cobra.Command{
		Use:   "init-template [path]",
		Short: "Write a Word template with the markers and headings pbidoc fills",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runInitTemplate,
	}
	initTemplateCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	rootCmd.AddCommand(generateCmd, extractCmd, initConfigCmd, initTemplateCmd)
	return rootCmd
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	result, err := pbidoc.Generate(cfg, extractOptions())
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Documentation generated at: %s\n", result.DocumentPath)
	return nil
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	opts := extractOptions()
	if opts.Encoding == "" {
		opts.Encoding = cfg.Report.Encoding
	}

	report, err := pbidoc.Extract(cfg.PackagePath(), opts)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(report, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := config.ConfigFileName
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.SaveDefault(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n", path)
	return nil
}

func runInitTemplate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cfg.TemplatePath()
	if len(args) == 1 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("template already exists: %s (use --force to overwrite)", path)
	}

	labels, err := output.LabelsFor(cfg.Template.Language)
	if err != nil {
		return err
	}
	if err := pbidoc.DefaultTemplate(labels).Save(path); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Template written to: %s\n", path)
	return nil
}

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	applyFlags(cmd.Flags(), cfg)
	return cfg, nil
}
