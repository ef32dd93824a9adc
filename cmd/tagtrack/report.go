package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tagtrack/internal/config"
	"tagtrack/internal/report"
)

var (
	reportProject string
	outputPath    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Produce a CSV report of production deployments",
	Long: `Generate a CSV report of the latest production deployment per project.

Without --project, every project visible to the token is scanned. Each row
lists the project's group and name followed by one (environment, deployed_at,
tag_created_at) triple per environment whose name contains "production".
Projects without a matching environment are omitted; the header line is
always written.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportProject, "project", "p", getEnvOrDefault("TAGTRACK_PROJECT", ""), "Project ID or path (default: scan all projects)")
	reportCmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency, "Number of projects inspected in parallel (1 = sequential)")
	reportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write CSV to a file instead of stdout")
}

func runReport(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	tr, err := connect(cfg, logger)
	if err != nil {
		return err
	}

	projects, err := tr.Projects(cmd.Context(), reportProject)
	if err != nil {
		return err
	}
	logger.Info("scanning projects", "count", len(projects))

	runner := &report.Runner{
		Tracker:     tr,
		Concurrency: cfg.Concurrency,
	}

	if outputPath == "" {
		return runner.Run(cmd.Context(), projects, os.Stdout)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := runner.Run(cmd.Context(), projects, f); err != nil {
		f.Close()
		return err
	}
	// An error on close means the report on disk is incomplete.
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
