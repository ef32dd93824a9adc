package main

import (
	"os"

	"github.com/spf13/cobra"

	"tagtrack/internal/report"
)

var (
	statusProject string
	statusTag     string
	latestOnly    bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the latest production deployment of a project",
	Long: `Check which tag is currently deployed to the project's production
environment, and optionally whether a specific tag has been deployed.

By default the full deployment history is inspected, so --tag finds tags that
were deployed and later superseded. With --latest-only, only the environment's
last-deployment pointer is fetched: cheaper, but a --tag check then matches
the latest deployment only and reports older tags as not deployed.`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusProject, "project", "p", getEnvOrDefault("TAGTRACK_PROJECT", ""), "Project ID or path (e.g. group/project)")
	statusCmd.Flags().StringVarP(&statusTag, "tag", "t", "", "Tag to check (e.g. v1.2.3)")
	statusCmd.Flags().BoolVar(&latestOnly, "latest-only", false, "Only fetch the latest deployment instead of the full history")

	if statusProject == "" {
		statusCmd.MarkFlagRequired("project")
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	cfg, err := loadConfig(cmd, logger)
	if err != nil {
		return err
	}

	tr, err := connect(cfg, logger)
	if err != nil {
		return err
	}

	result, err := tr.Status(cmd.Context(), statusProject, statusTag, latestOnly)
	if err != nil {
		return err
	}

	report.WriteStatus(os.Stdout, result)
	return nil
}
