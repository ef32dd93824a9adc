package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tagtrack/internal/config"
	"tagtrack/internal/gitlab"
	"tagtrack/internal/tracker"
	"tagtrack/pkg/fileutil"
)

// configFilename is searched in default locations when --config is not set.
const configFilename = "tagtrack.yaml"

// loadConfig resolves the configuration for a command: optional YAML file,
// then flag/env overlay, then validation.
func loadConfig(cmd *cobra.Command, logger *slog.Logger) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		path = fileutil.FindConfigOptional(configFilename)
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("failed to load configuration: %w", err)
			}
			logger.Warn("ignoring config file", "path", path, "error", err)
		} else {
			cfg = loaded
		}
	}

	cfg.MergeFlags(cmd.Flags())

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration:\n%s", config.ErrorSummary(errs))
	}
	return cfg, nil
}

// newLogger returns the CLI logger. Diagnostics go to stderr so stdout
// stays reserved for status lines and CSV payload.
func newLogger() *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// connect builds the authenticated API client and the tracker on top of it.
// An authentication failure is fatal to the whole run.
func connect(cfg *config.Config, logger *slog.Logger) (*tracker.Tracker, error) {
	client, err := gitlab.NewClient(cfg.URL, cfg.Token, cfg.RateLimit, logger)
	if err != nil {
		return nil, fmt.Errorf("connecting to GitLab: %w", err)
	}
	return tracker.New(client, logger, cfg.Patterns()), nil
}
