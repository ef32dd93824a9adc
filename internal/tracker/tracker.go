package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for the failures the CLI maps to a non-zero exit.
var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrNoProductionEnvironment = errors.New("production environment not found")
)

// EnvironmentPatterns configures how production environments are recognized.
// Exact is used by the single-project status mode (whole-name match),
// Substring by the report mode (contains match). Both are compared
// case-insensitively.
type EnvironmentPatterns struct {
	Exact     string
	Substring string
}

// DefaultPatterns returns the stock "production" patterns.
func DefaultPatterns() EnvironmentPatterns {
	return EnvironmentPatterns{
		Exact:     DefaultEnvironmentName,
		Substring: DefaultEnvironmentName,
	}
}

// Tracker answers deployment questions against a GitLab instance. It holds
// no state beyond its collaborators; every method performs one pass over
// API data.
type Tracker struct {
	api      API
	logger   *slog.Logger
	patterns EnvironmentPatterns
}

// New creates a tracker. Empty pattern fields fall back to "production".
func New(api API, logger *slog.Logger, patterns EnvironmentPatterns) *Tracker {
	if patterns.Exact == "" {
		patterns.Exact = DefaultEnvironmentName
	}
	if patterns.Substring == "" {
		patterns.Substring = DefaultEnvironmentName
	}
	return &Tracker{
		api:      api,
		logger:   logger,
		patterns: patterns,
	}
}

// StatusResult is the outcome of a single-project status check.
type StatusResult struct {
	Project     Project
	Environment Environment
	Deployments []Deployment // newest first; empty when none or retrieval failed

	// Target is the tag the caller asked about, empty when none was given.
	// Found is the deployment of Target within Deployments, nil when the
	// tag has not been deployed (or, in latest-only mode, is not the
	// latest deployment).
	Target      string
	TargetValid bool
	Found       *Deployment
}

// Latest returns the newest deployment, nil when there are none.
func (r *StatusResult) Latest() *Deployment {
	if len(r.Deployments) == 0 {
		return nil
	}
	return &r.Deployments[0]
}

// Status runs the single-project pipeline: resolve the project, select the
// exact-match production environment, locate deployments and, when target
// is non-empty, check whether that tag is among them.
//
// Project resolution and environment selection failures are returned to the
// caller (they are fatal in status mode). Deployment retrieval failures
// degrade to an empty deployment set, matching how the report mode treats
// them.
func (t *Tracker) Status(ctx context.Context, idOrPath, target string, latestOnly bool) (*StatusResult, error) {
	project, err := t.api.GetProject(ctx, idOrPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrProjectNotFound, idOrPath, err)
	}
	t.logger.Info("connected to project", "project", project.Name)

	envs, err := t.api.ListEnvironments(ctx, project.ID)
	if err != nil {
		t.logger.Warn("failed to list environments", "project", project.PathWithNamespace, "error", err)
	}
	env := SelectExact(envs, t.patterns.Exact)
	if env == nil {
		return nil, fmt.Errorf("%w for project %q", ErrNoProductionEnvironment, idOrPath)
	}
	t.logger.Info("found production environment", "environment", env.Name, "id", env.ID)

	deployments, err := t.locator(latestOnly).Locate(ctx, project.ID, *env)
	if err != nil {
		t.logger.Warn("failed to retrieve deployments", "project", project.PathWithNamespace, "environment", env.Name, "error", err)
		deployments = nil
	}

	result := &StatusResult{
		Project:     *project,
		Environment: *env,
		Deployments: deployments,
		Target:      target,
	}
	if target != "" {
		result.TargetValid = ValidTagFormat(target)
		result.Found = FindRef(deployments, target)
	}
	return result, nil
}

// EnvironmentResult is one matched production environment of a project
// together with its latest deployment and the creation time of the tag
// that deployment used. Deployment is nil when the environment has never
// been deployed to or retrieval failed; TagCreated is nil when the ref
// could not be correlated to a tag.
type EnvironmentResult struct {
	Environment Environment
	Deployment  *Deployment
	TagCreated  *time.Time
}

// ProductionStatus inspects one project for the report mode: substring
// selection over its environments, latest deployment per match via the
// last-deployment pointer, and tag correlation for each deployment ref.
// Every retrieval failure degrades to missing data with a warning; an
// empty result means the project contributes no report row.
func (t *Tracker) ProductionStatus(ctx context.Context, project Project) []EnvironmentResult {
	envs, err := t.api.ListEnvironments(ctx, project.ID)
	if err != nil {
		t.logger.Warn("failed to list environments", "project", project.PathWithNamespace, "error", err)
		return nil
	}

	matched := SelectMatching(envs, t.patterns.Substring)
	if len(matched) == 0 {
		return nil
	}

	locator := LatestOnlyLocator{API: t.api}
	results := make([]EnvironmentResult, 0, len(matched))
	for _, env := range matched {
		res := EnvironmentResult{Environment: env}

		deployments, err := locator.Locate(ctx, project.ID, env)
		if err != nil {
			t.logger.Warn("failed to retrieve latest deployment", "project", project.PathWithNamespace, "environment", env.Name, "error", err)
		} else if len(deployments) > 0 {
			res.Deployment = &deployments[0]

			created, err := CorrelateTag(ctx, t.api, project.ID, res.Deployment.Ref)
			if err != nil {
				t.logger.Warn("failed to look up tag", "project", project.PathWithNamespace, "tag", res.Deployment.Ref, "error", err)
			} else {
				res.TagCreated = created
			}
		}

		results = append(results, res)
	}
	return results
}

// Projects resolves the project set for a run: the single named project, or
// every project visible to the token when idOrPath is empty.
func (t *Tracker) Projects(ctx context.Context, idOrPath string) ([]Project, error) {
	if idOrPath != "" {
		project, err := t.api.GetProject(ctx, idOrPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrProjectNotFound, idOrPath, err)
		}
		return []Project{*project}, nil
	}
	projects, err := t.api.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	return projects, nil
}

func (t *Tracker) locator(latestOnly bool) Locator {
	if latestOnly {
		return LatestOnlyLocator{API: t.api}
	}
	return HistoryLocator{API: t.api}
}
