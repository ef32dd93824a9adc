package tracker

import "context"

// API is the slice of the GitLab REST API the tracker needs. The production
// implementation lives in internal/gitlab; tests substitute a fake.
//
// All list methods exhaust pagination before returning.
type API interface {
	// GetProject resolves a project by numeric ID or full path
	// (e.g. "group/project").
	GetProject(ctx context.Context, idOrPath string) (*Project, error)

	// ListProjects returns every project visible to the token.
	ListProjects(ctx context.Context) ([]Project, error)

	// ListEnvironments returns all environments of a project. The records
	// do not carry a last-deployment pointer; use GetEnvironment for that.
	ListEnvironments(ctx context.Context, projectID int) ([]Environment, error)

	// GetEnvironment fetches a single environment including its
	// last-deployment pointer, which may be nil.
	GetEnvironment(ctx context.Context, projectID, environmentID int) (*Environment, error)

	// ListDeployments returns the full deployment history of the named
	// environment, in whatever order the server yields it.
	ListDeployments(ctx context.Context, projectID int, environment string) ([]Deployment, error)

	// SearchTags returns the project's tags whose name matches the
	// server-side search term. The server may match loosely; callers must
	// re-verify exact names.
	SearchTags(ctx context.Context, projectID int, name string) ([]Tag, error)
}
