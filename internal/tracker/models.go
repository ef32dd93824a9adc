package tracker

import "time"

// Project is a repository hosted on the GitLab instance
type Project struct {
	ID                int
	Name              string
	PathWithNamespace string
	Namespace         string // group or user the project belongs to
}

// Environment is a named deployment target tracked by GitLab.
// LastDeployment is the server-side "last deployment" pointer and may be
// nil when the environment has never been deployed to (or when the
// environment was fetched from a list endpoint that omits it).
type Environment struct {
	ID             int
	Name           string
	LastDeployment *Deployment
}

// Deployment records that a ref was deployed to an environment at a point
// in time. Immutable historical record.
type Deployment struct {
	ID        int
	Ref       string
	CreatedAt time.Time
}

// Tag is an immutable named pointer to a commit, conventionally marking a
// release. CommitCreatedAt is the creation time of the underlying commit,
// nil when the API did not supply one.
type Tag struct {
	Name            string
	CommitCreatedAt *time.Time
}
