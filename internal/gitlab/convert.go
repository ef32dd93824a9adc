package gitlab

import (
	gl "gitlab.com/gitlab-org/api/client-go"

	"tagtrack/internal/tracker"
)

// Conversions from client types into the tracker's fixed records. Optional
// server fields become explicit nil pointers, never attribute probing.

func convertProject(p *gl.Project) tracker.Project {
	project := tracker.Project{
		ID:                p.ID,
		Name:              p.Name,
		PathWithNamespace: p.PathWithNamespace,
	}
	if p.Namespace != nil {
		project.Namespace = p.Namespace.Name
	}
	return project
}

func convertEnvironment(env *gl.Environment) tracker.Environment {
	converted := tracker.Environment{
		ID:   env.ID,
		Name: env.Name,
	}
	if env.LastDeployment != nil {
		deployment := convertDeployment(env.LastDeployment)
		converted.LastDeployment = &deployment
	}
	return converted
}

func convertDeployment(d *gl.Deployment) tracker.Deployment {
	deployment := tracker.Deployment{
		ID:  d.ID,
		Ref: d.Ref,
	}
	if d.CreatedAt != nil {
		deployment.CreatedAt = *d.CreatedAt
	}
	return deployment
}

func convertTag(t *gl.Tag) tracker.Tag {
	tag := tracker.Tag{Name: t.Name}
	if t.Commit != nil {
		tag.CommitCreatedAt = t.Commit.CreatedAt
	}
	return tag
}
