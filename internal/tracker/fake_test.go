package tracker

import (
	"context"
	"errors"
)

// fakeAPI implements API with per-method function fields. Unset methods
// return errNotImplemented so tests fail loudly on unexpected calls.
type fakeAPI struct {
	getProject       func(idOrPath string) (*Project, error)
	listProjects     func() ([]Project, error)
	listEnvironments func(projectID int) ([]Environment, error)
	getEnvironment   func(projectID, environmentID int) (*Environment, error)
	listDeployments  func(projectID int, environment string) ([]Deployment, error)
	searchTags       func(projectID int, name string) ([]Tag, error)
}

var errNotImplemented = errors.New("not implemented")

func (f *fakeAPI) GetProject(ctx context.Context, idOrPath string) (*Project, error) {
	if f.getProject == nil {
		return nil, errNotImplemented
	}
	return f.getProject(idOrPath)
}

func (f *fakeAPI) ListProjects(ctx context.Context) ([]Project, error) {
	if f.listProjects == nil {
		return nil, errNotImplemented
	}
	return f.listProjects()
}

func (f *fakeAPI) ListEnvironments(ctx context.Context, projectID int) ([]Environment, error) {
	if f.listEnvironments == nil {
		return nil, errNotImplemented
	}
	return f.listEnvironments(projectID)
}

func (f *fakeAPI) GetEnvironment(ctx context.Context, projectID, environmentID int) (*Environment, error) {
	if f.getEnvironment == nil {
		return nil, errNotImplemented
	}
	return f.getEnvironment(projectID, environmentID)
}

func (f *fakeAPI) ListDeployments(ctx context.Context, projectID int, environment string) ([]Deployment, error) {
	if f.listDeployments == nil {
		return nil, errNotImplemented
	}
	return f.listDeployments(projectID, environment)
}

func (f *fakeAPI) SearchTags(ctx context.Context, projectID int, name string) ([]Tag, error) {
	if f.searchTags == nil {
		return nil, errNotImplemented
	}
	return f.searchTags(projectID, name)
}
