package tracker

import (
	"context"
	"sort"
)

// Locator retrieves the set of deployments to inspect for an environment.
// The returned slice is ordered newest first; index 0 is the latest
// deployment. An empty slice means the environment has no deployments.
type Locator interface {
	Locate(ctx context.Context, projectID int, env Environment) ([]Deployment, error)
}

// HistoryLocator fetches the full deployment history of an environment and
// sorts it newest first. It is the only locator that can answer "has tag X
// ever been deployed", since superseded deployments remain visible.
type HistoryLocator struct {
	API API
}

func (l HistoryLocator) Locate(ctx context.Context, projectID int, env Environment) ([]Deployment, error) {
	deployments, err := l.API.ListDeployments(ctx, projectID, env.Name)
	if err != nil {
		return nil, err
	}
	SortNewestFirst(deployments)
	return deployments, nil
}

// LatestOnlyLocator resolves just the environment's last-deployment pointer,
// avoiding a full history transfer. It returns at most one record, so a
// tag check against its result can only confirm whether the latest
// deployment matches; older tags report as not deployed even when they were
// deployed and later superseded. Callers choosing this locator accept that.
type LatestOnlyLocator struct {
	API API
}

func (l LatestOnlyLocator) Locate(ctx context.Context, projectID int, env Environment) ([]Deployment, error) {
	fetched, err := l.API.GetEnvironment(ctx, projectID, env.ID)
	if err != nil {
		return nil, err
	}
	if fetched == nil || fetched.LastDeployment == nil {
		return nil, nil
	}
	return []Deployment{*fetched.LastDeployment}, nil
}

// SortNewestFirst orders deployments descending by creation time, in place.
// The sort is stable: deployments with equal timestamps keep their original
// relative order.
func SortNewestFirst(deployments []Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})
}

// FindRef returns the first deployment whose ref equals ref exactly, or nil
// when the ref never appears in the set.
func FindRef(deployments []Deployment, ref string) *Deployment {
	for i := range deployments {
		if deployments[i].Ref == ref {
			return &deployments[i]
		}
	}
	return nil
}
