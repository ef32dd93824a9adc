// Package gitlab adapts the GitLab REST API to the tracker's API interface.
//
// All list calls exhaust pagination before returning, and every request
// passes through a client-side token-bucket rate limiter so multi-project
// report runs stay within instance limits. Authentication is verified once
// at construction; an invalid token fails the whole run there.
package gitlab

import (
	"context"
	"fmt"
	"log/slog"

	gl "gitlab.com/gitlab-org/api/client-go"
	"golang.org/x/time/rate"

	"tagtrack/internal/tracker"
)

// perPage is the page size for all list requests.
const perPage = 100

// Client is an authenticated, rate-limited GitLab API client implementing
// tracker.API.
type Client struct {
	gl      *gl.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewClient connects to the GitLab instance at baseURL with the given
// personal access token and verifies the credentials with a current-user
// lookup. requestsPerSecond bounds outgoing API calls; zero or negative
// disables the limit.
func NewClient(baseURL, token string, requestsPerSecond float64, logger *slog.Logger) (*Client, error) {
	api, err := gl.NewClient(token, gl.WithBaseURL(baseURL))
	if err != nil {
		return nil, fmt.Errorf("creating GitLab client for %s: %w", baseURL, err)
	}

	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		// Burst of one request per token keeps calls evenly spaced.
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
	}

	c := &Client{
		gl:      api,
		limiter: limiter,
		logger:  logger,
	}

	user, _, err := api.Users.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("authenticating against %s: %w", baseURL, err)
	}
	logger.Info("authenticated", "url", baseURL, "user", user.Username)

	return c, nil
}

// wait blocks until the rate limiter admits the next request.
func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// GetProject resolves a project by numeric ID or full path.
func (c *Client) GetProject(ctx context.Context, idOrPath string) (*tracker.Project, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	project, _, err := c.gl.Projects.GetProject(idOrPath, nil, gl.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("retrieving project %q: %w", idOrPath, err)
	}
	converted := convertProject(project)
	return &converted, nil
}

// ListProjects returns every project the token is a member of.
func (c *Client) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	opt := &gl.ListProjectsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
		Membership:  gl.Ptr(true),
	}

	var projects []tracker.Project
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, resp, err := c.gl.Projects.ListProjects(opt, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("listing projects: %w", err)
		}
		for _, p := range page {
			projects = append(projects, convertProject(p))
		}
		if resp.NextPage == 0 {
			return projects, nil
		}
		opt.Page = resp.NextPage
	}
}

// ListEnvironments returns all environments of a project.
func (c *Client) ListEnvironments(ctx context.Context, projectID int) ([]tracker.Environment, error) {
	opt := &gl.ListEnvironmentsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
	}

	var envs []tracker.Environment
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, resp, err := c.gl.Environments.ListEnvironments(projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("listing environments for project %d: %w", projectID, err)
		}
		for _, env := range page {
			envs = append(envs, convertEnvironment(env))
		}
		if resp.NextPage == 0 {
			return envs, nil
		}
		opt.Page = resp.NextPage
	}
}

// GetEnvironment fetches one environment including its last-deployment
// pointer.
func (c *Client) GetEnvironment(ctx context.Context, projectID, environmentID int) (*tracker.Environment, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	env, _, err := c.gl.Environments.GetEnvironment(projectID, environmentID, gl.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("retrieving environment %d of project %d: %w", environmentID, projectID, err)
	}
	converted := convertEnvironment(env)
	return &converted, nil
}

// ListDeployments returns the full deployment history of the named
// environment.
func (c *Client) ListDeployments(ctx context.Context, projectID int, environment string) ([]tracker.Deployment, error) {
	opt := &gl.ListProjectDeploymentsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
		Environment: gl.Ptr(environment),
	}

	var deployments []tracker.Deployment
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, resp, err := c.gl.Deployments.ListProjectDeployments(projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("listing deployments for environment %q of project %d: %w", environment, projectID, err)
		}
		for _, d := range page {
			deployments = append(deployments, convertDeployment(d))
		}
		if resp.NextPage == 0 {
			return deployments, nil
		}
		opt.Page = resp.NextPage
	}
}

// SearchTags returns the project's tags matching the server-side name
// search.
func (c *Client) SearchTags(ctx context.Context, projectID int, name string) ([]tracker.Tag, error) {
	opt := &gl.ListTagsOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
		Search:      gl.Ptr(name),
	}

	var tags []tracker.Tag
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, resp, err := c.gl.Tags.ListTags(projectID, opt, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("searching tags of project %d for %q: %w", projectID, name, err)
		}
		for _, t := range page {
			tags = append(tags, convertTag(t))
		}
		if resp.NextPage == 0 {
			return tags, nil
		}
		opt.Page = resp.NextPage
	}
}
