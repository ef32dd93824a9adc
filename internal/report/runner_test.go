package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tagtrack/internal/tracker"
)

// reportAPI serves a fixed fleet of projects. Odd project IDs have a
// production environment; even IDs only have staging and produce no row.
// Lookups for lower project IDs are slowed down so parallel runs would
// reorder rows if ordering were not enforced.
type reportAPI struct {
	projects int
}

func (a *reportAPI) GetProject(ctx context.Context, idOrPath string) (*tracker.Project, error) {
	return nil, errors.New("not used")
}

func (a *reportAPI) ListProjects(ctx context.Context) ([]tracker.Project, error) {
	projects := make([]tracker.Project, 0, a.projects)
	for i := 1; i <= a.projects; i++ {
		projects = append(projects, tracker.Project{
			ID:        i,
			Name:      fmt.Sprintf("project-%d", i),
			Namespace: "group",
		})
	}
	return projects, nil
}

func (a *reportAPI) ListEnvironments(ctx context.Context, projectID int) ([]tracker.Environment, error) {
	time.Sleep(time.Duration(a.projects-projectID) * 5 * time.Millisecond)
	if projectID%2 == 0 {
		return []tracker.Environment{{ID: projectID * 10, Name: "staging"}}, nil
	}
	return []tracker.Environment{{ID: projectID * 10, Name: "production"}}, nil
}

func (a *reportAPI) GetEnvironment(ctx context.Context, projectID, environmentID int) (*tracker.Environment, error) {
	deployed := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(projectID) * time.Hour)
	return &tracker.Environment{
		ID:   environmentID,
		Name: "production",
		LastDeployment: &tracker.Deployment{
			ID:        projectID,
			Ref:       fmt.Sprintf("v1.%d.0", projectID),
			CreatedAt: deployed,
		},
	}, nil
}

func (a *reportAPI) ListDeployments(ctx context.Context, projectID int, environment string) ([]tracker.Deployment, error) {
	return nil, errors.New("not used")
}

func (a *reportAPI) SearchTags(ctx context.Context, projectID int, name string) ([]tracker.Tag, error) {
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(projectID) * time.Hour)
	return []tracker.Tag{{Name: name, CommitCreatedAt: &created}}, nil
}

func runReport(t *testing.T, concurrency int) []string {
	t.Helper()

	api := &reportAPI{projects: 7}
	tr := tracker.New(api, slog.New(slog.NewTextHandler(io.Discard, nil)), tracker.DefaultPatterns())

	projects, err := tr.Projects(context.Background(), "")
	if err != nil {
		t.Fatalf("Projects() error = %v", err)
	}

	var buf bytes.Buffer
	runner := &Runner{Tracker: tr, Concurrency: concurrency}
	if err := runner.Run(context.Background(), projects, &buf); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRunner_Sequential(t *testing.T) {
	lines := runReport(t, 1)

	// Header plus one row per odd-ID project (1, 3, 5, 7).
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[0] != strings.Join(Header(), ",") {
		t.Errorf("header = %q", lines[0])
	}

	wantProjects := []string{"project-1", "project-3", "project-5", "project-7"}
	for i, want := range wantProjects {
		if !strings.HasPrefix(lines[i+1], "group,"+want+",production,") {
			t.Errorf("row %d = %q, want project %s", i+1, lines[i+1], want)
		}
	}
}

func TestRunner_ParallelPreservesOrder(t *testing.T) {
	sequential := runReport(t, 1)
	parallel := runReport(t, 4)

	if len(parallel) != len(sequential) {
		t.Fatalf("parallel run produced %d lines, sequential %d", len(parallel), len(sequential))
	}
	for i := range sequential {
		if parallel[i] != sequential[i] {
			t.Errorf("line %d differs:\nparallel:   %q\nsequential: %q", i, parallel[i], sequential[i])
		}
	}
}

func TestRunner_FileOutputMatchesStdout(t *testing.T) {
	api := &reportAPI{projects: 5}
	tr := tracker.New(api, slog.New(slog.NewTextHandler(io.Discard, nil)), tracker.DefaultPatterns())

	projects, err := tr.Projects(context.Background(), "")
	if err != nil {
		t.Fatalf("Projects() error = %v", err)
	}

	runner := &Runner{Tracker: tr, Concurrency: 2}

	var buf bytes.Buffer
	if err := runner.Run(context.Background(), projects, &buf); err != nil {
		t.Fatalf("Run() to buffer error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "report.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create output file: %v", err)
	}
	if err := runner.Run(context.Background(), projects, f); err != nil {
		t.Fatalf("Run() to file error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Failed to close output file: %v", err)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if string(written) != buf.String() {
		t.Errorf("file content differs from stdout rendering:\nfile:   %q\nstdout: %q", written, buf.String())
	}
}

func TestRunner_Cancelled(t *testing.T) {
	api := &reportAPI{projects: 3}
	tr := tracker.New(api, slog.New(slog.NewTextHandler(io.Discard, nil)), tracker.DefaultPatterns())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	projects := []tracker.Project{{ID: 1, Name: "project-1", Namespace: "group"}}
	runner := &Runner{Tracker: tr, Concurrency: 2}
	if err := runner.Run(ctx, projects, &bytes.Buffer{}); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}
