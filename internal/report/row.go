// Package report formats tracker results: CSV rows for the multi-project
// report and human-readable status lines for the single-project check.
package report

import (
	"time"

	"tagtrack/internal/tracker"
)

// Cell is one matched production environment within a row: its name, when
// the latest deployment to it happened, and when the deployed tag's commit
// was created. Nil timestamps render as empty fields, never as a marker or
// an omitted column.
type Cell struct {
	Environment  string
	DeployedAt   *time.Time
	TagCreatedAt *time.Time
}

// Row is one report line: group, project, then one cell per matched
// environment. Rows therefore vary in width; only the first two columns are
// fixed.
type Row struct {
	Group   string
	Project string
	Cells   []Cell
}

// Header returns the CSV header: the two fixed columns followed by one
// triple. It is written even when no rows follow.
func Header() []string {
	return []string{"group", "project", "environment", "deployed_at", "tag_created_at"}
}

// Fields flattens the row into 2 + 3n CSV fields.
func (r Row) Fields() []string {
	fields := make([]string, 0, 2+3*len(r.Cells))
	fields = append(fields, r.Group, r.Project)
	for _, cell := range r.Cells {
		fields = append(fields, cell.Environment, formatTime(cell.DeployedAt), formatTime(cell.TagCreatedAt))
	}
	return fields
}

// BuildRow assembles a project's row from its environment results. Callers
// must not invoke it with an empty result set; projects without matched
// environments get no row at all.
func BuildRow(project tracker.Project, results []tracker.EnvironmentResult) Row {
	row := Row{
		Group:   project.Namespace,
		Project: project.Name,
		Cells:   make([]Cell, 0, len(results)),
	}
	for _, res := range results {
		cell := Cell{Environment: res.Environment.Name}
		if res.Deployment != nil {
			cell.DeployedAt = &res.Deployment.CreatedAt
		}
		cell.TagCreatedAt = res.TagCreated
		row.Cells = append(row.Cells, cell)
	}
	return row
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
