package report

import (
	"context"
	"io"

	"golang.org/x/sync/errgroup"

	"tagtrack/internal/tracker"
)

// Runner produces the CSV report across a set of projects. Concurrency
// bounds the parallel fan-out; 1 (or less) keeps the run fully sequential.
// Regardless of concurrency, output rows follow the input project order.
type Runner struct {
	Tracker     *tracker.Tracker
	Concurrency int
}

// Run inspects every project and writes the report to w. Per-project
// failures have already been degraded to missing data by the tracker, so
// the only errors left are output errors and context cancellation.
func (r *Runner) Run(ctx context.Context, projects []tracker.Project, w io.Writer) error {
	limit := r.Concurrency
	if limit < 1 {
		limit = 1
	}

	// Rows are collected per input index so parallel workers cannot
	// reorder the report.
	rows := make([]*Row, len(projects))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, project := range projects {
		i, project := i, project
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results := r.Tracker.ProductionStatus(ctx, project)
			if len(results) == 0 {
				return nil
			}
			row := BuildRow(project, results)
			rows[i] = &row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	return WriteCSV(w, rows)
}
