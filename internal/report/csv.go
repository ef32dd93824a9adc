package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV emits the header followed by the non-nil rows, in order. Nil
// entries stand for projects that matched no production environment and
// are skipped entirely.
func WriteCSV(w io.Writer, rows []*Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header()); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		if row == nil {
			continue
		}
		if err := cw.Write(row.Fields()); err != nil {
			return fmt.Errorf("writing CSV row for project %q: %w", row.Project, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
