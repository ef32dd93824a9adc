package report

import (
	"fmt"
	"io"
	"time"

	"tagtrack/internal/tracker"
)

// WriteStatus renders the single-project status result as human-readable
// lines. When the deployment set is empty nothing else is reported, even if
// a target tag was requested. A tag that was not found is a normal outcome;
// the caller still exits zero.
func WriteStatus(w io.Writer, res *tracker.StatusResult) {
	latest := res.Latest()
	if latest == nil {
		fmt.Fprintln(w, "No deployments found for the production environment.")
		return
	}

	fmt.Fprintf(w, "Latest tag deployed to production: %s (deployed at %s)\n",
		latest.Ref, latest.CreatedAt.Format(time.RFC3339))

	if res.Target == "" {
		return
	}
	if !res.TargetValid {
		fmt.Fprintf(w, "Warning: the provided tag '%s' does not follow the expected format vX.Y.Z\n", res.Target)
	}
	if res.Found != nil {
		fmt.Fprintf(w, "Tag %s was deployed to production at %s\n",
			res.Target, res.Found.CreatedAt.Format(time.RFC3339))
	} else {
		fmt.Fprintf(w, "Tag %s has not been deployed to production yet.\n", res.Target)
	}
}
