package tracker

import (
	"context"
	"time"
)

// CorrelateTag resolves the creation time of the commit behind the named
// tag. The name is taken verbatim from a deployment ref; nothing verifies
// that it is a tag rather than a branch. The tag list is narrowed with a
// server-side name search, then matched exactly client-side because the
// server search may be fuzzy.
//
// Returns nil when no tag matches exactly or the tag carries no commit
// timestamp; that is a normal outcome, not an error.
func CorrelateTag(ctx context.Context, api API, projectID int, name string) (*time.Time, error) {
	tags, err := api.SearchTags(ctx, projectID, name)
	if err != nil {
		return nil, err
	}
	for _, tag := range tags {
		if tag.Name == name {
			return tag.CommitCreatedAt, nil
		}
	}
	return nil, nil
}
