package records

import (
	"context"
	"errors"

	"github.com/kailas-cloud/redrelief/internal/db"
	"github.com/kailas-cloud/redrelief/internal/domain"
)

// Find returns the documents matching every equality filter.
// It uses the collection index when it can and falls back to a scan with match
// when the index is missing, so callers always get the same set.
func (c *Collection[D]) Find(ctx context.Context, filters []db.TagFilter, match func(*D) bool) ([]D, error) {
	if len(filters) > 0 {
		docs, err := c.Query(ctx, filters, "", false)
		if err == nil {
			return docs, nil
		}
		if !errors.Is(err, domain.ErrIndexUnsupported) {
			return nil, err
		}
	}

	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	if match == nil {
		return all, nil
	}
	out := all[:0]
	for i := range all {
		if match(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// Equal builds tag filters from field/value pairs, skipping empty values.
func Equal(pairs ...string) []db.TagFilter {
	var out []db.TagFilter
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] != "" {
			out = append(out, db.TagFilter{Field: pairs[i], Value: pairs[i+1]})
		}
	}
	return out
}
