package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// IndexChecker reports whether a collection's search index exists.
type IndexChecker interface {
	IndexReady(ctx context.Context) (bool, error)
}
