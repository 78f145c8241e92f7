// Package valkey adapts the Redis driver to valkey-search, whose FT.SEARCH
// accepts TAG/NUMERIC pre-filters but has no SORTBY clause.
package valkey

import (
	"context"
	"fmt"

	"github.com/redis/rueidis"

	"github.com/kailas-cloud/redrelief/internal/db"
	"github.com/kailas-cloud/redrelief/internal/db/redis"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

// Config holds connection parameters for a Valkey store.
type Config = redis.Config

// Store implements db.Store for Valkey with the valkey-search and valkey-json modules.
type Store struct {
	*redis.Store
}

// NewStore creates a Valkey store via rueidis.
func NewStore(cfg Config) (*Store, error) {
	inner, err := redis.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return &Store{Store: inner}, nil
}

// NewStoreForTest creates a Store with the provided rueidis client (test-only).
func NewStoreForTest(c rueidis.Client) *Store {
	return &Store{Store: redis.NewStoreFromClient(c)}
}

// SupportsSortedSearch returns false: valkey-search has no SORTBY.
func (s *Store) SupportsSortedSearch(_ context.Context) bool {
	return false
}

// CreateIndex creates the index without SORTABLE flags, which valkey-search rejects.
func (s *Store) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	stripped := *def
	stripped.Fields = make([]db.IndexField, len(def.Fields))
	for i, f := range def.Fields {
		f.Sortable = false
		stripped.Fields[i] = f
	}
	return s.Store.CreateIndex(ctx, &stripped)
}

// Search runs equality-only queries. Sorted queries are refused before reaching the server.
func (s *Store) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.SortBy != "" {
		return nil, &db.Error{
			Op:  db.OpSearch,
			Err: fmt.Errorf("%w: SORTBY %s", db.ErrQueryUnsupported, q.SortBy),
		}
	}
	return s.Store.Search(ctx, q)
}
