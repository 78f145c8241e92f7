// Package records stores typed JSON documents under prefix:collection:id keys.
package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/kailas-cloud/redrelief/internal/db"
	"github.com/kailas-cloud/redrelief/internal/domain"
)

// documentField is the FT.SEARCH RETURN field holding the whole JSON document.
const documentField = "$"

// fetchBatch caps keys per JSON.GET pipeline.
const fetchBatch = 500

// Store is the consumer interface for JSON collections (ISP).
type Store interface {
	JSONSet(ctx context.Context, key, path string, data []byte) error
	JSONGet(ctx context.Context, key string, paths ...string) ([]byte, error)
	JSONMGet(ctx context.Context, keys []string) ([][]byte, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Search(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SupportsSortedSearch(ctx context.Context) bool
}

// Collection is a typed view over one JSON document collection.
type Collection[D any] struct {
	store  Store
	prefix string
	name   string
}

// NewCollection creates a collection of D documents.
func NewCollection[D any](s Store, prefix, name string) *Collection[D] {
	return &Collection[D]{store: s, prefix: prefix, name: name}
}

// Name returns the collection name.
func (c *Collection[D]) Name() string { return c.name }

// Key returns the storage key for id.
func (c *Collection[D]) Key(id string) string {
	return c.keyPrefix() + id
}

// IndexName returns the FT index name of the collection.
func (c *Collection[D]) IndexName() string {
	return c.prefix + ":" + c.name + ":idx"
}

func (c *Collection[D]) keyPrefix() string {
	return c.prefix + ":" + c.name + ":"
}

// Put writes the whole document at id.
func (c *Collection[D]) Put(ctx context.Context, id string, doc *D) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", c.name, err)
	}
	key := c.Key(id)
	if err := c.store.JSONSet(ctx, key, "$", data); err != nil {
		return fmt.Errorf("json.set %s: %w", key, err)
	}
	return nil
}

// Get returns the document at id or domain.ErrNotFound.
func (c *Collection[D]) Get(ctx context.Context, id string) (D, error) {
	var doc D
	key := c.Key(id)
	raw, err := c.store.JSONGet(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return doc, domain.ErrNotFound
		}
		return doc, fmt.Errorf("json.get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("unmarshal %s: %w", key, err)
	}
	return doc, nil
}

// GetMany fetches ids in one pipeline and returns the present documents in id order.
func (c *Collection[D]) GetMany(ctx context.Context, ids []string) ([]D, error) {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.Key(id)
	}
	return c.fetch(ctx, keys)
}

// Exists reports whether a document is stored at id.
func (c *Collection[D]) Exists(ctx context.Context, id string) (bool, error) {
	key := c.Key(id)
	ok, err := c.store.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", key, err)
	}
	return ok, nil
}

// Delete removes the document at id or returns domain.ErrNotFound.
func (c *Collection[D]) Delete(ctx context.Context, id string) error {
	ok, err := c.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	key := c.Key(id)
	if err := c.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// All returns every document of the collection, ordered by key.
func (c *Collection[D]) All(ctx context.Context) ([]D, error) {
	keys, err := c.store.Scan(ctx, c.keyPrefix()+"*")
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", c.name, err)
	}
	// SCAN order is unspecified and a key may be returned more than once.
	sort.Strings(keys)
	keys = slices.Compact(keys)
	return c.fetch(ctx, keys)
}

func (c *Collection[D]) fetch(ctx context.Context, keys []string) ([]D, error) {
	out := make([]D, 0, len(keys))
	for start := 0; start < len(keys); start += fetchBatch {
		end := min(start+fetchBatch, len(keys))
		raws, err := c.store.JSONMGet(ctx, keys[start:end])
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", c.name, err)
		}
		for i, raw := range raws {
			if raw == nil {
				continue
			}
			var doc D
			if err := json.Unmarshal(raw, &doc); err != nil {
				return nil, fmt.Errorf("unmarshal %s: %w", keys[start+i], err)
			}
			out = append(out, doc)
		}
	}
	return out, nil
}

// queryPageSize is the LIMIT of each FT.SEARCH page.
var queryPageSize = db.DefaultQueryLimit

// Query runs an equality-filtered, optionally sorted index search, paging until
// every hit is read. A missing index or a query form the backend rejects yields
// domain.ErrIndexUnsupported.
func (c *Collection[D]) Query(ctx context.Context, filters []db.TagFilter, sortBy string, desc bool) ([]D, error) {
	var out []D
	for offset := 0; ; {
		res, err := c.store.Search(ctx, &db.Query{
			IndexName: c.IndexName(),
			Filters:   filters,
			SortBy:    sortBy,
			SortDesc:  desc,
			Offset:    offset,
			Limit:     queryPageSize,
		})
		if err != nil {
			if errors.Is(err, db.ErrIndexNotFound) || errors.Is(err, db.ErrQueryUnsupported) {
				return nil, fmt.Errorf("query %s: %w: %w", c.name, domain.ErrIndexUnsupported, err)
			}
			return nil, fmt.Errorf("query %s: %w", c.name, err)
		}

		if out == nil {
			out = make([]D, 0, max(res.Total, len(res.Entries)))
		}
		for _, e := range res.Entries {
			raw, ok := e.Fields[documentField]
			if !ok || raw == "" {
				continue
			}
			var doc D
			if err := json.Unmarshal([]byte(normalizeDocument(raw)), &doc); err != nil {
				return nil, fmt.Errorf("unmarshal %s: %w", e.Key, err)
			}
			out = append(out, doc)
		}

		offset += len(res.Entries)
		if len(res.Entries) == 0 || offset >= res.Total {
			return out, nil
		}
	}
}

// SupportsSortedQueries reports whether Query may carry a sort clause on this backend.
func (c *Collection[D]) SupportsSortedQueries(ctx context.Context) bool {
	return c.store.SupportsSortedSearch(ctx)
}

// EnsureIndex creates def unless an index of that name already exists.
func (c *Collection[D]) EnsureIndex(ctx context.Context, def *db.IndexDefinition) error {
	if err := c.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index %s: %w", def.Name, err)
	}
	return nil
}

// IndexReady reports whether the collection index exists.
func (c *Collection[D]) IndexReady(ctx context.Context) (bool, error) {
	ok, err := c.store.IndexExists(ctx, c.IndexName())
	if err != nil {
		return false, fmt.Errorf("index info %s: %w", c.IndexName(), err)
	}
	return ok, nil
}

// Index starts an index definition scoped to this collection's keys.
func (c *Collection[D]) Index() *db.IndexBuilder {
	return db.NewIndex(c.IndexName()).Prefix(c.keyPrefix())
}

// normalizeDocument unwraps the single-element array some JSONPath replies use.
func normalizeDocument(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		inner := strings.TrimSpace(s[1 : len(s)-1])
		if strings.HasPrefix(inner, "{") {
			return inner
		}
	}
	return s
}
