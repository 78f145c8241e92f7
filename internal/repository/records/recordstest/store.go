// Package recordstest provides an in-memory records.Store for tests.
package recordstest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kailas-cloud/redrelief/internal/db"
)

// Store keeps JSON documents in memory and evaluates FT.SEARCH-style tag
// filters and numeric sorting against the index definitions it was given.
type Store struct {
	mu      sync.Mutex
	docs    map[string]string
	indexes map[string]*db.IndexDefinition

	// Sorted controls SupportsSortedSearch and whether SortBy queries are accepted.
	Sorted bool
	// Err, when set, is returned by every operation.
	Err error
	// Calls counts operations by name (JSONMGet, Scan, Search, ...).
	Calls map[string]int
}

// New returns an empty store that supports sorted search.
func New() *Store {
	return &Store{
		docs:    map[string]string{},
		indexes: map[string]*db.IndexDefinition{},
		Sorted:  true,
		Calls:   map[string]int{},
	}
}

// record counts op and returns the injected error. Callers hold s.mu.
func (s *Store) record(op string) error {
	s.Calls[op]++
	return s.Err
}

// Seed stores v (marshaled to JSON) at key.
func (s *Store) Seed(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = string(data)
}

// Raw returns the JSON stored at key.
func (s *Store) Raw(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.docs[key]
	return v, ok
}

// CallCount returns the number of calls recorded for op.
func (s *Store) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls[op]
}

// Ping implements db.Pinger.
func (s *Store) Ping(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record("Ping")
}

// JSONSet stores data at key.
func (s *Store) JSONSet(_ context.Context, key, _ string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("JSONSet"); err != nil {
		return err
	}
	s.docs[key] = string(data)
	return nil
}

// JSONGet returns the document at key.
func (s *Store) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("JSONGet"); err != nil {
		return nil, err
	}
	v, ok := s.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return []byte(v), nil
}

// JSONMGet returns documents for keys, nil for missing ones.
func (s *Store) JSONMGet(_ context.Context, keys []string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("JSONMGet"); err != nil {
		return nil, err
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		if v, ok := s.docs[k]; ok {
			out[i] = []byte(v)
		}
	}
	return out, nil
}

// Del removes key.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("Del"); err != nil {
		return err
	}
	delete(s.docs, key)
	return nil
}

// Exists reports whether key is stored.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("Exists"); err != nil {
		return false, err
	}
	_, ok := s.docs[key]
	return ok, nil
}

// Scan returns keys matching a trailing-* pattern, in map order.
func (s *Store) Scan(_ context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("Scan"); err != nil {
		return nil, err
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range s.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// CreateIndex registers def.
func (s *Store) CreateIndex(_ context.Context, def *db.IndexDefinition) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("CreateIndex"); err != nil {
		return err
	}
	if _, ok := s.indexes[def.Name]; ok {
		return db.ErrIndexExists
	}
	s.indexes[def.Name] = def
	return nil
}

// DropIndex removes an index definition.
func (s *Store) DropIndex(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("DropIndex"); err != nil {
		return err
	}
	if _, ok := s.indexes[name]; !ok {
		return db.ErrIndexNotFound
	}
	delete(s.indexes, name)
	return nil
}

// IndexExists reports whether name was created.
func (s *Store) IndexExists(_ context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("IndexExists"); err != nil {
		return false, err
	}
	_, ok := s.indexes[name]
	return ok, nil
}

// SupportsSortedSearch returns s.Sorted.
func (s *Store) SupportsSortedSearch(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Sorted
}

// Search evaluates q against the documents covered by its index.
func (s *Store) Search(_ context.Context, q *db.Query) (*db.SearchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.record("Search"); err != nil {
		return nil, err
	}
	def, ok := s.indexes[q.IndexName]
	if !ok {
		return nil, &db.Error{Op: db.OpSearch, Err: db.ErrIndexNotFound}
	}
	if q.SortBy != "" && !s.Sorted {
		return nil, &db.Error{Op: db.OpSearch, Err: db.ErrQueryUnsupported}
	}

	type hit struct {
		key  string
		raw  string
		sort float64
	}
	var hits []hit
	for key, raw := range s.docs {
		if !coveredBy(def, key) {
			continue
		}
		var doc map[string]any
		if err := json.Unmarshal([]byte(raw), &doc); err != nil {
			continue
		}
		match := true
		for _, f := range q.Filters {
			if !tagMatches(def, doc, f) {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		h := hit{key: key, raw: raw}
		if q.SortBy != "" {
			if n, ok := doc[q.SortBy].(float64); ok {
				h.sort = n
			}
		}
		hits = append(hits, h)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].key < hits[j].key })
	if q.SortBy != "" {
		sort.SliceStable(hits, func(i, j int) bool {
			if q.SortDesc {
				return hits[i].sort > hits[j].sort
			}
			return hits[i].sort < hits[j].sort
		})
	}

	res := &db.SearchResult{Total: len(hits)}
	limit := q.Limit
	if limit <= 0 {
		limit = db.DefaultQueryLimit
	}
	hits = hits[min(q.Offset, len(hits)):]
	hits = hits[:min(limit, len(hits))]
	for _, h := range hits {
		res.Entries = append(res.Entries, db.SearchEntry{
			Key:    h.key,
			Fields: map[string]string{"$": h.raw},
		})
	}
	return res, nil
}

func coveredBy(def *db.IndexDefinition, key string) bool {
	for _, p := range def.Prefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

func tagMatches(def *db.IndexDefinition, doc map[string]any, f db.TagFilter) bool {
	for i := range def.Fields {
		field := &def.Fields[i]
		if field.FieldAlias() != f.Field {
			continue
		}
		attr := strings.TrimSuffix(strings.TrimPrefix(field.Name, "$."), "[*]")
		switch v := doc[attr].(type) {
		case string:
			return v == f.Value
		case []any:
			for _, e := range v {
				if fmt.Sprint(e) == f.Value {
					return true
				}
			}
		}
		return false
	}
	return false
}
