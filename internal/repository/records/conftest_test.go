package records

import (
	"context"
	"strings"

	"github.com/kailas-cloud/redrelief/internal/db"
)

// mockStore is an in-memory JSON keyspace with hooks for failures.
type mockStore struct {
	docs          map[string]string
	searchFn      func(ctx context.Context, q *db.Query) (*db.SearchResult, error)
	createIndexFn func(ctx context.Context, def *db.IndexDefinition) error
	scanErr       error
	scanRepeats   bool
	mgetErr       error
	sorted        bool
	mgetCalls     int
	lastQuery     *db.Query
}

func newMockStore() *mockStore {
	return &mockStore{docs: map[string]string{}}
}

func (m *mockStore) JSONSet(_ context.Context, key, _ string, data []byte) error {
	m.docs[key] = string(data)
	return nil
}

func (m *mockStore) JSONGet(_ context.Context, key string, _ ...string) ([]byte, error) {
	v, ok := m.docs[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return []byte(v), nil
}

func (m *mockStore) JSONMGet(_ context.Context, keys []string) ([][]byte, error) {
	m.mgetCalls++
	if m.mgetErr != nil {
		return nil, m.mgetErr
	}
	out := make([][]byte, len(keys))
	for i, k := range keys {
		if v, ok := m.docs[k]; ok {
			out[i] = []byte(v)
		}
	}
	return out, nil
}

func (m *mockStore) Del(_ context.Context, key string) error {
	delete(m.docs, key)
	return nil
}

func (m *mockStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := m.docs[key]
	return ok, nil
}

// Scan returns matching keys in reverse-sorted order to exercise caller-side ordering.
func (m *mockStore) Scan(_ context.Context, pattern string) ([]string, error) {
	if m.scanErr != nil {
		return nil, m.scanErr
	}
	prefix := strings.TrimSuffix(pattern, "*")
	var keys []string
	for k := range m.docs {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			if keys[j] > keys[i] {
				keys[i], keys[j] = keys[j], keys[i]
			}
		}
	}
	if m.scanRepeats {
		keys = append(keys, keys...)
	}
	return keys, nil
}

func (m *mockStore) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	m.lastQuery = q
	if m.searchFn != nil {
		return m.searchFn(ctx, q)
	}
	return &db.SearchResult{}, nil
}

func (m *mockStore) CreateIndex(ctx context.Context, def *db.IndexDefinition) error {
	if m.createIndexFn != nil {
		return m.createIndexFn(ctx, def)
	}
	return nil
}

func (m *mockStore) IndexExists(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func (m *mockStore) SupportsSortedSearch(_ context.Context) bool {
	return m.sorted
}

type testDoc struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
}
