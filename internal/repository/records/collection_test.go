package records

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/redrelief/internal/db"
	"github.com/kailas-cloud/redrelief/internal/domain"
)

func newTestCollection() (*Collection[testDoc], *mockStore) {
	ms := newMockStore()
	return NewCollection[testDoc](ms, "rr", "things"), ms
}

func TestKeysAndIndexName(t *testing.T) {
	c, _ := newTestCollection()
	if c.Key("a1") != "rr:things:a1" {
		t.Errorf("Key = %q", c.Key("a1"))
	}
	if c.IndexName() != "rr:things:idx" {
		t.Errorf("IndexName = %q", c.IndexName())
	}
	def := c.Index().Tag("value").MustBuild()
	if def.Prefixes[0] != "rr:things:" {
		t.Errorf("index prefix = %q", def.Prefixes[0])
	}
}

func TestPutGet(t *testing.T) {
	c, _ := newTestCollection()
	ctx := context.Background()
	if err := c.Put(ctx, "a", &testDoc{ID: "a", Value: 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := c.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Value != 3 {
		t.Errorf("Value = %d", got.Value)
	}
}

func TestGet_NotFound(t *testing.T) {
	c, _ := newTestCollection()
	if _, err := c.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	c, ms := newTestCollection()
	ctx := context.Background()
	_ = c.Put(ctx, "a", &testDoc{ID: "a"})
	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(ms.docs) != 0 {
		t.Error("document not removed")
	}
	if err := c.Delete(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete err = %v", err)
	}
}

func TestAll_SortedByKey(t *testing.T) {
	c, ms := newTestCollection()
	ctx := context.Background()
	for _, id := range []string{"b", "a", "c"} {
		_ = c.Put(ctx, id, &testDoc{ID: id})
	}
	ms.docs["rr:other:z"] = `{"id":"z"}`

	got, err := c.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 3 || got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("All = %+v", got)
	}
}

func TestAll_RepeatedScanKeys(t *testing.T) {
	c, ms := newTestCollection()
	ms.scanRepeats = true
	ctx := context.Background()
	_ = c.Put(ctx, "a", &testDoc{ID: "a", Value: 4})
	_ = c.Put(ctx, "b", &testDoc{ID: "b", Value: 1})

	got, err := c.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
		t.Errorf("All = %+v, want each document once", got)
	}
}

func TestAll_Batches(t *testing.T) {
	c, ms := newTestCollection()
	ctx := context.Background()
	for i := 0; i < fetchBatch+1; i++ {
		id := fmt.Sprintf("%04d", i)
		_ = c.Put(ctx, id, &testDoc{ID: id})
	}
	got, err := c.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(got) != fetchBatch+1 {
		t.Errorf("len = %d", len(got))
	}
	if ms.mgetCalls != 2 {
		t.Errorf("mget calls = %d, want 2", ms.mgetCalls)
	}
}

func TestAll_ScanError(t *testing.T) {
	c, ms := newTestCollection()
	ms.scanErr = errors.New("conn reset")
	if _, err := c.All(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestGetMany_SkipsAbsent(t *testing.T) {
	c, _ := newTestCollection()
	ctx := context.Background()
	_ = c.Put(ctx, "a", &testDoc{ID: "a"})
	_ = c.Put(ctx, "c", &testDoc{ID: "c"})

	got, err := c.GetMany(ctx, []string{"c", "missing", "a"})
	if err != nil {
		t.Fatalf("GetMany: %v", err)
	}
	if len(got) != 2 || got[0].ID != "c" || got[1].ID != "a" {
		t.Errorf("GetMany = %+v", got)
	}
}

func TestQuery_Success(t *testing.T) {
	c, ms := newTestCollection()
	ms.searchFn = func(_ context.Context, q *db.Query) (*db.SearchResult, error) {
		return &db.SearchResult{Total: 2, Entries: []db.SearchEntry{
			{Key: "rr:things:x", Fields: map[string]string{"$": `{"id":"x","value":1}`}},
			{Key: "rr:things:y", Fields: map[string]string{"$": `[{"id":"y","value":2}]`}},
			{Key: "rr:things:z", Fields: map[string]string{}},
		}}, nil
	}

	got, err := c.Query(context.Background(),
		[]db.TagFilter{{Field: "value", Value: "1"}}, "created_ts", true)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 2 || got[0].ID != "x" || got[1].ID != "y" {
		t.Errorf("Query = %+v", got)
	}
	if ms.lastQuery.IndexName != "rr:things:idx" || ms.lastQuery.SortBy != "created_ts" || !ms.lastQuery.SortDesc {
		t.Errorf("query = %+v", ms.lastQuery)
	}
}

func TestQuery_PagesUntilTotal(t *testing.T) {
	prev := queryPageSize
	queryPageSize = 2
	t.Cleanup(func() { queryPageSize = prev })

	all := []db.SearchEntry{
		{Key: "rr:things:a", Fields: map[string]string{"$": `{"id":"a"}`}},
		{Key: "rr:things:b", Fields: map[string]string{"$": `{"id":"b"}`}},
		{Key: "rr:things:c", Fields: map[string]string{"$": `{"id":"c"}`}},
		{Key: "rr:things:d", Fields: map[string]string{"$": `{"id":"d"}`}},
		{Key: "rr:things:e", Fields: map[string]string{"$": `{"id":"e"}`}},
	}
	var offsets []int
	c, ms := newTestCollection()
	ms.searchFn = func(_ context.Context, q *db.Query) (*db.SearchResult, error) {
		offsets = append(offsets, q.Offset)
		if q.Limit != 2 {
			t.Errorf("limit = %d, want 2", q.Limit)
		}
		end := min(q.Offset+q.Limit, len(all))
		return &db.SearchResult{Total: len(all), Entries: all[q.Offset:end]}, nil
	}

	got, err := c.Query(context.Background(), nil, "created_ts", true)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 5 || got[0].ID != "a" || got[4].ID != "e" {
		t.Errorf("Query = %+v", got)
	}
	if fmt.Sprint(offsets) != "[0 2 4]" {
		t.Errorf("offsets = %v", offsets)
	}
}

func TestQuery_UnsupportedIsTyped(t *testing.T) {
	for _, cause := range []error{db.ErrIndexNotFound, db.ErrQueryUnsupported} {
		c, ms := newTestCollection()
		ms.searchFn = func(context.Context, *db.Query) (*db.SearchResult, error) {
			return nil, &db.Error{Op: db.OpSearch, Err: cause}
		}
		_, err := c.Query(context.Background(), nil, "created_ts", true)
		if !errors.Is(err, domain.ErrIndexUnsupported) {
			t.Errorf("cause %v: err = %v, want ErrIndexUnsupported", cause, err)
		}
	}
}

func TestQuery_OtherErrorNotTyped(t *testing.T) {
	c, ms := newTestCollection()
	ms.searchFn = func(context.Context, *db.Query) (*db.SearchResult, error) {
		return nil, errors.New("connection refused")
	}
	_, err := c.Query(context.Background(), nil, "", false)
	if err == nil || errors.Is(err, domain.ErrIndexUnsupported) {
		t.Errorf("err = %v, want plain failure", err)
	}
}

func TestEnsureIndex_IgnoresExisting(t *testing.T) {
	c, ms := newTestCollection()
	ms.createIndexFn = func(context.Context, *db.IndexDefinition) error { return db.ErrIndexExists }
	if err := c.EnsureIndex(context.Background(), c.Index().Tag("value").MustBuild()); err != nil {
		t.Errorf("EnsureIndex: %v", err)
	}
	ms.createIndexFn = func(context.Context, *db.IndexDefinition) error { return errors.New("boom") }
	if err := c.EnsureIndex(context.Background(), c.Index().Tag("value").MustBuild()); err == nil {
		t.Error("expected error")
	}
}
