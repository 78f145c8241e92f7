package bank

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// Collection is the storage name of blood banks.
const Collection = "bloodBanks"

// Repo implements usecase/bank.Repository and the bank side of search.
type Repo struct {
	col *records.Collection[bankDoc]
}

// New creates a bank repository.
func New(s records.Store, prefix string) *Repo {
	return &Repo{col: records.NewCollection[bankDoc](s, prefix, Collection)}
}

// Create stores b under a fresh ID and returns the stored bank.
func (r *Repo) Create(ctx context.Context, b dombank.Bank) (dombank.Bank, error) {
	b.ID = uuid.NewString()
	doc := toDoc(&b)
	if err := r.col.Put(ctx, b.ID, &doc); err != nil {
		return dombank.Bank{}, err
	}
	return b, nil
}

// Get returns a bank by ID.
func (r *Repo) Get(ctx context.Context, id string) (dombank.Bank, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		return dombank.Bank{}, err
	}
	doc.ID = id
	return fromDoc(&doc), nil
}

// GetMany returns the banks that exist among ids, in ids order. Absent IDs are skipped.
func (r *Repo) GetMany(ctx context.Context, ids []string) ([]dombank.Bank, error) {
	docs, err := r.col.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// Update replaces a stored bank.
func (r *Repo) Update(ctx context.Context, b dombank.Bank) error {
	doc := toDoc(&b)
	return r.col.Put(ctx, b.ID, &doc)
}

// Delete removes a bank.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

// All returns every bank.
func (r *Repo) All(ctx context.Context) ([]dombank.Bank, error) {
	docs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// ByCity returns the banks whose city equals city exactly.
func (r *Repo) ByCity(ctx context.Context, city string) ([]dombank.Bank, error) {
	return r.List(ctx, dombank.Filter{City: city})
}

// List returns banks matching f. Approved is always checked in memory.
func (r *Repo) List(ctx context.Context, f dombank.Filter) ([]dombank.Bank, error) {
	match := func(d *bankDoc) bool {
		b := fromDoc(d)
		return f.Matches(&b)
	}
	docs, err := r.col.Find(ctx, records.Equal("city", f.City, "status", f.Status), match)
	if err != nil {
		return nil, err
	}
	out := make([]dombank.Bank, 0, len(docs))
	for i := range docs {
		if match(&docs[i]) {
			out = append(out, fromDoc(&docs[i]))
		}
	}
	return out, nil
}

// EnsureIndex creates the bank search index.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := r.col.Index().
		Tag("city").
		Tag("status").
		SortableNumeric("created_ts").
		Build()
	if err != nil {
		return fmt.Errorf("bank index: %w", err)
	}
	return r.col.EnsureIndex(ctx, def)
}

// IndexReady reports whether the bank index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	return r.col.IndexReady(ctx)
}
