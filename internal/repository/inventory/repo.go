package inventory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// Collection is the storage name of inventory items.
const Collection = "inventory"

// Repo implements usecase/inventory.Repository and the inventory side of search.
type Repo struct {
	col *records.Collection[itemDoc]
}

// New creates an inventory repository.
func New(s records.Store, prefix string) *Repo {
	return &Repo{col: records.NewCollection[itemDoc](s, prefix, Collection)}
}

// Create stores it under a fresh ID and returns the stored item.
func (r *Repo) Create(ctx context.Context, it dominv.Item) (dominv.Item, error) {
	it.ID = uuid.NewString()
	doc := toDoc(&it)
	if err := r.col.Put(ctx, it.ID, &doc); err != nil {
		return dominv.Item{}, err
	}
	return it, nil
}

// Get returns an item by ID.
func (r *Repo) Get(ctx context.Context, id string) (dominv.Item, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		return dominv.Item{}, err
	}
	doc.ID = id
	return fromDoc(&doc), nil
}

// Update replaces a stored item.
func (r *Repo) Update(ctx context.Context, it dominv.Item) error {
	doc := toDoc(&it)
	return r.col.Put(ctx, it.ID, &doc)
}

// Delete removes an item.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

// All returns every inventory item.
func (r *Repo) All(ctx context.Context) ([]dominv.Item, error) {
	docs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// List returns items matching the record-local fields of f.
func (r *Repo) List(ctx context.Context, f dominv.Filter) ([]dominv.Item, error) {
	docs, err := r.col.Find(ctx,
		records.Equal("bloodType", f.BloodType, "bloodBankId", f.BloodBankID),
		func(d *itemDoc) bool {
			it := fromDoc(d)
			return f.Matches(&it)
		})
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// EnsureIndex creates the inventory search index.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := r.col.Index().
		Tag("bloodType").
		Tag("bloodBankId").
		SortableNumeric("created_ts").
		Build()
	if err != nil {
		return fmt.Errorf("inventory index: %w", err)
	}
	return r.col.EnsureIndex(ctx, def)
}

// IndexReady reports whether the inventory index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	return r.col.IndexReady(ctx)
}
