package campaign

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// Collection is the storage name of campaigns.
const Collection = "campaigns"

// sortField orders compound queries newest-first.
const sortField = "created_ts"

// Repo implements usecase/campaign.Repository.
type Repo struct {
	col *records.Collection[campaignDoc]
}

// New creates a campaign repository.
func New(s records.Store, prefix string) *Repo {
	return &Repo{col: records.NewCollection[campaignDoc](s, prefix, Collection)}
}

// Create stores c under a fresh ID and returns the stored campaign.
func (r *Repo) Create(ctx context.Context, c domcamp.Campaign) (domcamp.Campaign, error) {
	c.ID = uuid.NewString()
	doc := toDoc(&c)
	if err := r.col.Put(ctx, c.ID, &doc); err != nil {
		return domcamp.Campaign{}, err
	}
	return c, nil
}

// Get returns a campaign by ID.
func (r *Repo) Get(ctx context.Context, id string) (domcamp.Campaign, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		return domcamp.Campaign{}, err
	}
	doc.ID = id
	return fromDoc(&doc), nil
}

// Update replaces a stored campaign.
func (r *Repo) Update(ctx context.Context, c domcamp.Campaign) error {
	doc := toDoc(&c)
	return r.col.Put(ctx, c.ID, &doc)
}

// Delete removes a campaign.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

// All returns every campaign in key order.
func (r *Repo) All(ctx context.Context) ([]domcamp.Campaign, error) {
	docs, err := r.col.All(ctx)
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// SupportsCompoundQueries reports whether the backend can sort indexed queries.
func (r *Repo) SupportsCompoundQueries(ctx context.Context) bool {
	return r.col.SupportsSortedQueries(ctx)
}

// QueryNewestFirst runs the equality fields of f (status, location, bloodBankId)
// as one indexed query ordered by creation time descending. BloodType is left to the caller.
// Returns an error wrapping domain.ErrIndexUnsupported when the store cannot run it.
func (r *Repo) QueryNewestFirst(ctx context.Context, f domcamp.Filter) ([]domcamp.Campaign, error) {
	docs, err := r.col.Query(ctx,
		records.Equal("bloodBankId", f.BloodBankID, "location", f.Location, "status", f.Status),
		sortField, true)
	if err != nil {
		return nil, err
	}
	return fromDocs(docs), nil
}

// EnsureIndex creates the campaign search index.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := r.col.Index().
		Tag("status").
		Tag("location").
		Tag("bloodBankId").
		TagArray("bloodTypes").
		SortableNumeric(sortField).
		Build()
	if err != nil {
		return fmt.Errorf("campaign index: %w", err)
	}
	return r.col.EnsureIndex(ctx, def)
}

// IndexReady reports whether the campaign index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	return r.col.IndexReady(ctx)
}
