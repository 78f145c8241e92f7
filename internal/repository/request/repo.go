package request

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// Collection is the storage name of blood requests.
const Collection = "bloodRequests"

// Repo implements usecase/request.Repository.
type Repo struct {
	col *records.Collection[requestDoc]
}

// New creates a request repository.
func New(s records.Store, prefix string) *Repo {
	return &Repo{col: records.NewCollection[requestDoc](s, prefix, Collection)}
}

// Create stores req under a fresh ID and returns the stored request.
func (r *Repo) Create(ctx context.Context, req domreq.Request) (domreq.Request, error) {
	req.ID = uuid.NewString()
	doc := toDoc(&req)
	if err := r.col.Put(ctx, req.ID, &doc); err != nil {
		return domreq.Request{}, err
	}
	return req, nil
}

// Get returns a request by ID.
func (r *Repo) Get(ctx context.Context, id string) (domreq.Request, error) {
	doc, err := r.col.Get(ctx, id)
	if err != nil {
		return domreq.Request{}, err
	}
	doc.ID = id
	return fromDoc(&doc), nil
}

// Update replaces a stored request.
func (r *Repo) Update(ctx context.Context, req domreq.Request) error {
	doc := toDoc(&req)
	return r.col.Put(ctx, req.ID, &doc)
}

// Delete removes a request.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.col.Delete(ctx, id)
}

// List returns requests matching f.
func (r *Repo) List(ctx context.Context, f domreq.Filter) ([]domreq.Request, error) {
	docs, err := r.col.Find(ctx,
		records.Equal("status", f.Status, "bloodType", f.BloodType, "bloodBankId", f.BloodBankID),
		func(d *requestDoc) bool {
			req := fromDoc(d)
			return f.Matches(&req)
		})
	if err != nil {
		return nil, err
	}
	out := make([]domreq.Request, len(docs))
	for i := range docs {
		out[i] = fromDoc(&docs[i])
	}
	return out, nil
}

// EnsureIndex creates the request search index.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	def, err := r.col.Index().
		Tag("status").
		Tag("bloodType").
		Tag("bloodBankId").
		SortableNumeric("created_ts").
		Build()
	if err != nil {
		return fmt.Errorf("request index: %w", err)
	}
	return r.col.EnsureIndex(ctx, def)
}

// IndexReady reports whether the request index exists.
func (r *Repo) IndexReady(ctx context.Context) (bool, error) {
	return r.col.IndexReady(ctx)
}
