package campaign

import (
	"context"

	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
)

// Repository defines the storage contract for campaigns.
type Repository interface {
	Create(ctx context.Context, c domcamp.Campaign) (domcamp.Campaign, error)
	Get(ctx context.Context, id string) (domcamp.Campaign, error)
	Update(ctx context.Context, c domcamp.Campaign) error
	Delete(ctx context.Context, id string) error
	All(ctx context.Context) ([]domcamp.Campaign, error)

	// SupportsCompoundQueries is the capability probe for QueryNewestFirst.
	SupportsCompoundQueries(ctx context.Context) bool
	// QueryNewestFirst returns an error wrapping domain.ErrIndexUnsupported
	// when the store cannot run the filtered, ordered query.
	QueryNewestFirst(ctx context.Context, f domcamp.Filter) ([]domcamp.Campaign, error)
}

// FallbackCounter counts listings served by the scan path. Optional.
type FallbackCounter interface {
	IncFallback(variant string)
}
