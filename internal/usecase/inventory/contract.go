package inventory

import (
	"context"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

// Repository defines the storage contract for inventory records.
type Repository interface {
	Create(ctx context.Context, it dominv.Item) (dominv.Item, error)
	Get(ctx context.Context, id string) (dominv.Item, error)
	Update(ctx context.Context, it dominv.Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f dominv.Filter) ([]dominv.Item, error)
}

// BankFinder resolves the banks of a city for the city filter.
type BankFinder interface {
	ByCity(ctx context.Context, city string) ([]dombank.Bank, error)
}
