package bank

import (
	"context"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

// Repository defines the storage contract for blood banks.
type Repository interface {
	Create(ctx context.Context, b dombank.Bank) (dombank.Bank, error)
	Get(ctx context.Context, id string) (dombank.Bank, error)
	Update(ctx context.Context, b dombank.Bank) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f dombank.Filter) ([]dombank.Bank, error)
}

// InventoryLister lists inventory records.
type InventoryLister interface {
	List(ctx context.Context, f dominv.Filter) ([]dominv.Item, error)
}
