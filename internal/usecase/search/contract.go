package search

import (
	"context"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

// InventoryReader reads the full inventory collection.
type InventoryReader interface {
	All(ctx context.Context) ([]dominv.Item, error)
}

// BankReader reads blood banks for joins.
type BankReader interface {
	// GetMany returns the banks that exist among ids, in ids order.
	GetMany(ctx context.Context, ids []string) ([]dombank.Bank, error)
	ByCity(ctx context.Context, city string) ([]dombank.Bank, error)
	All(ctx context.Context) ([]dombank.Bank, error)
}

// ResultObserver records result sizes per search kind. Optional.
type ResultObserver interface {
	ObserveResults(kind string, n int)
}
