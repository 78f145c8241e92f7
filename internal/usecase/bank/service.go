package bank

import (
	"context"
	"fmt"
	"time"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

// Service handles blood bank CRUD.
type Service struct {
	repo      Repository
	inventory InventoryLister
	now       func() time.Time
}

// New creates a bank service.
func New(repo Repository, inventory InventoryLister) *Service {
	return &Service{repo: repo, inventory: inventory, now: time.Now}
}

// Create validates d and registers a pending bank.
func (s *Service) Create(ctx context.Context, d dombank.Draft) (dombank.Bank, error) {
	b, err := dombank.New(d, s.now())
	if err != nil {
		return dombank.Bank{}, err
	}
	created, err := s.repo.Create(ctx, b)
	if err != nil {
		return dombank.Bank{}, fmt.Errorf("create bank: %w", err)
	}
	return created, nil
}

// Get returns a bank by ID.
func (s *Service) Get(ctx context.Context, id string) (dombank.Bank, error) {
	b, err := s.repo.Get(ctx, id)
	if err != nil {
		return dombank.Bank{}, fmt.Errorf("get bank %s: %w", id, err)
	}
	return b, nil
}

// Update applies p to the stored bank.
func (s *Service) Update(ctx context.Context, id string, p dombank.Patch) (dombank.Bank, error) {
	if err := p.Validate(); err != nil {
		return dombank.Bank{}, err
	}
	b, err := s.Get(ctx, id)
	if err != nil {
		return dombank.Bank{}, err
	}
	b = p.Apply(b, s.now())
	if err := s.repo.Update(ctx, b); err != nil {
		return dombank.Bank{}, fmt.Errorf("update bank %s: %w", id, err)
	}
	return b, nil
}

// Delete removes a bank. Its inventory and campaigns are left in place.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bank %s: %w", id, err)
	}
	return nil
}

// List returns banks matching f.
func (s *Service) List(ctx context.Context, f dombank.Filter) ([]dombank.Bank, error) {
	banks, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list banks: %w", err)
	}
	return banks, nil
}

// Inventory returns every inventory record of an existing bank.
func (s *Service) Inventory(ctx context.Context, id string) ([]dominv.Item, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	items, err := s.inventory.List(ctx, dominv.Filter{BloodBankID: id})
	if err != nil {
		return nil, fmt.Errorf("list inventory of bank %s: %w", id, err)
	}
	return items, nil
}
