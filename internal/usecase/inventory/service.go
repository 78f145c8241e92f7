package inventory

import (
	"context"
	"fmt"
	"time"

	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
)

// Service handles inventory CRUD.
type Service struct {
	repo  Repository
	banks BankFinder
	now   func() time.Time
}

// New creates an inventory service.
func New(repo Repository, banks BankFinder) *Service {
	return &Service{repo: repo, banks: banks, now: time.Now}
}

// Create validates d and stores a new record.
func (s *Service) Create(ctx context.Context, d dominv.Draft) (dominv.Item, error) {
	it, err := dominv.New(d, s.now())
	if err != nil {
		return dominv.Item{}, err
	}
	created, err := s.repo.Create(ctx, it)
	if err != nil {
		return dominv.Item{}, fmt.Errorf("create inventory: %w", err)
	}
	return created, nil
}

// Get returns a record by ID.
func (s *Service) Get(ctx context.Context, id string) (dominv.Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		return dominv.Item{}, fmt.Errorf("get inventory %s: %w", id, err)
	}
	return it, nil
}

// Update applies p to the stored record.
func (s *Service) Update(ctx context.Context, id string, p dominv.Patch) (dominv.Item, error) {
	if err := p.Validate(); err != nil {
		return dominv.Item{}, err
	}
	it, err := s.Get(ctx, id)
	if err != nil {
		return dominv.Item{}, err
	}
	it = p.Apply(it, s.now())
	if err := s.repo.Update(ctx, it); err != nil {
		return dominv.Item{}, fmt.Errorf("update inventory %s: %w", id, err)
	}
	return it, nil
}

// Delete removes a record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inventory %s: %w", id, err)
	}
	return nil
}

// List returns records matching f. The city filter keeps records held by banks in that city.
func (s *Service) List(ctx context.Context, f dominv.Filter) ([]dominv.Item, error) {
	f.BloodType = domsearch.NormalizeBloodType(f.BloodType)

	var inCity map[string]struct{}
	if f.City != "" {
		banks, err := s.banks.ByCity(ctx, f.City)
		if err != nil {
			return nil, fmt.Errorf("fetch banks in %s: %w", f.City, err)
		}
		if len(banks) == 0 {
			return []dominv.Item{}, nil
		}
		inCity = make(map[string]struct{}, len(banks))
		for _, b := range banks {
			inCity[b.ID] = struct{}{}
		}
	}

	items, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	if inCity == nil {
		return items, nil
	}

	out := items[:0]
	for _, it := range items {
		if _, ok := inCity[it.BloodBankID]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}
