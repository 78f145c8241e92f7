package search

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/kailas-cloud/redrelief/internal/domain"
	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
)

// Result kinds reported to the ResultObserver.
const (
	KindBloodType = "blood_type"
	KindSlim      = "blood_type_slim"
	KindCity      = "city"
)

// Service joins inventory to blood banks and aggregates availability.
type Service struct {
	inventory InventoryReader
	banks     BankReader
	observer  ResultObserver
}

// New creates a search service. observer can be nil.
func New(inventory InventoryReader, banks BankReader, observer ResultObserver) *Service {
	return &Service{inventory: inventory, banks: banks, observer: observer}
}

// Search returns the banks holding stock of bloodType, optionally in city.
// Banks appear in order of first matching inventory record, or by total units
// descending when urgency is high. An empty blood type fails before any store access.
func (s *Service) Search(ctx context.Context, bloodType, city, urgency string) ([]domsearch.AggregatedBank, error) {
	q, err := domsearch.NewQuery(bloodType, city, urgency)
	if err != nil {
		return nil, err
	}
	out, err := s.aggregate(ctx, q)
	if err != nil {
		return nil, err
	}
	s.observe(KindBloodType, len(out))
	return out, nil
}

func (s *Service) aggregate(ctx context.Context, q domsearch.Query) ([]domsearch.AggregatedBank, error) {
	items, err := s.inventory.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}

	stocked := items[:0:0]
	for i := range items {
		if string(items[i].BloodType) == q.BloodType && items[i].HasStock() {
			stocked = append(stocked, items[i])
		}
	}

	ids, byBank := groupByBank(stocked)
	if len(ids) == 0 {
		return []domsearch.AggregatedBank{}, nil
	}

	banks, err := s.banks.GetMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch banks: %w", err)
	}

	out := make([]domsearch.AggregatedBank, 0, len(banks))
	for _, b := range banks {
		if q.City != "" && b.City != q.City {
			continue
		}
		out = append(out, domsearch.NewAggregatedBank(b, byBank[b.ID]))
	}

	if q.RankByAvailability() {
		slices.SortStableFunc(out, func(a, b domsearch.AggregatedBank) int {
			return b.TotalAvailable - a.TotalAvailable
		})
	}

	return out, nil
}

// ByBloodType is Search without ranking, projected onto slim rows.
// bloodType is matched exactly as given, with no further decoding or trimming.
func (s *Service) ByBloodType(ctx context.Context, bloodType, city string) ([]domsearch.SlimBank, error) {
	q, err := domsearch.NewLiteralQuery(bloodType, city)
	if err != nil {
		return nil, err
	}
	agg, err := s.aggregate(ctx, q)
	if err != nil {
		return nil, err
	}

	out := make([]domsearch.SlimBank, len(agg))
	for i := range agg {
		out[i] = agg[i].Slim()
	}
	s.observe(KindSlim, len(out))
	return out, nil
}

// ByCity returns the banks in city with stock, each with its stocked inventory
// (restricted to bloodType when given). Banks with nothing in stock are dropped.
func (s *Service) ByCity(ctx context.Context, city, bloodType string) ([]domsearch.AggregatedBank, error) {
	if city == "" {
		return nil, domain.NewValidation("City is required")
	}
	bt := domsearch.NormalizeBloodType(bloodType)

	var (
		banks []dombank.Bank
		items []dominv.Item
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		banks, err = s.banks.ByCity(gctx, city)
		if err != nil {
			return fmt.Errorf("fetch banks: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		items, err = s.inventory.All(gctx)
		if err != nil {
			return fmt.Errorf("fetch inventory: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filter := dominv.Filter{BloodType: bt}
	stocked := items[:0:0]
	for i := range items {
		if items[i].HasStock() && filter.Matches(&items[i]) {
			stocked = append(stocked, items[i])
		}
	}
	_, byBank := groupByBank(stocked)

	out := make([]domsearch.AggregatedBank, 0, len(banks))
	for _, b := range banks {
		inv := byBank[b.ID]
		if len(inv) == 0 {
			continue
		}
		out = append(out, domsearch.NewAggregatedBank(b, inv))
	}

	s.observe(KindCity, len(out))
	return out, nil
}

// AvailableTypes returns the distinct blood types with stock, in first-appearance order.
func (s *Service) AvailableTypes(ctx context.Context) ([]string, error) {
	items, err := s.inventory.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch inventory: %w", err)
	}

	seen := make(map[string]struct{})
	out := []string{}
	for i := range items {
		bt := string(items[i].BloodType)
		if !items[i].HasStock() {
			continue
		}
		if _, ok := seen[bt]; ok {
			continue
		}
		seen[bt] = struct{}{}
		out = append(out, bt)
	}
	return out, nil
}

// Cities returns the distinct bank cities, in first-appearance order.
func (s *Service) Cities(ctx context.Context) ([]string, error) {
	banks, err := s.banks.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch banks: %w", err)
	}

	seen := make(map[string]struct{})
	out := []string{}
	for _, b := range banks {
		if b.City == "" {
			continue
		}
		if _, ok := seen[b.City]; ok {
			continue
		}
		seen[b.City] = struct{}{}
		out = append(out, b.City)
	}
	return out, nil
}

// groupByBank returns the distinct bank IDs in first-appearance order and items per bank.
func groupByBank(items []dominv.Item) ([]string, map[string][]dominv.Item) {
	var ids []string
	byBank := make(map[string][]dominv.Item)
	for _, it := range items {
		if _, ok := byBank[it.BloodBankID]; !ok {
			ids = append(ids, it.BloodBankID)
		}
		byBank[it.BloodBankID] = append(byBank[it.BloodBankID], it)
	}
	return ids, byBank
}

func (s *Service) observe(kind string, n int) {
	if s.observer != nil {
		s.observer.ObserveResults(kind, n)
	}
}
