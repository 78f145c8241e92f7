package redrelief

import (
	"context"
	"fmt"
	"time"
)

// SearchService joins inventory to banks.
type SearchService struct {
	svc searchUseCase
	obs *observer
}

// Banks returns banks with positive stock of q.BloodType, with their matching inventory.
func (s *SearchService) Banks(ctx context.Context, q Query) (_ []AggregatedBank, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search", start, err) }()

	banks, err := s.svc.Search(ctx, q.BloodType, q.City, q.Urgency)
	if err != nil {
		return nil, fmt.Errorf("search banks: %w", err)
	}
	return aggregatedFromDomain(banks), nil
}

// ByBloodType returns compact rows for banks holding bloodType.
func (s *SearchService) ByBloodType(ctx context.Context, bloodType, city string) (_ []SlimBank, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search_blood_type", start, err) }()

	banks, err := s.svc.ByBloodType(ctx, bloodType, city)
	if err != nil {
		return nil, fmt.Errorf("search by blood type: %w", err)
	}
	return slimFromDomain(banks), nil
}

// ByCity returns the banks of city that have stock, optionally of one blood type.
func (s *SearchService) ByCity(ctx context.Context, city, bloodType string) (_ []AggregatedBank, err error) {
	start := time.Now()
	defer func() { s.obs.observe("search_city", start, err) }()

	banks, err := s.svc.ByCity(ctx, city, bloodType)
	if err != nil {
		return nil, fmt.Errorf("search by city: %w", err)
	}
	return aggregatedFromDomain(banks), nil
}

// AvailableTypes returns the blood types currently in stock anywhere.
func (s *SearchService) AvailableTypes(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("available_types", start, err) }()

	types, err := s.svc.AvailableTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("available types: %w", err)
	}
	return types, nil
}

// Cities returns the distinct cities of all banks.
func (s *SearchService) Cities(ctx context.Context) (_ []string, err error) {
	start := time.Now()
	defer func() { s.obs.observe("cities", start, err) }()

	cities, err := s.svc.Cities(ctx)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", err)
	}
	return cities, nil
}
