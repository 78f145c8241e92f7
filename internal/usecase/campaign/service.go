package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/redrelief/internal/domain"
	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
	"github.com/kailas-cloud/redrelief/internal/logger"
)

// FallbackNote is attached to listings served by the scan path.
const FallbackNote = "Using client-side filtering due to missing index"

// Listing variants, used as the fallback counter label.
const (
	VariantList      = "list"
	VariantBloodBank = "blood_bank"
	VariantCity      = "city"
)

// Listing is a newest-first campaign list.
// Degraded is set when the store could not run the compound query.
type Listing struct {
	Campaigns []domcamp.Campaign
	Degraded  bool
}

// Note returns FallbackNote for degraded listings and "" otherwise.
func (l *Listing) Note() string {
	if l.Degraded {
		return FallbackNote
	}
	return ""
}

// Service manages campaigns and their filtered listings.
type Service struct {
	repo     Repository
	fallback FallbackCounter
	now      func() time.Time
}

// New creates a campaign service. fallback can be nil.
func New(repo Repository, fallback FallbackCounter) *Service {
	return &Service{repo: repo, fallback: fallback, now: time.Now}
}

// Create validates d and stores a pending campaign.
func (s *Service) Create(ctx context.Context, d domcamp.Draft) (domcamp.Campaign, error) {
	c, err := domcamp.New(d, s.now())
	if err != nil {
		return domcamp.Campaign{}, err
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return domcamp.Campaign{}, fmt.Errorf("create campaign: %w", err)
	}
	return created, nil
}

// Get returns a campaign by ID.
func (s *Service) Get(ctx context.Context, id string) (domcamp.Campaign, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcamp.Campaign{}, fmt.Errorf("get campaign %s: %w", id, err)
	}
	return c, nil
}

// Update applies p to the stored campaign.
func (s *Service) Update(ctx context.Context, id string, p domcamp.Patch) (domcamp.Campaign, error) {
	if err := p.Validate(); err != nil {
		return domcamp.Campaign{}, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return domcamp.Campaign{}, err
	}
	c = p.Apply(c, s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return domcamp.Campaign{}, fmt.Errorf("update campaign %s: %w", id, err)
	}
	return c, nil
}

// UpdateStatus records an admin review decision.
func (s *Service) UpdateStatus(ctx context.Context, id, status, adminNotes string) (domcamp.Campaign, error) {
	st, err := domcamp.ParseStatus(status)
	if err != nil {
		return domcamp.Campaign{}, err
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return domcamp.Campaign{}, err
	}
	c = c.WithStatus(st, adminNotes, s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return domcamp.Campaign{}, fmt.Errorf("update campaign %s status: %w", id, err)
	}
	return c, nil
}

// Delete removes a campaign.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete campaign %s: %w", id, err)
	}
	return nil
}

// List returns campaigns matching f, newest first.
func (s *Service) List(ctx context.Context, f domcamp.Filter) (Listing, error) {
	f.BloodType = domsearch.NormalizeBloodType(f.BloodType)
	return s.list(ctx, VariantList, f)
}

// ByBloodBank returns a bank's campaigns, optionally with the given status, newest first.
func (s *Service) ByBloodBank(ctx context.Context, bloodBankID, status string) (Listing, error) {
	if bloodBankID == "" {
		return Listing{}, domain.NewValidation("Blood bank ID is required")
	}
	return s.list(ctx, VariantBloodBank, domcamp.Filter{BloodBankID: bloodBankID, Status: status})
}

// ApprovedInCity returns approved campaigns held in city, optionally needing bloodType, newest first.
func (s *Service) ApprovedInCity(ctx context.Context, city, bloodType string) (Listing, error) {
	if city == "" {
		return Listing{}, domain.NewValidation("City is required")
	}
	return s.list(ctx, VariantCity, domcamp.Filter{
		Location:  city,
		Status:    string(domcamp.StatusApproved),
		BloodType: domsearch.NormalizeBloodType(bloodType),
	})
}

// list runs the compound query when the store supports it and falls back to a
// full scan with in-memory filtering and ordering otherwise. Both paths return the same set.
func (s *Service) list(ctx context.Context, variant string, f domcamp.Filter) (Listing, error) {
	if s.repo.SupportsCompoundQueries(ctx) {
		cs, err := s.repo.QueryNewestFirst(ctx, f)
		switch {
		case err == nil:
			if f.BloodType != "" {
				cs = f.Apply(cs)
			}
			return Listing{Campaigns: cs}, nil
		case !errors.Is(err, domain.ErrIndexUnsupported):
			return Listing{}, fmt.Errorf("query campaigns: %w", err)
		}
		logger.FromContext(ctx).Info("campaign compound query unavailable, scanning",
			zap.String("variant", variant), zap.Error(err))
	} else {
		logger.FromContext(ctx).Info("campaign compound query not supported by backend, scanning",
			zap.String("variant", variant))
	}

	if s.fallback != nil {
		s.fallback.IncFallback(variant)
	}

	all, err := s.repo.All(ctx)
	if err != nil {
		return Listing{}, fmt.Errorf("scan campaigns: %w", err)
	}
	cs := f.Apply(all)
	domcamp.SortNewestFirst(cs)
	return Listing{Campaigns: cs, Degraded: true}, nil
}
