package redrelief

import (
	"context"
	"fmt"
	"time"

	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
)

// CampaignService lists campaigns newest first.
type CampaignService struct {
	svc campaignUseCase
	obs *observer
}

// List returns campaigns matching f.
func (s *CampaignService) List(ctx context.Context, f CampaignFilter) (_ CampaignListing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("campaigns_list", start, err) }()

	l, err := s.svc.List(ctx, domcamp.Filter{
		Status:      f.Status,
		Location:    f.City,
		BloodBankID: f.BloodBankID,
		BloodType:   f.BloodType,
	})
	if err != nil {
		return CampaignListing{}, fmt.Errorf("list campaigns: %w", err)
	}
	return listingFromDomain(&l), nil
}

// ByBloodBank returns the campaigns of one bank, optionally with a given status.
func (s *CampaignService) ByBloodBank(ctx context.Context, bloodBankID, status string) (_ CampaignListing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("campaigns_blood_bank", start, err) }()

	l, err := s.svc.ByBloodBank(ctx, bloodBankID, status)
	if err != nil {
		return CampaignListing{}, fmt.Errorf("campaigns by blood bank: %w", err)
	}
	return listingFromDomain(&l), nil
}

// ApprovedInCity returns approved campaigns held in city, optionally needing bloodType.
func (s *CampaignService) ApprovedInCity(ctx context.Context, city, bloodType string) (_ CampaignListing, err error) {
	start := time.Now()
	defer func() { s.obs.observe("campaigns_city", start, err) }()

	l, err := s.svc.ApprovedInCity(ctx, city, bloodType)
	if err != nil {
		return CampaignListing{}, fmt.Errorf("campaigns by city: %w", err)
	}
	return listingFromDomain(&l), nil
}
