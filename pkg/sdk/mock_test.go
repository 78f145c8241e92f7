package redrelief

import (
	"context"

	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
)

// --- searchUseCase mock ---

type mockSearchUC struct {
	searchFn      func(ctx context.Context, bloodType, city, urgency string) ([]domsearch.AggregatedBank, error)
	byBloodTypeFn func(ctx context.Context, bloodType, city string) ([]domsearch.SlimBank, error)
	byCityFn      func(ctx context.Context, city, bloodType string) ([]domsearch.AggregatedBank, error)
	typesFn       func(ctx context.Context) ([]string, error)
	citiesFn      func(ctx context.Context) ([]string, error)
}

func (m *mockSearchUC) Search(ctx context.Context, bloodType, city, urgency string) ([]domsearch.AggregatedBank, error) {
	return m.searchFn(ctx, bloodType, city, urgency)
}

func (m *mockSearchUC) ByBloodType(ctx context.Context, bloodType, city string) ([]domsearch.SlimBank, error) {
	return m.byBloodTypeFn(ctx, bloodType, city)
}

func (m *mockSearchUC) ByCity(ctx context.Context, city, bloodType string) ([]domsearch.AggregatedBank, error) {
	return m.byCityFn(ctx, city, bloodType)
}

func (m *mockSearchUC) AvailableTypes(ctx context.Context) ([]string, error) {
	return m.typesFn(ctx)
}

func (m *mockSearchUC) Cities(ctx context.Context) ([]string, error) {
	return m.citiesFn(ctx)
}

// --- campaignUseCase mock ---

type mockCampaignUC struct {
	listFn        func(ctx context.Context, f domcamp.Filter) (campaignuc.Listing, error)
	byBloodBankFn func(ctx context.Context, bloodBankID, status string) (campaignuc.Listing, error)
	byCityFn      func(ctx context.Context, city, bloodType string) (campaignuc.Listing, error)
}

func (m *mockCampaignUC) List(ctx context.Context, f domcamp.Filter) (campaignuc.Listing, error) {
	return m.listFn(ctx, f)
}

func (m *mockCampaignUC) ByBloodBank(ctx context.Context, bloodBankID, status string) (campaignuc.Listing, error) {
	return m.byBloodBankFn(ctx, bloodBankID, status)
}

func (m *mockCampaignUC) ApprovedInCity(ctx context.Context, city, bloodType string) (campaignuc.Listing, error) {
	return m.byCityFn(ctx, city, bloodType)
}
