package redrelief

import (
	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
)

func inventoryFromDomain(items []dominv.Item) []InventoryItem {
	out := make([]InventoryItem, len(items))
	for i := range items {
		it := &items[i]
		out[i] = InventoryItem{
			ID:             it.ID,
			BloodType:      string(it.BloodType),
			AvailableUnits: it.AvailableUnits,
			BloodBankID:    it.BloodBankID,
			ExpiryDate:     it.ExpiryDate,
			CreatedAt:      it.CreatedAt,
			UpdatedAt:      it.UpdatedAt,
		}
	}
	return out
}

func bankFromDomain(b *dombank.Bank) Bank {
	return Bank{
		ID:            b.ID,
		Name:          b.Name,
		Address:       b.Address,
		City:          b.City,
		Phone:         b.Phone,
		Email:         b.Email,
		Capacity:      b.Capacity,
		LicenseNumber: b.LicenseNumber,
		ContactPerson: b.ContactPerson,
		Status:        string(b.Status),
		Approved:      b.Approved,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func aggregatedFromDomain(banks []domsearch.AggregatedBank) []AggregatedBank {
	out := make([]AggregatedBank, len(banks))
	for i := range banks {
		out[i] = AggregatedBank{
			Bank:           bankFromDomain(&banks[i].Bank),
			Inventory:      inventoryFromDomain(banks[i].Inventory),
			TotalAvailable: banks[i].TotalAvailable,
		}
	}
	return out
}

func slimFromDomain(banks []domsearch.SlimBank) []SlimBank {
	out := make([]SlimBank, len(banks))
	for i, b := range banks {
		out[i] = SlimBank(b)
	}
	return out
}

func campaignFromDomain(c *domcamp.Campaign) Campaign {
	types := make([]string, len(c.BloodTypes))
	for i, t := range c.BloodTypes {
		types[i] = string(t)
	}
	return Campaign{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Location:      c.Location,
		BloodBankID:   c.BloodBankID,
		BloodBankName: c.BloodBankName,
		TargetUnits:   c.TargetUnits,
		CurrentUnits:  c.CurrentUnits,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ContactPerson: c.ContactPerson,
		ContactPhone:  c.ContactPhone,
		ContactEmail:  c.ContactEmail,
		BloodTypes:    types,
		Status:        string(c.Status),
		Approved:      c.Approved,
		AdminNotes:    c.AdminNotes,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		ApprovedAt:    c.ApprovedAt,
	}
}

func listingFromDomain(l *campaignuc.Listing) CampaignListing {
	out := CampaignListing{
		Campaigns: make([]Campaign, len(l.Campaigns)),
		Note:      l.Note(),
	}
	for i := range l.Campaigns {
		out.Campaigns[i] = campaignFromDomain(&l.Campaigns[i])
	}
	return out
}
