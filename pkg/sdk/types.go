package redrelief

import "time"

// Query selects banks holding stock of one blood type.
type Query struct {
	BloodType string // required, matched literally ("O+" matches only "O+")
	City      string // optional, exact and case-sensitive
	Urgency   string // "high" ranks banks by total available units
}

// InventoryItem is one stock entry of a blood bank.
type InventoryItem struct {
	ID             string
	BloodType      string
	AvailableUnits int
	BloodBankID    string
	ExpiryDate     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Bank is a blood bank record.
type Bank struct {
	ID            string
	Name          string
	Address       string
	City          string
	Phone         string
	Email         string
	Capacity      int
	LicenseNumber string
	ContactPerson string
	Status        string
	Approved      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AggregatedBank is a bank with its matching stock.
type AggregatedBank struct {
	Bank
	Inventory      []InventoryItem
	TotalAvailable int
}

// SlimBank is the compact row returned by blood-type lookups.
type SlimBank struct {
	ID             string
	Name           string
	Address        string
	City           string
	Phone          string
	AvailableUnits int
}

// Campaign is a donation campaign.
type Campaign struct {
	ID            string
	Title         string
	Description   string
	Location      string
	BloodBankID   string
	BloodBankName string
	TargetUnits   int
	CurrentUnits  int
	StartDate     string
	EndDate       string
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
	BloodTypes    []string
	Status        string
	Approved      bool
	AdminNotes    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ApprovedAt    *time.Time
}

// CampaignFilter narrows a campaign listing. Empty fields match everything.
type CampaignFilter struct {
	Status      string
	City        string
	BloodBankID string
	BloodType   string
}

// CampaignListing is a newest-first list of campaigns.
// Note is non-empty when the listing was served by a full scan.
type CampaignListing struct {
	Campaigns []Campaign
	Note      string
}
