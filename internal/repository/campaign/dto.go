package campaign

import (
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// campaignDoc is the stored JSON shape of a campaign.
// created_ts is the NUMERIC SORTABLE field behind newest-first queries.
type campaignDoc struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	BloodBankID   string   `json:"bloodBankId"`
	BloodBankName string   `json:"bloodBankName"`
	TargetUnits   int      `json:"targetUnits"`
	CurrentUnits  int      `json:"currentUnits"`
	StartDate     string   `json:"startDate,omitempty"`
	EndDate       string   `json:"endDate,omitempty"`
	ContactPerson string   `json:"contactPerson"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
	BloodTypes    []string `json:"bloodTypes"`
	Status        string   `json:"status"`
	Approved      bool     `json:"approved"`
	AdminNotes    string   `json:"adminNotes"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	ApprovedAt    string   `json:"approvedAt,omitempty"`
	CreatedTS     int64    `json:"created_ts"`
}

func toDoc(c *domcamp.Campaign) campaignDoc {
	types := make([]string, len(c.BloodTypes))
	for i, t := range c.BloodTypes {
		types[i] = string(t)
	}
	var approvedAt string
	if c.ApprovedAt != nil {
		approvedAt = records.FormatTime(*c.ApprovedAt)
	}
	return campaignDoc{
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
		CreatedAt:     records.FormatTime(c.CreatedAt),
		UpdatedAt:     records.FormatTime(c.UpdatedAt),
		ApprovedAt:    approvedAt,
		CreatedTS:     c.CreatedTS(),
	}
}

func fromDoc(d *campaignDoc) domcamp.Campaign {
	types := make([]bloodtype.Type, len(d.BloodTypes))
	for i, t := range d.BloodTypes {
		types[i] = bloodtype.Type(t)
	}
	created := records.ParseTime(d.CreatedAt)
	if created.IsZero() && d.CreatedTS > 0 {
		created = time.Unix(d.CreatedTS, 0).UTC()
	}
	var approvedAt *time.Time
	if t := records.ParseTime(d.ApprovedAt); !t.IsZero() {
		approvedAt = &t
	}
	return domcamp.Campaign{
		ID:            d.ID,
		Title:         d.Title,
		Description:   d.Description,
		Location:      d.Location,
		BloodBankID:   d.BloodBankID,
		BloodBankName: d.BloodBankName,
		TargetUnits:   d.TargetUnits,
		CurrentUnits:  d.CurrentUnits,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		ContactPerson: d.ContactPerson,
		ContactPhone:  d.ContactPhone,
		ContactEmail:  d.ContactEmail,
		BloodTypes:    types,
		Status:        domcamp.Status(d.Status),
		Approved:      d.Approved,
		AdminNotes:    d.AdminNotes,
		CreatedAt:     created,
		UpdatedAt:     records.ParseTime(d.UpdatedAt),
		ApprovedAt:    approvedAt,
	}
}

func fromDocs(docs []campaignDoc) []domcamp.Campaign {
	out := make([]domcamp.Campaign, len(docs))
	for i := range docs {
		out[i] = fromDoc(&docs[i])
	}
	return out
}
