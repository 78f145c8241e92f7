package bank

import (
	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// bankDoc is the stored JSON shape of a blood bank.
type bankDoc struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Capacity      int    `json:"capacity"`
	LicenseNumber string `json:"licenseNumber"`
	ContactPerson string `json:"contactPerson"`
	Status        string `json:"status"`
	Approved      bool   `json:"approved"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	CreatedTS     int64  `json:"created_ts"`
}

func toDoc(b *dombank.Bank) bankDoc {
	return bankDoc{
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
		CreatedAt:     records.FormatTime(b.CreatedAt),
		UpdatedAt:     records.FormatTime(b.UpdatedAt),
		CreatedTS:     records.Unix(b.CreatedAt),
	}
}

func fromDoc(d *bankDoc) dombank.Bank {
	return dombank.Bank{
		ID:            d.ID,
		Name:          d.Name,
		Address:       d.Address,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		Capacity:      d.Capacity,
		LicenseNumber: d.LicenseNumber,
		ContactPerson: d.ContactPerson,
		Status:        dombank.Status(d.Status),
		Approved:      d.Approved,
		CreatedAt:     records.ParseTime(d.CreatedAt),
		UpdatedAt:     records.ParseTime(d.UpdatedAt),
	}
}

func fromDocs(docs []bankDoc) []dombank.Bank {
	out := make([]dombank.Bank, len(docs))
	for i := range docs {
		out[i] = fromDoc(&docs[i])
	}
	return out
}
