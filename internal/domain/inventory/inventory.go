// Package inventory models stock of one blood type held by one bank.
package inventory

import (
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
)

// Item is a single inventory record.
type Item struct {
	ID             string
	BloodType      bloodtype.Type
	AvailableUnits int
	BloodBankID    string
	ExpiryDate     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// HasStock reports whether the item has positive available units.
func (i *Item) HasStock() bool { return i.AvailableUnits > 0 }

// Draft is the input for creating an Item.
type Draft struct {
	BloodType      string
	AvailableUnits *int
	BloodBankID    string
	ExpiryDate     string
}

// New validates d and creates an Item without an ID (assigned on insert).
func New(d Draft, now time.Time) (Item, error) {
	if d.BloodType == "" || d.AvailableUnits == nil || d.BloodBankID == "" {
		return Item{}, domain.ErrMissingFields
	}
	bt, err := bloodtype.Parse(d.BloodType)
	if err != nil {
		return Item{}, err
	}
	if *d.AvailableUnits < 0 {
		return Item{}, domain.NewValidation("availableUnits must be non-negative")
	}
	if err := domain.ValidateDate("expiryDate", d.ExpiryDate); err != nil {
		return Item{}, err
	}
	return Item{
		BloodType:      bt,
		AvailableUnits: *d.AvailableUnits,
		BloodBankID:    d.BloodBankID,
		ExpiryDate:     d.ExpiryDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Patch is a partial inventory update. Nil fields are unchanged.
type Patch struct {
	BloodType      *string
	AvailableUnits *int
	BloodBankID    *string
	ExpiryDate     *string
}

// Validate checks that at least one field is set and every set field is in range.
func (p *Patch) Validate() error {
	if p.BloodType == nil && p.AvailableUnits == nil && p.BloodBankID == nil && p.ExpiryDate == nil {
		return domain.NewValidation("at least one field must be provided")
	}
	if p.BloodType != nil {
		if _, err := bloodtype.Parse(*p.BloodType); err != nil {
			return err
		}
	}
	if p.AvailableUnits != nil && *p.AvailableUnits < 0 {
		return domain.NewValidation("availableUnits must be non-negative")
	}
	if p.BloodBankID != nil && *p.BloodBankID == "" {
		return domain.NewValidation("bloodBankId must not be empty")
	}
	if p.ExpiryDate != nil {
		return domain.ValidateDate("expiryDate", *p.ExpiryDate)
	}
	return nil
}

// Apply returns a copy of it with p applied. Call Validate first.
func (p *Patch) Apply(it Item, now time.Time) Item {
	if p.BloodType != nil {
		it.BloodType = bloodtype.Type(*p.BloodType)
	}
	if p.AvailableUnits != nil {
		it.AvailableUnits = *p.AvailableUnits
	}
	if p.BloodBankID != nil {
		it.BloodBankID = *p.BloodBankID
	}
	if p.ExpiryDate != nil {
		it.ExpiryDate = *p.ExpiryDate
	}
	it.UpdatedAt = now
	return it
}

// Filter narrows an inventory listing. Empty fields match everything.
type Filter struct {
	BloodType   string
	BloodBankID string
	City        string // resolved through banks by the caller
}

// Matches applies the record-local fields of f (City is not record-local).
func (f *Filter) Matches(it *Item) bool {
	if f.BloodType != "" && string(it.BloodType) != f.BloodType {
		return false
	}
	if f.BloodBankID != "" && it.BloodBankID != f.BloodBankID {
		return false
	}
	return true
}
