// Package bank models blood bank records.
package bank

import (
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
)

// Status is the operational state of a bank.
type Status string

// Bank statuses.
const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
	StatusInactive  Status = "inactive"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusSuspended, StatusInactive:
		return true
	}
	return false
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
	Status        Status
	Approved      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Draft is the input for registering a bank.
type Draft struct {
	Name          string
	Address       string
	City          string
	Phone         string
	Email         string
	Capacity      int
	LicenseNumber string
	ContactPerson string
}

// New validates d and creates a pending, unapproved Bank.
func New(d Draft, now time.Time) (Bank, error) {
	if d.Name == "" || d.Address == "" || d.City == "" || d.Phone == "" || d.Email == "" {
		return Bank{}, domain.ErrMissingFields
	}
	if d.Capacity < 0 {
		return Bank{}, domain.NewValidation("capacity must be non-negative")
	}
	return Bank{
		Name:          d.Name,
		Address:       d.Address,
		City:          d.City,
		Phone:         d.Phone,
		Email:         d.Email,
		Capacity:      d.Capacity,
		LicenseNumber: d.LicenseNumber,
		ContactPerson: d.ContactPerson,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Patch is a partial bank update. Nil fields are unchanged.
type Patch struct {
	Name          *string
	Address       *string
	City          *string
	Phone         *string
	Email         *string
	Capacity      *int
	LicenseNumber *string
	ContactPerson *string
	Status        *string
	Approved      *bool
}

func (p *Patch) empty() bool {
	return p.Name == nil && p.Address == nil && p.City == nil && p.Phone == nil &&
		p.Email == nil && p.Capacity == nil && p.LicenseNumber == nil &&
		p.ContactPerson == nil && p.Status == nil && p.Approved == nil
}

// Validate checks field ranges; required fields may not be cleared.
func (p *Patch) Validate() error {
	if p.empty() {
		return domain.NewValidation("at least one field must be provided")
	}
	for name, v := range map[string]*string{
		"name": p.Name, "address": p.Address, "city": p.City, "phone": p.Phone, "email": p.Email,
	} {
		if v != nil && *v == "" {
			return domain.NewValidation("%s must not be empty", name)
		}
	}
	if p.Capacity != nil && *p.Capacity < 0 {
		return domain.NewValidation("capacity must be non-negative")
	}
	if p.Status != nil && !Status(*p.Status).IsValid() {
		return domain.NewValidation("Invalid status. Must be pending, active, suspended, or inactive")
	}
	return nil
}

// Apply returns a copy of b with p applied. Call Validate first.
func (p *Patch) Apply(b Bank, now time.Time) Bank {
	setStr(&b.Name, p.Name)
	setStr(&b.Address, p.Address)
	setStr(&b.City, p.City)
	setStr(&b.Phone, p.Phone)
	setStr(&b.Email, p.Email)
	setStr(&b.LicenseNumber, p.LicenseNumber)
	setStr(&b.ContactPerson, p.ContactPerson)
	if p.Capacity != nil {
		b.Capacity = *p.Capacity
	}
	if p.Status != nil {
		b.Status = Status(*p.Status)
	}
	if p.Approved != nil {
		b.Approved = *p.Approved
	}
	b.UpdatedAt = now
	return b
}

func setStr(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Filter narrows a bank listing. Empty fields match everything.
type Filter struct {
	City     string
	Status   string
	Approved *bool
}

// Matches reports whether b satisfies every set field of f.
func (f *Filter) Matches(b *Bank) bool {
	if f.City != "" && b.City != f.City {
		return false
	}
	if f.Status != "" && string(b.Status) != f.Status {
		return false
	}
	if f.Approved != nil && b.Approved != *f.Approved {
		return false
	}
	return true
}
