// Package request models patient blood requests.
package request

import (
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
)

// Urgency is how soon the units are needed.
type Urgency string

// Urgency levels.
const (
	UrgencyNormal   Urgency = "normal"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// IsValid reports whether u is a known urgency.
func (u Urgency) IsValid() bool {
	return u == UrgencyNormal || u == UrgencyHigh || u == UrgencyCritical
}

// Status is the request workflow state.
type Status string

// Request statuses.
const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ParseStatus validates s as a request status.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return "", domain.NewValidation("Status is required")
	}
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return st, nil
	}
	return "", domain.NewValidation("Invalid status")
}

// Request is a blood request record.
type Request struct {
	ID            string
	BloodType     bloodtype.Type
	Units         int
	Urgency       Urgency
	PatientName   string
	ContactNumber string
	Hospital      string
	BloodBankID   string
	Notes         string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Draft is the input for filing a request.
type Draft struct {
	BloodType     string
	Units         int
	Urgency       string
	PatientName   string
	ContactNumber string
	Hospital      string
	BloodBankID   string
	Notes         string
}

// New validates d and creates a pending Request. Urgency defaults to normal.
func New(d Draft, now time.Time) (Request, error) {
	if d.BloodType == "" || d.Units == 0 || d.PatientName == "" || d.ContactNumber == "" {
		return Request{}, domain.ErrMissingFields
	}
	bt, err := bloodtype.Parse(d.BloodType)
	if err != nil {
		return Request{}, err
	}
	if d.Units < 0 {
		return Request{}, domain.NewValidation("units must be positive")
	}
	urg := Urgency(d.Urgency)
	if urg == "" {
		urg = UrgencyNormal
	}
	if !urg.IsValid() {
		return Request{}, domain.NewValidation("Invalid urgency. Must be normal, high, or critical")
	}
	return Request{
		BloodType:     bt,
		Units:         d.Units,
		Urgency:       urg,
		PatientName:   d.PatientName,
		ContactNumber: d.ContactNumber,
		Hospital:      d.Hospital,
		BloodBankID:   d.BloodBankID,
		Notes:         d.Notes,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Patch is a partial request update. Status changes go through ParseStatus instead.
type Patch struct {
	BloodType     *string
	Units         *int
	Urgency       *string
	PatientName   *string
	ContactNumber *string
	Hospital      *string
	BloodBankID   *string
	Notes         *string
}

// Validate checks field ranges.
func (p *Patch) Validate() error {
	if p.BloodType == nil && p.Units == nil && p.Urgency == nil && p.PatientName == nil &&
		p.ContactNumber == nil && p.Hospital == nil && p.BloodBankID == nil && p.Notes == nil {
		return domain.NewValidation("at least one field must be provided")
	}
	if p.BloodType != nil {
		if _, err := bloodtype.Parse(*p.BloodType); err != nil {
			return err
		}
	}
	if p.Units != nil && *p.Units <= 0 {
		return domain.NewValidation("units must be positive")
	}
	if p.Urgency != nil && !Urgency(*p.Urgency).IsValid() {
		return domain.NewValidation("Invalid urgency. Must be normal, high, or critical")
	}
	if (p.PatientName != nil && *p.PatientName == "") || (p.ContactNumber != nil && *p.ContactNumber == "") {
		return domain.NewValidation("patientName and contactNumber must not be empty")
	}
	return nil
}

// Apply returns a copy of r with p applied. Call Validate first.
func (p *Patch) Apply(r Request, now time.Time) Request {
	if p.BloodType != nil {
		r.BloodType = bloodtype.Type(*p.BloodType)
	}
	if p.Units != nil {
		r.Units = *p.Units
	}
	if p.Urgency != nil {
		r.Urgency = Urgency(*p.Urgency)
	}
	for dst, src := range map[*string]*string{
		&r.PatientName: p.PatientName, &r.ContactNumber: p.ContactNumber,
		&r.Hospital: p.Hospital, &r.BloodBankID: p.BloodBankID, &r.Notes: p.Notes,
	} {
		if src != nil {
			*dst = *src
		}
	}
	r.UpdatedAt = now
	return r
}

// WithStatus returns a copy of r in status st.
func (r Request) WithStatus(st Status, now time.Time) Request {
	r.Status = st
	r.UpdatedAt = now
	return r
}

// Filter narrows a request listing. Empty fields match everything.
type Filter struct {
	Status      string
	BloodType   string
	BloodBankID string
}

// Matches reports whether r satisfies every set field of f.
func (f *Filter) Matches(r *Request) bool {
	if f.Status != "" && string(r.Status) != f.Status {
		return false
	}
	if f.BloodType != "" && string(r.BloodType) != f.BloodType {
		return false
	}
	if f.BloodBankID != "" && r.BloodBankID != f.BloodBankID {
		return false
	}
	return true
}
