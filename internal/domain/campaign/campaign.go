// Package campaign models donation drives organised by blood banks.
package campaign

import (
	"slices"
	"sort"
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
)

// Status is the admin review state.
type Status string

// Campaign statuses.
const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus validates s as a campaign status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	}
	return "", domain.NewValidation("Invalid status. Must be pending, approved, or rejected")
}

// Campaign is a campaign record.
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
	BloodTypes    []bloodtype.Type
	Status        Status
	Approved      bool
	AdminNotes    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ApprovedAt    *time.Time
}

// CreatedTS is the numeric creation time used for ordering. Missing timestamps are 0.
func (c *Campaign) CreatedTS() int64 {
	if c.CreatedAt.IsZero() {
		return 0
	}
	return c.CreatedAt.Unix()
}

// Needs reports whether bt is among the requested blood types.
func (c *Campaign) Needs(bt string) bool {
	return slices.Contains(c.BloodTypes, bloodtype.Type(bt))
}

// Draft is the input for proposing a campaign.
type Draft struct {
	Title         string
	Description   string
	Location      string
	BloodBankID   string
	BloodBankName string
	TargetUnits   int
	StartDate     string
	EndDate       string
	ContactPerson string
	ContactPhone  string
	ContactEmail  string
	BloodTypes    []string
}

// New validates d and creates a pending Campaign with no collected units.
func New(d Draft, now time.Time) (Campaign, error) {
	if d.Title == "" || d.Description == "" || d.Location == "" || d.BloodBankID == "" || d.BloodBankName == "" {
		return Campaign{}, domain.ErrMissingFields
	}
	if d.TargetUnits < 0 {
		return Campaign{}, domain.NewValidation("targetUnits must be non-negative")
	}
	types, err := bloodtype.ParseSet(d.BloodTypes)
	if err != nil {
		return Campaign{}, err
	}
	if err := validateDates(d.StartDate, d.EndDate); err != nil {
		return Campaign{}, err
	}
	return Campaign{
		Title:         d.Title,
		Description:   d.Description,
		Location:      d.Location,
		BloodBankID:   d.BloodBankID,
		BloodBankName: d.BloodBankName,
		TargetUnits:   d.TargetUnits,
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		ContactPerson: d.ContactPerson,
		ContactPhone:  d.ContactPhone,
		ContactEmail:  d.ContactEmail,
		BloodTypes:    types,
		Status:        StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func validateDates(start, end string) error {
	if err := domain.ValidateDate("startDate", start); err != nil {
		return err
	}
	return domain.ValidateDate("endDate", end)
}

// Patch is a partial campaign update. Review fields change only through WithStatus.
type Patch struct {
	Title         *string
	Description   *string
	Location      *string
	BloodBankName *string
	TargetUnits   *int
	CurrentUnits  *int
	StartDate     *string
	EndDate       *string
	ContactPerson *string
	ContactPhone  *string
	ContactEmail  *string
	BloodTypes    *[]string
}

// Validate checks field ranges.
func (p *Patch) Validate() error {
	if p.Title == nil && p.Description == nil && p.Location == nil && p.BloodBankName == nil &&
		p.TargetUnits == nil && p.CurrentUnits == nil && p.StartDate == nil && p.EndDate == nil &&
		p.ContactPerson == nil && p.ContactPhone == nil && p.ContactEmail == nil && p.BloodTypes == nil {
		return domain.NewValidation("at least one field must be provided")
	}
	for _, v := range []*string{p.Title, p.Description, p.Location, p.BloodBankName} {
		if v != nil && *v == "" {
			return domain.NewValidation("title, description, location and bloodBankName must not be empty")
		}
	}
	if (p.TargetUnits != nil && *p.TargetUnits < 0) || (p.CurrentUnits != nil && *p.CurrentUnits < 0) {
		return domain.NewValidation("units must be non-negative")
	}
	if p.BloodTypes != nil {
		if _, err := bloodtype.ParseSet(*p.BloodTypes); err != nil {
			return err
		}
	}
	var start, end string
	if p.StartDate != nil {
		start = *p.StartDate
	}
	if p.EndDate != nil {
		end = *p.EndDate
	}
	return validateDates(start, end)
}

// Apply returns a copy of c with p applied. Call Validate first.
func (p *Patch) Apply(c Campaign, now time.Time) Campaign {
	for dst, src := range map[*string]*string{
		&c.Title: p.Title, &c.Description: p.Description, &c.Location: p.Location,
		&c.BloodBankName: p.BloodBankName, &c.StartDate: p.StartDate, &c.EndDate: p.EndDate,
		&c.ContactPerson: p.ContactPerson, &c.ContactPhone: p.ContactPhone, &c.ContactEmail: p.ContactEmail,
	} {
		if src != nil {
			*dst = *src
		}
	}
	if p.TargetUnits != nil {
		c.TargetUnits = *p.TargetUnits
	}
	if p.CurrentUnits != nil {
		c.CurrentUnits = *p.CurrentUnits
	}
	if p.BloodTypes != nil {
		c.BloodTypes, _ = bloodtype.ParseSet(*p.BloodTypes)
	}
	c.UpdatedAt = now
	return c
}

// WithStatus returns a copy of c after an admin review decision.
// ApprovedAt is stamped only on approval; earlier stamps are kept otherwise.
func (c Campaign) WithStatus(st Status, adminNotes string, now time.Time) Campaign {
	c.Status = st
	c.Approved = st == StatusApproved
	c.AdminNotes = adminNotes
	c.UpdatedAt = now
	if st == StatusApproved {
		at := now
		c.ApprovedAt = &at
	}
	return c
}

// Filter narrows a campaign listing. Empty fields match everything.
type Filter struct {
	Status      string
	Location    string
	BloodBankID string
	BloodType   string // set membership, always evaluated in memory
}

// Matches reports whether c satisfies every set field of f.
func (f *Filter) Matches(c *Campaign) bool {
	if f.Status != "" && string(c.Status) != f.Status {
		return false
	}
	if f.Location != "" && c.Location != f.Location {
		return false
	}
	if f.BloodBankID != "" && c.BloodBankID != f.BloodBankID {
		return false
	}
	if f.BloodType != "" && !c.Needs(f.BloodType) {
		return false
	}
	return true
}

// Apply keeps the campaigns matching f, preserving order.
func (f *Filter) Apply(cs []Campaign) []Campaign {
	out := make([]Campaign, 0, len(cs))
	for i := range cs {
		if f.Matches(&cs[i]) {
			out = append(out, cs[i])
		}
	}
	return out
}

// SortNewestFirst orders cs by creation time descending. Equal timestamps keep input order.
func SortNewestFirst(cs []Campaign) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].CreatedTS() > cs[j].CreatedTS()
	})
}
