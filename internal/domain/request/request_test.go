package request

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
)

var now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func TestNew_Defaults(t *testing.T) {
	r, err := New(Draft{BloodType: "AB-", Units: 2, PatientName: "J. Doe", ContactNumber: "555"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Urgency != UrgencyNormal || r.Status != StatusPending {
		t.Errorf("defaults not applied: %+v", r)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name string
		d    Draft
	}{
		{"missing units", Draft{BloodType: "O+", PatientName: "p", ContactNumber: "c"}},
		{"negative units", Draft{BloodType: "O+", Units: -2, PatientName: "p", ContactNumber: "c"}},
		{"bad urgency", Draft{BloodType: "O+", Units: 1, Urgency: "asap", PatientName: "p", ContactNumber: "c"}},
		{"bad type", Draft{BloodType: "O", Units: 1, PatientName: "p", ContactNumber: "c"}},
		{"missing contact", Draft{BloodType: "O+", Units: 1, PatientName: "p"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.d, now); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("err = %v, want validation error", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected", "completed", "cancelled"} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q): %v", s, err)
		}
	}
	_, err := ParseStatus("")
	if err == nil || err.Error() != "Status is required" {
		t.Errorf("empty status err = %v", err)
	}
	_, err = ParseStatus("done")
	if err == nil || err.Error() != "Invalid status" {
		t.Errorf("unknown status err = %v", err)
	}
}

func TestPatch_ApplyAndWithStatus(t *testing.T) {
	r, _ := New(Draft{BloodType: "O+", Units: 1, PatientName: "p", ContactNumber: "c"}, now)
	units := 4
	notes := "ward 3"
	p := Patch{Units: &units, Notes: &notes}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	later := now.Add(time.Hour)
	got := p.Apply(r, later)
	if got.Units != 4 || got.Notes != "ward 3" || got.PatientName != "p" {
		t.Errorf("unexpected: %+v", got)
	}
	done := got.WithStatus(StatusCompleted, later)
	if done.Status != StatusCompleted || got.Status != StatusPending {
		t.Errorf("WithStatus must copy: %v / %v", done.Status, got.Status)
	}
}

func TestPatch_Invalid(t *testing.T) {
	zero := 0
	blank := ""
	for _, p := range []Patch{{}, {Units: &zero}, {PatientName: &blank}} {
		if err := p.Validate(); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Validate(%+v) = %v", p, err)
		}
	}
}

func TestFilter_Matches(t *testing.T) {
	r := Request{Status: StatusApproved, BloodType: "A+", BloodBankID: "B1"}
	if !(&Filter{Status: "approved", BloodType: "A+"}).Matches(&r) {
		t.Error("expected match")
	}
	if (&Filter{BloodBankID: "B2"}).Matches(&r) {
		t.Error("expected no match")
	}
}
