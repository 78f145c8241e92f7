package campaign

import (
	"errors"
	"testing"
	"time"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
)

var now = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func validDraft() Draft {
	return Draft{
		Title: "Spring drive", Description: "Donate", Location: "Lagos",
		BloodBankID: "B1", BloodBankName: "City Bank", TargetUnits: 50,
		BloodTypes: []string{"O+", "O-"},
	}
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(validDraft(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != StatusPending || c.Approved || c.CurrentUnits != 0 || c.ApprovedAt != nil {
		t.Errorf("unexpected defaults: %+v", c)
	}
	if c.CreatedTS() != now.Unix() {
		t.Errorf("CreatedTS = %d", c.CreatedTS())
	}
}

func TestNew_MissingFields(t *testing.T) {
	d := validDraft()
	d.BloodBankName = ""
	if _, err := New(d, now); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v", err)
	}
}

func TestNew_BadBloodType(t *testing.T) {
	d := validDraft()
	d.BloodTypes = []string{"O+", "universal"}
	if _, err := New(d, now); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v", err)
	}
}

func TestCreatedTS_MissingIsZero(t *testing.T) {
	var c Campaign
	if c.CreatedTS() != 0 {
		t.Errorf("CreatedTS = %d, want 0", c.CreatedTS())
	}
}

func TestWithStatus(t *testing.T) {
	c, _ := New(validDraft(), now)
	later := now.Add(time.Hour)

	approved := c.WithStatus(StatusApproved, "looks good", later)
	if !approved.Approved || approved.ApprovedAt == nil || !approved.ApprovedAt.Equal(later) {
		t.Errorf("approval not stamped: %+v", approved)
	}
	if approved.AdminNotes != "looks good" {
		t.Errorf("AdminNotes = %q", approved.AdminNotes)
	}

	rejected := approved.WithStatus(StatusRejected, "", later.Add(time.Hour))
	if rejected.Approved {
		t.Error("rejected campaign must not be approved")
	}
	if rejected.ApprovedAt == nil || !rejected.ApprovedAt.Equal(later) {
		t.Error("earlier approval stamp must be kept")
	}
	if c.Status != StatusPending {
		t.Error("WithStatus must not mutate the receiver")
	}
}

func TestParseStatus(t *testing.T) {
	if _, err := ParseStatus("approved"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := ParseStatus("completed"); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("err = %v", err)
	}
}

func TestPatch(t *testing.T) {
	c, _ := New(validDraft(), now)
	cur := 12
	types := []string{"A+"}
	p := Patch{CurrentUnits: &cur, BloodTypes: &types}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Apply(c, now.Add(time.Minute))
	if got.CurrentUnits != 12 || len(got.BloodTypes) != 1 || got.BloodTypes[0] != bloodtype.APos {
		t.Errorf("unexpected: %+v", got)
	}
	if got.Status != c.Status {
		t.Error("patch must not touch review status")
	}
}

func TestFilter_Matches(t *testing.T) {
	c := Campaign{Status: StatusApproved, Location: "Lagos", BloodBankID: "X", BloodTypes: []bloodtype.Type{"O+"}}
	cases := []struct {
		f    Filter
		want bool
	}{
		{Filter{}, true},
		{Filter{Status: "approved", Location: "Lagos"}, true},
		{Filter{Location: "Accra"}, false},
		{Filter{BloodBankID: "X", BloodType: "O+"}, true},
		{Filter{BloodType: "O-"}, false},
	}
	for _, tc := range cases {
		if got := tc.f.Matches(&c); got != tc.want {
			t.Errorf("Matches(%+v) = %v, want %v", tc.f, got, tc.want)
		}
	}
}

func TestSortNewestFirst(t *testing.T) {
	cs := []Campaign{
		{ID: "old", CreatedAt: time.Unix(100, 0)},
		{ID: "missing"},
		{ID: "new", CreatedAt: time.Unix(200, 0)},
		{ID: "tieA", CreatedAt: time.Unix(150, 0)},
		{ID: "tieB", CreatedAt: time.Unix(150, 0)},
	}
	SortNewestFirst(cs)
	want := []string{"new", "tieA", "tieB", "old", "missing"}
	for i, id := range want {
		if cs[i].ID != id {
			t.Fatalf("order = %v, want %v", ids(cs), want)
		}
	}
}

func ids(cs []Campaign) []string {
	out := make([]string, len(cs))
	for i := range cs {
		out[i] = cs[i].ID
	}
	return out
}
