package bloodtype

import (
	"errors"
	"testing"

	"github.com/kailas-cloud/redrelief/internal/domain"
)

func TestParse(t *testing.T) {
	for _, s := range []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"} {
		if _, err := Parse(s); err != nil {
			t.Errorf("Parse(%q): %v", s, err)
		}
	}
	for _, s := range []string{"", "o+", "A", "AB", "O +", "C+"} {
		_, err := Parse(s)
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Parse(%q) err = %v, want validation error", s, err)
		}
	}
}

func TestParseSet_Dedup(t *testing.T) {
	got, err := ParseSet([]string{"O+", "A-", "O+"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != OPos || got[1] != ANeg {
		t.Errorf("ParseSet = %v", got)
	}
}

func TestAll_IsCopy(t *testing.T) {
	a := All()
	a[0] = "X"
	if All()[0] != APos {
		t.Error("All must return a copy")
	}
}
