// Package bloodtype holds the ABO/Rh labels used across records.
// Matching is literal: no donor compatibility is implied.
package bloodtype

import "github.com/kailas-cloud/redrelief/internal/domain"

// Type is a blood group label such as "O+".
type Type string

// Blood group labels.
const (
	APos  Type = "A+"
	ANeg  Type = "A-"
	BPos  Type = "B+"
	BNeg  Type = "B-"
	ABPos Type = "AB+"
	ABNeg Type = "AB-"
	OPos  Type = "O+"
	ONeg  Type = "O-"
)

var all = []Type{APos, ANeg, BPos, BNeg, ABPos, ABNeg, OPos, ONeg}

// All returns every known label.
func All() []Type {
	out := make([]Type, len(all))
	copy(out, all)
	return out
}

// IsValid reports whether t is a known label.
func (t Type) IsValid() bool {
	for _, v := range all {
		if v == t {
			return true
		}
	}
	return false
}

// Parse validates s as a blood group label.
func Parse(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", domain.NewValidation("Invalid blood type: %q", s)
	}
	return t, nil
}

// ParseSet validates every label and drops duplicates, keeping first-appearance order.
func ParseSet(ss []string) ([]Type, error) {
	out := make([]Type, 0, len(ss))
	seen := make(map[Type]bool, len(ss))
	for _, s := range ss {
		t, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return out, nil
}
