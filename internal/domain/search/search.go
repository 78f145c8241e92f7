// Package search holds the inputs and derived views of bank-availability search.
package search

import (
	"net/url"
	"strings"

	"github.com/kailas-cloud/redrelief/internal/domain"
	"github.com/kailas-cloud/redrelief/internal/domain/bank"
	"github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

// UrgencyHigh orders results by total available units.
const UrgencyHigh = "high"

// Query is a normalized blood-type search.
type Query struct {
	BloodType string
	City      string
	Urgency   string
}

// NewQuery decodes and trims the blood type and rejects it when empty.
// The blood type is kept verbatim otherwise: unknown labels simply match nothing.
func NewQuery(bloodType, city, urgency string) (Query, error) {
	bt := NormalizeBloodType(bloodType)
	if bt == "" {
		return Query{}, domain.NewValidation("Blood type is required")
	}
	return Query{BloodType: bt, City: city, Urgency: urgency}, nil
}

// NewLiteralQuery builds a query from an already-decoded blood type, matched as given.
func NewLiteralQuery(bloodType, city string) (Query, error) {
	if bloodType == "" {
		return Query{}, domain.NewValidation("Blood type is required")
	}
	return Query{BloodType: bloodType, City: city}, nil
}

// NormalizeBloodType undoes one extra level of percent-encoding and trims spaces.
// A literal "+" is kept: only %2B decodes to a plus sign.
func NormalizeBloodType(s string) string {
	if dec, err := url.PathUnescape(s); err == nil {
		s = dec
	}
	return strings.TrimSpace(s)
}

// RankByAvailability reports whether results should be ordered by total units.
func (q *Query) RankByAvailability() bool {
	return q.Urgency == UrgencyHigh
}

// AggregatedBank is a bank joined with its matching inventory.
type AggregatedBank struct {
	Bank           bank.Bank
	Inventory      []inventory.Item
	TotalAvailable int
}

// NewAggregatedBank joins b with items and sums their units.
func NewAggregatedBank(b bank.Bank, items []inventory.Item) AggregatedBank {
	total := 0
	for i := range items {
		total += items[i].AvailableUnits
	}
	return AggregatedBank{Bank: b, Inventory: items, TotalAvailable: total}
}

// SlimBank is the compact listing row for blood-type lookups.
type SlimBank struct {
	ID             string
	Name           string
	Address        string
	City           string
	Phone          string
	AvailableUnits int
}

// Slim projects a onto its compact form.
func (a *AggregatedBank) Slim() SlimBank {
	return SlimBank{
		ID:             a.Bank.ID,
		Name:           a.Bank.Name,
		Address:        a.Bank.Address,
		City:           a.Bank.City,
		Phone:          a.Bank.Phone,
		AvailableUnits: a.TotalAvailable,
	}
}
