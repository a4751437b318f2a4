package filter

import (
	"strings"
	"time"
)

// Affiliation is one of the sanctioning organizations a shoot can belong to.
type Affiliation string

const (
	AffiliationNSCA Affiliation = "NSCA"
	AffiliationNSSA Affiliation = "NSSA"
	AffiliationATA  Affiliation = "ATA"
)

// Affiliations lists the closed set in display order.
var Affiliations = []Affiliation{AffiliationNSCA, AffiliationNSSA, AffiliationATA}

// ParseAffiliation accepts a known affiliation tag in any case.
func ParseAffiliation(s string) (Affiliation, bool) {
	for _, a := range Affiliations {
		if strings.EqualFold(s, string(a)) {
			return a, true
		}
	}
	return "", false
}

// Spec is the user's current view. The zero value restricts nothing.
// Callers build a new Spec per change; Apply never modifies it.
type Spec struct {
	Search       string
	Affiliations []Affiliation
	Months       []time.Month
	States       []string
	FutureOnly   bool
	NotableOnly  bool
	MarkedOnly   bool
}

// Reset returns the unrestricted spec.
func Reset() Spec {
	return Spec{}
}

// IsDefault reports whether the spec restricts nothing.
func (s Spec) IsDefault() bool {
	return s.Search == "" &&
		len(s.Affiliations) == 0 &&
		len(s.Months) == 0 &&
		len(s.States) == 0 &&
		!s.FutureOnly &&
		!s.NotableOnly &&
		!s.MarkedOnly
}

// MarkedSet holds the shoot ids a user has marked. A nil set is empty.
type MarkedSet map[int64]struct{}

func NewMarkedSet(ids ...int64) MarkedSet {
	set := make(MarkedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (m MarkedSet) Has(id int64) bool {
	_, ok := m[id]
	return ok
}

// IDs returns the members in no particular order.
func (m MarkedSet) IDs() []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}
