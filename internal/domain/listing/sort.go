package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortCriterion selects the order of a listing sequence.
type SortCriterion string

const (
	SortDefault   SortCriterion = "default"
	SortPriceAsc  SortCriterion = "price_asc"
	SortPriceDesc SortCriterion = "price_desc"
	SortNameAsc   SortCriterion = "name_asc"
)

// IsValid returns true if the criterion is recognized.
func (s SortCriterion) IsValid() bool {
	switch s {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return true
	}
	return false
}

// ParseSortCriterion converts a query value into a SortCriterion. An empty
// value means SortDefault.
func ParseSortCriterion(s string) (SortCriterion, error) {
	if strings.TrimSpace(s) == "" {
		return SortDefault, nil
	}
	c := SortCriterion(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid sort criterion: %s", s)
	}
	return c, nil
}

// SortedBy returns a new slice ordered by criterion. Every sort is stable
// and SortDefault keeps input order. The input slice is not modified.
func SortedBy(criterion SortCriterion, input []*Listing) []*Listing {
	out := slices.Clone(input)

	var compare func(a, b *Listing) int
	switch criterion {
	case SortPriceAsc:
		compare = func(a, b *Listing) int { return cmp.Compare(a.NightlyRate(), b.NightlyRate()) }
	case SortPriceDesc:
		compare = func(a, b *Listing) int { return cmp.Compare(b.NightlyRate(), a.NightlyRate()) }
	case SortNameAsc:
		compare = func(a, b *Listing) int { return strings.Compare(a.Name(), b.Name()) }
	default:
		return out
	}

	slices.SortStableFunc(out, compare)
	return out
}
