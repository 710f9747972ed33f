package model

import "sort"

// RegionSet is the ordered list of regions making up one logical item,
// for example every raster zone of a single redaction. It may be empty.
type RegionSet []Region

// Valid returns the regions that pass Region.IsValid, preserving order.
// The receiver is never modified.
func (s RegionSet) Valid() RegionSet {
	var out RegionSet
	for _, r := range s {
		if r.IsValid() {
			out = append(out, r)
		}
	}
	return out
}

// HasGeometry reports whether at least one region is valid
func (s RegionSet) HasGeometry() bool {
	for _, r := range s {
		if r.IsValid() {
			return true
		}
	}
	return false
}

// Pages returns the distinct pages touched by valid regions, ascending
func (s RegionSet) Pages() []int {
	seen := make(map[int]bool)
	var pages []int
	for _, r := range s {
		if !r.IsValid() || seen[r.Page] {
			continue
		}
		seen[r.Page] = true
		pages = append(pages, r.Page)
	}
	sort.Ints(pages)
	return pages
}

// MaxOverlapRatio returns the largest OverlapRatio between any valid
// region of s and any valid region of other, 0 when nothing overlaps
func (s RegionSet) MaxOverlapRatio(other RegionSet) float64 {
	best := 0.0
	for _, a := range s {
		if !a.IsValid() {
			continue
		}
		for _, b := range other {
			if b.IsValid() {
				best = max(best, a.OverlapRatio(b))
			}
		}
	}
	return best
}

// Regions lets a bare RegionSet be ordered like any other item
func (s RegionSet) Regions() RegionSet {
	return s
}
