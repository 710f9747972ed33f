package order

import (
	"cmp"
	"slices"

	"github.com/tsawler/redaction/model"
)

// leading returns the edge a reader reaches first on a line
func (o *Orderer) leading(r model.Region) float64 {
	if o.Config().Direction == RightToLeft {
		return -r.Right
	}
	return r.Left
}

// trailing returns the edge a reader reaches last on a line
func (o *Orderer) trailing(r model.Region) float64 {
	if o.Config().Direction == RightToLeft {
		return -r.Left
	}
	return r.Right
}

// compareAnchor compares two regions by page, top and leading edge only
func (o *Orderer) compareAnchor(a, b model.Region) int {
	if c := cmp.Compare(a.Page, b.Page); c != Equal {
		return c
	}
	if c := cmp.Compare(a.Top, b.Top); c != Equal {
		return c
	}
	return cmp.Compare(o.leading(a), o.leading(b))
}

// compareRegion extends compareAnchor with the bottom and trailing edges
func (o *Orderer) compareRegion(a, b model.Region) int {
	if c := o.compareAnchor(a, b); c != Equal {
		return c
	}
	if c := cmp.Compare(a.Bottom, b.Bottom); c != Equal {
		return c
	}
	return cmp.Compare(o.trailing(a), o.trailing(b))
}

// topmost returns the first region in reading order. The set must be
// non-empty and contain only valid regions.
func (o *Orderer) topmost(set model.RegionSet) model.Region {
	best := set[0]
	for _, r := range set[1:] {
		if o.compareRegion(r, best) == Less {
			best = r
		}
	}
	return best
}

// sortRegions returns a reading-order copy of a set of valid regions
func (o *Orderer) sortRegions(set model.RegionSet) model.RegionSet {
	sorted := slices.Clone(set)
	slices.SortStableFunc(sorted, o.compareRegion)
	return sorted
}
