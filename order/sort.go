package order

import (
	"slices"

	"github.com/tsawler/redaction/model"
)

// Sort orders items in place. Items that compare Equal may be reordered.
func Sort[S ~[]E, E model.RankedItem](o *Orderer, items S) {
	slices.SortFunc(items, func(a, b E) int {
		return o.Compare(a, b)
	})
}

// SortStable orders items in place, keeping Equal items in input order
func SortStable[S ~[]E, E model.RankedItem](o *Orderer, items S) {
	slices.SortStableFunc(items, func(a, b E) int {
		return o.Compare(a, b)
	})
}

// Sorted returns a stably sorted copy of items
func Sorted[S ~[]E, E model.RankedItem](o *Orderer, items S) S {
	out := slices.Clone(items)
	SortStable(o, out)
	return out
}

// IsSorted reports whether items are in non-decreasing order
func IsSorted[S ~[]E, E model.RankedItem](o *Orderer, items S) bool {
	return slices.IsSortedFunc(items, func(a, b E) int {
		return o.Compare(a, b)
	})
}

// Insert adds item to an already sorted slice, after any items it
// compares Equal to, and returns the new slice and the insertion index
func Insert[S ~[]E, E model.RankedItem](o *Orderer, items S, item E) (S, int) {
	i, _ := slices.BinarySearchFunc(items, item, func(existing, target E) int {
		if o.Compare(existing, target) == Greater {
			return Greater
		}
		return Less
	})
	return slices.Insert(items, i, item), i
}

// ByPosition implements sort.Interface over ranked items
type ByPosition struct {
	Items   []model.RankedItem
	Orderer *Orderer
}

func (p ByPosition) Len() int           { return len(p.Items) }
func (p ByPosition) Less(i, j int) bool { return p.Orderer.Less(p.Items[i], p.Items[j]) }
func (p ByPosition) Swap(i, j int)      { p.Items[i], p.Items[j] = p.Items[j], p.Items[i] }
