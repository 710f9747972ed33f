package order

import (
	"cmp"
	"reflect"

	"github.com/tsawler/redaction/model"
)

// Comparison results
const (
	Less    = -1
	Equal   = 0
	Greater = 1
)

// Direction is the horizontal reading direction used to break ties
// between regions that start at the same height
type Direction int

const (
	// LeftToRight orders by ascending left edge
	LeftToRight Direction = iota
	// RightToLeft orders by descending right edge, for Arabic, Hebrew, etc.
	RightToLeft
)

// String returns a string representation of the reading direction
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// Config holds configuration for spatial ordering
type Config struct {
	// Direction is the horizontal reading direction
	Direction Direction

	// ExtendedKeys when true keeps comparing after page, top and leading
	// edge: bottom edge, trailing edge, then the remaining regions of each
	// item, then the number of regions. When false, items whose topmost
	// regions share page, top and leading edge compare Equal.
	ExtendedKeys bool
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Direction:    LeftToRight,
		ExtendedKeys: false,
	}
}

// Orderer compares ranked items by their position in the document
type Orderer struct {
	config Config
}

// NewOrderer creates an orderer with default configuration
func NewOrderer() *Orderer {
	return &Orderer{
		config: DefaultConfig(),
	}
}

// NewOrdererWithConfig creates an orderer with custom configuration
func NewOrdererWithConfig(config Config) *Orderer {
	return &Orderer{
		config: config,
	}
}

// Config returns the orderer's configuration. A nil Orderer reports the
// default configuration.
func (o *Orderer) Config() Config {
	if o == nil {
		return DefaultConfig()
	}
	return o.config
}

// Compare returns Less, Equal or Greater according to where a and b appear
// in the document. It never panics for nil, empty or malformed input.
func (o *Orderer) Compare(a, b model.RankedItem) int {
	aAbsent, bAbsent := isAbsent(a), isAbsent(b)
	switch {
	case aAbsent && bAbsent:
		return Equal
	case aAbsent:
		return Less
	case bAbsent:
		return Greater
	}

	if sameItem(a, b) {
		return Equal
	}

	return o.CompareRegions(a.Regions(), b.Regions())
}

// CompareRegions compares two region sets. Sets with no valid region sort
// first and compare Equal to each other.
func (o *Orderer) CompareRegions(a, b model.RegionSet) int {
	va, vb := a.Valid(), b.Valid()
	switch {
	case len(va) == 0 && len(vb) == 0:
		return Equal
	case len(va) == 0:
		return Less
	case len(vb) == 0:
		return Greater
	}

	config := o.Config()
	if !config.ExtendedKeys {
		return o.compareAnchor(o.topmost(va), o.topmost(vb))
	}

	sa, sb := o.sortRegions(va), o.sortRegions(vb)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if c := o.compareRegion(sa[i], sb[i]); c != Equal {
			return c
		}
	}
	return cmp.Compare(len(sa), len(sb))
}

// Topmost returns the region that decides where set sorts: the first valid
// region in reading order. It reports false when no region is valid.
func (o *Orderer) Topmost(set model.RegionSet) (model.Region, bool) {
	valid := set.Valid()
	if len(valid) == 0 {
		return model.Region{}, false
	}
	return o.topmost(valid), true
}

// Less reports whether a sorts strictly before b
func (o *Orderer) Less(a, b model.RankedItem) bool {
	return o.Compare(a, b) == Less
}

// isAbsent treats both a nil interface and a typed nil pointer as absent
func isAbsent(item model.RankedItem) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// sameItem reports whether a and b are the same pointer. Value types
// have no identity and fall through to the geometric comparison.
func sameItem(a, b model.RankedItem) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || va.Type() != vb.Type() {
		return false
	}
	return va.Pointer() == vb.Pointer()
}
