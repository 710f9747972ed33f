package redaction

import (
	"github.com/tsawler/redaction/exemption"
	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
)

// LoadOptions holds configuration for loading and ordering items.
type LoadOptions struct {
	// Item filtering
	pages  []int
	levels []model.ConfidenceLevel

	// Ordering
	order order.Config

	// Validation against an exemption-code catalog
	catalog *exemption.Catalog
}

// defaultOptions returns the default load options.
func defaultOptions() LoadOptions {
	return LoadOptions{
		pages:  nil, // nil means all pages
		levels: nil, // nil means all levels
		order:  order.DefaultConfig(),
	}
}

// clone creates a deep copy of LoadOptions.
func (o LoadOptions) clone() LoadOptions {
	newOpts := LoadOptions{
		order:   o.order,
		catalog: o.catalog,
	}

	if o.pages != nil {
		newOpts.pages = make([]int, len(o.pages))
		copy(newOpts.pages, o.pages)
	}
	if o.levels != nil {
		newOpts.levels = make([]model.ConfidenceLevel, len(o.levels))
		copy(newOpts.levels, o.levels)
	}

	return newOpts
}

// keep reports whether an item passes the page and level filters
func (o LoadOptions) keep(item *model.Redaction) bool {
	if len(o.levels) > 0 && !containsLevel(o.levels, item.Confidence) {
		return false
	}
	if len(o.pages) == 0 {
		return true
	}
	for _, page := range item.Pages() {
		for _, want := range o.pages {
			if page == want {
				return true
			}
		}
	}
	return false
}

func containsLevel(levels []model.ConfidenceLevel, level model.ConfidenceLevel) bool {
	for _, l := range levels {
		if l == level {
			return true
		}
	}
	return false
}
