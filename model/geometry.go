package model

import "math"

// Region is an axis-aligned rectangle on a single page of a document.
// Coordinates use the raster convention: Y grows downward, so Top <= Bottom
// for a well-formed region. Pages are 1-indexed.
type Region struct {
	Page   int     `yaml:"page" json:"page"`
	Left   float64 `yaml:"left" json:"left"`
	Top    float64 `yaml:"top" json:"top"`
	Right  float64 `yaml:"right" json:"right"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// NewRegion creates a region from its edges
func NewRegion(page int, left, top, right, bottom float64) Region {
	return Region{Page: page, Left: left, Top: top, Right: right, Bottom: bottom}
}

// NewRegionFromPDF converts a PDF rectangle (lower-left and upper-right
// corners, Y growing upward) into a raster region on a page of the given
// height.
func NewRegionFromPDF(page int, llx, lly, urx, ury, pageHeight float64) Region {
	return Region{
		Page:   page,
		Left:   math.Min(llx, urx),
		Top:    pageHeight - math.Max(lly, ury),
		Right:  math.Max(llx, urx),
		Bottom: pageHeight - math.Min(lly, ury),
	}
}

// Width returns the horizontal extent
func (r Region) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent
func (r Region) Height() float64 {
	return r.Bottom - r.Top
}

// Area returns the area of the region. Malformed regions have no area.
func (r Region) Area() float64 {
	if !r.IsValid() {
		return 0
	}
	return r.Width() * r.Height()
}

// Intersects checks if two regions on the same page touch or overlap
func (r Region) Intersects(other Region) bool {
	if r.Page != other.Page {
		return false
	}
	return !(r.Right < other.Left ||
		r.Left > other.Right ||
		r.Bottom < other.Top ||
		r.Top > other.Bottom)
}

// Intersection returns the overlapping part of two regions.
// Regions that do not intersect yield the zero Region.
func (r Region) Intersection(other Region) Region {
	if !r.Intersects(other) {
		return Region{}
	}

	return Region{
		Page:   r.Page,
		Left:   math.Max(r.Left, other.Left),
		Top:    math.Max(r.Top, other.Top),
		Right:  math.Min(r.Right, other.Right),
		Bottom: math.Min(r.Bottom, other.Bottom),
	}
}

// OverlapRatio calculates the overlap area relative to the smaller region.
// Returns value between 0 and 1
func (r Region) OverlapRatio(other Region) float64 {
	if !r.Intersects(other) {
		return 0
	}

	intersection := r.Intersection(other)
	minArea := math.Min(r.Area(), other.Area())

	if minArea == 0 {
		return 0
	}

	return intersection.Area() / minArea
}

// IsValid reports whether the region can take part in spatial ordering:
// a page number of at least 1, finite coordinates and non-inverted edges.
// Degenerate regions (a single point or a line) are valid.
func (r Region) IsValid() bool {
	if r.Page < 1 {
		return false
	}
	for _, v := range [...]float64{r.Left, r.Top, r.Right, r.Bottom} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return r.Left <= r.Right && r.Top <= r.Bottom
}
