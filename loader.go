package redaction

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/tsawler/redaction/exemption"
	"github.com/tsawler/redaction/model"
	"github.com/tsawler/redaction/order"
	"github.com/tsawler/redaction/verify"
)

// Coordinate systems accepted in input files
const (
	CoordinatesRaster = "raster"
	CoordinatesPDF    = "pdf"
)

// duplicateOverlap is the share of the smaller zone two items must cover
// together before the later one is reported as a likely duplicate
const duplicateOverlap = 0.9

// file is the on-disk layout of an input file
type file struct {
	Coordinates string             `yaml:"coordinates"`
	PageHeight  float64            `yaml:"page_height"`
	Redactions  []*model.Redaction `yaml:"redactions"`
}

// Loader reads redactions and applies filters and ordering options.
// Each option method returns a new Loader, so a base Loader can be shared.
type Loader struct {
	// Source
	filename string
	data     []byte
	hasData  bool

	// Configuration
	options LoadOptions
}

// clone creates a copy of the Loader with a deep copy of options.
func (l *Loader) clone() *Loader {
	return &Loader{
		filename: l.filename,
		data:     l.data,
		hasData:  l.hasData,
		options:  l.options.clone(),
	}
}

// Pages restricts the result to items touching any of the given pages
// (1-indexed). Items without geometry are dropped when a page filter is set.
func (l *Loader) Pages(pages ...int) *Loader {
	newLoader := l.clone()
	newLoader.options.pages = append(newLoader.options.pages, pages...)
	return newLoader
}

// PageRange restricts the result to pages start through end inclusive
func (l *Loader) PageRange(start, end int) *Loader {
	var pages []int
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return l.Pages(pages...)
}

// Levels restricts the result to the given confidence levels
func (l *Loader) Levels(levels ...model.ConfidenceLevel) *Loader {
	newLoader := l.clone()
	newLoader.options.levels = append(newLoader.options.levels, levels...)
	return newLoader
}

// Direction sets the reading direction used to break ties on a line
func (l *Loader) Direction(d order.Direction) *Loader {
	newLoader := l.clone()
	newLoader.options.order.Direction = d
	return newLoader
}

// ExtendedKeys compares every zone of each item rather than only the
// topmost one
func (l *Loader) ExtendedKeys() *Loader {
	newLoader := l.clone()
	newLoader.options.order.ExtendedKeys = true
	return newLoader
}

// OrderConfig replaces the whole ordering configuration
func (l *Loader) OrderConfig(config order.Config) *Loader {
	newLoader := l.clone()
	newLoader.options.order = config
	return newLoader
}

// Catalog validates each item's exemption codes against c. Unknown codes
// are reported as warnings.
func (l *Loader) Catalog(c *exemption.Catalog) *Loader {
	newLoader := l.clone()
	newLoader.options.catalog = c
	return newLoader
}

// Orderer returns the orderer configured by this Loader's options
func (l *Loader) Orderer() *order.Orderer {
	return order.NewOrdererWithConfig(l.options.order)
}

// Items reads and filters the items, keeping file order
func (l *Loader) Items() ([]*model.Redaction, []Warning, error) {
	data, err := l.read()
	if err != nil {
		return nil, nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", l.source(), err)
	}

	convert, err := coordinateConverter(f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", l.source(), err)
	}

	var (
		items    []*model.Redaction
		seen     []*model.Redaction
		warnings []Warning
	)
	for i, item := range f.Redactions {
		if item == nil {
			warnings = append(warnings, Warning{Message: fmt.Sprintf("entry %d is empty", i+1)})
			continue
		}
		if item.ID == "" {
			item.ID = fmt.Sprintf("#%d", i+1)
		}
		for j, z := range item.Zones {
			item.Zones[j] = convert(z)
		}

		warnings = append(warnings, l.check(item)...)
		warnings = append(warnings, duplicates(item, seen)...)
		seen = append(seen, item)
		if l.options.keep(item) {
			items = append(items, item)
		}
	}

	return items, warnings, nil
}

// Sorted reads the items and returns them in review order
func (l *Loader) Sorted() ([]*model.Redaction, []Warning, error) {
	items, warnings, err := l.Items()
	if err != nil {
		return nil, warnings, err
	}
	order.SortStable(l.Orderer(), items)
	return items, warnings, nil
}

// Session reads the items into a new review session
func (l *Loader) Session(logger *zap.Logger) (*verify.Session, []Warning, error) {
	items, warnings, err := l.Items()
	if err != nil {
		return nil, warnings, err
	}
	return verify.NewSession(l.Orderer(), logger, items...), warnings, nil
}

// Counts reads the items and tallies them
func (l *Loader) Counts() (verify.Counts, []Warning, error) {
	s, warnings, err := l.Session(nil)
	if err != nil {
		return verify.Counts{}, warnings, err
	}
	return s.Counts(), warnings, nil
}

func (l *Loader) source() string {
	if l.hasData {
		return "input"
	}
	return l.filename
}

func (l *Loader) read() ([]byte, error) {
	if l.hasData {
		return l.data, nil
	}
	if l.filename == "" {
		return nil, errors.New("no input file")
	}
	data, err := os.ReadFile(l.filename)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", l.filename, err)
	}
	return data, nil
}

// check reports geometry the orderer will ignore and unknown exemption codes
func (l *Loader) check(item *model.Redaction) []Warning {
	var warnings []Warning
	for j, z := range item.Zones {
		if !z.IsValid() {
			warnings = append(warnings, Warning{
				ItemID:  item.ID,
				Message: fmt.Sprintf("zone %d is malformed and will be ignored for ordering", j+1),
			})
		}
	}
	if l.options.catalog != nil {
		list := exemption.FromModel(item.Exemptions)
		if !list.IsEmpty() {
			if err := list.Validate(l.options.catalog); err != nil {
				warnings = append(warnings, Warning{ItemID: item.ID, Message: err.Error()})
			}
			item.Exemptions = list.Canonical(l.options.catalog).Model()
		}
	}
	return warnings
}

// duplicates reports earlier items whose zones nearly coincide with item's
func duplicates(item *model.Redaction, earlier []*model.Redaction) []Warning {
	var warnings []Warning
	for _, other := range earlier {
		if item.Zones.MaxOverlapRatio(other.Zones) >= duplicateOverlap {
			warnings = append(warnings, Warning{
				ItemID:  item.ID,
				Message: fmt.Sprintf("covers the same area as %s", other.ID),
			})
		}
	}
	return warnings
}

// coordinateConverter returns the zone conversion for the file's
// coordinate system
func coordinateConverter(f file) (func(model.Region) model.Region, error) {
	switch strings.ToLower(strings.TrimSpace(f.Coordinates)) {
	case "", CoordinatesRaster:
		return func(r model.Region) model.Region { return r }, nil
	case CoordinatesPDF:
		if f.PageHeight <= 0 {
			return nil, errors.New("pdf coordinates require a positive page_height")
		}
		// In PDF space Top is the upper edge, which has the larger Y
		return func(r model.Region) model.Region {
			return model.NewRegionFromPDF(r.Page, r.Left, r.Bottom, r.Right, r.Top, f.PageHeight)
		}, nil
	default:
		return nil, fmt.Errorf("unknown coordinates %q", f.Coordinates)
	}
}
