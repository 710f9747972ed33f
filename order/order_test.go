package order

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tsawler/redaction/model"
)

// makeItem creates a redaction with one zone per region given
func makeItem(id string, regions ...model.Region) *model.Redaction {
	return &model.Redaction{ID: id, Zones: model.RegionSet(regions)}
}

// at creates a small region whose top-left corner is (left, top)
func at(page int, left, top float64) model.Region {
	return model.NewRegion(page, left, top, left+40, top+12)
}

// valueItem is a non-pointer ranked item
type valueItem struct {
	zones model.RegionSet
}

func (v valueItem) Regions() model.RegionSet { return v.zones }

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "ltr", LeftToRight.String())
	assert.Equal(t, "rtl", RightToLeft.String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, LeftToRight, config.Direction)
	assert.False(t, config.ExtendedKeys)

	var nilOrderer *Orderer
	assert.Equal(t, DefaultConfig(), nilOrderer.Config())
	assert.Equal(t, RightToLeft, NewOrdererWithConfig(Config{Direction: RightToLeft}).Config().Direction)
}

func TestCompareScenarios(t *testing.T) {
	o := NewOrderer()

	tests := []struct {
		name string
		a, b model.RankedItem
		want int
	}{
		{
			name: "higher on same page sorts first",
			a:    makeItem("A", at(1, 100, 10)),
			b:    makeItem("B", at(1, 100, 50)),
			want: Less,
		},
		{
			name: "page dominates vertical position",
			a:    makeItem("C", at(2, 100, 0)),
			b:    makeItem("D", at(1, 100, 900)),
			want: Greater,
		},
		{
			name: "same top breaks tie on left edge",
			a:    makeItem("E", at(1, 5, 30)),
			b:    makeItem("F", at(1, 20, 30)),
			want: Less,
		},
		{
			name: "identical geometry is equal",
			a:    makeItem("G", at(1, 5, 30)),
			b:    makeItem("H", at(1, 5, 30)),
			want: Equal,
		},
		{
			name: "topmost zone decides for multi-zone items",
			a:    makeItem("I", at(3, 0, 0), at(1, 300, 400)),
			b:    makeItem("J", at(1, 0, 200)),
			want: Greater,
		},
		{
			name: "no geometry sorts before any geometry",
			a:    makeItem("K"),
			b:    makeItem("L", at(1, 0, 0)),
			want: Less,
		},
		{
			name: "both without geometry are equal",
			a:    makeItem("M"),
			b:    &model.Redaction{ID: "N", Zones: model.RegionSet{}},
			want: Equal,
		},
		{
			name: "malformed zones count as no geometry",
			a:    makeItem("O", at(1, 0, 0)),
			b:    makeItem("P", model.NewRegion(1, math.NaN(), 0, 1, 1), model.NewRegion(1, 10, 10, 0, 0)),
			want: Greater,
		},
		{
			name: "malformed zone is skipped when choosing topmost",
			a:    makeItem("Q", model.NewRegion(0, 0, 0, 1, 1), at(2, 0, 0)),
			b:    makeItem("R", at(1, 0, 500)),
			want: Greater,
		},
		{
			name: "single point regions still order",
			a:    makeItem("S", model.NewRegion(1, 5, 5, 5, 5)),
			b:    makeItem("T", model.NewRegion(1, 5, 6, 5, 6)),
			want: Less,
		},
		{
			name: "overlapping items order by top edge",
			a:    makeItem("U", model.NewRegion(1, 0, 10, 100, 100)),
			b:    makeItem("V", model.NewRegion(1, 10, 5, 50, 50)),
			want: Greater,
		},
		{
			name: "value items compare by geometry",
			a:    valueItem{zones: model.RegionSet{at(1, 0, 0)}},
			b:    valueItem{zones: model.RegionSet{at(1, 0, 1)}},
			want: Less,
		},
		{
			name: "bare region sets are items",
			a:    model.RegionSet{at(4, 0, 0)},
			b:    makeItem("W", at(3, 0, 0)),
			want: Greater,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, o.Compare(tt.b, tt.a), "reversed comparison")
		})
	}
}

func TestCompareNilPolicy(t *testing.T) {
	o := NewOrderer()
	present := makeItem("x", at(1, 0, 0))
	empty := makeItem("y")
	var typedNil *model.Redaction

	assert.Equal(t, Equal, o.Compare(nil, nil))
	assert.Equal(t, Less, o.Compare(nil, present))
	assert.Equal(t, Greater, o.Compare(present, nil))
	assert.Equal(t, Less, o.Compare(nil, empty), "absent sorts before present without geometry")
	assert.Equal(t, Greater, o.Compare(empty, nil))

	assert.Equal(t, Equal, o.Compare(typedNil, nil), "typed nil is absent")
	assert.Equal(t, Equal, o.Compare(typedNil, typedNil))
	assert.Equal(t, Less, o.Compare(typedNil, present))
	assert.Equal(t, Greater, o.Compare(present, typedNil))
}

func TestCompareIdentity(t *testing.T) {
	o := NewOrderer()
	item := makeItem("same", at(1, 10, 10))
	assert.Equal(t, Equal, o.Compare(item, item))

	malformed := makeItem("bad", model.NewRegion(1, math.NaN(), math.NaN(), 0, 0))
	assert.Equal(t, Equal, o.Compare(malformed, malformed))
}

func TestCompareNilOrderer(t *testing.T) {
	var o *Orderer
	assert.Equal(t, Less, o.Compare(makeItem("a", at(1, 0, 0)), makeItem("b", at(1, 0, 10))))
	assert.True(t, o.Less(nil, makeItem("c")))
}

func TestCompareRightToLeft(t *testing.T) {
	o := NewOrdererWithConfig(Config{Direction: RightToLeft})

	// Same top; the right-hand item is read first
	left := makeItem("left", model.NewRegion(1, 10, 50, 60, 60))
	right := makeItem("right", model.NewRegion(1, 300, 50, 400, 60))

	assert.Equal(t, Greater, o.Compare(left, right))
	assert.Equal(t, Less, NewOrderer().Compare(left, right))

	// Vertical order is unaffected by direction
	above := makeItem("above", model.NewRegion(1, 10, 10, 60, 20))
	assert.Equal(t, Less, o.Compare(above, right))
}

func TestCompareExtendedKeys(t *testing.T) {
	basic := NewOrderer()
	extended := NewOrdererWithConfig(Config{ExtendedKeys: true})

	tests := []struct {
		name     string
		a, b     *model.Redaction
		basic    int
		extended int
	}{
		{
			name:     "shorter zone first",
			a:        makeItem("a", model.NewRegion(1, 0, 0, 50, 10)),
			b:        makeItem("b", model.NewRegion(1, 0, 0, 50, 20)),
			basic:    Equal,
			extended: Less,
		},
		{
			name:     "narrower zone first",
			a:        makeItem("a", model.NewRegion(1, 0, 0, 80, 10)),
			b:        makeItem("b", model.NewRegion(1, 0, 0, 50, 10)),
			basic:    Equal,
			extended: Greater,
		},
		{
			name:     "second zone decides",
			a:        makeItem("a", at(1, 0, 0), at(2, 0, 0)),
			b:        makeItem("b", at(1, 0, 0), at(1, 0, 300)),
			basic:    Equal,
			extended: Greater,
		},
		{
			name:     "fewer zones first",
			a:        makeItem("a", at(1, 0, 0)),
			b:        makeItem("b", at(1, 0, 0), at(1, 0, 300)),
			basic:    Equal,
			extended: Less,
		},
		{
			name:     "zone order in the set does not matter",
			a:        makeItem("a", at(2, 0, 0), at(1, 0, 0)),
			b:        makeItem("b", at(1, 0, 0), at(2, 0, 0)),
			basic:    Equal,
			extended: Equal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.basic, basic.Compare(tt.a, tt.b))
			assert.Equal(t, tt.extended, extended.Compare(tt.a, tt.b))
			assert.Equal(t, -tt.extended, extended.Compare(tt.b, tt.a))
		})
	}
}

func TestTopmost(t *testing.T) {
	set := model.RegionSet{
		model.NewRegion(1, 300, 50, 400, 60),
		model.NewRegion(0, 0, 0, 1, 1),
		model.NewRegion(1, 10, 50, 60, 60),
		model.NewRegion(2, 0, 0, 10, 10),
	}

	got, ok := NewOrderer().Topmost(set)
	assert.True(t, ok)
	assert.Equal(t, set[2], got, "left-to-right reads the left zone first")

	got, ok = NewOrdererWithConfig(Config{Direction: RightToLeft}).Topmost(set)
	assert.True(t, ok)
	assert.Equal(t, set[0], got, "right-to-left reads the right zone first")

	_, ok = NewOrderer().Topmost(model.RegionSet{model.NewRegion(1, math.NaN(), 0, 1, 1)})
	assert.False(t, ok)
	_, ok = NewOrderer().Topmost(nil)
	assert.False(t, ok)
}

func TestCompareRegions(t *testing.T) {
	o := NewOrderer()
	assert.Equal(t, Equal, o.CompareRegions(nil, nil))
	assert.Equal(t, Less, o.CompareRegions(nil, model.RegionSet{at(1, 0, 0)}))
	assert.Equal(t, Greater, o.CompareRegions(model.RegionSet{at(1, 0, 0)}, model.RegionSet{}))
	assert.Equal(t, Less, o.CompareRegions(model.RegionSet{at(1, 0, 0)}, model.RegionSet{at(1, 1, 0)}))
}
