package model

import (
	"math"
	"reflect"
	"testing"
)

// ============================================================================
// Region Tests
// ============================================================================

func TestNewRegionFromPDF(t *testing.T) {
	// 612x792 letter page, box near the top in PDF space
	got := NewRegionFromPDF(3, 72, 700, 300, 720, 792)
	want := Region{Page: 3, Left: 72, Top: 72, Right: 300, Bottom: 92}
	if got != want {
		t.Errorf("NewRegionFromPDF() = %+v, want %+v", got, want)
	}
}

func TestRegionDimensions(t *testing.T) {
	r := NewRegion(1, 10, 20, 110, 70)

	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", r.Area())
	}
}

func TestRegionIntersects(t *testing.T) {
	base := NewRegion(1, 0, 0, 100, 100)

	tests := []struct {
		name     string
		other    Region
		expected bool
	}{
		{"overlapping", NewRegion(1, 50, 50, 150, 150), true},
		{"touching edge", NewRegion(1, 100, 0, 200, 100), true},
		{"disjoint", NewRegion(1, 200, 200, 300, 300), false},
		{"same box other page", NewRegion(2, 0, 0, 100, 100), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expected {
				t.Errorf("Intersects() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRegionIntersection(t *testing.T) {
	a := NewRegion(1, 0, 0, 100, 100)
	b := NewRegion(1, 50, 25, 150, 75)

	if got, want := a.Intersection(b), NewRegion(1, 50, 25, 100, 75); got != want {
		t.Errorf("Intersection() = %+v, want %+v", got, want)
	}
	if got := a.Intersection(NewRegion(1, 500, 500, 600, 600)); got != (Region{}) {
		t.Errorf("Intersection() of disjoint regions = %+v, want zero", got)
	}
}

func TestRegionOverlapRatio(t *testing.T) {
	a := NewRegion(1, 0, 0, 100, 100)
	inner := NewRegion(1, 25, 25, 75, 75)
	half := NewRegion(1, 50, 0, 150, 100)

	if got := a.OverlapRatio(inner); got != 1 {
		t.Errorf("OverlapRatio(inner) = %v, want 1", got)
	}
	if got := a.OverlapRatio(half); math.Abs(got-0.5) > 0.0001 {
		t.Errorf("OverlapRatio(half) = %v, want 0.5", got)
	}
	if got := a.OverlapRatio(NewRegion(2, 0, 0, 100, 100)); got != 0 {
		t.Errorf("OverlapRatio(other page) = %v, want 0", got)
	}
}

func TestRegionIsValid(t *testing.T) {
	tests := []struct {
		name   string
		region Region
		valid  bool
	}{
		{"normal", NewRegion(1, 0, 0, 10, 10), true},
		{"single point", NewRegion(1, 5, 5, 5, 5), true},
		{"page zero", NewRegion(0, 0, 0, 10, 10), false},
		{"negative page", NewRegion(-2, 0, 0, 10, 10), false},
		{"inverted horizontally", NewRegion(1, 10, 0, 0, 10), false},
		{"inverted vertically", NewRegion(1, 0, 10, 10, 0), false},
		{"NaN", NewRegion(1, math.NaN(), 0, 10, 10), false},
		{"infinite", NewRegion(1, 0, 0, math.Inf(1), 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.region.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
			if !tt.valid && tt.region.Area() != 0 {
				t.Errorf("Area() of malformed region = %v, want 0", tt.region.Area())
			}
		})
	}
}

// ============================================================================
// RegionSet Tests
// ============================================================================

func TestRegionSetValid(t *testing.T) {
	set := RegionSet{
		NewRegion(2, 0, 0, 10, 10),
		NewRegion(1, math.NaN(), 0, 10, 10),
		NewRegion(1, 0, 0, 10, 10),
	}

	valid := set.Valid()
	if len(valid) != 2 {
		t.Fatalf("Valid() returned %d regions, want 2", len(valid))
	}
	if valid[0].Page != 2 || valid[1].Page != 1 {
		t.Errorf("Valid() did not preserve order: %+v", valid)
	}
	if len(set) != 3 {
		t.Error("Valid() modified the receiver")
	}
	if !set.HasGeometry() {
		t.Error("HasGeometry() = false, want true")
	}
	if (RegionSet{NewRegion(0, 0, 0, 1, 1)}).HasGeometry() {
		t.Error("HasGeometry() = true for a set of malformed regions")
	}
	if RegionSet(nil).HasGeometry() {
		t.Error("HasGeometry() = true for an empty set")
	}
}

func TestRegionSetPages(t *testing.T) {
	set := RegionSet{
		NewRegion(3, 0, 0, 10, 10),
		NewRegion(1, 0, 0, 10, 10),
		NewRegion(3, 20, 20, 30, 30),
		NewRegion(0, 0, 0, 10, 10),
	}

	if got, want := set.Pages(), []int{1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("Pages() = %v, want %v", got, want)
	}
}

func TestRegionSetMaxOverlapRatio(t *testing.T) {
	a := RegionSet{NewRegion(1, 0, 0, 10, 10), NewRegion(2, 0, 0, 10, 10)}

	tests := []struct {
		name  string
		other RegionSet
		want  float64
	}{
		{"quarter of one zone", RegionSet{NewRegion(1, 5, 5, 15, 15)}, 0.25},
		{"best pair wins", RegionSet{NewRegion(1, 5, 5, 15, 15), NewRegion(2, 1, 1, 9, 9)}, 1},
		{"other page", RegionSet{NewRegion(3, 0, 0, 10, 10)}, 0},
		{"malformed zone ignored", RegionSet{NewRegion(1, math.NaN(), 0, 10, 10)}, 0},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.MaxOverlapRatio(tt.other); math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("MaxOverlapRatio() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Item Tests
// ============================================================================

func TestRedactionNilSafe(t *testing.T) {
	var r *Redaction
	if r.Regions() != nil {
		t.Error("Regions() on nil redaction should be nil")
	}
	if r.IsClue() {
		t.Error("IsClue() on nil redaction should be false")
	}
	if r.Clone() != nil {
		t.Error("Clone() on nil redaction should be nil")
	}
}

func TestRedactionClone(t *testing.T) {
	orig := &Redaction{
		ID:         "r1",
		Zones:      RegionSet{NewRegion(1, 0, 0, 10, 10)},
		Exemptions: Exemptions{Category: "FOIA", Codes: []string{"(b)(6)"}},
	}
	c := orig.Clone()
	c.Zones[0].Page = 9
	c.Exemptions.Codes[0] = "(b)(7)"

	if orig.Zones[0].Page != 1 || orig.Exemptions.Codes[0] != "(b)(6)" {
		t.Error("Clone() shares slices with the original")
	}
}

func TestRedactionIsClue(t *testing.T) {
	tests := []struct {
		name string
		r    *Redaction
		want bool
	}{
		{"redaction", &Redaction{Kind: KindRedaction, Confidence: ConfidenceHigh}, false},
		{"clue kind", &Redaction{Kind: KindClue}, true},
		{"clue confidence", &Redaction{Confidence: ConfidenceClue}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsClue(); got != tt.want {
				t.Errorf("IsClue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindText(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("Clue")); err != nil || k != KindClue {
		t.Errorf("UnmarshalText(Clue) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("")); err != nil || k != KindRedaction {
		t.Errorf("UnmarshalText(\"\") = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("bogus")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

// ============================================================================
// ConfidenceLevel Tests
// ============================================================================

func TestParseConfidenceLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    ConfidenceLevel
		wantErr bool
	}{
		{"High", ConfidenceHigh, false},
		{"medium", ConfidenceMedium, false},
		{" L ", ConfidenceLow, false},
		{"clue", ConfidenceClue, false},
		{"U", ConfidenceManual, false},
		{"", ConfidenceUnknown, false},
		{"unknown", ConfidenceUnknown, false},
		{"extreme", ConfidenceUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConfidenceLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfidenceLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseConfidenceLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestConfidenceLevelString(t *testing.T) {
	for _, level := range ConfidenceLevels {
		text, err := level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText() error = %v", err)
		}
		var back ConfidenceLevel
		if err := back.UnmarshalText(text); err != nil || back != level {
			t.Errorf("round trip of %v gave %v, %v", level, back, err)
		}
	}
	if ConfidenceLevel(42).String() != "Unknown" {
		t.Error("out of range level should print Unknown")
	}
}
