package model

import (
	"fmt"
	"strings"
)

// RankedItem is anything shown in the verification list that can be put
// in spatial order. Implementations only need to expose their geometry;
// a nil RankedItem (or a typed nil pointer) is a valid, absent item.
type RankedItem interface {
	Regions() RegionSet
}

// Kind distinguishes confirmed redactions from clues
type Kind int

const (
	KindRedaction Kind = iota
	KindClue
)

// String returns a string representation of the kind
func (k Kind) String() string {
	if k == KindClue {
		return "clue"
	}
	return "redaction"
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(data []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(data))) {
	case "", "redaction":
		*k = KindRedaction
	case "clue":
		*k = KindClue
	default:
		return fmt.Errorf("unknown item kind %q", string(data))
	}
	return nil
}

// Exemptions holds the exemption codes applied to a redaction
type Exemptions struct {
	Category string   `yaml:"category,omitempty" json:"category,omitempty"`
	Codes    []string `yaml:"codes,omitempty" json:"codes,omitempty"`
	Other    string   `yaml:"other,omitempty" json:"other,omitempty"`
}

// Redaction is a redaction or clue found in a document, together with the
// raster zones it covers.
type Redaction struct {
	ID         string          `yaml:"id" json:"id"`
	Kind       Kind            `yaml:"kind,omitempty" json:"kind,omitempty"`
	Text       string          `yaml:"text,omitempty" json:"text,omitempty"`
	Category   string          `yaml:"category,omitempty" json:"category,omitempty"`
	Confidence ConfidenceLevel `yaml:"confidence,omitempty" json:"confidence,omitempty"`
	Exemptions Exemptions      `yaml:"exemptions,omitempty" json:"exemptions,omitempty"`
	Zones      RegionSet       `yaml:"zones,omitempty" json:"zones,omitempty"`
}

// Regions returns the raster zones of the redaction. Safe on a nil receiver.
func (r *Redaction) Regions() RegionSet {
	if r == nil {
		return nil
	}
	return r.Zones
}

// IsClue reports whether the item is an unconfirmed clue
func (r *Redaction) IsClue() bool {
	return r != nil && (r.Kind == KindClue || r.Confidence == ConfidenceClue)
}

// Pages returns the pages the redaction touches
func (r *Redaction) Pages() []int {
	return r.Regions().Pages()
}

// Clone returns a deep copy of the redaction
func (r *Redaction) Clone() *Redaction {
	if r == nil {
		return nil
	}
	c := *r
	if r.Zones != nil {
		c.Zones = make(RegionSet, len(r.Zones))
		copy(c.Zones, r.Zones)
	}
	if r.Exemptions.Codes != nil {
		c.Exemptions.Codes = make([]string, len(r.Exemptions.Codes))
		copy(c.Exemptions.Codes, r.Exemptions.Codes)
	}
	return &c
}
