package model

import (
	"fmt"
	"strings"
)

// ConfidenceLevel buckets items by how sure the finder was about them
type ConfidenceLevel int

const (
	ConfidenceUnknown ConfidenceLevel = iota
	ConfidenceHigh
	ConfidenceMedium
	ConfidenceLow
	ConfidenceClue
	ConfidenceManual
)

// ConfidenceLevels lists every known level in display order
var ConfidenceLevels = []ConfidenceLevel{
	ConfidenceHigh,
	ConfidenceMedium,
	ConfidenceLow,
	ConfidenceClue,
	ConfidenceManual,
}

func (c ConfidenceLevel) String() string {
	switch c {
	case ConfidenceHigh:
		return "High"
	case ConfidenceMedium:
		return "Medium"
	case ConfidenceLow:
		return "Low"
	case ConfidenceClue:
		return "Clue"
	case ConfidenceManual:
		return "Manual"
	default:
		return "Unknown"
	}
}

// ShortName returns the one-letter abbreviation used in compact listings
func (c ConfidenceLevel) ShortName() string {
	switch c {
	case ConfidenceHigh:
		return "H"
	case ConfidenceMedium:
		return "M"
	case ConfidenceLow:
		return "L"
	case ConfidenceClue:
		return "C"
	case ConfidenceManual:
		return "U"
	default:
		return "?"
	}
}

// ParseConfidenceLevel parses a level name or its short name, ignoring case
func ParseConfidenceLevel(s string) (ConfidenceLevel, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ConfidenceUnknown, nil
	}
	for _, level := range ConfidenceLevels {
		if strings.EqualFold(s, level.String()) || strings.EqualFold(s, level.ShortName()) {
			return level, nil
		}
	}
	if strings.EqualFold(s, ConfidenceUnknown.String()) {
		return ConfidenceUnknown, nil
	}
	return ConfidenceUnknown, fmt.Errorf("unknown confidence level %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (c ConfidenceLevel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *ConfidenceLevel) UnmarshalText(data []byte) error {
	level, err := ParseConfidenceLevel(string(data))
	if err != nil {
		return err
	}
	*c = level
	return nil
}
