package verify

import "github.com/tsawler/redaction/model"

// Counts summarizes a session for the status bar
type Counts struct {
	Total      int
	Viewed     int
	Redactions int
	Clues      int

	// Unplaced counts rows with no usable zone; they sort first
	Unplaced int

	// ByLevel counts rows per confidence level
	ByLevel map[model.ConfidenceLevel]int

	// ByPage counts rows touching each page. A row spanning two pages is
	// counted on both; rows without geometry are not counted.
	ByPage map[int]int
}

// Unviewed returns the number of rows not yet reviewed
func (c Counts) Unviewed() int {
	return c.Total - c.Viewed
}

// Counts tallies the session's rows
func (s *Session) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := Counts{
		Total:   len(s.rows),
		ByLevel: make(map[model.ConfidenceLevel]int),
		ByPage:  make(map[int]int),
	}
	for _, row := range s.rows {
		if row.Viewed {
			c.Viewed++
		}
		if row.Item == nil {
			continue
		}
		if row.Item.IsClue() {
			c.Clues++
		} else {
			c.Redactions++
		}
		c.ByLevel[row.Item.Confidence]++
		if !row.Item.Zones.HasGeometry() {
			c.Unplaced++
		}
		for _, page := range row.Item.Pages() {
			c.ByPage[page]++
		}
	}
	return c
}
