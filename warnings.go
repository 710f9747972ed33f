package redaction

import (
	"fmt"
	"strings"
)

// Warning describes a problem with one item that did not stop loading
type Warning struct {
	ItemID  string
	Message string
}

func (w Warning) String() string {
	if w.ItemID == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.ItemID, w.Message)
}

// FormatWarnings joins warnings into a single line
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
