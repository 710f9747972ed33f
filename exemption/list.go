package exemption

import (
	"fmt"
	"strings"

	"github.com/tsawler/redaction/model"
)

// List is the set of exemption codes applied to one redaction
type List struct {
	Category string
	Codes    []string
	Other    string
}

// FromModel converts the exemptions stored on a redaction
func FromModel(e model.Exemptions) List {
	return List{
		Category: e.Category,
		Codes:    append([]string(nil), e.Codes...),
		Other:    e.Other,
	}
}

// Model converts the list back to its stored form
func (l List) Model() model.Exemptions {
	return model.Exemptions{
		Category: l.Category,
		Codes:    append([]string(nil), l.Codes...),
		Other:    l.Other,
	}
}

// ParseList splits a comma separated code list. Entries found in the
// catalog become codes, using the catalog's spelling; anything else is
// joined into Other. With a nil catalog every entry is taken as a code.
func ParseList(c *Catalog, s string) List {
	var l List
	if c != nil {
		l.Category = c.Category
	}

	var other []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if c == nil {
			l.Codes = append(l.Codes, part)
			continue
		}
		if code, ok := c.Lookup(part); ok {
			l.Codes = append(l.Codes, code.Name)
		} else {
			other = append(other, part)
		}
	}
	l.Other = strings.Join(other, ", ")
	return l
}

// Canonical returns a copy using the catalog's spelling for every known
// code and its category. Unknown codes are kept as given.
func (l List) Canonical(c *Catalog) List {
	out := List{Category: l.Category, Other: l.Other}
	if c != nil {
		out.Category = c.Category
	}
	for _, name := range l.Codes {
		if code, ok := c.Lookup(name); ok {
			name = code.Name
		}
		out.Codes = append(out.Codes, name)
	}
	return out
}

// IsEmpty reports whether no exemption is applied
func (l List) IsEmpty() bool {
	return len(l.Codes) == 0 && strings.TrimSpace(l.Other) == ""
}

// String renders the list as shown in the verification grid
func (l List) String() string {
	parts := make([]string, 0, len(l.Codes)+1)
	parts = append(parts, l.Codes...)
	if other := strings.TrimSpace(l.Other); other != "" {
		parts = append(parts, other)
	}
	return strings.Join(parts, ", ")
}

// Validate checks that every code belongs to the catalog and that the
// categories agree
func (l List) Validate(c *Catalog) error {
	if c == nil {
		return fmt.Errorf("%w: no catalog", ErrUnknownCode)
	}
	if l.Category != "" && !strings.EqualFold(l.Category, c.Category) {
		return fmt.Errorf("%w: category %q does not match catalog %q", ErrUnknownCode, l.Category, c.Category)
	}

	var unknown []string
	for _, code := range l.Codes {
		if _, ok := c.Lookup(code); !ok {
			unknown = append(unknown, code)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownCode, strings.Join(unknown, ", "))
	}
	return nil
}
