package exemption

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/text/cases"
)

var (
	// ErrUnknownCode is returned when a code is not part of a catalog
	ErrUnknownCode = errors.New("unknown exemption code")

	// ErrInvalidCatalog is returned for catalogs that parse as XML but do
	// not describe a usable set of codes
	ErrInvalidCatalog = errors.New("invalid exemption catalog")
)

var (
	rootExpr        = xpath.MustCompile("/ExemptionCodes")
	descriptionExpr = xpath.MustCompile("Description")
	codeExpr        = xpath.MustCompile("Code")
)

// Code is one exemption code in a catalog
type Code struct {
	Name        string
	Summary     string
	Description string
}

// Catalog is a named set of exemption codes, kept in file order
type Catalog struct {
	Category    string
	Description string

	codes []Code
	index map[string]int
}

// Load reads a catalog from an XML file
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening exemption catalog: %w", err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse reads a catalog from XML
func Parse(r io.Reader) (*Catalog, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing XML: %w", err)
	}

	root := xmlquery.QuerySelector(doc, rootExpr)
	if root == nil {
		return nil, fmt.Errorf("%w: missing ExemptionCodes element", ErrInvalidCatalog)
	}

	c := &Catalog{
		Category: strings.TrimSpace(root.SelectAttr("Category")),
		index:    make(map[string]int),
	}
	if c.Category == "" {
		return nil, fmt.Errorf("%w: missing Category attribute", ErrInvalidCatalog)
	}
	if desc := xmlquery.QuerySelector(root, descriptionExpr); desc != nil {
		c.Description = strings.TrimSpace(desc.InnerText())
	}

	for i, node := range xmlquery.QuerySelectorAll(root, codeExpr) {
		code := Code{
			Name:        strings.TrimSpace(node.SelectAttr("Name")),
			Summary:     strings.TrimSpace(node.SelectAttr("Summary")),
			Description: strings.TrimSpace(node.InnerText()),
		}
		if code.Name == "" {
			return nil, fmt.Errorf("%w: code %d has no Name", ErrInvalidCatalog, i+1)
		}
		key := foldKey(code.Name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: duplicate code %q", ErrInvalidCatalog, code.Name)
		}
		c.index[key] = len(c.codes)
		c.codes = append(c.codes, code)
	}

	return c, nil
}

// Codes returns the catalog's codes in file order
func (c *Catalog) Codes() []Code {
	if c == nil {
		return nil
	}
	out := make([]Code, len(c.codes))
	copy(out, c.codes)
	return out
}

// Len returns the number of codes
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.codes)
}

// Lookup finds a code by name, ignoring case and surrounding space
func (c *Catalog) Lookup(name string) (Code, bool) {
	if c == nil {
		return Code{}, false
	}
	i, ok := c.index[foldKey(name)]
	if !ok {
		return Code{}, false
	}
	return c.codes[i], true
}

// foldKey normalizes a code name for lookups. A Caser is not safe for
// concurrent use, so one is made per call.
func foldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
