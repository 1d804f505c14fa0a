// Package interpretation maps a (category, number) pair to its interpretation text.
//
// The catalog is immutable once built, so a single instance is shared by every
// request. A pair without text resolves to Uninterpreted; callers never see an
// empty string.
package interpretation

import (
	_ "embed"
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"numerology/internal/numerology"
	"numerology/pkg/domain"
	"numerology/pkg/platform/sentinel"
)

// Uninterpreted is returned by Meaning for any pair without catalog text.
const Uninterpreted = "This number requires personal interpretation based on your unique circumstances."

//go:embed meanings.yaml
var defaultMeanings []byte

var defaultCatalog = mustParse(defaultMeanings)

// Catalog holds interpretation text per category and number.
type Catalog struct {
	entries map[domain.Category]map[numerology.Number]string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// Parse builds a catalog from YAML of the form
//
//	lifePath:
//	  1: "..."
//	  11: "..."
func Parse(data []byte) (*Catalog, error) {
	c := &Catalog{entries: make(map[domain.Category]map[numerology.Number]string)}
	if err := c.merge(data); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads a YAML override file and lays it over the default catalog.
// Entries in the file replace the defaults; everything else is kept.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("interpretation: read %q: %w", path, err)
	}
	c := defaultCatalog.clone()
	if err := c.merge(data); err != nil {
		return nil, fmt.Errorf("interpretation: %q: %w", path, err)
	}
	return c, nil
}

// Lookup returns the text for the pair, or an error wrapping sentinel.ErrNotFound.
func (c *Catalog) Lookup(category domain.Category, number numerology.Number) (string, error) {
	if text, ok := c.entries[category][number]; ok {
		return text, nil
	}
	return "", fmt.Errorf("interpretation for %s %d: %w", category, number, sentinel.ErrNotFound)
}

// Meaning returns the text for the pair, falling back to Uninterpreted.
func (c *Catalog) Meaning(category domain.Category, number numerology.Number) string {
	if text, err := c.Lookup(category, number); err == nil {
		return text
	}
	return Uninterpreted
}

// Len reports the number of (category, number) entries.
func (c *Catalog) Len() int {
	n := 0
	for _, byNumber := range c.entries {
		n += len(byNumber)
	}
	return n
}

func (c *Catalog) merge(data []byte) error {
	var raw map[string]map[int]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: parse: %v", sentinel.ErrInvalidState, err)
	}
	for name, byNumber := range raw {
		category, err := domain.ParseCategory(name)
		if err != nil {
			return fmt.Errorf("%w: unknown category %q", sentinel.ErrInvalidState, name)
		}
		for n, text := range byNumber {
			number := numerology.Number(n)
			if !number.Valid() {
				return fmt.Errorf("%w: %s %d can never be derived", sentinel.ErrInvalidState, category, n)
			}
			if number == 0 {
				return fmt.Errorf("%w: %s 0 always resolves to the default text", sentinel.ErrInvalidState, category)
			}
			text = strings.TrimSpace(text)
			if text == "" {
				return fmt.Errorf("%w: %s %d has empty text", sentinel.ErrInvalidState, category, n)
			}
			if c.entries[category] == nil {
				c.entries[category] = make(map[numerology.Number]string)
			}
			c.entries[category][number] = text
		}
	}
	return nil
}

func (c *Catalog) clone() *Catalog {
	out := &Catalog{entries: make(map[domain.Category]map[numerology.Number]string, len(c.entries))}
	for category, byNumber := range c.entries {
		out.entries[category] = maps.Clone(byNumber)
	}
	return out
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("interpretation: embedded meanings: %v", err))
	}
	return c
}
