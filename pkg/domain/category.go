package domain

import (
	dErrors "numerology/pkg/domain-errors"
)

// Category names one of the four numerology figures.
// The string values are the keys interpretation tables are published under.
type Category string

const (
	CategoryLifePath    Category = "lifePath"
	CategoryDestiny     Category = "destiny"
	CategorySoulUrge    Category = "soulUrge"
	CategoryPersonality Category = "personality"
)

var categoryTitles = map[Category]string{
	CategoryLifePath:    "Life Path",
	CategoryDestiny:     "Destiny",
	CategorySoulUrge:    "Soul Urge",
	CategoryPersonality: "Personality",
}

// ParseCategory validates and returns a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeValidation, "category must be one of lifePath, destiny, soulUrge, personality")
	}
	return c, nil
}

// AllCategories returns the categories in display order.
func AllCategories() []Category {
	return []Category{CategoryLifePath, CategoryDestiny, CategorySoulUrge, CategoryPersonality}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title returns the human-readable name, e.g. "Soul Urge".
func (c Category) Title() string {
	return categoryTitles[c]
}

func (c Category) String() string {
	return string(c)
}
