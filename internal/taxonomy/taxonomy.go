// Package taxonomy implements the category/subcategory rule table and the
// keyword classifier for drop-in program titles. The table is declarative
// data: matching behavior lives entirely in the algorithm, so the table can
// be extended (or overridden from YAML) without touching any code.
package taxonomy

import "strings"

// AgeRange is an optional age gate on a category or subcategory. A nil
// bound is unconstrained.
type AgeRange struct {
	Min *int `yaml:"min,omitempty" json:"min,omitempty"`
	Max *int `yaml:"max,omitempty" json:"max,omitempty"`
}

// Allows reports whether a program's [courseMin, courseMax] age range
// satisfies the gate: the program must start at or above Min and end at or
// below Max.
func (r *AgeRange) Allows(courseMin, courseMax int) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && courseMin < *r.Min {
		return false
	}
	if r.Max != nil && courseMax > *r.Max {
		return false
	}
	return true
}

// Subcategory is one leaf of the taxonomy. Inclusion keywords are matched
// as case-insensitive substrings of the program title; any exclusion
// keyword present vetoes the match. A fallback subcategory only matches
// when no sibling in the same category matched.
type Subcategory struct {
	ID             string    `yaml:"id" json:"id"`
	Name           string    `yaml:"name" json:"name"`
	Keywords       []string  `yaml:"keywords" json:"keywords"`
	Exclusions     []string  `yaml:"exclusions,omitempty" json:"exclusions,omitempty"`
	IsFallback     bool      `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	AgeRequirement *AgeRange `yaml:"age_requirement,omitempty" json:"age_requirement,omitempty"`
}

// Category is one root of the taxonomy.
type Category struct {
	ID             string        `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Icon           string        `yaml:"icon" json:"icon"`
	AgeRequirement *AgeRange     `yaml:"age_requirement,omitempty" json:"age_requirement,omitempty"`
	Subcategories  []Subcategory `yaml:"subcategories" json:"subcategories"`
}

// Subcategory returns the subcategory with the given id, or nil.
func (c *Category) Subcategory(id string) *Subcategory {
	for i := range c.Subcategories {
		if c.Subcategories[i].ID == id {
			return &c.Subcategories[i]
		}
	}
	return nil
}

// Label is one classification result: a category/subcategory pair.
type Label struct {
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
}

// titleHasAny reports whether the lowercased title contains any of the
// given keywords (compared case-insensitively).
func titleHasAny(lowerTitle string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lowerTitle, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

func intPtr(n int) *int { return &n }
