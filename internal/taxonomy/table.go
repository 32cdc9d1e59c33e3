package taxonomy

import (
	"sort"
	"strings"
)

// flatKeyword is one (category, subcategory, keyword) triple from the
// flattened non-fallback keyword list.
type flatKeyword struct {
	cat     *Category
	sub     *Subcategory
	keyword string // lowercased
}

// Table is an immutable, indexed view of a category list. The flattened
// keyword list is precomputed and length-sorted at build time; the table
// itself never changes after construction, so a Table is safe for
// concurrent readers.
type Table struct {
	categories []Category
	byID       map[string]*Category
	flat       []flatKeyword
}

// New builds a Table from a category list.
func New(categories []Category) *Table {
	t := &Table{
		categories: categories,
		byID:       make(map[string]*Category, len(categories)),
	}
	for i := range t.categories {
		cat := &t.categories[i]
		t.byID[cat.ID] = cat
		for j := range cat.Subcategories {
			sub := &cat.Subcategories[j]
			if sub.IsFallback || len(sub.Keywords) == 0 {
				continue
			}
			for _, kw := range sub.Keywords {
				t.flat = append(t.flat, flatKeyword{cat: cat, sub: sub, keyword: strings.ToLower(kw)})
			}
		}
	}
	// Longer keywords first so more specific phrases are evaluated before
	// their substrings. Every matching keyword is collected regardless, so
	// this only affects label ordering, not membership.
	sort.SliceStable(t.flat, func(i, j int) bool {
		return len(t.flat[i].keyword) > len(t.flat[j].keyword)
	})
	return t
}

// Default builds a Table from the built-in rule table.
func Default() *Table {
	return New(DefaultCategories())
}

// Categories returns the table's categories in declaration order.
func (t *Table) Categories() []Category {
	return t.categories
}

// Category returns the category with the given id, or nil.
func (t *Table) Category(id string) *Category {
	return t.byID[id]
}

// Owner returns the category containing the given subcategory id, or nil.
// Subcategory ids like "hockey" appear under more than one category; the
// first declaration wins, matching the dropdown behavior.
func (t *Table) Owner(subcategoryID string) *Category {
	for i := range t.categories {
		if t.categories[i].Subcategory(subcategoryID) != nil {
			return &t.categories[i]
		}
	}
	return nil
}
