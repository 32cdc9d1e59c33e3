package taxonomy

import (
	"sort"
	"strings"
)

// subcategoryLess orders subcategories for display: fallback and
// "Other ..." entries sink to the bottom, the rest sort alphabetically.
func subcategoryLess(a, b Subcategory) bool {
	aOther := a.IsFallback || strings.Contains(strings.ToLower(a.Name), "other")
	bOther := b.IsFallback || strings.Contains(strings.ToLower(b.Name), "other")
	if aOther != bOther {
		return !aOther
	}
	return a.Name < b.Name
}

// Subcategories returns the display-ordered subcategories of a category,
// or nil when the category is unknown.
func (t *Table) Subcategories(categoryID string) []Subcategory {
	cat := t.Category(categoryID)
	if cat == nil {
		return nil
	}
	out := make([]Subcategory, len(cat.Subcategories))
	copy(out, cat.Subcategories)
	sort.SliceStable(out, func(i, j int) bool { return subcategoryLess(out[i], out[j]) })
	return out
}

// AllSubcategories returns every subcategory across the taxonomy,
// deduplicated by id (first declaration wins) and display-ordered.
func (t *Table) AllSubcategories() []Subcategory {
	var out []Subcategory
	seen := make(map[string]bool)
	for i := range t.categories {
		for _, sub := range t.categories[i].Subcategories {
			if seen[sub.ID] {
				continue
			}
			seen[sub.ID] = true
			out = append(out, sub)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return subcategoryLess(out[i], out[j]) })
	return out
}

// TitlesFor filters a list of program titles down to those belonging to
// the given category (and subcategory, when non-empty). An empty or "all"
// category returns the input unchanged. Used as the autocomplete source.
func (t *Table) TitlesFor(titles []string, categoryID, subcategoryID string) []string {
	if categoryID == "" || categoryID == "all" {
		return titles
	}
	cat := t.Category(categoryID)
	if cat == nil {
		return nil
	}
	if subcategoryID != "" && cat.Subcategory(subcategoryID) == nil {
		return nil
	}
	out := make([]string, 0, len(titles))
	for _, title := range titles {
		if t.Matches(title, categoryID, subcategoryID, "", "") {
			out = append(out, title)
		}
	}
	return out
}
